package kana_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trainlcd/stationapi/internal/pkg/kana"
)

func TestNormalizeForSearch(t *testing.T) {
	assert.Equal(t, "トウキョウ", kana.NormalizeForSearch("とうきょう"))
	assert.Equal(t, "シンジュク", kana.NormalizeForSearch("しんじゅく"))
	// already-katakana input passes through unchanged
	assert.Equal(t, "シンジュク", kana.NormalizeForSearch("シンジュク"))
	// non-kana characters pass through unchanged
	assert.Equal(t, "Tokyo123", kana.NormalizeForSearch("Tokyo123"))
}
