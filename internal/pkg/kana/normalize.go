// Package kana implements the hiragana-to-katakana normalisation used by
// the station name search path. No width, accent or case folding is
// performed; only the U+3041..U+3096 range is shifted by 0x60.
package kana

// NormalizeForSearch maps every hiragana rune in s to its katakana
// counterpart and leaves everything else untouched.
func NormalizeForSearch(s string) string {
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, c := range runes {
		if c >= 0x3041 && c <= 0x3096 {
			out[i] = c + 0x60
		} else {
			out[i] = c
		}
	}
	return string(out)
}
