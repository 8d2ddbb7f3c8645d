package repository

import (
	"context"

	"github.com/trainlcd/stationapi/internal/domain"
)

type CompanyRepository interface {
	FindByIdVec(ctx context.Context, companyIds []int64) ([]domain.Company, error)
}
