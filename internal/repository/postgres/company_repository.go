package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/trainlcd/stationapi/internal/domain"
	"github.com/trainlcd/stationapi/internal/pkg/apperr"
)

type companyRow struct {
	CompanyCd         int64          `db:"company_cd"`
	RrCd              int64          `db:"rr_cd"`
	CompanyName       string         `db:"company_name"`
	CompanyNameK      string         `db:"company_name_k"`
	CompanyNameH      string         `db:"company_name_h"`
	CompanyNameR      string         `db:"company_name_r"`
	CompanyNameEn     string         `db:"company_name_en"`
	CompanyNameFullEn string         `db:"company_name_full_en"`
	CompanyURL        sql.NullString `db:"company_url"`
	CompanyType       int64          `db:"company_type"`
	EStatus           int64          `db:"e_status"`
	ESort             int64          `db:"e_sort"`
}

func (r companyRow) toDomain() domain.Company {
	return domain.Company{
		CompanyCd:         r.CompanyCd,
		RrCd:              r.RrCd,
		CompanyName:       r.CompanyName,
		CompanyNameK:      r.CompanyNameK,
		CompanyNameH:      r.CompanyNameH,
		CompanyNameR:      r.CompanyNameR,
		CompanyNameEn:     r.CompanyNameEn,
		CompanyNameFullEn: r.CompanyNameFullEn,
		CompanyURL:        nullStr(r.CompanyURL),
		CompanyType:       r.CompanyType,
		EStatus:           r.EStatus,
		ESort:             r.ESort,
	}
}

type companyRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCompanyRepository(db *DB, logger *zap.Logger) *companyRepository {
	return &companyRepository{db: db, logger: logger}
}

// FindByIdVec is the sole read Component C's enrich() needs from this
// repository: one batch lookup by company_cd, order is irrelevant
// because the caller indexes the result by CompanyCd.
func (r *companyRepository) FindByIdVec(ctx context.Context, companyIds []int64) ([]domain.Company, error) {
	if len(companyIds) == 0 {
		return nil, nil
	}

	query := `SELECT
			company_cd,
			rr_cd,
			company_name,
			company_name_k,
			company_name_h,
			company_name_r,
			company_name_en,
			company_name_full_en,
			company_url,
			company_type,
			e_status,
			e_sort
		FROM companies
		WHERE company_cd = ANY($1) AND e_status = 0`

	var rows []companyRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(companyIds)); err != nil {
		r.logger.Error("company repository query failed", zap.String("op", "FindByIdVec"), zap.Error(err))
		return nil, apperr.Infrastructuref(err, "company repository: FindByIdVec")
	}

	out := make([]domain.Company, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
