package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/trainlcd/stationapi/internal/domain"
	"github.com/trainlcd/stationapi/internal/pkg/apperr"
)

type lineRow struct {
	LineCd           int64          `db:"line_cd"`
	CompanyCd        int64          `db:"company_cd"`
	LineName         sql.NullString `db:"line_name"`
	LineNameK        sql.NullString `db:"line_name_k"`
	LineNameH        sql.NullString `db:"line_name_h"`
	LineNameR        sql.NullString `db:"line_name_r"`
	LineNameZh       sql.NullString `db:"line_name_zh"`
	LineNameKo       sql.NullString `db:"line_name_ko"`
	LineColorC       sql.NullString `db:"line_color_c"`
	LineType         sql.NullInt64  `db:"line_type"`
	LineSymbol1      sql.NullString `db:"line_symbol1"`
	LineSymbol2      sql.NullString `db:"line_symbol2"`
	LineSymbol3      sql.NullString `db:"line_symbol3"`
	LineSymbol4      sql.NullString `db:"line_symbol4"`
	LineSymbol1Color sql.NullString `db:"line_symbol1_color"`
	LineSymbol2Color sql.NullString `db:"line_symbol2_color"`
	LineSymbol3Color sql.NullString `db:"line_symbol3_color"`
	LineSymbol4Color sql.NullString `db:"line_symbol4_color"`
	LineSymbol1Shape sql.NullString `db:"line_symbol1_shape"`
	LineSymbol2Shape sql.NullString `db:"line_symbol2_shape"`
	LineSymbol3Shape sql.NullString `db:"line_symbol3_shape"`
	LineSymbol4Shape sql.NullString `db:"line_symbol4_shape"`
	EStatus          int64          `db:"e_status"`
	ESort            int64          `db:"e_sort"`
	AverageDistance  sql.NullFloat64 `db:"average_distance"`
	LineGroupCd      sql.NullInt64  `db:"line_group_cd"`
	StationCd        sql.NullInt64  `db:"station_cd"`
	StationGCd       sql.NullInt64  `db:"station_g_cd"`
}

func strOrEmpty(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func (r lineRow) toDomain() domain.Line {
	return domain.Line{
		LineCd:           r.LineCd,
		CompanyCd:        r.CompanyCd,
		LineName:         strOrEmpty(r.LineName),
		LineNameK:        strOrEmpty(r.LineNameK),
		LineNameH:        strOrEmpty(r.LineNameH),
		LineNameR:        nullStr(r.LineNameR),
		LineNameZh:       nullStr(r.LineNameZh),
		LineNameKo:       nullStr(r.LineNameKo),
		LineColorC:       nullStr(r.LineColorC),
		LineType:         nullInt(r.LineType),
		LineSymbol1:      nullStr(r.LineSymbol1),
		LineSymbol2:      nullStr(r.LineSymbol2),
		LineSymbol3:      nullStr(r.LineSymbol3),
		LineSymbol4:      nullStr(r.LineSymbol4),
		LineSymbol1Color: nullStr(r.LineSymbol1Color),
		LineSymbol2Color: nullStr(r.LineSymbol2Color),
		LineSymbol3Color: nullStr(r.LineSymbol3Color),
		LineSymbol4Color: nullStr(r.LineSymbol4Color),
		LineSymbol1Shape: nullStr(r.LineSymbol1Shape),
		LineSymbol2Shape: nullStr(r.LineSymbol2Shape),
		LineSymbol3Shape: nullStr(r.LineSymbol3Shape),
		LineSymbol4Shape: nullStr(r.LineSymbol4Shape),
		EStatus:          r.EStatus,
		ESort:            r.ESort,
		AverageDistance:  r.AverageDistance.Float64,
		LineGroupCd:      nullInt(r.LineGroupCd),
		StationCd:        nullInt(r.StationCd),
		StationGCd:       nullInt(r.StationGCd),
	}
}

const lineColumns = `
	l.line_cd,
	l.company_cd,
	l.line_type,
	l.line_symbol1,
	l.line_symbol2,
	l.line_symbol3,
	l.line_symbol4,
	l.line_symbol1_color,
	l.line_symbol2_color,
	l.line_symbol3_color,
	l.line_symbol4_color,
	l.line_symbol1_shape,
	l.line_symbol2_shape,
	l.line_symbol3_shape,
	l.line_symbol4_shape,
	l.e_status,
	l.e_sort,
	COALESCE(l.average_distance, 0.0)::DOUBLE PRECISION AS average_distance,
	COALESCE(NULLIF(COALESCE(a.line_name, l.line_name), ''), NULL) AS line_name,
	COALESCE(NULLIF(COALESCE(a.line_name_k, l.line_name_k), ''), NULL) AS line_name_k,
	COALESCE(NULLIF(COALESCE(a.line_name_h, l.line_name_h), ''), NULL) AS line_name_h,
	COALESCE(NULLIF(COALESCE(a.line_name_r, l.line_name_r), ''), NULL) AS line_name_r,
	COALESCE(NULLIF(COALESCE(a.line_name_zh, l.line_name_zh), ''), NULL) AS line_name_zh,
	COALESCE(NULLIF(COALESCE(a.line_name_ko, l.line_name_ko), ''), NULL) AS line_name_ko,
	COALESCE(NULLIF(COALESCE(a.line_color_c, l.line_color_c), ''), NULL) AS line_color_c`

type lineRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewLineRepository(db *DB, logger *zap.Logger) *lineRepository {
	return &lineRepository{db: db, logger: logger}
}

func (r *lineRepository) infra(err error, op string) error {
	r.logger.Error("line repository query failed", zap.String("op", op), zap.Error(err))
	return apperr.Infrastructuref(err, "line repository: %s", op)
}

func (r *lineRepository) FindById(ctx context.Context, lineId int64) (*domain.Line, error) {
	query := `SELECT ` + lineColumns + `,
			NULL::bigint AS line_group_cd, NULL::bigint AS station_cd, NULL::bigint AS station_g_cd
		FROM lines AS l
		LEFT JOIN line_aliases AS la ON la.line_cd = l.line_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE l.line_cd = $1 AND l.e_status = 0
		LIMIT 1`

	var row lineRow
	err := r.db.GetContext(ctx, &row, query, lineId)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.infra(err, "FindById")
	}
	line := row.toDomain()
	return &line, nil
}

func (r *lineRepository) GetByIds(ctx context.Context, lineIds []int64) ([]domain.Line, error) {
	if len(lineIds) == 0 {
		return nil, nil
	}
	query := `SELECT ` + lineColumns + `,
			NULL::bigint AS line_group_cd, NULL::bigint AS station_cd, NULL::bigint AS station_g_cd
		FROM lines AS l
		LEFT JOIN line_aliases AS la ON la.line_cd = l.line_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE l.line_cd = ANY($1) AND l.e_status = 0
		ORDER BY l.e_sort, l.line_cd`

	var rows []lineRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(lineIds)); err != nil {
		return nil, r.infra(err, "GetByIds")
	}
	return toLines(rows), nil
}

func (r *lineRepository) FindByStationId(ctx context.Context, stationCd int64) (*domain.Line, error) {
	query := `SELECT ` + lineColumns + `,
			sst.line_group_cd, s.station_cd, s.station_g_cd
		FROM lines AS l
		JOIN stations AS s ON s.line_cd = l.line_cd AND s.station_cd = $1
		LEFT JOIN station_station_types AS sst ON sst.station_cd = s.station_cd
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE l.e_status = 0
		ORDER BY l.line_cd
		LIMIT 1`

	var row lineRow
	err := r.db.GetContext(ctx, &row, query, stationCd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.infra(err, "FindByStationId")
	}
	line := row.toDomain()
	return &line, nil
}

func (r *lineRepository) GetByStationGroupId(ctx context.Context, groupId int64) ([]domain.Line, error) {
	return r.GetByStationGroupIdVec(ctx, []int64{groupId})
}

func (r *lineRepository) GetByStationGroupIdVec(ctx context.Context, groupIds []int64) ([]domain.Line, error) {
	if len(groupIds) == 0 {
		return nil, nil
	}
	query := `SELECT ` + lineColumns + `,
			sst.line_group_cd, s.station_cd, s.station_g_cd
		FROM lines AS l
		JOIN stations AS s ON s.line_cd = l.line_cd
		LEFT JOIN station_station_types AS sst ON sst.station_cd = s.station_cd
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE s.station_g_cd = ANY($1) AND l.e_status = 0 AND s.e_status = 0
		ORDER BY l.e_sort, l.line_cd`

	var rows []lineRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(groupIds)); err != nil {
		return nil, r.infra(err, "GetByStationGroupIdVec")
	}
	return toLines(rows), nil
}

func (r *lineRepository) GetByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.Line, error) {
	return r.GetByLineGroupIdVec(ctx, []int64{lineGroupId})
}

func (r *lineRepository) GetByLineGroupIdVec(ctx context.Context, lineGroupIds []int64) ([]domain.Line, error) {
	if len(lineGroupIds) == 0 {
		return nil, nil
	}
	query := `SELECT ` + lineColumns + `,
			sst.line_group_cd, s.station_cd, s.station_g_cd
		FROM lines AS l
		JOIN station_station_types AS sst ON sst.line_group_cd = ANY($1)
		JOIN stations AS s ON s.station_cd = sst.station_cd AND s.line_cd = l.line_cd
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE l.e_status = 0 AND s.e_status = 0
		ORDER BY l.e_sort, l.line_cd`

	var rows []lineRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(lineGroupIds)); err != nil {
		return nil, r.infra(err, "GetByLineGroupIdVec")
	}
	return toLines(rows), nil
}

// GetByLineGroupIdVecForRoutes mirrors GetByLineGroupIdVec but LEFT JOINs
// station_station_types so a member line with no currently-active sst
// row still surfaces; GetRouteTypes needs every member line even when
// the service pattern temporarily serves none of its stops.
func (r *lineRepository) GetByLineGroupIdVecForRoutes(ctx context.Context, lineGroupIds []int64) ([]domain.Line, error) {
	if len(lineGroupIds) == 0 {
		return nil, nil
	}
	query := `SELECT ` + lineColumns + `,
			sst.line_group_cd, s.station_cd, s.station_g_cd
		FROM lines AS l
		LEFT JOIN station_station_types AS sst ON sst.line_group_cd = ANY($1)
		LEFT JOIN stations AS s ON s.station_cd = sst.station_cd AND s.line_cd = l.line_cd
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE l.e_status = 0
		ORDER BY l.e_sort, l.line_cd`

	var rows []lineRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(lineGroupIds)); err != nil {
		return nil, r.infra(err, "GetByLineGroupIdVecForRoutes")
	}
	return toLines(rows), nil
}

func (r *lineRepository) GetByName(ctx context.Context, name string, limit int) ([]domain.Line, error) {
	if limit <= 0 {
		limit = 30
	}
	pattern := "%" + name + "%"
	query := `SELECT ` + lineColumns + `,
			NULL::bigint AS line_group_cd, NULL::bigint AS station_cd, NULL::bigint AS station_g_cd
		FROM lines AS l
		LEFT JOIN line_aliases AS la ON la.line_cd = l.line_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE l.e_status = 0
			AND (l.line_name LIKE $1 OR l.line_name_k LIKE $1 OR l.line_name_r LIKE $1)
		ORDER BY l.e_sort, l.line_cd
		LIMIT $2`

	var rows []lineRow
	if err := r.db.SelectContext(ctx, &rows, query, pattern, limit); err != nil {
		return nil, r.infra(err, "GetByName")
	}
	return toLines(rows), nil
}

func toLines(rows []lineRow) []domain.Line {
	out := make([]domain.Line, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
