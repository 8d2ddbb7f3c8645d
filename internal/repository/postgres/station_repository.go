package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/trainlcd/stationapi/internal/domain"
	"github.com/trainlcd/stationapi/internal/pkg/apperr"
	"github.com/trainlcd/stationapi/internal/pkg/kana"
)

// stationRow is the flat shape every station query returns: the
// stations ⋈ lines join, the alias COALESCE, and (where relevant) the
// station_station_types ⋈ types join. It is kept distinct from
// domain.Station per §9's design note — conversion happens once, at the
// repository boundary.
type stationRow struct {
	StationCd    int64   `db:"station_cd"`
	StationGCd   int64   `db:"station_g_cd"`
	StationName  string  `db:"station_name"`
	StationNameK string  `db:"station_name_k"`
	StationNameR  sql.NullString `db:"station_name_r"`
	StationNameZh sql.NullString `db:"station_name_zh"`
	StationNameKo sql.NullString `db:"station_name_ko"`

	StationNumber1  sql.NullString `db:"station_number1"`
	StationNumber2  sql.NullString `db:"station_number2"`
	StationNumber3  sql.NullString `db:"station_number3"`
	StationNumber4  sql.NullString `db:"station_number4"`
	ThreeLetterCode sql.NullString `db:"three_letter_code"`

	LineCd  int64   `db:"line_cd"`
	PrefCd  int64   `db:"pref_cd"`
	Post    string  `db:"post"`
	Address string  `db:"address"`
	Lon     float64 `db:"lon"`
	Lat     float64 `db:"lat"`
	OpenYmd  string `db:"open_ymd"`
	CloseYmd string `db:"close_ymd"`
	EStatus  int64  `db:"e_status"`
	ESort    int64  `db:"e_sort"`

	CompanyCd        sql.NullInt64  `db:"company_cd"`
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
	AverageDistance  sql.NullFloat64 `db:"average_distance"`

	SstID       sql.NullInt64 `db:"sst_id"`
	TypeCd      sql.NullInt64 `db:"type_cd"`
	LineGroupCd sql.NullInt64 `db:"line_group_cd"`
	Pass        sql.NullInt64 `db:"pass"`

	TypeName   sql.NullString `db:"type_name"`
	TypeNameK  sql.NullString `db:"type_name_k"`
	TypeNameR  sql.NullString `db:"type_name_r"`
	TypeNameZh sql.NullString `db:"type_name_zh"`
	TypeNameKo sql.NullString `db:"type_name_ko"`
	Color      sql.NullString `db:"color"`
	Direction  sql.NullInt64  `db:"direction"`
	Kind       sql.NullInt64  `db:"kind"`
	Priority   sql.NullInt64  `db:"priority"`

	Distance sql.NullFloat64 `db:"distance"`
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func (r stationRow) toDomain() domain.Station {
	var pass int64
	if r.Pass.Valid {
		pass = r.Pass.Int64
	}
	return domain.Station{
		StationCd:       r.StationCd,
		StationGCd:      r.StationGCd,
		StationName:     r.StationName,
		StationNameK:    r.StationNameK,
		StationNameR:    nullStr(r.StationNameR),
		StationNameZh:   nullStr(r.StationNameZh),
		StationNameKo:   nullStr(r.StationNameKo),
		StationNumber1:  nullStr(r.StationNumber1),
		StationNumber2:  nullStr(r.StationNumber2),
		StationNumber3:  nullStr(r.StationNumber3),
		StationNumber4:  nullStr(r.StationNumber4),
		ThreeLetterCode: nullStr(r.ThreeLetterCode),
		LineCd:          r.LineCd,
		PrefCd:          r.PrefCd,
		Post:            r.Post,
		Address:         r.Address,
		Lon:             r.Lon,
		Lat:             r.Lat,
		OpenYmd:         r.OpenYmd,
		CloseYmd:        r.CloseYmd,
		EStatus:         r.EStatus,
		ESort:           r.ESort,
		CompanyCd:        nullInt(r.CompanyCd),
		LineName:         nullStr(r.LineName),
		LineNameK:        nullStr(r.LineNameK),
		LineNameH:        nullStr(r.LineNameH),
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
		AverageDistance:  r.AverageDistance.Float64,
		SstID:            nullInt(r.SstID),
		TypeCd:           nullInt(r.TypeCd),
		LineGroupCd:      nullInt(r.LineGroupCd),
		Pass:             nullInt(r.Pass),
		TypeName:         nullStr(r.TypeName),
		TypeNameK:        nullStr(r.TypeNameK),
		TypeNameR:        nullStr(r.TypeNameR),
		TypeNameZh:       nullStr(r.TypeNameZh),
		TypeNameKo:       nullStr(r.TypeNameKo),
		Color:            nullStr(r.Color),
		Direction:        nullInt(r.Direction),
		Kind:             nullInt(r.Kind),
		Priority:         nullInt(r.Priority),
		Distance:         nullFloat(r.Distance),
		HasTrainTypes:    r.LineGroupCd.Valid,
		StopCondition:    domain.StopConditionFromPass(pass),
	}
}

const stationColumns = `
	s.station_cd,
	s.station_g_cd,
	s.station_name,
	s.station_name_k,
	s.station_name_r,
	s.station_name_zh,
	s.station_name_ko,
	s.station_number1,
	s.station_number2,
	s.station_number3,
	s.station_number4,
	s.three_letter_code,
	s.line_cd,
	s.pref_cd,
	s.post,
	s.address,
	s.lon,
	s.lat,
	s.open_ymd,
	s.close_ymd,
	s.e_status,
	s.e_sort,
	l.company_cd,
	COALESCE(NULLIF(COALESCE(a.line_name, l.line_name), ''), NULL) AS line_name,
	COALESCE(NULLIF(COALESCE(a.line_name_k, l.line_name_k), ''), NULL) AS line_name_k,
	COALESCE(NULLIF(COALESCE(a.line_name_h, l.line_name_h), ''), NULL) AS line_name_h,
	COALESCE(NULLIF(COALESCE(a.line_name_r, l.line_name_r), ''), NULL) AS line_name_r,
	COALESCE(NULLIF(COALESCE(a.line_name_zh, l.line_name_zh), ''), NULL) AS line_name_zh,
	COALESCE(NULLIF(COALESCE(a.line_name_ko, l.line_name_ko), ''), NULL) AS line_name_ko,
	COALESCE(NULLIF(COALESCE(a.line_color_c, l.line_color_c), ''), NULL) AS line_color_c,
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
	COALESCE(l.average_distance, 0.0)::DOUBLE PRECISION AS average_distance`

type stationRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStationRepository(db *DB, logger *zap.Logger) *stationRepository {
	return &stationRepository{db: db, logger: logger}
}

func (r *stationRepository) infra(err error, op string) error {
	r.logger.Error("station repository query failed", zap.String("op", op), zap.Error(err))
	return apperr.Infrastructuref(err, "station repository: %s", op)
}

func (r *stationRepository) FindById(ctx context.Context, stationCd int64) (*domain.Station, error) {
	query := `SELECT ` + stationColumns + `,
			t.id AS type_id,
			sst.id AS sst_id,
			sst.type_cd,
			sst.line_group_cd,
			sst.pass,
			t.type_name,
			t.type_name_k,
			t.type_name_r,
			t.type_name_zh,
			t.type_name_ko,
			t.color,
			t.direction,
			t.kind,
			t.priority
		FROM stations AS s
		JOIN lines AS l ON l.line_cd = s.line_cd
		LEFT JOIN station_station_types AS sst ON sst.station_cd = s.station_cd
		LEFT JOIN types AS t ON t.type_cd = sst.type_cd
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE s.station_cd = $1
			AND s.e_status = 0
			AND l.e_status = 0
		LIMIT 1`

	var row stationRow
	err := r.db.GetContext(ctx, &row, query, stationCd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.infra(err, "FindById")
	}
	st := row.toDomain()
	return &st, nil
}

func (r *stationRepository) GetByIdVec(ctx context.Context, ids []int64) ([]domain.Station, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	// PostgreSQL has no ordered-IN; a CASE expression over the bound ids
	// preserves the caller's requested order instead of storage order.
	var caseExpr strings.Builder
	caseExpr.WriteString("CASE s.station_cd ")
	for i := range ids {
		fmt.Fprintf(&caseExpr, "WHEN $%d THEN %d ", i+2, i)
	}
	caseExpr.WriteString("END")

	query := `SELECT ` + stationColumns + `,
			NULL::bigint AS type_id,
			NULL::bigint AS sst_id,
			NULL::bigint AS type_cd,
			NULL::bigint AS line_group_cd,
			NULL::bigint AS pass,
			NULL::text AS type_name,
			NULL::text AS type_name_k,
			NULL::text AS type_name_r,
			NULL::text AS type_name_zh,
			NULL::text AS type_name_ko,
			NULL::text AS color,
			NULL::bigint AS direction,
			NULL::bigint AS kind,
			NULL::bigint AS priority
		FROM stations AS s
		JOIN lines AS l ON l.line_cd = s.line_cd AND l.e_status = 0
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE s.station_cd = ANY($1) AND s.e_status = 0
		ORDER BY ` + caseExpr.String()

	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, pq.Array(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, r.infra(err, "GetByIdVec")
	}
	return toStations(rows), nil
}

func (r *stationRepository) GetByLineId(ctx context.Context, lineId int64, fromStationId *int64, directionId *int64) ([]domain.Station, error) {
	reverse := directionId != nil && (*directionId == 1 || *directionId == 2)

	if fromStationId == nil {
		return r.getByLineIdPlain(ctx, lineId, reverse)
	}

	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(sst.line_group_cd)
		FROM station_station_types AS sst
		JOIN types AS t ON t.type_cd = sst.type_cd
		WHERE sst.station_cd = $1
			AND (t.kind = ANY($2) OR t.priority > 0)`,
		*fromStationId, pq.Array([]int64{0, 1}))
	if err != nil {
		return nil, r.infra(err, "GetByLineId/localCheck")
	}
	if count == 0 {
		return r.getByLineIdPlain(ctx, lineId, reverse)
	}

	order := "ASC"
	if reverse {
		order = "DESC"
	}
	query := `SELECT ` + stationColumns + `,
			t.id AS type_id,
			sst.id AS sst_id,
			sst.type_cd,
			sst.line_group_cd,
			sst.pass,
			t.type_name,
			t.type_name_k,
			t.type_name_r,
			t.type_name_zh,
			t.type_name_ko,
			t.color,
			t.direction,
			t.kind,
			t.priority
		FROM stations AS s
		JOIN lines AS l ON l.line_cd = s.line_cd AND l.e_status = 0
		JOIN station_station_types AS sst ON sst.line_group_cd = (
			SELECT sst_inner.line_group_cd
			FROM station_station_types AS sst_inner
			JOIN types AS t_inner ON t_inner.type_cd = sst_inner.type_cd
			WHERE sst_inner.station_cd = $1
			ORDER BY t_inner.priority DESC
			LIMIT 1
		) AND sst.station_cd = s.station_cd
		JOIN types AS t ON t.type_cd = sst.type_cd
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE s.e_status = 0
		ORDER BY sst.id ` + order

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, *fromStationId); err != nil {
		return nil, r.infra(err, "GetByLineId/throughRunning")
	}
	return toStations(rows), nil
}

func (r *stationRepository) getByLineIdPlain(ctx context.Context, lineId int64, reverse bool) ([]domain.Station, error) {
	order := "s.e_sort ASC, s.station_cd ASC"
	if reverse {
		order = "s.e_sort DESC, s.station_cd DESC"
	}
	query := `SELECT ` + stationColumns + `,
			NULL::bigint AS type_id,
			NULL::bigint AS sst_id,
			NULL::bigint AS type_cd,
			NULL::bigint AS line_group_cd,
			NULL::bigint AS pass,
			NULL::text AS type_name,
			NULL::text AS type_name_k,
			NULL::text AS type_name_r,
			NULL::text AS type_name_zh,
			NULL::text AS type_name_ko,
			NULL::text AS color,
			NULL::bigint AS direction,
			NULL::bigint AS kind,
			NULL::bigint AS priority
		FROM stations AS s
		JOIN lines AS l ON l.line_cd = s.line_cd AND l.e_status = 0
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE l.line_cd = $1 AND s.e_status = 0
		ORDER BY ` + order

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, lineId); err != nil {
		return nil, r.infra(err, "GetByLineId")
	}
	return toStations(rows), nil
}

func (r *stationRepository) GetByStationGroupId(ctx context.Context, groupId int64) ([]domain.Station, error) {
	return r.GetByStationGroupIdVec(ctx, []int64{groupId})
}

func (r *stationRepository) GetByStationGroupIdVec(ctx context.Context, groupIds []int64) ([]domain.Station, error) {
	if len(groupIds) == 0 {
		return nil, nil
	}
	query := `SELECT ` + stationColumns + `,
			t.id AS type_id,
			sst.id AS sst_id,
			sst.type_cd,
			sst.line_group_cd,
			sst.pass,
			t.type_name,
			t.type_name_k,
			t.type_name_r,
			t.type_name_zh,
			t.type_name_ko,
			t.color,
			t.direction,
			t.kind,
			t.priority
		FROM stations AS s
		JOIN lines AS l ON l.line_cd = s.line_cd AND l.e_status = 0
		LEFT JOIN station_station_types AS sst ON sst.station_cd = s.station_cd
		LEFT JOIN types AS t ON t.type_cd = sst.type_cd
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE s.station_g_cd = ANY($1) AND s.e_status = 0
		ORDER BY s.station_g_cd, s.e_sort, s.station_cd`

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(groupIds)); err != nil {
		return nil, r.infra(err, "GetByStationGroupIdVec")
	}
	return toStations(rows), nil
}

func (r *stationRepository) GetByCoordinates(ctx context.Context, lat, lon float64, limit int) ([]domain.Station, error) {
	if limit <= 0 {
		limit = 1
	}
	query := `WITH nearest AS (
			SELECT DISTINCT ON (s.station_g_cd) ` + stationColumns + `,
				NULL::bigint AS type_id,
				NULL::bigint AS sst_id,
				NULL::bigint AS type_cd,
				NULL::bigint AS line_group_cd,
				NULL::bigint AS pass,
				NULL::text AS type_name,
				NULL::text AS type_name_k,
				NULL::text AS type_name_r,
				NULL::text AS type_name_zh,
				NULL::text AS type_name_ko,
				NULL::text AS color,
				NULL::bigint AS direction,
				NULL::bigint AS kind,
				NULL::bigint AS priority,
				point(s.lat, s.lon) <-> point($1, $2) AS distance
			FROM stations AS s
			JOIN lines AS l ON l.line_cd = s.line_cd AND l.e_status = 0
			LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
			LEFT JOIN aliases AS a ON a.id = la.alias_cd
			WHERE s.e_status = 0
			ORDER BY s.station_g_cd, distance
		)
		SELECT * FROM nearest
		ORDER BY distance
		LIMIT $3`

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, lat, lon, limit); err != nil {
		return nil, r.infra(err, "GetByCoordinates")
	}
	return toStations(rows), nil
}

func (r *stationRepository) GetByName(ctx context.Context, name string, limit int, fromGroupId *int64) ([]domain.Station, error) {
	if limit <= 0 {
		limit = 30
	}
	normalized := kana.NormalizeForSearch(name)
	pattern := "%" + normalized + "%"
	rawPattern := "%" + name + "%"

	var fromClause string
	args := []interface{}{pattern, rawPattern}
	if fromGroupId != nil {
		fromClause = `AND (
			EXISTS (
				SELECT 1 FROM station_station_types sst0
				JOIN stations sf ON sf.station_cd = sst0.station_cd
				WHERE sf.station_g_cd = $3 AND sst0.pass <> 1
					AND sst0.line_group_cd IN (
						SELECT sst1.line_group_cd FROM station_station_types sst1
						WHERE sst1.station_cd = s.station_cd AND sst1.pass <> 1
					)
			)
			OR s.line_cd IN (
				SELECT DISTINCT station_cd_lines.line_cd FROM stations station_cd_lines
				WHERE station_cd_lines.station_g_cd = $3
			)
		)`
		args = append(args, *fromGroupId)
	}
	args = append(args, limit)
	limitIdx := len(args)

	query := fmt.Sprintf(`WITH matches AS (
			SELECT DISTINCT ON (s.station_cd) `+stationColumns+`,
				NULL::bigint AS type_id,
				NULL::bigint AS sst_id,
				NULL::bigint AS type_cd,
				NULL::bigint AS line_group_cd,
				NULL::bigint AS pass,
				NULL::text AS type_name,
				NULL::text AS type_name_k,
				NULL::text AS type_name_r,
				NULL::text AS type_name_zh,
				NULL::text AS type_name_ko,
				NULL::text AS color,
				NULL::bigint AS direction,
				NULL::bigint AS kind,
				NULL::bigint AS priority
			FROM stations AS s
			JOIN lines AS l ON l.line_cd = s.line_cd AND l.e_status = 0
			LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
			LEFT JOIN aliases AS a ON a.id = la.alias_cd
			WHERE s.e_status = 0
				AND (s.station_name_k LIKE $1
					OR s.station_name LIKE $2
					OR s.station_name_r LIKE $2
					OR s.station_name_zh LIKE $2
					OR s.station_name_ko LIKE $2)
				%s
			ORDER BY s.station_cd
		)
		SELECT * FROM matches
		ORDER BY station_g_cd, station_name
		LIMIT $%d`, fromClause, limitIdx)

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, r.infra(err, "GetByName")
	}
	return toStations(rows), nil
}

func (r *stationRepository) GetByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.Station, error) {
	query := `SELECT ` + stationColumns + `,
			t.id AS type_id,
			sst.id AS sst_id,
			sst.type_cd,
			sst.line_group_cd,
			sst.pass,
			t.type_name,
			t.type_name_k,
			t.type_name_r,
			t.type_name_zh,
			t.type_name_ko,
			t.color,
			t.direction,
			t.kind,
			t.priority
		FROM stations AS s
		JOIN station_station_types AS sst ON sst.station_cd = s.station_cd AND sst.line_group_cd = $1
		JOIN types AS t ON t.type_cd = sst.type_cd
		JOIN lines AS l ON l.line_cd = s.line_cd AND l.e_status = 0
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE s.e_status = 0
		ORDER BY sst.id`

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, lineGroupId); err != nil {
		return nil, r.infra(err, "GetByLineGroupId")
	}
	return toStations(rows), nil
}

// GetRouteStops implements §4.2.2's two-query algorithm: common-line
// direct stops, then through-running stops via the line_group_cd
// intersection. viaLineId, when set, narrows both queries to a single
// line.
func (r *stationRepository) GetRouteStops(ctx context.Context, fromGroupId, toGroupId int64, viaLineId *int64) ([]domain.Station, error) {
	commonQuery := `WITH
		common_lines AS (
			SELECT DISTINCT s1.line_cd
			FROM stations s1
			WHERE s1.station_g_cd = $1
				AND s1.e_status = 0
				AND ($3::bigint IS NULL OR s1.line_cd = $3)
				AND EXISTS (
					SELECT 1 FROM stations s2
					WHERE s2.station_g_cd = $2 AND s2.e_status = 0 AND s2.line_cd = s1.line_cd
				)
		)
		SELECT ` + stationColumns + `,
			NULL::bigint AS type_id,
			NULL::bigint AS sst_id,
			NULL::bigint AS type_cd,
			NULL::bigint AS line_group_cd,
			NULL::bigint AS pass,
			NULL::text AS type_name,
			NULL::text AS type_name_k,
			NULL::text AS type_name_r,
			NULL::text AS type_name_zh,
			NULL::text AS type_name_ko,
			NULL::text AS color,
			NULL::bigint AS direction,
			NULL::bigint AS kind,
			NULL::bigint AS priority
		FROM stations AS s
		JOIN common_lines AS cl ON s.line_cd = cl.line_cd
		JOIN lines AS l ON l.line_cd = cl.line_cd AND l.e_status = 0
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE s.e_status = 0
		ORDER BY s.e_sort, s.station_cd`

	var viaArg interface{}
	if viaLineId != nil {
		viaArg = *viaLineId
	}

	var commonRows []stationRow
	if err := r.db.SelectContext(ctx, &commonRows, commonQuery, fromGroupId, toGroupId, viaArg); err != nil {
		return nil, r.infra(err, "GetRouteStops/commonLines")
	}

	throughQuery := `WITH
		from_cte AS (
			SELECT s.station_cd FROM stations s WHERE s.station_g_cd = $1 AND s.e_status = 0
		),
		to_cte AS (
			SELECT s.station_cd FROM stations s WHERE s.station_g_cd = $2 AND s.e_status = 0
		),
		sst_cte_c1 AS (
			SELECT sst.line_group_cd FROM station_station_types sst
			JOIN from_cte ON sst.station_cd = from_cte.station_cd
			WHERE sst.pass <> 1
		),
		sst_cte_c2 AS (
			SELECT sst.line_group_cd FROM station_station_types sst
			JOIN to_cte ON sst.station_cd = to_cte.station_cd
			WHERE sst.pass <> 1
		),
		sst_cte AS (
			SELECT sst.id, sst.station_cd, sst.type_cd, sst.line_group_cd, sst.pass
			FROM station_station_types sst
			JOIN sst_cte_c1 ON sst.line_group_cd = sst_cte_c1.line_group_cd
			JOIN sst_cte_c2 ON sst.line_group_cd = sst_cte_c2.line_group_cd
		)
		SELECT ` + stationColumns + `,
			t.id AS type_id,
			sst.id AS sst_id,
			sst.type_cd,
			sst.line_group_cd,
			sst.pass,
			t.type_name,
			t.type_name_k,
			t.type_name_r,
			t.type_name_zh,
			t.type_name_ko,
			t.color,
			t.direction,
			t.kind,
			t.priority
		FROM stations AS s
		JOIN sst_cte AS sst ON sst.station_cd = s.station_cd
		JOIN types AS t ON t.type_cd = sst.type_cd
		JOIN lines AS l ON l.line_cd = s.line_cd AND l.e_status = 0
		LEFT JOIN line_aliases AS la ON la.station_cd = s.station_cd
		LEFT JOIN aliases AS a ON a.id = la.alias_cd
		WHERE s.e_status = 0 AND ($3::bigint IS NULL OR s.line_cd = $3)
		ORDER BY sst.id`

	var throughRows []stationRow
	if err := r.db.SelectContext(ctx, &throughRows, throughQuery, fromGroupId, toGroupId, viaArg); err != nil {
		return nil, r.infra(err, "GetRouteStops/throughRunning")
	}

	all := make([]stationRow, 0, len(commonRows)+len(throughRows))
	all = append(all, commonRows...)
	all = append(all, throughRows...)
	return toStations(all), nil
}

func toStations(rows []stationRow) []domain.Station {
	out := make([]domain.Station, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
