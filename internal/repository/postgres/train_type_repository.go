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
)

type trainTypeRow struct {
	ID          int64          `db:"id"`
	StationCd   int64          `db:"station_cd"`
	TypeCd      int64          `db:"type_cd"`
	LineGroupCd int64          `db:"line_group_cd"`
	Pass        int64          `db:"pass"`
	TypeName    string         `db:"type_name"`
	TypeNameK   string         `db:"type_name_k"`
	TypeNameR   sql.NullString `db:"type_name_r"`
	TypeNameZh  sql.NullString `db:"type_name_zh"`
	TypeNameKo  sql.NullString `db:"type_name_ko"`
	Color       string         `db:"color"`
	Direction   int64          `db:"direction"`
	Kind        int64          `db:"kind"`
	Priority    int64          `db:"priority"`
}

func (r trainTypeRow) toDomain() domain.TrainType {
	return domain.TrainType{
		ID:          r.ID,
		StationCd:   r.StationCd,
		TypeCd:      r.TypeCd,
		LineGroupCd: r.LineGroupCd,
		Pass:        r.Pass,
		TypeName:    r.TypeName,
		TypeNameK:   r.TypeNameK,
		TypeNameR:   nullStr(r.TypeNameR),
		TypeNameZh:  nullStr(r.TypeNameZh),
		TypeNameKo:  nullStr(r.TypeNameKo),
		Color:       r.Color,
		Direction:   r.Direction,
		Kind:        r.Kind,
		Priority:    r.Priority,
	}
}

const trainTypeColumns = `
	sst.id,
	sst.station_cd,
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
	t.priority`

type trainTypeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTrainTypeRepository(db *DB, logger *zap.Logger) *trainTypeRepository {
	return &trainTypeRepository{db: db, logger: logger}
}

func (r *trainTypeRepository) infra(err error, op string) error {
	r.logger.Error("train type repository query failed", zap.String("op", op), zap.Error(err))
	return apperr.Infrastructuref(err, "train type repository: %s", op)
}

func (r *trainTypeRepository) GetByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.TrainType, error) {
	query := `SELECT ` + trainTypeColumns + `
		FROM station_station_types AS sst
		JOIN types AS t ON t.type_cd = sst.type_cd
		JOIN stations AS s ON s.station_cd = sst.station_cd AND s.e_status = 0
		WHERE sst.line_group_cd = $1
		ORDER BY t.priority DESC, sst.id`

	var rows []trainTypeRow
	if err := r.db.SelectContext(ctx, &rows, query, lineGroupId); err != nil {
		return nil, r.infra(err, "GetByLineGroupId")
	}
	return toTrainTypes(rows), nil
}

// GetByStationId returns every service pattern passing through a given
// station. A stop marked pass = 1 (does not stop) is excluded unless
// its type carries priority > 0 — a through-running limited express can
// list a non-stop segment as a notable pattern even though it skips
// the platform.
func (r *trainTypeRepository) GetByStationId(ctx context.Context, stationCd int64) ([]domain.TrainType, error) {
	query := `SELECT ` + trainTypeColumns + `
		FROM station_station_types AS sst
		JOIN types AS t ON t.type_cd = sst.type_cd
		WHERE sst.station_cd = $1 AND (sst.pass <> 1 OR t.priority > 0)
		ORDER BY t.priority DESC, sst.id`

	var rows []trainTypeRow
	if err := r.db.SelectContext(ctx, &rows, query, stationCd); err != nil {
		return nil, r.infra(err, "GetByStationId")
	}
	return toTrainTypes(rows), nil
}

func (r *trainTypeRepository) FindByLineGroupIdAndLineId(ctx context.Context, lineGroupId, lineId int64) (*domain.TrainType, error) {
	query := `SELECT ` + trainTypeColumns + `
		FROM station_station_types AS sst
		JOIN types AS t ON t.type_cd = sst.type_cd
		JOIN stations AS s ON s.station_cd = sst.station_cd AND s.line_cd = $2
		WHERE sst.line_group_cd = $1
		ORDER BY t.priority DESC, sst.id
		LIMIT 1`

	var row trainTypeRow
	err := r.db.GetContext(ctx, &row, query, lineGroupId, lineId)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.infra(err, "FindByLineGroupIdAndLineId")
	}
	tt := row.toDomain()
	return &tt, nil
}

// GetByStationIdVec is one of the 4 reads enrich() is contractually
// allowed, regardless of how many stations it is asked about. lineGroupId
// narrows every station down to the single through-running pattern the
// caller is already filtering stations by.
func (r *trainTypeRepository) GetByStationIdVec(ctx context.Context, stationIds []int64, lineGroupId *int64) ([]domain.TrainType, error) {
	if len(stationIds) == 0 {
		return nil, nil
	}

	var b strings.Builder
	b.WriteString(`SELECT `)
	b.WriteString(trainTypeColumns)
	b.WriteString(`
		FROM station_station_types AS sst
		JOIN types AS t ON t.type_cd = sst.type_cd
		JOIN stations AS s ON s.station_cd = sst.station_cd AND s.e_status = 0
		WHERE sst.station_cd = ANY($1) AND (sst.pass <> 1 OR t.priority > 0)`)

	args := []interface{}{pq.Array(stationIds)}
	if lineGroupId != nil {
		args = append(args, *lineGroupId)
		fmt.Fprintf(&b, " AND sst.line_group_cd = $%d", len(args))
	}
	b.WriteString(` ORDER BY t.priority DESC, sst.id`)

	var rows []trainTypeRow
	if err := r.db.SelectContext(ctx, &rows, b.String(), args...); err != nil {
		return nil, r.infra(err, "GetByStationIdVec")
	}
	return toTrainTypes(rows), nil
}

func (r *trainTypeRepository) GetByLineGroupIdVec(ctx context.Context, lineGroupIds []int64) ([]domain.TrainType, error) {
	if len(lineGroupIds) == 0 {
		return nil, nil
	}
	query := `SELECT ` + trainTypeColumns + `
		FROM station_station_types AS sst
		JOIN types AS t ON t.type_cd = sst.type_cd
		WHERE sst.line_group_cd = ANY($1)
		ORDER BY t.priority DESC, sst.id`

	var rows []trainTypeRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(lineGroupIds)); err != nil {
		return nil, r.infra(err, "GetByLineGroupIdVec")
	}
	return toTrainTypes(rows), nil
}

func toTrainTypes(rows []trainTypeRow) []domain.TrainType {
	out := make([]domain.TrainType, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
