package repository

import (
	"context"

	"github.com/trainlcd/stationapi/internal/domain"
)

// StationRepository exposes single-round-trip reads over the stations
// table (joined to lines, aliases and station_station_types as needed).
// Absence of a row is represented by a nil pointer or an empty slice,
// never by an error; only transport/database failures return an error.
type StationRepository interface {
	FindById(ctx context.Context, stationCd int64) (*domain.Station, error)

	// GetByIdVec returns at most one Station per id in ids, in the same
	// order as ids (not storage order). Ids that don't resolve are
	// simply absent from the result.
	GetByIdVec(ctx context.Context, ids []int64) ([]domain.Station, error)

	GetByLineId(ctx context.Context, lineId int64, fromStationId *int64, directionId *int64) ([]domain.Station, error)

	GetByStationGroupId(ctx context.Context, groupId int64) ([]domain.Station, error)

	GetByStationGroupIdVec(ctx context.Context, groupIds []int64) ([]domain.Station, error)

	GetByCoordinates(ctx context.Context, lat, lon float64, limit int) ([]domain.Station, error)

	GetByName(ctx context.Context, name string, limit int, fromGroupId *int64) ([]domain.Station, error)

	GetByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.Station, error)

	// GetRouteStops implements the two-query route algorithm described
	// in §4.2.2: common-line direct stops plus through-running stops
	// via the line_group_cd intersection. viaLineId, when set, narrows
	// both queries to stops on that single line.
	GetRouteStops(ctx context.Context, fromGroupId, toGroupId int64, viaLineId *int64) ([]domain.Station, error)
}
