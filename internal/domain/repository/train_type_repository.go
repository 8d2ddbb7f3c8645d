package repository

import (
	"context"

	"github.com/trainlcd/stationapi/internal/domain"
)

type TrainTypeRepository interface {
	GetByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.TrainType, error)

	GetByStationId(ctx context.Context, stationCd int64) ([]domain.TrainType, error)

	FindByLineGroupIdAndLineId(ctx context.Context, lineGroupId, lineId int64) (*domain.TrainType, error)

	// GetByStationIdVec selects from station_station_types ⋈ types
	// where s.e_status = 0 and pass <> 1 (unless priority > 0), ordered
	// by (priority DESC, sst.id). lineGroupId narrows the result to a
	// single through-running service when set.
	GetByStationIdVec(ctx context.Context, stationIds []int64, lineGroupId *int64) ([]domain.TrainType, error)

	GetByLineGroupIdVec(ctx context.Context, lineGroupIds []int64) ([]domain.TrainType, error)
}
