package repository

import (
	"context"

	"github.com/trainlcd/stationapi/internal/domain"
)

// LineRepository reads from the lines table. Every method applies the
// line_aliases/aliases COALESCE so name and colour columns already
// reflect any group-scoped override by the time a Line reaches the
// caller.
type LineRepository interface {
	FindById(ctx context.Context, lineId int64) (*domain.Line, error)

	GetByIds(ctx context.Context, lineIds []int64) ([]domain.Line, error)

	FindByStationId(ctx context.Context, stationCd int64) (*domain.Line, error)

	GetByStationGroupId(ctx context.Context, groupId int64) ([]domain.Line, error)

	GetByStationGroupIdVec(ctx context.Context, groupIds []int64) ([]domain.Line, error)

	GetByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.Line, error)

	GetByLineGroupIdVec(ctx context.Context, lineGroupIds []int64) ([]domain.Line, error)

	// GetByLineGroupIdVecForRoutes is identical to GetByLineGroupIdVec
	// but uses LEFT JOINs so that lines with no active sst row still
	// surface; GetRouteTypes needs every member line even when one of
	// them currently stops nowhere.
	GetByLineGroupIdVecForRoutes(ctx context.Context, lineGroupIds []int64) ([]domain.Line, error)

	GetByName(ctx context.Context, name string, limit int) ([]domain.Line, error)
}
