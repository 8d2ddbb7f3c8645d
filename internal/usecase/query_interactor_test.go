package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/trainlcd/stationapi/internal/domain"
	"github.com/trainlcd/stationapi/internal/pkg/apperr"
	"github.com/trainlcd/stationapi/internal/usecase"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func shibuyaFixture() domain.Station {
	return domain.Station{
		StationCd:       1130208,
		StationGCd:      1130208,
		StationName:     "渋谷",
		StationNameK:    "シブヤ",
		StationNumber1:  strPtr("20"),
		LineCd:          11302,
		PrefCd:          13,
		Lon:             139.701636,
		Lat:             35.658034,
		CompanyCd:       intPtr(2),
		LineName:        strPtr("山手線"),
		LineNameK:       strPtr("ヤマノテセン"),
		LineNameH:       strPtr("やまのてせん"),
		LineColorC:      strPtr("#9ACD32"),
		LineSymbol1:     strPtr("JY"),
		LineSymbol1Color: strPtr("#9ACD32"),
		LineSymbol1Shape: strPtr("round"),
		Pass:            intPtr(0),
	}
}

func TestQueryInteractor_GetStationById(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("found station is enriched", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		lineRepo := &MockLineRepository{}
		companyRepo := &MockCompanyRepository{}
		trainTypeRepo := &MockTrainTypeRepository{}

		station := shibuyaFixture()

		stationRepo.On("FindById", ctx, int64(1130208)).Return(&station, nil)
		stationRepo.On("GetByStationGroupIdVec", ctx, []int64{int64(1130208)}).Return([]domain.Station{station}, nil)
		lineRepo.On("GetByStationGroupIdVec", ctx, []int64{int64(1130208)}).Return([]domain.Line{}, nil)
		companyRepo.On("FindByIdVec", ctx, []int64{}).Return([]domain.Company{}, nil)
		trainTypeRepo.On("GetByStationIdVec", ctx, []int64{int64(1130208)}, (*int64)(nil)).Return([]domain.TrainType{}, nil)

		uc := usecase.NewQueryInteractor(stationRepo, lineRepo, companyRepo, trainTypeRepo, logger)

		got, err := uc.GetStationById(ctx, 1130208)

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, int64(1130208), got.StationGCd)
		assert.Equal(t, int64(11302), got.Line.LineCd)
		assert.Equal(t, domain.StopConditionAll, got.StopCondition)
		assert.Len(t, got.StationNumbers, 1)
		assert.Equal(t, "JY-20", got.StationNumbers[0].StationNumber)

		stationRepo.AssertExpectations(t)
		lineRepo.AssertExpectations(t)
		companyRepo.AssertExpectations(t)
		trainTypeRepo.AssertExpectations(t)
	})

	t.Run("first train type wins when a station has several, ordered by priority DESC", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		lineRepo := &MockLineRepository{}
		companyRepo := &MockCompanyRepository{}
		trainTypeRepo := &MockTrainTypeRepository{}

		station := shibuyaFixture()

		// GetByStationIdVec is documented (train_type_repository.go) to
		// return rows ordered priority DESC, sst.id — the dominant
		// (highest-priority) train type must be the one enrich() keeps.
		dominant := domain.TrainType{ID: 1, StationCd: station.StationCd, TypeCd: 1, TypeName: "急行"}
		secondary := domain.TrainType{ID: 2, StationCd: station.StationCd, TypeCd: 2, TypeName: "各駅停車"}

		stationRepo.On("FindById", ctx, int64(1130208)).Return(&station, nil)
		stationRepo.On("GetByStationGroupIdVec", ctx, []int64{int64(1130208)}).Return([]domain.Station{station}, nil)
		lineRepo.On("GetByStationGroupIdVec", ctx, []int64{int64(1130208)}).Return([]domain.Line{}, nil)
		companyRepo.On("FindByIdVec", ctx, []int64{}).Return([]domain.Company{}, nil)
		trainTypeRepo.On("GetByStationIdVec", ctx, []int64{int64(1130208)}, (*int64)(nil)).
			Return([]domain.TrainType{dominant, secondary}, nil)

		uc := usecase.NewQueryInteractor(stationRepo, lineRepo, companyRepo, trainTypeRepo, logger)

		got, err := uc.GetStationById(ctx, 1130208)

		assert.NoError(t, err)
		if assert.NotNil(t, got.TrainType) {
			assert.Equal(t, "急行", got.TrainType.TypeName)
		}
	})

	t.Run("missing station is NotFound", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		lineRepo := &MockLineRepository{}
		companyRepo := &MockCompanyRepository{}
		trainTypeRepo := &MockTrainTypeRepository{}

		stationRepo.On("FindById", ctx, int64(0)).Return(nil, nil)

		uc := usecase.NewQueryInteractor(stationRepo, lineRepo, companyRepo, trainTypeRepo, logger)

		got, err := uc.GetStationById(ctx, 0)

		assert.Nil(t, got)
		assert.True(t, apperr.IsNotFound(err))
		stationRepo.AssertExpectations(t)
	})
}

func TestQueryInteractor_GetRoutes(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("discards groups without either endpoint", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		lineRepo := &MockLineRepository{}
		companyRepo := &MockCompanyRepository{}
		trainTypeRepo := &MockTrainTypeRepository{}

		from := int64(100)
		to := int64(200)

		kept := domain.Station{StationCd: 1, StationGCd: from, LineCd: 5, LineGroupCd: intPtr(9)}
		keptOther := domain.Station{StationCd: 2, StationGCd: to, LineCd: 5, LineGroupCd: intPtr(9)}
		unrelated := domain.Station{StationCd: 3, StationGCd: 300, LineCd: 6, LineGroupCd: intPtr(42)}

		rows := []domain.Station{kept, keptOther, unrelated}

		stationRepo.On("GetRouteStops", ctx, from, to, (*int64)(nil)).Return(rows, nil)
		stationRepo.On("GetByStationGroupIdVec", ctx, mock.Anything).Return(rows, nil)
		lineRepo.On("GetByStationGroupIdVec", ctx, mock.Anything).Return([]domain.Line{}, nil)
		companyRepo.On("FindByIdVec", ctx, mock.Anything).Return([]domain.Company{}, nil)
		trainTypeRepo.On("GetByStationIdVec", ctx, mock.Anything, (*int64)(nil)).Return([]domain.TrainType{}, nil)

		uc := usecase.NewQueryInteractor(stationRepo, lineRepo, companyRepo, trainTypeRepo, logger)

		routes, err := uc.GetRoutes(ctx, from, to)

		assert.NoError(t, err)
		assert.Len(t, routes, 1)
		assert.Len(t, routes[0].Stops, 2)
	})
}

func TestQueryInteractor_GetConnectedRoutes(t *testing.T) {
	uc := usecase.NewQueryInteractor(&MockStationRepository{}, &MockLineRepository{}, &MockCompanyRepository{}, &MockTrainTypeRepository{}, zap.NewNop())

	routes, err := uc.GetConnectedRoutes(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Empty(t, routes)
}
