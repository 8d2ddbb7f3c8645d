package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trainlcd/stationapi/internal/domain"
)

type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) FindById(ctx context.Context, stationCd int64) (*domain.Station, error) {
	args := m.Called(ctx, stationCd)
	s, _ := args.Get(0).(*domain.Station)
	return s, args.Error(1)
}

func (m *MockStationRepository) GetByIdVec(ctx context.Context, ids []int64) ([]domain.Station, error) {
	args := m.Called(ctx, ids)
	s, _ := args.Get(0).([]domain.Station)
	return s, args.Error(1)
}

func (m *MockStationRepository) GetByLineId(ctx context.Context, lineId int64, fromStationId, directionId *int64) ([]domain.Station, error) {
	args := m.Called(ctx, lineId, fromStationId, directionId)
	s, _ := args.Get(0).([]domain.Station)
	return s, args.Error(1)
}

func (m *MockStationRepository) GetByStationGroupId(ctx context.Context, groupId int64) ([]domain.Station, error) {
	args := m.Called(ctx, groupId)
	s, _ := args.Get(0).([]domain.Station)
	return s, args.Error(1)
}

func (m *MockStationRepository) GetByStationGroupIdVec(ctx context.Context, groupIds []int64) ([]domain.Station, error) {
	args := m.Called(ctx, groupIds)
	s, _ := args.Get(0).([]domain.Station)
	return s, args.Error(1)
}

func (m *MockStationRepository) GetByCoordinates(ctx context.Context, lat, lon float64, limit int) ([]domain.Station, error) {
	args := m.Called(ctx, lat, lon, limit)
	s, _ := args.Get(0).([]domain.Station)
	return s, args.Error(1)
}

func (m *MockStationRepository) GetByName(ctx context.Context, name string, limit int, fromGroupId *int64) ([]domain.Station, error) {
	args := m.Called(ctx, name, limit, fromGroupId)
	s, _ := args.Get(0).([]domain.Station)
	return s, args.Error(1)
}

func (m *MockStationRepository) GetByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.Station, error) {
	args := m.Called(ctx, lineGroupId)
	s, _ := args.Get(0).([]domain.Station)
	return s, args.Error(1)
}

func (m *MockStationRepository) GetRouteStops(ctx context.Context, fromGroupId, toGroupId int64, viaLineId *int64) ([]domain.Station, error) {
	args := m.Called(ctx, fromGroupId, toGroupId, viaLineId)
	s, _ := args.Get(0).([]domain.Station)
	return s, args.Error(1)
}

type MockLineRepository struct {
	mock.Mock
}

func (m *MockLineRepository) FindById(ctx context.Context, lineId int64) (*domain.Line, error) {
	args := m.Called(ctx, lineId)
	l, _ := args.Get(0).(*domain.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) GetByIds(ctx context.Context, lineIds []int64) ([]domain.Line, error) {
	args := m.Called(ctx, lineIds)
	l, _ := args.Get(0).([]domain.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) FindByStationId(ctx context.Context, stationCd int64) (*domain.Line, error) {
	args := m.Called(ctx, stationCd)
	l, _ := args.Get(0).(*domain.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) GetByStationGroupId(ctx context.Context, groupId int64) ([]domain.Line, error) {
	args := m.Called(ctx, groupId)
	l, _ := args.Get(0).([]domain.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) GetByStationGroupIdVec(ctx context.Context, groupIds []int64) ([]domain.Line, error) {
	args := m.Called(ctx, groupIds)
	l, _ := args.Get(0).([]domain.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) GetByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.Line, error) {
	args := m.Called(ctx, lineGroupId)
	l, _ := args.Get(0).([]domain.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) GetByLineGroupIdVec(ctx context.Context, lineGroupIds []int64) ([]domain.Line, error) {
	args := m.Called(ctx, lineGroupIds)
	l, _ := args.Get(0).([]domain.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) GetByLineGroupIdVecForRoutes(ctx context.Context, lineGroupIds []int64) ([]domain.Line, error) {
	args := m.Called(ctx, lineGroupIds)
	l, _ := args.Get(0).([]domain.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) GetByName(ctx context.Context, name string, limit int) ([]domain.Line, error) {
	args := m.Called(ctx, name, limit)
	l, _ := args.Get(0).([]domain.Line)
	return l, args.Error(1)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByIdVec(ctx context.Context, companyIds []int64) ([]domain.Company, error) {
	args := m.Called(ctx, companyIds)
	c, _ := args.Get(0).([]domain.Company)
	return c, args.Error(1)
}

type MockTrainTypeRepository struct {
	mock.Mock
}

func (m *MockTrainTypeRepository) GetByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.TrainType, error) {
	args := m.Called(ctx, lineGroupId)
	t, _ := args.Get(0).([]domain.TrainType)
	return t, args.Error(1)
}

func (m *MockTrainTypeRepository) GetByStationId(ctx context.Context, stationCd int64) ([]domain.TrainType, error) {
	args := m.Called(ctx, stationCd)
	t, _ := args.Get(0).([]domain.TrainType)
	return t, args.Error(1)
}

func (m *MockTrainTypeRepository) FindByLineGroupIdAndLineId(ctx context.Context, lineGroupId, lineId int64) (*domain.TrainType, error) {
	args := m.Called(ctx, lineGroupId, lineId)
	t, _ := args.Get(0).(*domain.TrainType)
	return t, args.Error(1)
}

func (m *MockTrainTypeRepository) GetByStationIdVec(ctx context.Context, stationIds []int64, lineGroupId *int64) ([]domain.TrainType, error) {
	args := m.Called(ctx, stationIds, lineGroupId)
	t, _ := args.Get(0).([]domain.TrainType)
	return t, args.Error(1)
}

func (m *MockTrainTypeRepository) GetByLineGroupIdVec(ctx context.Context, lineGroupIds []int64) ([]domain.TrainType, error) {
	args := m.Called(ctx, lineGroupIds)
	t, _ := args.Get(0).([]domain.TrainType)
	return t, args.Error(1)
}
