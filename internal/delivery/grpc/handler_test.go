package grpc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/trainlcd/stationapi/internal/delivery/grpc"
	"github.com/trainlcd/stationapi/internal/domain"
	"github.com/trainlcd/stationapi/internal/domain/repository"
	"github.com/trainlcd/stationapi/internal/pb"
	"github.com/trainlcd/stationapi/internal/usecase"
)

type stubStationRepo struct {
	repository.StationRepository
	station *domain.Station
}

func (s *stubStationRepo) FindById(ctx context.Context, id int64) (*domain.Station, error) {
	return s.station, nil
}

func (s *stubStationRepo) GetByStationGroupIdVec(ctx context.Context, groupIds []int64) ([]domain.Station, error) {
	if s.station == nil {
		return nil, nil
	}
	return []domain.Station{*s.station}, nil
}

type stubLineRepo struct{ repository.LineRepository }

func (stubLineRepo) GetByStationGroupIdVec(ctx context.Context, groupIds []int64) ([]domain.Line, error) {
	return nil, nil
}

type stubCompanyRepo struct{ repository.CompanyRepository }

func (stubCompanyRepo) FindByIdVec(ctx context.Context, ids []int64) ([]domain.Company, error) {
	return nil, nil
}

type stubTrainTypeRepo struct{ repository.TrainTypeRepository }

func (stubTrainTypeRepo) GetByStationIdVec(ctx context.Context, ids []int64, lgid *int64) ([]domain.TrainType, error) {
	return nil, nil
}

func TestStationApiHandler_GetStationById(t *testing.T) {
	logger := zap.NewNop()

	t.Run("missing station maps to NotFound status", func(t *testing.T) {
		interactor := usecase.NewQueryInteractor(&stubStationRepo{}, stubLineRepo{}, stubCompanyRepo{}, stubTrainTypeRepo{}, logger)
		h := grpc.NewStationApiHandler(interactor, logger)

		_, err := h.GetStationById(context.Background(), &pb.GetStationByIdRequest{Id: 0})

		st, ok := status.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, codes.NotFound, st.Code())
	})

	t.Run("found station maps fields", func(t *testing.T) {
		station := &domain.Station{StationCd: 1130208, StationGCd: 1130208, StationName: "渋谷", LineCd: 11302}
		interactor := usecase.NewQueryInteractor(&stubStationRepo{station: station}, stubLineRepo{}, stubCompanyRepo{}, stubTrainTypeRepo{}, logger)
		h := grpc.NewStationApiHandler(interactor, logger)

		resp, err := h.GetStationById(context.Background(), &pb.GetStationByIdRequest{Id: 1130208})

		assert.NoError(t, err)
		assert.Equal(t, int64(1130208), resp.GroupId)
		assert.Equal(t, int64(11302), resp.Line.Id)
	})
}
