// Package grpc is Component D: a thin adapter translating pb requests
// into usecase calls and usecase results back into pb responses.
// Errors are returned as-is — apperr.AppError implements GRPCStatus(),
// so grpc-go's status.FromError recognises NotFound/Infrastructure/
// Unexpected without any translation table here.
package grpc

import (
	"context"

	"go.uber.org/zap"

	"github.com/trainlcd/stationapi/internal/pb"
	"github.com/trainlcd/stationapi/internal/usecase"
)

type StationApiHandler struct {
	pb.UnimplementedStationApiServer
	interactor *usecase.QueryInteractor
	logger     *zap.Logger
}

func NewStationApiHandler(interactor *usecase.QueryInteractor, logger *zap.Logger) *StationApiHandler {
	return &StationApiHandler{interactor: interactor, logger: logger}
}

func (h *StationApiHandler) GetStationById(ctx context.Context, req *pb.GetStationByIdRequest) (*pb.Station, error) {
	station, err := h.interactor.GetStationById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return mapStation(station), nil
}

func (h *StationApiHandler) GetStationByIdList(ctx context.Context, req *pb.GetStationByIdListRequest) (*pb.StationByIdListResponse, error) {
	stations, err := h.interactor.GetStationByIdList(ctx, req.Ids)
	if err != nil {
		return nil, err
	}
	return &pb.StationByIdListResponse{Stations: mapStations(stations)}, nil
}

func (h *StationApiHandler) GetStationsByGroupId(ctx context.Context, req *pb.GetStationsByGroupIdRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.interactor.GetStationsByGroupId(ctx, req.GroupId)
	if err != nil {
		return nil, err
	}
	return &pb.MultipleStationResponse{Stations: mapStations(stations)}, nil
}

func (h *StationApiHandler) GetStationsByCoordinates(ctx context.Context, req *pb.GetStationsByCoordinatesRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.interactor.GetStationsByCoordinates(ctx, req.Latitude, req.Longitude, int(req.Limit))
	if err != nil {
		return nil, err
	}
	return &pb.MultipleStationResponse{Stations: mapStations(stations)}, nil
}

func (h *StationApiHandler) GetStationsByLineId(ctx context.Context, req *pb.GetStationsByLineIdRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.interactor.GetStationsByLineId(ctx, req.LineId, req.StationId, req.DirectionId)
	if err != nil {
		return nil, err
	}
	return &pb.MultipleStationResponse{Stations: mapStations(stations)}, nil
}

func (h *StationApiHandler) GetStationsByName(ctx context.Context, req *pb.GetStationsByNameRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.interactor.GetStationsByName(ctx, req.StationName, int(req.Limit), req.FromStationGroupId)
	if err != nil {
		return nil, err
	}
	return &pb.MultipleStationResponse{Stations: mapStations(stations)}, nil
}

func (h *StationApiHandler) GetStationsByLineGroupId(ctx context.Context, req *pb.GetStationsByLineGroupIdRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.interactor.GetStationsByLineGroupId(ctx, req.LineGroupId)
	if err != nil {
		return nil, err
	}
	return &pb.MultipleStationResponse{Stations: mapStations(stations)}, nil
}

func (h *StationApiHandler) GetTrainTypesByStationId(ctx context.Context, req *pb.GetTrainTypesByStationIdRequest) (*pb.TrainTypeListResponse, error) {
	types, err := h.interactor.GetTrainTypesByStationId(ctx, req.StationId)
	if err != nil {
		return nil, err
	}
	return &pb.TrainTypeListResponse{TrainTypes: mapTrainTypes(types)}, nil
}

func (h *StationApiHandler) GetRoutes(ctx context.Context, req *pb.GetRoutesRequest) (*pb.RouteListResponse, error) {
	routes, err := h.interactor.GetRoutes(ctx, req.FromStationGroupId, req.ToStationGroupId)
	if err != nil {
		return nil, err
	}
	return &pb.RouteListResponse{Routes: mapRoutes(routes)}, nil
}

func (h *StationApiHandler) GetRouteTypes(ctx context.Context, req *pb.GetRouteTypesRequest) (*pb.RouteTypeListResponse, error) {
	types, err := h.interactor.GetRouteTypes(ctx, req.FromStationGroupId, req.ToStationGroupId)
	if err != nil {
		return nil, err
	}
	return &pb.RouteTypeListResponse{TrainTypes: mapTrainTypes(types)}, nil
}

func (h *StationApiHandler) GetConnectedRoutes(ctx context.Context, req *pb.GetConnectedRoutesRequest) (*pb.ConnectedRoutesResponse, error) {
	routes, err := h.interactor.GetConnectedRoutes(ctx, req.FromStationGroupId, req.ToStationGroupId)
	if err != nil {
		return nil, err
	}
	return &pb.ConnectedRoutesResponse{Routes: mapRoutes(routes)}, nil
}

func (h *StationApiHandler) GetLineById(ctx context.Context, req *pb.GetLineByIdRequest) (*pb.Line, error) {
	line, err := h.interactor.GetLineById(ctx, req.LineId)
	if err != nil {
		return nil, err
	}
	return mapLine(line), nil
}

func (h *StationApiHandler) GetLinesByName(ctx context.Context, req *pb.GetLinesByNameRequest) (*pb.LineListResponse, error) {
	lines, err := h.interactor.GetLinesByName(ctx, req.LineName, int(req.Limit))
	if err != nil {
		return nil, err
	}
	return &pb.LineListResponse{Lines: mapLines(lines)}, nil
}
