package pb

import (
	"context"

	"google.golang.org/grpc"
)

// StationApiServer is the interface Component D implements. It mirrors
// the 13-method service described by proto/stationapi.proto.
type StationApiServer interface {
	GetStationById(context.Context, *GetStationByIdRequest) (*Station, error)
	GetStationByIdList(context.Context, *GetStationByIdListRequest) (*StationByIdListResponse, error)
	GetStationsByGroupId(context.Context, *GetStationsByGroupIdRequest) (*MultipleStationResponse, error)
	GetStationsByCoordinates(context.Context, *GetStationsByCoordinatesRequest) (*MultipleStationResponse, error)
	GetStationsByLineId(context.Context, *GetStationsByLineIdRequest) (*MultipleStationResponse, error)
	GetStationsByName(context.Context, *GetStationsByNameRequest) (*MultipleStationResponse, error)
	GetStationsByLineGroupId(context.Context, *GetStationsByLineGroupIdRequest) (*MultipleStationResponse, error)
	GetTrainTypesByStationId(context.Context, *GetTrainTypesByStationIdRequest) (*TrainTypeListResponse, error)
	GetRoutes(context.Context, *GetRoutesRequest) (*RouteListResponse, error)
	GetRouteTypes(context.Context, *GetRouteTypesRequest) (*RouteTypeListResponse, error)
	GetConnectedRoutes(context.Context, *GetConnectedRoutesRequest) (*ConnectedRoutesResponse, error)
	GetLineById(context.Context, *GetLineByIdRequest) (*Line, error)
	GetLinesByName(context.Context, *GetLinesByNameRequest) (*LineListResponse, error)
}

// UnimplementedStationApiServer embeds into delivery/grpc's handler so
// adding a new method to the interface never breaks older server builds.
type UnimplementedStationApiServer struct{}

func (UnimplementedStationApiServer) GetStationById(context.Context, *GetStationByIdRequest) (*Station, error) {
	return nil, errUnimplemented("GetStationById")
}
func (UnimplementedStationApiServer) GetStationByIdList(context.Context, *GetStationByIdListRequest) (*StationByIdListResponse, error) {
	return nil, errUnimplemented("GetStationByIdList")
}
func (UnimplementedStationApiServer) GetStationsByGroupId(context.Context, *GetStationsByGroupIdRequest) (*MultipleStationResponse, error) {
	return nil, errUnimplemented("GetStationsByGroupId")
}
func (UnimplementedStationApiServer) GetStationsByCoordinates(context.Context, *GetStationsByCoordinatesRequest) (*MultipleStationResponse, error) {
	return nil, errUnimplemented("GetStationsByCoordinates")
}
func (UnimplementedStationApiServer) GetStationsByLineId(context.Context, *GetStationsByLineIdRequest) (*MultipleStationResponse, error) {
	return nil, errUnimplemented("GetStationsByLineId")
}
func (UnimplementedStationApiServer) GetStationsByName(context.Context, *GetStationsByNameRequest) (*MultipleStationResponse, error) {
	return nil, errUnimplemented("GetStationsByName")
}
func (UnimplementedStationApiServer) GetStationsByLineGroupId(context.Context, *GetStationsByLineGroupIdRequest) (*MultipleStationResponse, error) {
	return nil, errUnimplemented("GetStationsByLineGroupId")
}
func (UnimplementedStationApiServer) GetTrainTypesByStationId(context.Context, *GetTrainTypesByStationIdRequest) (*TrainTypeListResponse, error) {
	return nil, errUnimplemented("GetTrainTypesByStationId")
}
func (UnimplementedStationApiServer) GetRoutes(context.Context, *GetRoutesRequest) (*RouteListResponse, error) {
	return nil, errUnimplemented("GetRoutes")
}
func (UnimplementedStationApiServer) GetRouteTypes(context.Context, *GetRouteTypesRequest) (*RouteTypeListResponse, error) {
	return nil, errUnimplemented("GetRouteTypes")
}
func (UnimplementedStationApiServer) GetConnectedRoutes(context.Context, *GetConnectedRoutesRequest) (*ConnectedRoutesResponse, error) {
	return nil, errUnimplemented("GetConnectedRoutes")
}
func (UnimplementedStationApiServer) GetLineById(context.Context, *GetLineByIdRequest) (*Line, error) {
	return nil, errUnimplemented("GetLineById")
}
func (UnimplementedStationApiServer) GetLinesByName(context.Context, *GetLinesByNameRequest) (*LineListResponse, error) {
	return nil, errUnimplemented("GetLinesByName")
}

func errUnimplemented(method string) error {
	return &unimplementedError{method: method}
}

type unimplementedError struct{ method string }

func (e *unimplementedError) Error() string { return "pb: method " + e.method + " not implemented" }

func RegisterStationApiServer(s grpc.ServiceRegistrar, srv StationApiServer) {
	s.RegisterService(&stationApiServiceDesc, srv)
}

func stationApiHandler(methodName string, newRequest func() interface{}, call func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: methodName,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			req := newRequest()
			if err := dec(req); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, req)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/app.trainlcd.grpc.StationApi/" + methodName,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv, ctx, req)
			}
			return interceptor(ctx, req, info, handler)
		},
	}
}

var stationApiServiceDesc = grpc.ServiceDesc{
	ServiceName: "app.trainlcd.grpc.StationApi",
	HandlerType: (*StationApiServer)(nil),
	Methods: []grpc.MethodDesc{
		stationApiHandler("GetStationById",
			func() interface{} { return new(GetStationByIdRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetStationById(ctx, req.(*GetStationByIdRequest))
			}),
		stationApiHandler("GetStationByIdList",
			func() interface{} { return new(GetStationByIdListRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetStationByIdList(ctx, req.(*GetStationByIdListRequest))
			}),
		stationApiHandler("GetStationsByGroupId",
			func() interface{} { return new(GetStationsByGroupIdRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetStationsByGroupId(ctx, req.(*GetStationsByGroupIdRequest))
			}),
		stationApiHandler("GetStationsByCoordinates",
			func() interface{} { return new(GetStationsByCoordinatesRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetStationsByCoordinates(ctx, req.(*GetStationsByCoordinatesRequest))
			}),
		stationApiHandler("GetStationsByLineId",
			func() interface{} { return new(GetStationsByLineIdRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetStationsByLineId(ctx, req.(*GetStationsByLineIdRequest))
			}),
		stationApiHandler("GetStationsByName",
			func() interface{} { return new(GetStationsByNameRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetStationsByName(ctx, req.(*GetStationsByNameRequest))
			}),
		stationApiHandler("GetStationsByLineGroupId",
			func() interface{} { return new(GetStationsByLineGroupIdRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetStationsByLineGroupId(ctx, req.(*GetStationsByLineGroupIdRequest))
			}),
		stationApiHandler("GetTrainTypesByStationId",
			func() interface{} { return new(GetTrainTypesByStationIdRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetTrainTypesByStationId(ctx, req.(*GetTrainTypesByStationIdRequest))
			}),
		stationApiHandler("GetRoutes",
			func() interface{} { return new(GetRoutesRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetRoutes(ctx, req.(*GetRoutesRequest))
			}),
		stationApiHandler("GetRouteTypes",
			func() interface{} { return new(GetRouteTypesRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetRouteTypes(ctx, req.(*GetRouteTypesRequest))
			}),
		stationApiHandler("GetConnectedRoutes",
			func() interface{} { return new(GetConnectedRoutesRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetConnectedRoutes(ctx, req.(*GetConnectedRoutesRequest))
			}),
		stationApiHandler("GetLineById",
			func() interface{} { return new(GetLineByIdRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetLineById(ctx, req.(*GetLineByIdRequest))
			}),
		stationApiHandler("GetLinesByName",
			func() interface{} { return new(GetLinesByNameRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(StationApiServer).GetLinesByName(ctx, req.(*GetLinesByNameRequest))
			}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/stationapi.proto",
}
