package pb

import "fmt"

type GetStationByIdRequest struct {
	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetStationByIdRequest) Reset()         { *m = GetStationByIdRequest{} }
func (m *GetStationByIdRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetStationByIdRequest) ProtoMessage()    {}

type GetStationByIdListRequest struct {
	Ids []int64 `protobuf:"varint,1,rep,packed,name=ids,proto3" json:"ids,omitempty"`
}

func (m *GetStationByIdListRequest) Reset()         { *m = GetStationByIdListRequest{} }
func (m *GetStationByIdListRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetStationByIdListRequest) ProtoMessage()    {}

type StationByIdListResponse struct {
	Stations []*Station `protobuf:"bytes,1,rep,name=stations,proto3" json:"stations,omitempty"`
}

func (m *StationByIdListResponse) Reset()         { *m = StationByIdListResponse{} }
func (m *StationByIdListResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StationByIdListResponse) ProtoMessage()    {}

type GetStationsByGroupIdRequest struct {
	GroupId int64 `protobuf:"varint,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
}

func (m *GetStationsByGroupIdRequest) Reset()         { *m = GetStationsByGroupIdRequest{} }
func (m *GetStationsByGroupIdRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetStationsByGroupIdRequest) ProtoMessage()    {}

type GetStationsByCoordinatesRequest struct {
	Latitude  float64 `protobuf:"fixed64,1,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude float64 `protobuf:"fixed64,2,opt,name=longitude,proto3" json:"longitude,omitempty"`
	Limit     int32   `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *GetStationsByCoordinatesRequest) Reset()         { *m = GetStationsByCoordinatesRequest{} }
func (m *GetStationsByCoordinatesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetStationsByCoordinatesRequest) ProtoMessage()    {}

type GetStationsByLineIdRequest struct {
	LineId      int64  `protobuf:"varint,1,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
	StationId   *int64 `protobuf:"varint,2,opt,name=station_id,json=stationId,proto3,oneof" json:"station_id,omitempty"`
	DirectionId *int64 `protobuf:"varint,3,opt,name=direction_id,json=directionId,proto3,oneof" json:"direction_id,omitempty"`
}

func (m *GetStationsByLineIdRequest) Reset()         { *m = GetStationsByLineIdRequest{} }
func (m *GetStationsByLineIdRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetStationsByLineIdRequest) ProtoMessage()    {}

type GetStationsByNameRequest struct {
	StationName       string `protobuf:"bytes,1,opt,name=station_name,json=stationName,proto3" json:"station_name,omitempty"`
	Limit             int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	FromStationGroupId *int64 `protobuf:"varint,3,opt,name=from_station_group_id,json=fromStationGroupId,proto3,oneof" json:"from_station_group_id,omitempty"`
}

func (m *GetStationsByNameRequest) Reset()         { *m = GetStationsByNameRequest{} }
func (m *GetStationsByNameRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetStationsByNameRequest) ProtoMessage()    {}

type GetStationsByLineGroupIdRequest struct {
	LineGroupId int64 `protobuf:"varint,1,opt,name=line_group_id,json=lineGroupId,proto3" json:"line_group_id,omitempty"`
}

func (m *GetStationsByLineGroupIdRequest) Reset()         { *m = GetStationsByLineGroupIdRequest{} }
func (m *GetStationsByLineGroupIdRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetStationsByLineGroupIdRequest) ProtoMessage()    {}

type MultipleStationResponse struct {
	Stations []*Station `protobuf:"bytes,1,rep,name=stations,proto3" json:"stations,omitempty"`
}

func (m *MultipleStationResponse) Reset()         { *m = MultipleStationResponse{} }
func (m *MultipleStationResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MultipleStationResponse) ProtoMessage()    {}

type GetTrainTypesByStationIdRequest struct {
	StationId int64 `protobuf:"varint,1,opt,name=station_id,json=stationId,proto3" json:"station_id,omitempty"`
}

func (m *GetTrainTypesByStationIdRequest) Reset()         { *m = GetTrainTypesByStationIdRequest{} }
func (m *GetTrainTypesByStationIdRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetTrainTypesByStationIdRequest) ProtoMessage()    {}

type TrainTypeListResponse struct {
	TrainTypes []*TrainType `protobuf:"bytes,1,rep,name=train_types,json=trainTypes,proto3" json:"train_types,omitempty"`
}

func (m *TrainTypeListResponse) Reset()         { *m = TrainTypeListResponse{} }
func (m *TrainTypeListResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*TrainTypeListResponse) ProtoMessage()    {}

type GetRoutesRequest struct {
	FromStationGroupId int64 `protobuf:"varint,1,opt,name=from_station_group_id,json=fromStationGroupId,proto3" json:"from_station_group_id,omitempty"`
	ToStationGroupId   int64 `protobuf:"varint,2,opt,name=to_station_group_id,json=toStationGroupId,proto3" json:"to_station_group_id,omitempty"`
}

func (m *GetRoutesRequest) Reset()         { *m = GetRoutesRequest{} }
func (m *GetRoutesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetRoutesRequest) ProtoMessage()    {}

type RouteListResponse struct {
	Routes        []*Route `protobuf:"bytes,1,rep,name=routes,proto3" json:"routes,omitempty"`
	NextPageToken string   `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *RouteListResponse) Reset()         { *m = RouteListResponse{} }
func (m *RouteListResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RouteListResponse) ProtoMessage()    {}

type GetRouteTypesRequest struct {
	FromStationGroupId int64 `protobuf:"varint,1,opt,name=from_station_group_id,json=fromStationGroupId,proto3" json:"from_station_group_id,omitempty"`
	ToStationGroupId   int64 `protobuf:"varint,2,opt,name=to_station_group_id,json=toStationGroupId,proto3" json:"to_station_group_id,omitempty"`
}

func (m *GetRouteTypesRequest) Reset()         { *m = GetRouteTypesRequest{} }
func (m *GetRouteTypesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetRouteTypesRequest) ProtoMessage()    {}

type RouteTypeListResponse struct {
	TrainTypes    []*TrainType `protobuf:"bytes,1,rep,name=train_types,json=trainTypes,proto3" json:"train_types,omitempty"`
	NextPageToken string       `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *RouteTypeListResponse) Reset()         { *m = RouteTypeListResponse{} }
func (m *RouteTypeListResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RouteTypeListResponse) ProtoMessage()    {}

type GetConnectedRoutesRequest struct {
	FromStationGroupId int64 `protobuf:"varint,1,opt,name=from_station_group_id,json=fromStationGroupId,proto3" json:"from_station_group_id,omitempty"`
	ToStationGroupId   int64 `protobuf:"varint,2,opt,name=to_station_group_id,json=toStationGroupId,proto3" json:"to_station_group_id,omitempty"`
}

func (m *GetConnectedRoutesRequest) Reset()         { *m = GetConnectedRoutesRequest{} }
func (m *GetConnectedRoutesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetConnectedRoutesRequest) ProtoMessage()    {}

type ConnectedRoutesResponse struct {
	Routes []*Route `protobuf:"bytes,1,rep,name=routes,proto3" json:"routes,omitempty"`
}

func (m *ConnectedRoutesResponse) Reset()         { *m = ConnectedRoutesResponse{} }
func (m *ConnectedRoutesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConnectedRoutesResponse) ProtoMessage()    {}

type GetLineByIdRequest struct {
	LineId int64 `protobuf:"varint,1,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
}

func (m *GetLineByIdRequest) Reset()         { *m = GetLineByIdRequest{} }
func (m *GetLineByIdRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetLineByIdRequest) ProtoMessage()    {}

type GetLinesByNameRequest struct {
	LineName string `protobuf:"bytes,1,opt,name=line_name,json=lineName,proto3" json:"line_name,omitempty"`
	Limit    int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *GetLinesByNameRequest) Reset()         { *m = GetLinesByNameRequest{} }
func (m *GetLinesByNameRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetLinesByNameRequest) ProtoMessage()    {}

type LineListResponse struct {
	Lines []*Line `protobuf:"bytes,1,rep,name=lines,proto3" json:"lines,omitempty"`
}

func (m *LineListResponse) Reset()         { *m = LineListResponse{} }
func (m *LineListResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*LineListResponse) ProtoMessage()    {}
