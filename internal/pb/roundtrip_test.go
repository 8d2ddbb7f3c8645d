package pb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"

	"github.com/trainlcd/stationapi/internal/pb"
)

// TestStationRoundTrip exercises the real wire codec (not just struct
// copies) to confirm the hand-maintained message shape in
// stationapi.pb.go is actually marshalable by google.golang.org/protobuf
// via the legacy-message adapter, the same path grpc-go's codec uses.
func TestStationRoundTrip(t *testing.T) {
	original := &pb.Station{
		Id:              1130208,
		GroupId:         1130208,
		Name:            "渋谷",
		ThreeLetterCode: "SBY",
		Line: &pb.Line{
			Id:   11302,
			Name: "山手線",
			LineSymbols: []*pb.LineSymbol{
				{Symbol: "JY", Color: "#9acd32", Shape: "round"},
			},
		},
		StationNumbers: []*pb.StationNumber{
			{LineSymbol: "JY", StationNumber: "20"},
		},
		StopCondition: pb.StopCondition_ALL,
		Distance:      1.5,
		HasTrainTypes: true,
	}

	data, err := proto.Marshal(protoadapt.MessageV2Of(original))
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	decoded := &pb.Station{}
	assert.NoError(t, proto.Unmarshal(data, protoadapt.MessageV2Of(decoded)))

	assert.Equal(t, original.Id, decoded.Id)
	assert.Equal(t, original.GroupId, decoded.GroupId)
	assert.Equal(t, original.Name, decoded.Name)
	assert.Equal(t, original.ThreeLetterCode, decoded.ThreeLetterCode)
	assert.Equal(t, original.StopCondition, decoded.StopCondition)
	assert.Equal(t, original.Distance, decoded.Distance)
	assert.Equal(t, original.HasTrainTypes, decoded.HasTrainTypes)
	if assert.NotNil(t, decoded.Line) {
		assert.Equal(t, original.Line.Id, decoded.Line.Id)
		assert.Equal(t, original.Line.Name, decoded.Line.Name)
		if assert.Len(t, decoded.Line.LineSymbols, 1) {
			assert.Equal(t, original.Line.LineSymbols[0].Symbol, decoded.Line.LineSymbols[0].Symbol)
			assert.Equal(t, original.Line.LineSymbols[0].Color, decoded.Line.LineSymbols[0].Color)
		}
	}
	if assert.Len(t, decoded.StationNumbers, 1) {
		assert.Equal(t, original.StationNumbers[0].StationNumber, decoded.StationNumbers[0].StationNumber)
	}
}

// TestRequestResponseRoundTrip covers one request/response pair
// (GetStationsByLineIdRequest and MultipleStationResponse) to confirm
// that request and response messages, not just the shared domain types,
// survive encode/decode.
func TestRequestResponseRoundTrip(t *testing.T) {
	req := &pb.GetStationsByLineIdRequest{LineId: 11302}
	data, err := proto.Marshal(protoadapt.MessageV2Of(req))
	assert.NoError(t, err)

	decodedReq := &pb.GetStationsByLineIdRequest{}
	assert.NoError(t, proto.Unmarshal(data, protoadapt.MessageV2Of(decodedReq)))
	assert.Equal(t, req.LineId, decodedReq.LineId)

	resp := &pb.MultipleStationResponse{
		Stations: []*pb.Station{
			{Id: 1130208, Name: "渋谷"},
			{Id: 1130209, Name: "原宿"},
		},
	}
	data, err = proto.Marshal(protoadapt.MessageV2Of(resp))
	assert.NoError(t, err)

	decodedResp := &pb.MultipleStationResponse{}
	assert.NoError(t, proto.Unmarshal(data, protoadapt.MessageV2Of(decodedResp)))
	if assert.Len(t, decodedResp.Stations, 2) {
		assert.Equal(t, resp.Stations[0].Id, decodedResp.Stations[0].Id)
		assert.Equal(t, resp.Stations[1].Name, decodedResp.Stations[1].Name)
	}
}
