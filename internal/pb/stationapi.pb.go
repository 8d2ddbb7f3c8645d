// Package pb holds the hand-maintained wire types for
// app.trainlcd.grpc.StationApi. They follow the shape protoc-gen-go
// emits for proto3 messages (Reset/String/ProtoMessage plus struct
// tags) so the grpc-go codec can marshal them without a generated
// descriptor; see proto/stationapi.proto for the source contract.
package pb

import "fmt"

// StopCondition mirrors the wire enum on Station.stop_condition.
type StopCondition int32

const (
	StopCondition_ALL          StopCondition = 0
	StopCondition_NOT          StopCondition = 1
	StopCondition_PARTIAL      StopCondition = 2
	StopCondition_WEEKDAY      StopCondition = 3
	StopCondition_HOLIDAY      StopCondition = 4
	StopCondition_PARTIAL_STOP StopCondition = 5
)

func (s StopCondition) String() string {
	switch s {
	case StopCondition_NOT:
		return "NOT"
	case StopCondition_PARTIAL:
		return "PARTIAL"
	case StopCondition_WEEKDAY:
		return "WEEKDAY"
	case StopCondition_HOLIDAY:
		return "HOLIDAY"
	case StopCondition_PARTIAL_STOP:
		return "PARTIAL_STOP"
	default:
		return "ALL"
	}
}

type LineSymbol struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Color  string `protobuf:"bytes,2,opt,name=color,proto3" json:"color,omitempty"`
	Shape  string `protobuf:"bytes,3,opt,name=shape,proto3" json:"shape,omitempty"`
}

func (m *LineSymbol) Reset()         { *m = LineSymbol{} }
func (m *LineSymbol) String() string { return fmt.Sprintf("%+v", *m) }
func (*LineSymbol) ProtoMessage()    {}

type StationNumber struct {
	LineSymbol      string `protobuf:"bytes,1,opt,name=line_symbol,json=lineSymbol,proto3" json:"line_symbol,omitempty"`
	LineSymbolColor string `protobuf:"bytes,2,opt,name=line_symbol_color,json=lineSymbolColor,proto3" json:"line_symbol_color,omitempty"`
	LineSymbolShape string `protobuf:"bytes,3,opt,name=line_symbol_shape,json=lineSymbolShape,proto3" json:"line_symbol_shape,omitempty"`
	StationNumber   string `protobuf:"bytes,4,opt,name=station_number,json=stationNumber,proto3" json:"station_number,omitempty"`
}

func (m *StationNumber) Reset()         { *m = StationNumber{} }
func (m *StationNumber) String() string { return fmt.Sprintf("%+v", *m) }
func (*StationNumber) ProtoMessage()    {}

type Company struct {
	CompanyCd         int64  `protobuf:"varint,1,opt,name=company_cd,json=companyCd,proto3" json:"company_cd,omitempty"`
	RrCd              int64  `protobuf:"varint,2,opt,name=rr_cd,json=rrCd,proto3" json:"rr_cd,omitempty"`
	CompanyName       string `protobuf:"bytes,3,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	CompanyNameK      string `protobuf:"bytes,4,opt,name=company_name_k,json=companyNameK,proto3" json:"company_name_k,omitempty"`
	CompanyNameH      string `protobuf:"bytes,5,opt,name=company_name_h,json=companyNameH,proto3" json:"company_name_h,omitempty"`
	CompanyNameR      string `protobuf:"bytes,6,opt,name=company_name_r,json=companyNameR,proto3" json:"company_name_r,omitempty"`
	CompanyNameEn     string `protobuf:"bytes,7,opt,name=company_name_en,json=companyNameEn,proto3" json:"company_name_en,omitempty"`
	CompanyNameFullEn string `protobuf:"bytes,8,opt,name=company_name_full_en,json=companyNameFullEn,proto3" json:"company_name_full_en,omitempty"`
	CompanyUrl        string `protobuf:"bytes,9,opt,name=company_url,json=companyUrl,proto3" json:"company_url,omitempty"`
	CompanyType       int64  `protobuf:"varint,10,opt,name=company_type,json=companyType,proto3" json:"company_type,omitempty"`
}

func (m *Company) Reset()         { *m = Company{} }
func (m *Company) String() string { return fmt.Sprintf("%+v", *m) }
func (*Company) ProtoMessage()    {}

type Line struct {
	Id               int64         `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyId        int64         `protobuf:"varint,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Name             string        `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	NameKatakana     string        `protobuf:"bytes,4,opt,name=name_katakana,json=nameKatakana,proto3" json:"name_katakana,omitempty"`
	NameHiragana     string        `protobuf:"bytes,5,opt,name=name_hiragana,json=nameHiragana,proto3" json:"name_hiragana,omitempty"`
	NameRoman        string        `protobuf:"bytes,6,opt,name=name_roman,json=nameRoman,proto3" json:"name_roman,omitempty"`
	NameChinese      string        `protobuf:"bytes,7,opt,name=name_chinese,json=nameChinese,proto3" json:"name_chinese,omitempty"`
	NameKorean       string        `protobuf:"bytes,8,opt,name=name_korean,json=nameKorean,proto3" json:"name_korean,omitempty"`
	Color            string        `protobuf:"bytes,9,opt,name=color,proto3" json:"color,omitempty"`
	LineType         int64         `protobuf:"varint,10,opt,name=line_type,json=lineType,proto3" json:"line_type,omitempty"`
	LineSymbols      []*LineSymbol `protobuf:"bytes,11,rep,name=line_symbols,json=lineSymbols,proto3" json:"line_symbols,omitempty"`
	Status           int64         `protobuf:"varint,12,opt,name=status,proto3" json:"status,omitempty"`
	AverageDistance  float64       `protobuf:"fixed64,13,opt,name=average_distance,json=averageDistance,proto3" json:"average_distance,omitempty"`
	Company          *Company      `protobuf:"bytes,14,opt,name=company,proto3" json:"company,omitempty"`
	Station          *Station      `protobuf:"bytes,15,opt,name=station,proto3" json:"station,omitempty"`
	TrainType        *TrainType    `protobuf:"bytes,16,opt,name=train_type,json=trainType,proto3" json:"train_type,omitempty"`
}

func (m *Line) Reset()         { *m = Line{} }
func (m *Line) String() string { return fmt.Sprintf("%+v", *m) }
func (*Line) ProtoMessage()    {}

type TrainType struct {
	Id           int64   `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	StationId    int64   `protobuf:"varint,2,opt,name=station_id,json=stationId,proto3" json:"station_id,omitempty"`
	TypeId       int64   `protobuf:"varint,3,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	GroupId      int64   `protobuf:"varint,4,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Name         string  `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
	NameKatakana string  `protobuf:"bytes,6,opt,name=name_katakana,json=nameKatakana,proto3" json:"name_katakana,omitempty"`
	NameRoman    string  `protobuf:"bytes,7,opt,name=name_roman,json=nameRoman,proto3" json:"name_roman,omitempty"`
	NameChinese  string  `protobuf:"bytes,8,opt,name=name_chinese,json=nameChinese,proto3" json:"name_chinese,omitempty"`
	NameKorean   string  `protobuf:"bytes,9,opt,name=name_korean,json=nameKorean,proto3" json:"name_korean,omitempty"`
	Color        string  `protobuf:"bytes,10,opt,name=color,proto3" json:"color,omitempty"`
	Direction    int64   `protobuf:"varint,11,opt,name=direction,proto3" json:"direction,omitempty"`
	Kind         int64   `protobuf:"varint,12,opt,name=kind,proto3" json:"kind,omitempty"`
	Line         *Line   `protobuf:"bytes,13,opt,name=line,proto3" json:"line,omitempty"`
	Lines        []*Line `protobuf:"bytes,14,rep,name=lines,proto3" json:"lines,omitempty"`
}

func (m *TrainType) Reset()         { *m = TrainType{} }
func (m *TrainType) String() string { return fmt.Sprintf("%+v", *m) }
func (*TrainType) ProtoMessage()    {}

type Station struct {
	Id              int64            `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	GroupId         int64            `protobuf:"varint,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Name            string           `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	NameKatakana    string           `protobuf:"bytes,4,opt,name=name_katakana,json=nameKatakana,proto3" json:"name_katakana,omitempty"`
	NameRoman       string           `protobuf:"bytes,5,opt,name=name_roman,json=nameRoman,proto3" json:"name_roman,omitempty"`
	NameChinese     string           `protobuf:"bytes,6,opt,name=name_chinese,json=nameChinese,proto3" json:"name_chinese,omitempty"`
	NameKorean      string           `protobuf:"bytes,7,opt,name=name_korean,json=nameKorean,proto3" json:"name_korean,omitempty"`
	ThreeLetterCode string           `protobuf:"bytes,8,opt,name=three_letter_code,json=threeLetterCode,proto3" json:"three_letter_code,omitempty"`
	Lines           []*Line          `protobuf:"bytes,9,rep,name=lines,proto3" json:"lines,omitempty"`
	Line            *Line            `protobuf:"bytes,10,opt,name=line,proto3" json:"line,omitempty"`
	PrefId          int64            `protobuf:"varint,11,opt,name=pref_id,json=prefId,proto3" json:"pref_id,omitempty"`
	PostalCode      string           `protobuf:"bytes,12,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	Address         string           `protobuf:"bytes,13,opt,name=address,proto3" json:"address,omitempty"`
	Latitude        float64          `protobuf:"fixed64,14,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude       float64          `protobuf:"fixed64,15,opt,name=longitude,proto3" json:"longitude,omitempty"`
	OpenedAt        string           `protobuf:"bytes,16,opt,name=opened_at,json=openedAt,proto3" json:"opened_at,omitempty"`
	ClosedAt        string           `protobuf:"bytes,17,opt,name=closed_at,json=closedAt,proto3" json:"closed_at,omitempty"`
	Status          int64            `protobuf:"varint,18,opt,name=status,proto3" json:"status,omitempty"`
	StationNumbers  []*StationNumber `protobuf:"bytes,19,rep,name=station_numbers,json=stationNumbers,proto3" json:"station_numbers,omitempty"`
	StopCondition   StopCondition    `protobuf:"varint,20,opt,name=stop_condition,json=stopCondition,proto3,enum=app.trainlcd.grpc.StopCondition" json:"stop_condition,omitempty"`
	Distance        float64          `protobuf:"fixed64,21,opt,name=distance,proto3" json:"distance,omitempty"`
	HasTrainTypes   bool             `protobuf:"varint,22,opt,name=has_train_types,json=hasTrainTypes,proto3" json:"has_train_types,omitempty"`
	TrainType       *TrainType       `protobuf:"bytes,23,opt,name=train_type,json=trainType,proto3" json:"train_type,omitempty"`
}

func (m *Station) Reset()         { *m = Station{} }
func (m *Station) String() string { return fmt.Sprintf("%+v", *m) }
func (*Station) ProtoMessage()    {}

type Route struct {
	Id        int64      `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Stops     []*Station `protobuf:"bytes,2,rep,name=stops,proto3" json:"stops,omitempty"`
	TrainType *TrainType `protobuf:"bytes,3,opt,name=train_type,json=trainType,proto3" json:"train_type,omitempty"`
}

func (m *Route) Reset()         { *m = Route{} }
func (m *Route) String() string { return fmt.Sprintf("%+v", *m) }
func (*Route) ProtoMessage()    {}
