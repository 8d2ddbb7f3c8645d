package grpc

import (
	"github.com/trainlcd/stationapi/internal/domain"
	"github.com/trainlcd/stationapi/internal/pb"
)

func mapStopCondition(c domain.StopCondition) pb.StopCondition {
	switch c {
	case domain.StopConditionNot:
		return pb.StopCondition_NOT
	case domain.StopConditionPartial:
		return pb.StopCondition_PARTIAL
	case domain.StopConditionWeekday:
		return pb.StopCondition_WEEKDAY
	case domain.StopConditionHoliday:
		return pb.StopCondition_HOLIDAY
	case domain.StopConditionPartialStop:
		return pb.StopCondition_PARTIAL_STOP
	default:
		return pb.StopCondition_ALL
	}
}

func strv(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intv(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func mapLineSymbols(symbols []domain.LineSymbol) []*pb.LineSymbol {
	if len(symbols) == 0 {
		return nil
	}
	out := make([]*pb.LineSymbol, len(symbols))
	for i, s := range symbols {
		out[i] = &pb.LineSymbol{Symbol: s.Symbol, Color: s.Color, Shape: s.Shape}
	}
	return out
}

func mapStationNumbers(numbers []domain.StationNumber) []*pb.StationNumber {
	if len(numbers) == 0 {
		return nil
	}
	out := make([]*pb.StationNumber, len(numbers))
	for i, n := range numbers {
		out[i] = &pb.StationNumber{
			LineSymbol:      n.LineSymbol,
			LineSymbolColor: n.LineSymbolColor,
			LineSymbolShape: n.LineSymbolShape,
			StationNumber:   n.StationNumber,
		}
	}
	return out
}

func mapCompany(c *domain.Company) *pb.Company {
	if c == nil {
		return nil
	}
	return &pb.Company{
		CompanyCd:         c.CompanyCd,
		RrCd:              c.RrCd,
		CompanyName:       c.CompanyName,
		CompanyNameK:      c.CompanyNameK,
		CompanyNameH:      c.CompanyNameH,
		CompanyNameR:      c.CompanyNameR,
		CompanyNameEn:     c.CompanyNameEn,
		CompanyNameFullEn: c.CompanyNameFullEn,
		CompanyUrl:        strv(c.CompanyURL),
		CompanyType:       c.CompanyType,
	}
}

func mapLine(l *domain.Line) *pb.Line {
	if l == nil {
		return nil
	}
	out := &pb.Line{
		Id:              l.LineCd,
		CompanyId:       l.CompanyCd,
		Name:            l.LineName,
		NameKatakana:    l.LineNameK,
		NameHiragana:    l.LineNameH,
		NameRoman:       strv(l.LineNameR),
		NameChinese:     strv(l.LineNameZh),
		NameKorean:      strv(l.LineNameKo),
		Color:           strv(l.LineColorC),
		LineType:        intv(l.LineType),
		LineSymbols:     mapLineSymbols(l.LineSymbols),
		Status:          l.EStatus,
		AverageDistance: l.AverageDistance,
		Company:         mapCompany(l.Company),
	}
	if l.Station != nil {
		out.Station = mapStation(l.Station)
	}
	if l.TrainType != nil {
		out.TrainType = mapTrainType(l.TrainType)
	}
	return out
}

func mapTrainType(t *domain.TrainType) *pb.TrainType {
	if t == nil {
		return nil
	}
	out := &pb.TrainType{
		Id:           t.ID,
		StationId:    t.StationCd,
		TypeId:       t.TypeCd,
		GroupId:      t.LineGroupCd,
		Name:         t.TypeName,
		NameKatakana: t.TypeNameK,
		NameRoman:    strv(t.TypeNameR),
		NameChinese:  strv(t.TypeNameZh),
		NameKorean:   strv(t.TypeNameKo),
		Color:        t.Color,
		Direction:    t.Direction,
		Kind:         t.Kind,
		Line:         mapLine(t.Line),
	}
	if len(t.Lines) > 0 {
		out.Lines = make([]*pb.Line, len(t.Lines))
		for i := range t.Lines {
			out.Lines[i] = mapLine(&t.Lines[i])
		}
	}
	return out
}

func mapStation(s *domain.Station) *pb.Station {
	if s == nil {
		return nil
	}
	out := &pb.Station{
		Id:              s.StationCd,
		GroupId:         s.StationGCd,
		Name:            s.StationName,
		NameKatakana:    s.StationNameK,
		NameRoman:       strv(s.StationNameR),
		NameChinese:     strv(s.StationNameZh),
		NameKorean:      strv(s.StationNameKo),
		ThreeLetterCode: strv(s.ThreeLetterCode),
		Line:            mapLine(s.Line),
		PrefId:          s.PrefCd,
		PostalCode:      s.Post,
		Address:         s.Address,
		Latitude:        s.Lat,
		Longitude:       s.Lon,
		OpenedAt:        s.OpenYmd,
		ClosedAt:        s.CloseYmd,
		Status:          s.EStatus,
		StationNumbers:  mapStationNumbers(s.StationNumbers),
		StopCondition:   mapStopCondition(s.StopCondition),
		HasTrainTypes:   s.HasTrainTypes,
		TrainType:       mapTrainType(s.TrainType),
	}
	if s.Distance != nil {
		out.Distance = *s.Distance
	}
	if len(s.Lines) > 0 {
		out.Lines = make([]*pb.Line, len(s.Lines))
		for i := range s.Lines {
			out.Lines[i] = mapLine(&s.Lines[i])
		}
	}
	return out
}

func mapStations(stations []domain.Station) []*pb.Station {
	out := make([]*pb.Station, len(stations))
	for i := range stations {
		out[i] = mapStation(&stations[i])
	}
	return out
}

func mapTrainTypes(types []domain.TrainType) []*pb.TrainType {
	out := make([]*pb.TrainType, len(types))
	for i := range types {
		out[i] = mapTrainType(&types[i])
	}
	return out
}

func mapLines(lines []domain.Line) []*pb.Line {
	out := make([]*pb.Line, len(lines))
	for i := range lines {
		out[i] = mapLine(&lines[i])
	}
	return out
}

func mapRoute(r domain.Route) *pb.Route {
	out := &pb.Route{
		Stops:     mapStations(r.Stops),
		TrainType: mapTrainType(r.TrainType),
	}
	if len(out.Stops) > 0 {
		out.Id = out.Stops[0].Id
	}
	return out
}

func mapRoutes(routes []domain.Route) []*pb.Route {
	out := make([]*pb.Route, len(routes))
	for i, r := range routes {
		out[i] = mapRoute(r)
	}
	return out
}
