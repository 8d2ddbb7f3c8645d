package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/trainlcd/stationapi/internal/domain"
	"github.com/trainlcd/stationapi/internal/domain/repository"
	"github.com/trainlcd/stationapi/internal/pkg/apperr"
)

// QueryInteractor is Component C: it funnels every station-bearing RPC
// through enrich() and assembles the two route queries from the raw
// repository rows. It holds no state beyond its four repositories.
type QueryInteractor struct {
	stationRepo   repository.StationRepository
	lineRepo      repository.LineRepository
	companyRepo   repository.CompanyRepository
	trainTypeRepo repository.TrainTypeRepository
	logger        *zap.Logger
}

func NewQueryInteractor(
	stationRepo repository.StationRepository,
	lineRepo repository.LineRepository,
	companyRepo repository.CompanyRepository,
	trainTypeRepo repository.TrainTypeRepository,
	logger *zap.Logger,
) *QueryInteractor {
	return &QueryInteractor{
		stationRepo:   stationRepo,
		lineRepo:      lineRepo,
		companyRepo:   companyRepo,
		trainTypeRepo: trainTypeRepo,
		logger:        logger,
	}
}

// enrich is the one place every station read passes through. It issues
// exactly four sub-reads (GetByStationGroupIdVec x2, FindByIdVec,
// GetByStationIdVec) no matter how many stations are passed in, then
// assembles line/company/train-type/station-number graphs in memory.
func (uc *QueryInteractor) enrich(ctx context.Context, stations []domain.Station, lgid *int64) ([]domain.Station, error) {
	if len(stations) == 0 {
		return stations, nil
	}

	gids := distinctInt64(stations, func(s domain.Station) int64 { return s.StationGCd })

	sibs, err := uc.stationRepo.GetByStationGroupIdVec(ctx, gids)
	if err != nil {
		return nil, err
	}

	sids := distinctInt64(sibs, func(s domain.Station) int64 { return s.StationCd })

	lines, err := uc.lineRepo.GetByStationGroupIdVec(ctx, gids)
	if err != nil {
		return nil, err
	}

	coids := distinctInt64(lines, func(l domain.Line) int64 { return l.CompanyCd })

	cos, err := uc.companyRepo.FindByIdVec(ctx, coids)
	if err != nil {
		return nil, err
	}
	companyByCd := make(map[int64]domain.Company, len(cos))
	for _, c := range cos {
		companyByCd[c.CompanyCd] = c
	}

	tts, err := uc.trainTypeRepo.GetByStationIdVec(ctx, sids, lgid)
	if err != nil {
		return nil, err
	}
	ttByStationCd := make(map[int64]domain.TrainType, len(tts))
	for _, t := range tts {
		if _, ok := ttByStationCd[t.StationCd]; !ok {
			ttByStationCd[t.StationCd] = t
		}
	}

	linesByGroup := make(map[int64][]domain.Line)
	for _, l := range lines {
		linesByGroup[derefInt64(l.StationGCd)] = append(linesByGroup[derefInt64(l.StationGCd)], l)
	}

	sibByGroupAndLine := make(map[int64]map[int64]domain.Station)
	for _, sib := range sibs {
		m, ok := sibByGroupAndLine[sib.StationGCd]
		if !ok {
			m = make(map[int64]domain.Station)
			sibByGroupAndLine[sib.StationGCd] = m
		}
		m[sib.LineCd] = sib
	}

	out := make([]domain.Station, len(stations))
	for i, s := range stations {
		s.StationNumbers = deriveStationNumbers(s)
		s.StopCondition = domain.StopConditionFromPass(derefInt64(s.Pass))
		s.HasTrainTypes = s.LineGroupCd != nil

		line := extractLine(s)
		if c, ok := companyByCd[line.CompanyCd]; ok {
			cc := c
			line.Company = &cc
		}
		s.Line = &line

		if tt, ok := ttByStationCd[s.StationCd]; ok {
			ttCopy := tt
			s.TrainType = &ttCopy
		}

		groupLines := linesByGroup[s.StationGCd]
		resultLines := make([]domain.Line, 0, len(groupLines))
		for _, l := range groupLines {
			lCopy := l
			if c, ok := companyByCd[l.CompanyCd]; ok {
				cc := c
				lCopy.Company = &cc
			}
			if sibMap, ok := sibByGroupAndLine[s.StationGCd]; ok {
				if sib, ok := sibMap[l.LineCd]; ok {
					sib.StationNumbers = deriveStationNumbers(sib)
					if tt, ok := ttByStationCd[sib.StationCd]; ok {
						ttc := tt
						sib.TrainType = &ttc
					}
					sibCopy := sib
					lCopy.Station = &sibCopy
				}
			}
			resultLines = append(resultLines, lCopy)
		}
		s.Lines = resultLines

		out[i] = s
	}
	return out, nil
}

func (uc *QueryInteractor) GetStationById(ctx context.Context, id int64) (*domain.Station, error) {
	station, err := uc.stationRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, apperr.NotFoundf("station %d not found", id)
	}
	enriched, err := uc.enrich(ctx, []domain.Station{*station}, nil)
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

func (uc *QueryInteractor) GetStationByIdList(ctx context.Context, ids []int64) ([]domain.Station, error) {
	stations, err := uc.stationRepo.GetByIdVec(ctx, ids)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, stations, nil)
}

func (uc *QueryInteractor) GetStationsByGroupId(ctx context.Context, groupId int64) ([]domain.Station, error) {
	stations, err := uc.stationRepo.GetByStationGroupId(ctx, groupId)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, stations, nil)
}

func (uc *QueryInteractor) GetStationsByCoordinates(ctx context.Context, lat, lon float64, limit int) ([]domain.Station, error) {
	if limit <= 0 {
		limit = 1
	}
	stations, err := uc.stationRepo.GetByCoordinates(ctx, lat, lon, limit)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, stations, nil)
}

func (uc *QueryInteractor) GetStationsByLineId(ctx context.Context, lineId int64, fromStationId, directionId *int64) ([]domain.Station, error) {
	stations, err := uc.stationRepo.GetByLineId(ctx, lineId, fromStationId, directionId)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, stations, nil)
}

func (uc *QueryInteractor) GetStationsByName(ctx context.Context, name string, limit int, fromGroupId *int64) ([]domain.Station, error) {
	if limit <= 0 {
		limit = 30
	}
	stations, err := uc.stationRepo.GetByName(ctx, name, limit, fromGroupId)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, stations, nil)
}

func (uc *QueryInteractor) GetStationsByLineGroupId(ctx context.Context, lineGroupId int64) ([]domain.Station, error) {
	stations, err := uc.stationRepo.GetByLineGroupId(ctx, lineGroupId)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, stations, &lineGroupId)
}

// GetTrainTypesByStationId hydrates every service pattern passing
// through the station with the owning line (and its company) so the
// caller never has to issue a follow-up GetLineById.
func (uc *QueryInteractor) GetTrainTypesByStationId(ctx context.Context, stationId int64) ([]domain.TrainType, error) {
	tts, err := uc.trainTypeRepo.GetByStationId(ctx, stationId)
	if err != nil {
		return nil, err
	}

	line, err := uc.lineRepo.FindByStationId(ctx, stationId)
	if err != nil {
		return nil, err
	}
	if line != nil {
		cos, err := uc.companyRepo.FindByIdVec(ctx, []int64{line.CompanyCd})
		if err != nil {
			return nil, err
		}
		if len(cos) > 0 {
			line.Company = &cos[0]
		}
	}

	out := make([]domain.TrainType, len(tts))
	for i, tt := range tts {
		if line != nil {
			lCopy := *line
			tt.Line = &lCopy
		}
		out[i] = tt
	}
	return out, nil
}

func (uc *QueryInteractor) GetLineById(ctx context.Context, lineId int64) (*domain.Line, error) {
	line, err := uc.lineRepo.FindById(ctx, lineId)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, apperr.NotFoundf("line %d not found", lineId)
	}
	if err := uc.hydrateCompanies(ctx, []*domain.Line{line}); err != nil {
		return nil, err
	}
	return line, nil
}

func (uc *QueryInteractor) GetLinesByName(ctx context.Context, name string, limit int) ([]domain.Line, error) {
	if limit <= 0 {
		limit = 30
	}
	lines, err := uc.lineRepo.GetByName(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	refs := make([]*domain.Line, len(lines))
	for i := range lines {
		refs[i] = &lines[i]
	}
	if err := uc.hydrateCompanies(ctx, refs); err != nil {
		return nil, err
	}
	return lines, nil
}

func (uc *QueryInteractor) hydrateCompanies(ctx context.Context, lines []*domain.Line) error {
	coids := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{})
	for _, l := range lines {
		if _, ok := seen[l.CompanyCd]; !ok {
			seen[l.CompanyCd] = struct{}{}
			coids = append(coids, l.CompanyCd)
		}
	}
	cos, err := uc.companyRepo.FindByIdVec(ctx, coids)
	if err != nil {
		return err
	}
	byCd := make(map[int64]domain.Company, len(cos))
	for _, c := range cos {
		byCd[c.CompanyCd] = c
	}
	for _, l := range lines {
		if c, ok := byCd[l.CompanyCd]; ok {
			cc := c
			l.Company = &cc
		}
	}
	return nil
}

// GetRoutes implements §4.2.2: GetRouteStops already returns the union
// of direct common-line stops and through-running stops; here they are
// grouped by line_group_cd (falling back to line_cd), groups lacking
// either endpoint are discarded, and surviving groups become Routes.
func (uc *QueryInteractor) GetRoutes(ctx context.Context, fromGroupId, toGroupId int64) ([]domain.Route, error) {
	rows, err := uc.stationRepo.GetRouteStops(ctx, fromGroupId, toGroupId, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	enriched, err := uc.enrich(ctx, rows, nil)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]domain.Station)
	var order []string
	for i, s := range rows {
		k := routeGroupKey(s)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], enriched[i])
	}

	routes := make([]domain.Route, 0, len(order))
	for _, k := range order {
		stops := groups[k]
		if !containsEndpoint(stops, fromGroupId, toGroupId) {
			continue
		}
		var tt *domain.TrainType
		for _, st := range stops {
			if st.TypeCd != nil {
				built := buildTrainTypeFromStation(st)
				tt = &built
				break
			}
		}
		routes = append(routes, domain.Route{TrainType: tt, Stops: stops})
	}
	return routes, nil
}

// GetRouteTypes recomputes the same line_group_cd intersection set
// GetRoutes groups by, then hydrates one TrainType per group with every
// member line (LEFT JOIN variant, so a currently-unserved member line
// still appears) and each line's owner company.
func (uc *QueryInteractor) GetRouteTypes(ctx context.Context, fromGroupId, toGroupId int64) ([]domain.TrainType, error) {
	rows, err := uc.stationRepo.GetRouteStops(ctx, fromGroupId, toGroupId, nil)
	if err != nil {
		return nil, err
	}

	gids := make([]int64, 0)
	seen := make(map[int64]struct{})
	for _, s := range rows {
		if s.LineGroupCd == nil {
			continue
		}
		if _, ok := seen[*s.LineGroupCd]; !ok {
			seen[*s.LineGroupCd] = struct{}{}
			gids = append(gids, *s.LineGroupCd)
		}
	}
	if len(gids) == 0 {
		return nil, nil
	}

	lines, err := uc.lineRepo.GetByLineGroupIdVecForRoutes(ctx, gids)
	if err != nil {
		return nil, err
	}
	refs := make([]*domain.Line, len(lines))
	for i := range lines {
		refs[i] = &lines[i]
	}
	if err := uc.hydrateCompanies(ctx, refs); err != nil {
		return nil, err
	}

	linesByGroup := make(map[int64][]domain.Line)
	for _, l := range lines {
		if l.LineGroupCd == nil {
			continue
		}
		linesByGroup[*l.LineGroupCd] = append(linesByGroup[*l.LineGroupCd], l)
	}

	out := make([]domain.TrainType, 0, len(gids))
	for _, gid := range gids {
		tts, err := uc.trainTypeRepo.GetByLineGroupId(ctx, gid)
		if err != nil {
			return nil, err
		}
		var tt domain.TrainType
		if len(tts) > 0 {
			tt = tts[0]
		} else {
			tt = domain.TrainType{LineGroupCd: gid}
		}
		tt.Lines = linesByGroup[gid]
		out = append(out, tt)
	}
	return out, nil
}

// GetConnectedRoutes is specified but stubbed: it always returns an
// empty, successful result. See the design notes on the retired
// pathfinding prototype this once called.
func (uc *QueryInteractor) GetConnectedRoutes(ctx context.Context, fromGroupId, toGroupId int64) ([]domain.Route, error) {
	return nil, nil
}

func routeGroupKey(s domain.Station) string {
	if s.LineGroupCd != nil {
		return fmt.Sprintf("g:%d", *s.LineGroupCd)
	}
	return fmt.Sprintf("l:%d", s.LineCd)
}

func containsEndpoint(stops []domain.Station, fromGroupId, toGroupId int64) bool {
	for _, s := range stops {
		if s.StationGCd == fromGroupId || s.StationGCd == toGroupId {
			return true
		}
	}
	return false
}

func buildTrainTypeFromStation(s domain.Station) domain.TrainType {
	return domain.TrainType{
		StationCd:   s.StationCd,
		TypeCd:      derefInt64(s.TypeCd),
		LineGroupCd: derefInt64(s.LineGroupCd),
		Pass:        derefInt64(s.Pass),
		TypeName:    derefStr(s.TypeName),
		TypeNameK:   derefStr(s.TypeNameK),
		TypeNameR:   s.TypeNameR,
		TypeNameZh:  s.TypeNameZh,
		TypeNameKo:  s.TypeNameKo,
		Color:       derefStr(s.Color),
		Direction:   derefInt64(s.Direction),
		Kind:        derefInt64(s.Kind),
		Priority:    derefInt64(s.Priority),
	}
}

// extractLine builds a Line from a Station's denormalised join columns;
// it is what enrich() uses to guarantee station.Line.LineCd == station.LineCd
// without a second relational read.
func extractLine(s domain.Station) domain.Line {
	line := domain.Line{
		LineCd:           s.LineCd,
		CompanyCd:        derefInt64(s.CompanyCd),
		LineName:         derefStr(s.LineName),
		LineNameK:        derefStr(s.LineNameK),
		LineNameH:        derefStr(s.LineNameH),
		LineNameR:        s.LineNameR,
		LineNameZh:       s.LineNameZh,
		LineNameKo:       s.LineNameKo,
		LineColorC:       s.LineColorC,
		LineType:         s.LineType,
		LineSymbol1:      s.LineSymbol1,
		LineSymbol2:      s.LineSymbol2,
		LineSymbol3:      s.LineSymbol3,
		LineSymbol4:      s.LineSymbol4,
		LineSymbol1Color: s.LineSymbol1Color,
		LineSymbol2Color: s.LineSymbol2Color,
		LineSymbol3Color: s.LineSymbol3Color,
		LineSymbol4Color: s.LineSymbol4Color,
		LineSymbol1Shape: s.LineSymbol1Shape,
		LineSymbol2Shape: s.LineSymbol2Shape,
		LineSymbol3Shape: s.LineSymbol3Shape,
		LineSymbol4Shape: s.LineSymbol4Shape,
		AverageDistance:  s.AverageDistance,
	}
	line.LineSymbols = deriveLineSymbols(line)
	return line
}

// deriveStationNumbers builds §4.2.1's StationNumber list from a
// Station's four numbering slots.
func deriveStationNumbers(s domain.Station) []domain.StationNumber {
	type slot struct {
		number *string
		symbol *string
		color  *string
		shape  *string
	}
	slots := [4]slot{
		{s.StationNumber1, s.LineSymbol1, s.LineSymbol1Color, s.LineSymbol1Shape},
		{s.StationNumber2, s.LineSymbol2, s.LineSymbol2Color, s.LineSymbol2Shape},
		{s.StationNumber3, s.LineSymbol3, s.LineSymbol3Color, s.LineSymbol3Shape},
		{s.StationNumber4, s.LineSymbol4, s.LineSymbol4Color, s.LineSymbol4Shape},
	}

	var out []domain.StationNumber
	for _, sl := range slots {
		if sl.number == nil || *sl.number == "" {
			continue
		}
		symbol := derefStr(sl.symbol)
		number := *sl.number
		if symbol != "" {
			number = symbol + "-" + number
		}
		out = append(out, domain.StationNumber{
			LineSymbol:      symbol,
			LineSymbolColor: derefStr(sl.color),
			LineSymbolShape: derefStr(sl.shape),
			StationNumber:   number,
		})
	}
	return out
}

// deriveLineSymbols builds §4.2.1's LineSymbol list from a Line's first
// three symbol slots (the fourth slot never contributes a line symbol).
// Slot 1's colour falls back to the line's own colour; slots 2-3 fall
// back to empty.
func deriveLineSymbols(l domain.Line) []domain.LineSymbol {
	type slot struct {
		symbol       *string
		color        *string
		shape        *string
		colorDefault string
	}
	slots := [3]slot{
		{l.LineSymbol1, l.LineSymbol1Color, l.LineSymbol1Shape, derefStr(l.LineColorC)},
		{l.LineSymbol2, l.LineSymbol2Color, l.LineSymbol2Shape, ""},
		{l.LineSymbol3, l.LineSymbol3Color, l.LineSymbol3Shape, ""},
	}

	var out []domain.LineSymbol
	for _, sl := range slots {
		if sl.symbol == nil || *sl.symbol == "" {
			continue
		}
		if sl.shape == nil || *sl.shape == "" {
			continue
		}
		color := sl.colorDefault
		if sl.color != nil && *sl.color != "" {
			color = *sl.color
		}
		out = append(out, domain.LineSymbol{
			Symbol: *sl.symbol,
			Color:  color,
			Shape:  *sl.shape,
		})
	}
	return out
}

func distinctInt64[T any](items []T, key func(T) int64) []int64 {
	seen := make(map[int64]struct{}, len(items))
	out := make([]int64, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func derefInt64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
