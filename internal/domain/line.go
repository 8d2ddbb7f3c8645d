package domain

// Line is a named service owned by exactly one Company. Name/colour
// columns have already passed through the alias COALESCE by the time a
// Line reaches the domain layer; the repository layer owns that detail.
type Line struct {
	LineCd          int64    `db:"line_cd" json:"line_cd"`
	CompanyCd       int64    `db:"company_cd" json:"company_cd"`
	LineName        string   `db:"line_name" json:"line_name"`
	LineNameK       string   `db:"line_name_k" json:"line_name_k"`
	LineNameH       string   `db:"line_name_h" json:"line_name_h"`
	LineNameR       *string  `db:"line_name_r" json:"line_name_r,omitempty"`
	LineNameZh      *string  `db:"line_name_zh" json:"line_name_zh,omitempty"`
	LineNameKo      *string  `db:"line_name_ko" json:"line_name_ko,omitempty"`
	LineColorC      *string  `db:"line_color_c" json:"line_color_c,omitempty"`
	LineType        *int64   `db:"line_type" json:"line_type,omitempty"`
	LineSymbol1     *string  `db:"line_symbol1" json:"line_symbol1,omitempty"`
	LineSymbol2     *string  `db:"line_symbol2" json:"line_symbol2,omitempty"`
	LineSymbol3     *string  `db:"line_symbol3" json:"line_symbol3,omitempty"`
	LineSymbol4     *string  `db:"line_symbol4" json:"line_symbol4,omitempty"`
	LineSymbol1Color *string `db:"line_symbol1_color" json:"line_symbol1_color,omitempty"`
	LineSymbol2Color *string `db:"line_symbol2_color" json:"line_symbol2_color,omitempty"`
	LineSymbol3Color *string `db:"line_symbol3_color" json:"line_symbol3_color,omitempty"`
	LineSymbol4Color *string `db:"line_symbol4_color" json:"line_symbol4_color,omitempty"`
	LineSymbol1Shape *string `db:"line_symbol1_shape" json:"line_symbol1_shape,omitempty"`
	LineSymbol2Shape *string `db:"line_symbol2_shape" json:"line_symbol2_shape,omitempty"`
	LineSymbol3Shape *string `db:"line_symbol3_shape" json:"line_symbol3_shape,omitempty"`
	LineSymbol4Shape *string `db:"line_symbol4_shape" json:"line_symbol4_shape,omitempty"`
	EStatus          int64   `db:"e_status" json:"e_status"`
	ESort            int64   `db:"e_sort" json:"e_sort"`
	AverageDistance  float64 `db:"average_distance" json:"average_distance"`

	// Present only when a Line is read alongside a station_station_types
	// row (e.g. through GetByStationGroupIdVec for the route query).
	LineGroupCd *int64 `db:"line_group_cd" json:"line_group_cd,omitempty"`
	StationCd   *int64 `db:"station_cd" json:"station_cd,omitempty"`
	StationGCd  *int64 `db:"station_g_cd" json:"station_g_cd,omitempty"`

	Company    *Company     `json:"company,omitempty"`
	Station    *Station     `json:"station,omitempty"`
	TrainType  *TrainType   `json:"train_type,omitempty"`
	LineSymbols []LineSymbol `json:"line_symbols,omitempty"`
}
