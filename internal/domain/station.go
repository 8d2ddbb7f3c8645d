package domain

// Station is a physical stop on one line. It embeds the denormalised
// columns produced by the stations ⋈ lines join (and, when read through
// station_station_types, the train-type join too) so a single row can
// materialise its owning Line without a second read. The embedded
// columns are authoritative only until enrich() replaces them with a
// fully hydrated Line/TrainType graph.
type Station struct {
	StationCd    int64   `db:"station_cd" json:"station_cd"`
	StationGCd   int64   `db:"station_g_cd" json:"station_g_cd"`
	StationName  string  `db:"station_name" json:"station_name"`
	StationNameK string  `db:"station_name_k" json:"station_name_k"`
	StationNameR  *string `db:"station_name_r" json:"station_name_r,omitempty"`
	StationNameZh *string `db:"station_name_zh" json:"station_name_zh,omitempty"`
	StationNameKo *string `db:"station_name_ko" json:"station_name_ko,omitempty"`

	StationNumber1  *string `db:"station_number1" json:"station_number1,omitempty"`
	StationNumber2  *string `db:"station_number2" json:"station_number2,omitempty"`
	StationNumber3  *string `db:"station_number3" json:"station_number3,omitempty"`
	StationNumber4  *string `db:"station_number4" json:"station_number4,omitempty"`
	ThreeLetterCode *string `db:"three_letter_code" json:"three_letter_code,omitempty"`

	LineCd  int64 `db:"line_cd" json:"line_cd"`
	PrefCd  int64 `db:"pref_cd" json:"pref_cd"`
	Post    string `db:"post" json:"post"`
	Address string `db:"address" json:"address"`
	Lon     float64 `db:"lon" json:"lon"`
	Lat     float64 `db:"lat" json:"lat"`
	OpenYmd  string `db:"open_ymd" json:"open_ymd"`
	CloseYmd string `db:"close_ymd" json:"close_ymd"`
	EStatus  int64  `db:"e_status" json:"e_status"`
	ESort    int64  `db:"e_sort" json:"e_sort"`

	// denormalised from the owning line
	CompanyCd        *int64  `db:"company_cd" json:"company_cd,omitempty"`
	LineName         *string `db:"line_name" json:"line_name,omitempty"`
	LineNameK        *string `db:"line_name_k" json:"line_name_k,omitempty"`
	LineNameH        *string `db:"line_name_h" json:"line_name_h,omitempty"`
	LineNameR        *string `db:"line_name_r" json:"line_name_r,omitempty"`
	LineNameZh       *string `db:"line_name_zh" json:"line_name_zh,omitempty"`
	LineNameKo       *string `db:"line_name_ko" json:"line_name_ko,omitempty"`
	LineColorC       *string `db:"line_color_c" json:"line_color_c,omitempty"`
	LineType         *int64  `db:"line_type" json:"line_type,omitempty"`
	LineSymbol1      *string `db:"line_symbol1" json:"line_symbol1,omitempty"`
	LineSymbol2      *string `db:"line_symbol2" json:"line_symbol2,omitempty"`
	LineSymbol3      *string `db:"line_symbol3" json:"line_symbol3,omitempty"`
	LineSymbol4      *string `db:"line_symbol4" json:"line_symbol4,omitempty"`
	LineSymbol1Color *string `db:"line_symbol1_color" json:"line_symbol1_color,omitempty"`
	LineSymbol2Color *string `db:"line_symbol2_color" json:"line_symbol2_color,omitempty"`
	LineSymbol3Color *string `db:"line_symbol3_color" json:"line_symbol3_color,omitempty"`
	LineSymbol4Color *string `db:"line_symbol4_color" json:"line_symbol4_color,omitempty"`
	LineSymbol1Shape *string `db:"line_symbol1_shape" json:"line_symbol1_shape,omitempty"`
	LineSymbol2Shape *string `db:"line_symbol2_shape" json:"line_symbol2_shape,omitempty"`
	LineSymbol3Shape *string `db:"line_symbol3_shape" json:"line_symbol3_shape,omitempty"`
	LineSymbol4Shape *string `db:"line_symbol4_shape" json:"line_symbol4_shape,omitempty"`
	AverageDistance  float64 `db:"average_distance" json:"average_distance"`

	// present only when joined through station_station_types
	SstID       *int64 `db:"sst_id" json:"sst_id,omitempty"`
	TypeCd      *int64 `db:"type_cd" json:"type_cd,omitempty"`
	LineGroupCd *int64 `db:"line_group_cd" json:"line_group_cd,omitempty"`
	Pass        *int64 `db:"pass" json:"pass,omitempty"`

	// present only when the sst row is also joined to types
	TypeName   *string `db:"type_name" json:"type_name,omitempty"`
	TypeNameK  *string `db:"type_name_k" json:"type_name_k,omitempty"`
	TypeNameR  *string `db:"type_name_r" json:"type_name_r,omitempty"`
	TypeNameZh *string `db:"type_name_zh" json:"type_name_zh,omitempty"`
	TypeNameKo *string `db:"type_name_ko" json:"type_name_ko,omitempty"`
	Color      *string `db:"color" json:"color,omitempty"`
	Direction  *int64  `db:"direction" json:"direction,omitempty"`
	Kind       *int64  `db:"kind" json:"kind,omitempty"`
	Priority   *int64  `db:"priority" json:"-"`

	// computed by the repository layer, not a column
	Distance *float64 `db:"distance" json:"distance,omitempty"`

	// StationNumbers, Line, Lines and TrainType are populated by the query
	// interactor's enrich() step and are nil on the raw repository row.
	// HasTrainTypes and StopCondition are set from the sst columns by the
	// repository and recomputed by enrich().
	HasTrainTypes  bool            `json:"has_train_types"`
	StationNumbers []StationNumber `json:"station_numbers,omitempty"`
	StopCondition  StopCondition   `json:"stop_condition"`
	Line           *Line           `json:"line,omitempty"`
	Lines          []Line          `json:"lines,omitempty"`
	TrainType      *TrainType      `json:"train_type,omitempty"`
}
