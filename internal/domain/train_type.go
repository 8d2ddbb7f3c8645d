package domain

// TrainType is a service pattern (local, rapid, express, ...). When read
// through a station it carries the station_station_types join columns
// (StationCd, Pass); when read through GetRouteTypes it is hydrated with
// every member Line instead.
type TrainType struct {
	ID          int64  `db:"id" json:"id"`
	StationCd   int64  `db:"station_cd" json:"station_cd"`
	TypeCd      int64  `db:"type_cd" json:"type_cd"`
	LineGroupCd int64  `db:"line_group_cd" json:"line_group_cd"`
	Pass        int64  `db:"pass" json:"pass"`
	TypeName    string `db:"type_name" json:"type_name"`
	TypeNameK   string `db:"type_name_k" json:"type_name_k"`
	TypeNameR   *string `db:"type_name_r" json:"type_name_r,omitempty"`
	TypeNameZh  *string `db:"type_name_zh" json:"type_name_zh,omitempty"`
	TypeNameKo  *string `db:"type_name_ko" json:"type_name_ko,omitempty"`
	Color       string `db:"color" json:"color"`
	Direction   int64  `db:"direction" json:"direction"`
	Kind        int64  `db:"kind" json:"kind"`
	Priority    int64  `db:"priority" json:"-"`

	Line  *Line  `json:"line,omitempty"`
	Lines []Line `json:"lines,omitempty"`
}
