package domain

// LineSymbol is derived from a Line's slot arrays, never stored directly.
type LineSymbol struct {
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Shape  string `json:"shape"`
}

// StationNumber is derived from a Station's numbering slots.
type StationNumber struct {
	LineSymbol      string `json:"line_symbol"`
	LineSymbolColor string `json:"line_symbol_color"`
	LineSymbolShape string `json:"line_symbol_shape"`
	StationNumber   string `json:"station_number"`
}
