package panelframe

// FieldConfig holds display and style settings for a field. Shaping stages
// gap-fill it in place; anything already set by the producer wins.
type FieldConfig struct {
	DisplayName string      `json:"displayName,omitempty" yaml:"display_name,omitempty"`
	Unit        string      `json:"unit,omitempty" yaml:"unit,omitempty"`
	Decimals    *int        `json:"decimals,omitempty" yaml:"decimals,omitempty"`
	Min         *float64    `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64    `json:"max,omitempty" yaml:"max,omitempty"`
	Graph       *GraphStyle `json:"graph,omitempty" yaml:"graph,omitempty"`
}

// GraphStyle is the per-field styling used by the graph visualization.
// Booleans and numerics are pointers so a gap-fill can tell "unset" from an
// explicit zero or "off".
type GraphStyle struct {
	AxisLabel     string   `json:"axisLabel,omitempty" yaml:"axis_label,omitempty"`
	AxisPlacement string   `json:"axisPlacement,omitempty" yaml:"axis_placement,omitempty"`
	AxisWidth     *int     `json:"axisWidth,omitempty" yaml:"axis_width,omitempty"`
	AxisGrid      *bool    `json:"axisGrid,omitempty" yaml:"axis_grid,omitempty"`
	ShowBars      *bool    `json:"showBars,omitempty" yaml:"show_bars,omitempty"`
	FillAlpha     *float64 `json:"fillAlpha,omitempty" yaml:"fill_alpha,omitempty"`
	ShowLine      *bool    `json:"showLine,omitempty" yaml:"show_line,omitempty"`
	LineWidth     *int     `json:"lineWidth,omitempty" yaml:"line_width,omitempty"`
	NullMode      string   `json:"nullMode,omitempty" yaml:"null_mode,omitempty"`
	ShowPoints    *bool    `json:"showPoints,omitempty" yaml:"show_points,omitempty"`
	PointRadius   *int     `json:"pointRadius,omitempty" yaml:"point_radius,omitempty"`
}
