package models

// Limit is the inclusive value range of an axis
type Limit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AxisScaleData is the computed scale of one axis. It is rebuilt on every draw.
type AxisScaleData struct {
	Limit          Limit    `json:"limit"`
	Step           float64  `json:"step"`
	TickCount      int      `json:"tickCount"`
	ValidTickCount int      `json:"validTickCount"`
	Labels         []string `json:"labels"`
	// Prefix and Suffix decorate every label, including ticks added later
	Prefix         string   `json:"prefix,omitempty"`
	Suffix         string   `json:"suffix,omitempty"`
}

// Clone returns a deep copy
func (d AxisScaleData) Clone() AxisScaleData {
	c := d
	c.Labels = append([]string(nil), d.Labels...)
	return c
}
