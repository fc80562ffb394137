package models

// ColorDomain is the calibrated domain of a detection-rate color scale,
// computed over the non-zero rates of an aggregation run.
type ColorDomain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	P33 float64 `json:"p33"`
	P66 float64 `json:"p66"`
}

// LegendStop is one labeled sample of the color ramp
type LegendStop struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// LegendResponse describes the color scale for legend rendering
type LegendResponse struct {
	Domain    ColorDomain  `json:"domain"`
	ZeroColor string       `json:"zero_color"`
	Stops     []LegendStop `json:"stops"`
}
