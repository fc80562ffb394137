package colorscale

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/wildlens/camtrap-backend-go/internal/models"
)

// ZeroColor is the neutral sentinel for zero-rate (or zero-effort) values.
// It sits outside the gradient so surveyed-but-empty cells read differently
// from low-rate cells.
const ZeroColor = "#9e9e9e"

// DefaultAnchors is a yellow-to-red ramp, low rate to high
var DefaultAnchors = []string{"#ffffb2", "#fecc5c", "#fd8d3c", "#f03b20", "#bd0026"}

// Scale maps detection rates onto an ordered list of anchor colors, blending
// between neighbors in CIE Lab so intermediate colors look evenly spaced.
type Scale struct {
	anchors []colorful.Color
}

// New builds a scale from hex anchor colors; unparsable anchors are skipped.
// With no valid anchors the default ramp is used.
func New(anchors ...string) *Scale {
	s := &Scale{}
	for _, a := range anchors {
		c, err := colorful.Hex(a)
		if err != nil {
			continue
		}
		s.anchors = append(s.anchors, c)
	}
	if len(s.anchors) == 0 {
		return NewDefault()
	}
	return s
}

// NewDefault builds a scale over DefaultAnchors
func NewDefault() *Scale {
	s := &Scale{anchors: make([]colorful.Color, 0, len(DefaultAnchors))}
	for _, a := range DefaultAnchors {
		c, err := colorful.Hex(a)
		if err != nil {
			continue // anchors are fixed literals, never hit
		}
		s.anchors = append(s.anchors, c)
	}
	return s
}

// CalculateDomain calibrates the color domain over the non-zero rates of an
// aggregation run. Percentiles are taken by sorted index, floor(0.33·n) and
// floor(0.66·n). Empty or all-zero input yields the zero domain.
func CalculateDomain(rates []float64) models.ColorDomain {
	var positive []float64
	for _, r := range rates {
		if r > 0 {
			positive = append(positive, r)
		}
	}
	if len(positive) == 0 {
		return models.ColorDomain{}
	}

	sort.Float64s(positive)
	n := len(positive)

	return models.ColorDomain{
		Min: positive[0],
		Max: positive[n-1],
		P33: positive[int(math.Floor(0.33*float64(n)))],
		P66: positive[int(math.Floor(0.66*float64(n)))],
	}
}

// ColorFor maps a rate to a hex RGB color. Rates at or below zero return the
// ZeroColor sentinel; positive rates are normalized against domainMax,
// clamped to [0,1], and blended monotonically along the anchor ramp. The
// mapping is a pure function of (rate, domainMax).
func (s *Scale) ColorFor(rate, domainMax float64) string {
	if rate <= 0 {
		return ZeroColor
	}

	t := 1.0 // a positive rate against a degenerate domain saturates
	if domainMax > 0 {
		t = rate / domainMax
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	last := len(s.anchors) - 1
	pos := t * float64(last)
	i := int(math.Floor(pos))
	if i >= last {
		return s.anchors[last].Hex()
	}

	frac := pos - float64(i)
	return s.anchors[i].BlendLab(s.anchors[i+1], frac).Clamped().Hex()
}

// Stops samples the ramp at evenly spaced rates up to domainMax, for legend
// rendering.
func (s *Scale) Stops(domainMax float64, count int) []models.LegendStop {
	if count < 2 || domainMax <= 0 {
		return nil
	}

	stops := make([]models.LegendStop, 0, count)
	for i := 0; i < count; i++ {
		value := domainMax * float64(i) / float64(count-1)
		color := ZeroColor
		if value > 0 {
			color = s.ColorFor(value, domainMax)
		}
		stops = append(stops, models.LegendStop{Value: value, Color: color})
	}
	return stops
}
