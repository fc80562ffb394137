package colorscale

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildlens/camtrap-backend-go/internal/models"
)

func TestCalculateDomain(t *testing.T) {
	rates := []float64{4.0, 1.0, 3.0, 2.0, 5.0}

	domain := CalculateDomain(rates)

	assert.Equal(t, 1.0, domain.Min)
	assert.Equal(t, 5.0, domain.Max)
	// sorted: [1 2 3 4 5], floor(0.33*5)=1, floor(0.66*5)=3
	assert.Equal(t, 2.0, domain.P33)
	assert.Equal(t, 4.0, domain.P66)
}

func TestCalculateDomainFiltersNonPositive(t *testing.T) {
	domain := CalculateDomain([]float64{0, -1, 2.0, 0, 6.0})

	assert.Equal(t, 2.0, domain.Min)
	assert.Equal(t, 6.0, domain.Max)
}

func TestCalculateDomainDegenerate(t *testing.T) {
	require.NotPanics(t, func() {
		assert.Equal(t, models.ColorDomain{}, CalculateDomain(nil))
		assert.Equal(t, models.ColorDomain{}, CalculateDomain([]float64{}))
		assert.Equal(t, models.ColorDomain{}, CalculateDomain([]float64{0, 0, 0}))
	})
}

func TestCalculateDomainSingleValue(t *testing.T) {
	domain := CalculateDomain([]float64{3.5})

	assert.Equal(t, models.ColorDomain{Min: 3.5, Max: 3.5, P33: 3.5, P66: 3.5}, domain)
}

func TestColorForZeroIsSentinel(t *testing.T) {
	s := NewDefault()

	assert.Equal(t, ZeroColor, s.ColorFor(0, 10))
	assert.Equal(t, ZeroColor, s.ColorFor(-1, 10))

	// The sentinel never collides with a gradient color
	for _, rate := range []float64{0.1, 2.5, 5, 10} {
		assert.NotEqual(t, ZeroColor, s.ColorFor(rate, 10))
	}
}

func TestColorForMonotonic(t *testing.T) {
	// Black-to-white ramp: the gray level must rise strictly with the rate
	s := New("#000000", "#ffffff")
	domain := CalculateDomain([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	low := grayLevel(t, s.ColorFor(domain.P33, domain.Max))
	high := grayLevel(t, s.ColorFor(domain.P66, domain.Max))

	assert.Less(t, low, high, "p33 must sit strictly below p66 on the ramp")
}

func TestColorForDeterministic(t *testing.T) {
	s := NewDefault()

	assert.Equal(t, s.ColorFor(3.3, 10), s.ColorFor(3.3, 10))
}

func TestColorForClampsAboveMax(t *testing.T) {
	s := NewDefault()

	assert.Equal(t, s.ColorFor(10, 10), s.ColorFor(50, 10), "rates above the domain saturate at the top anchor")
}

func TestColorForEndpoints(t *testing.T) {
	s := New("#000000", "#ffffff")

	assert.Equal(t, "#ffffff", s.ColorFor(10, 10))
	assert.Equal(t, s.anchors[len(s.anchors)-1].Hex(), s.ColorFor(7, 0), "degenerate domain saturates")
}

func TestNewSkipsInvalidAnchors(t *testing.T) {
	s := New("nonsense", "#112233")

	require.Len(t, s.anchors, 1)
}

func TestNewDefaultParsesEveryAnchor(t *testing.T) {
	s := NewDefault()

	require.Len(t, s.anchors, len(DefaultAnchors))
	for i, a := range DefaultAnchors {
		assert.Equal(t, a, s.anchors[i].Hex())
	}
}

func TestStops(t *testing.T) {
	s := NewDefault()

	stops := s.Stops(10, 5)

	require.Len(t, stops, 5)
	assert.Equal(t, 0.0, stops[0].Value)
	assert.Equal(t, ZeroColor, stops[0].Color)
	assert.Equal(t, 10.0, stops[4].Value)

	assert.Nil(t, s.Stops(0, 5))
	assert.Nil(t, s.Stops(10, 1))
}

func grayLevel(t *testing.T, hex string) int64 {
	t.Helper()
	require.Len(t, hex, 7)
	v, err := strconv.ParseInt(hex[1:3], 16, 64)
	require.NoError(t, err)
	return v
}
