package combat

import (
	"math"

	"github.com/osse101/aion2-tracker/internal/domain"
)

// ApplyCaps runs one stat value through the soft/hard cap model.
//
// Up to the soft cap the value is unchanged. Beyond it, each extra point is
// worth Rate points. The result never exceeds the hard cap. Stats without a
// cap entry pass through unchanged; negative or NaN input becomes 0.
func (t *Tables) ApplyCaps(name string, raw float64) domain.CapResult {
	res := domain.CapResult{
		Name:  NormalizeName(name),
		Raw:   raw,
		Value: raw,
	}
	if math.IsNaN(raw) || raw < 0 {
		res.Value = 0
	}

	c, ok := t.Cap(name)
	if !ok {
		return res
	}

	v := res.Value
	if v > c.SoftCap {
		v = c.SoftCap + (v-c.SoftCap)*c.Rate
		res.IsSoftCapped = true
	}
	if v > c.HardCap {
		v = c.HardCap
		res.IsHardCapped = true
	}
	res.Value = v
	return res
}

// ApplyCaps applies the embedded cap table.
func ApplyCaps(name string, raw float64) domain.CapResult {
	return DefaultTables().ApplyCaps(name, raw)
}
