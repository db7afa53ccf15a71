package combat

import (
	"math"

	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/utils"
)

// Score combines bucket totals into a weighted power score and grade.
// The score saturates at math.MaxInt64.
func (t *Tables) Score(b domain.Buckets) domain.PowerScore {
	var total float64
	for _, bucket := range domain.AllBuckets {
		if w := t.Weights[bucket]; w > 0 {
			total += b.Totals[bucket] * w
		}
	}
	score := saturateScore(total)
	return domain.PowerScore{
		TotalScore: score,
		Grade:      t.Grades.GradeFor(score),
	}
}

// saturateScore rounds v into [0, math.MaxInt64].
func saturateScore(v float64) int64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(math.Round(v))
}

// Score scores bucket totals against the embedded table.
func Score(b domain.Buckets) domain.PowerScore {
	return DefaultTables().Score(b)
}

// GradeScaleFromPercentiles derives grade thresholds from a score population.
// ok is false when the population is empty.
func GradeScaleFromPercentiles(scores []int64) (GradeScale, bool) {
	if len(scores) == 0 {
		return GradeScale{}, false
	}
	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = float64(s)
	}
	return GradeScale{
		S: utils.Percentile(values, PercentileGradeS),
		A: utils.Percentile(values, PercentileGradeA),
		B: utils.Percentile(values, PercentileGradeB),
	}, true
}
