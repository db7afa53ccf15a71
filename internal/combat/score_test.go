package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/aion2-tracker/internal/domain"
)

func TestGradeScale_GradeFor(t *testing.T) {
	g := GradeScale{S: 9000, A: 6500, B: 4000}

	tests := []struct {
		score int64
		want  domain.Grade
	}{
		{12000, domain.GradeS},
		{9000, domain.GradeS},
		{8999, domain.GradeA},
		{6500, domain.GradeA},
		{4000, domain.GradeB},
		{3999, domain.GradeC},
		{0, domain.GradeC},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.GradeFor(tt.score), "score=%d", tt.score)
	}
}

func TestScore(t *testing.T) {
	b := domain.Buckets{Totals: map[domain.Bucket]float64{
		domain.BucketAttack:  5000,
		domain.BucketDefense: 4000,
		domain.BucketLife:    20000,
		domain.BucketSpirit:  1000,
	}}

	// 5000 + 3200 + 2000 + 500
	got := Score(b)
	assert.Equal(t, int64(10700), got.TotalScore)
	assert.Equal(t, domain.GradeS, got.Grade)
}

func TestScore_Saturates(t *testing.T) {
	tests := []struct {
		name   string
		attack float64
		want   int64
	}{
		{"huge total", 1e300, math.MaxInt64},
		{"exactly two to the 63", math.Exp2(63), math.MaxInt64},
		{"infinite bucket", math.Inf(1), math.MaxInt64},
		{"below the limit", 1e18, 1e18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(domain.Buckets{Totals: map[domain.Bucket]float64{domain.BucketAttack: tt.attack}})
			assert.Equal(t, tt.want, got.TotalScore)
			assert.Equal(t, domain.GradeS, got.Grade)
		})
	}
}

func TestScore_EmptyBuckets(t *testing.T) {
	got := Score(domain.Buckets{})
	assert.Equal(t, int64(0), got.TotalScore)
	assert.Equal(t, domain.GradeC, got.Grade)
}

func TestGradeScaleFromPercentiles(t *testing.T) {
	t.Run("empty population", func(t *testing.T) {
		_, ok := GradeScaleFromPercentiles(nil)
		assert.False(t, ok)
	})

	t.Run("uniform population", func(t *testing.T) {
		scores := make([]int64, 101)
		for i := range scores {
			scores[i] = int64(i * 100)
		}
		g, ok := GradeScaleFromPercentiles(scores)

		assert.True(t, ok)
		assert.InDelta(t, 9500, g.S, 1e-9)
		assert.InDelta(t, 7500, g.A, 1e-9)
		assert.InDelta(t, 4000, g.B, 1e-9)
		assert.NoError(t, g.Validate())
	})
}

func TestTables_WithGrades(t *testing.T) {
	base := DefaultTables()
	custom := base.WithGrades(GradeScale{S: 100, A: 50, B: 10})

	b := domain.Buckets{Totals: map[domain.Bucket]float64{domain.BucketAttack: 60}}
	assert.Equal(t, domain.GradeA, custom.Score(b).Grade)
	assert.Equal(t, domain.GradeC, base.Score(b).Grade, "original table must be untouched")
}
