package combat

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/aion2-tracker/internal/domain"
)

func TestRegistry_SetGrades(t *testing.T) {
	r := NewRegistry(DefaultTables())
	before := r.Tables()
	require.Equal(t, uint64(0), r.Generation())

	require.NoError(t, r.SetGrades(GradeScale{S: 300, A: 200, B: 100}))

	assert.Equal(t, uint64(1), r.Generation())
	assert.Equal(t, domain.GradeS, r.Tables().Grades.GradeFor(300))
	// the previous snapshot is untouched
	assert.Equal(t, DefaultTables().Grades, before.Grades)
	assert.Equal(t, before.Weights, r.Tables().Weights)
}

func TestRegistry_SetGradesRejectsInvalid(t *testing.T) {
	r := NewRegistry(DefaultTables())

	err := r.SetGrades(GradeScale{S: 100, A: 200, B: 50})

	assert.Error(t, err)
	assert.Equal(t, uint64(0), r.Generation())
	assert.Equal(t, DefaultTables().Grades, r.Tables().Grades)
}

func TestRegistry_ConcurrentReaders(t *testing.T) {
	r := NewRegistry(DefaultTables())
	sheet := sampleSheet()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = r.SetGrades(GradeScale{S: float64(3000 + i), A: 2000, B: 1000})
				return
			}
			p := r.Tables().Evaluate(sheet)
			assert.Equal(t, int64(1331), p.Score.TotalScore)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, uint64(4), r.Generation())
}
