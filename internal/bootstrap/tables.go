package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/aion2-tracker/internal/combat"
	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/metrics"
)

// LoadRegistry loads the stat table (embedded defaults when path is empty)
// and publishes its grade thresholds.
func LoadRegistry(path string) (*combat.Registry, error) {
	tables, err := combat.LoadTablesFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedLoadStatTable, err)
	}

	source := path
	if source == "" {
		source = statTableEmbedded
	}
	slog.Info(LogMsgStatTableLoaded,
		"source", source,
		"capped_stats", len(tables.CappedStats()),
		"grade_s", tables.Grades.S,
		"grade_a", tables.Grades.A,
		"grade_b", tables.Grades.B)

	metrics.GradeThreshold.WithLabelValues(string(domain.GradeS)).Set(tables.Grades.S)
	metrics.GradeThreshold.WithLabelValues(string(domain.GradeA)).Set(tables.Grades.A)
	metrics.GradeThreshold.WithLabelValues(string(domain.GradeB)).Set(tables.Grades.B)
	return combat.NewRegistry(tables), nil
}
