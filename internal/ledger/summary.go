package ledger

import (
	"sort"

	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/utils"
)

// Summarize aggregates entries. Days are UTC calendar days; Expense is the
// magnitude of negative amounts. BestDay is the highest net day, earliest on ties.
// Sums saturate at the int64 limits.
func Summarize(entries []domain.LedgerEntry) domain.LedgerSummary {
	sum := domain.LedgerSummary{
		ByCategory: make(map[domain.LedgerCategory]int64),
		Daily:      []domain.DailyTotal{},
	}

	daily := make(map[string]int64)
	for _, e := range entries {
		sum.Total = utils.AddInt64(sum.Total, e.Amount)
		if e.Amount > 0 {
			sum.Income = utils.AddInt64(sum.Income, e.Amount)
		} else {
			sum.Expense = utils.AddInt64(sum.Expense, utils.AbsInt64(e.Amount))
		}
		sum.ByCategory[e.Category] = utils.AddInt64(sum.ByCategory[e.Category], e.Amount)
		day := e.OccurredAt.UTC().Format(dayLayout)
		daily[day] = utils.AddInt64(daily[day], e.Amount)
	}

	for day, total := range daily {
		sum.Daily = append(sum.Daily, domain.DailyTotal{Date: day, Total: total})
	}
	sort.Slice(sum.Daily, func(i, j int) bool { return sum.Daily[i].Date < sum.Daily[j].Date })

	for i := range sum.Daily {
		if sum.BestDay == nil || sum.Daily[i].Total > sum.BestDay.Total {
			best := sum.Daily[i]
			sum.BestDay = &best
		}
	}
	if len(sum.Daily) > 0 {
		sum.AveragePerActive = utils.Round(float64(sum.Total)/float64(len(sum.Daily)), 2)
	}
	return sum
}
