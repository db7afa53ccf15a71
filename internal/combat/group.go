package combat

import (
	"sort"

	"github.com/osse101/aion2-tracker/internal/domain"
)

// Group folds capped per-stat values into the canonical buckets.
// Percentage increases apply to the bucket that owns the named stat.
// Stats are summed in name order so repeated calls give identical floats.
func (t *Tables) Group(capped map[string]float64, percent map[string]float64) domain.Buckets {
	out := domain.Buckets{
		Totals: make(map[domain.Bucket]float64, len(domain.AllBuckets)),
	}
	sums := make(map[domain.Bucket]float64, len(domain.AllBuckets))
	pcts := make(map[domain.Bucket]float64, len(domain.AllBuckets))

	for _, name := range sortedKeys(capped) {
		v := capped[name]
		b, ok := t.BucketOf(name)
		if !ok {
			if out.Other == nil {
				out.Other = make(map[string]float64)
			}
			out.Other[name] += v
			continue
		}
		sums[b] += v
	}
	for _, name := range sortedKeys(percent) {
		if b, ok := t.BucketOf(name); ok {
			pcts[b] += percent[name]
		}
	}

	for _, b := range domain.AllBuckets {
		out.Totals[b] = sums[b] * (1 + pcts[b]/100)
	}
	return out
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
