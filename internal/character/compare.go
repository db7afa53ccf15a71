package character

import (
	"sort"

	"github.com/osse101/aion2-tracker/internal/domain"
)

// compareProfiles builds A-minus-B deltas. Leaders holds the ID of the
// character with the larger bucket total, or "" on a tie.
func compareProfiles(a domain.Character, pa domain.Profile, b domain.Character, pb domain.Profile) domain.Comparison {
	cmp := domain.Comparison{
		A:          a,
		B:          b,
		ScoreDelta: pa.Score.TotalScore - pb.Score.TotalScore,
		Leaders:    make(map[domain.Bucket]string, len(domain.AllBuckets)),
	}

	for _, bucket := range domain.AllBuckets {
		va, vb := pa.Buckets.Totals[bucket], pb.Buckets.Totals[bucket]
		cmp.Buckets = append(cmp.Buckets, domain.StatDelta{Name: string(bucket), A: va, B: vb, Delta: va - vb})
		switch {
		case va > vb:
			cmp.Leaders[bucket] = a.ID
		case vb > va:
			cmp.Leaders[bucket] = b.ID
		default:
			cmp.Leaders[bucket] = ""
		}
	}

	names := make(map[string]struct{}, len(pa.Caps)+len(pb.Caps))
	for name := range pa.Caps {
		names[name] = struct{}{}
	}
	for name := range pb.Caps {
		names[name] = struct{}{}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	cmp.Stats = make([]domain.StatDelta, 0, len(sorted))
	for _, name := range sorted {
		va, vb := pa.Caps[name].Value, pb.Caps[name].Value
		cmp.Stats = append(cmp.Stats, domain.StatDelta{Name: name, A: va, B: vb, Delta: va - vb})
	}
	return cmp
}
