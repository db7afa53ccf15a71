package combat

import "github.com/osse101/aion2-tracker/internal/domain"

// Evaluate runs the whole pipeline: extract, cap, group, score.
func (t *Tables) Evaluate(sheet domain.CharacterSheet) domain.Profile {
	totals := t.Extract(sheet)

	caps := make(map[string]domain.CapResult, len(totals.Flat))
	capped := make(map[string]float64, len(totals.Flat))
	for name, raw := range totals.Flat {
		r := t.ApplyCaps(name, raw)
		caps[name] = r
		capped[name] = r.Value
	}

	buckets := t.Group(capped, totals.Percent)

	return domain.Profile{
		Totals:    totals,
		Caps:      caps,
		Buckets:   buckets,
		Score:     t.Score(buckets),
		Equipment: SummarizeEquipment(sheet.Equipment),
	}
}

// Aggregate returns the capped bucket totals of a sheet.
func (t *Tables) Aggregate(sheet domain.CharacterSheet) map[domain.Bucket]float64 {
	return t.Evaluate(sheet).Buckets.Totals
}

// Evaluate evaluates a sheet against the embedded table.
func Evaluate(sheet domain.CharacterSheet) domain.Profile {
	return DefaultTables().Evaluate(sheet)
}

// SummarizeEquipment reports gear investment levels.
func SummarizeEquipment(items []domain.EquipmentItem) domain.EquipmentSummary {
	s := domain.EquipmentSummary{Items: len(items)}
	if len(items) == 0 {
		return s
	}
	var enh int
	for _, it := range items {
		enh += it.Enhancement
		s.TotalBreakthrough += it.Breakthrough
	}
	s.AverageEnhancement = float64(enh) / float64(len(items))
	return s
}
