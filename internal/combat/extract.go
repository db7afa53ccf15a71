package combat

import (
	"math"

	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/utils"
)

// Extract sums every stat contribution of a sheet per normalised stat name.
// Flat values and percentage increases are kept apart; missing or unparseable
// fields contribute nothing.
func (t *Tables) Extract(sheet domain.CharacterSheet) domain.StatTotals {
	totals := domain.NewStatTotals()

	for _, item := range sheet.Equipment {
		for _, line := range item.MainStats {
			addLine(totals, line, true)
		}
		// soul engraving rows carry no enhancement bonus
		for _, line := range item.SubStats {
			addLine(totals, line, false)
		}
	}

	for _, title := range sheet.Titles {
		if !title.Equipped {
			continue
		}
		for _, line := range title.Stats {
			addLine(totals, line, false)
		}
		addModifiers(totals, ParseModifiers(title.Description))
	}

	for _, board := range sheet.Boards {
		maxStats, ok := t.BoardMax(board.Name)
		if !ok {
			continue
		}
		ratio := boardRatio(board)
		for name, v := range maxStats {
			addFlat(totals, name, v*ratio)
		}
	}

	for _, base := range sheet.BaseStats {
		addFlat(totals, base.Name, base.Value)
	}

	return totals
}

// boardRatio is the opened share of a board, clamped to [0,1].
func boardRatio(b domain.DaevanionBoard) float64 {
	if b.Total <= 0 {
		return 0
	}
	return utils.Clamp(float64(b.Opened)/float64(b.Total), 0, 1)
}

// addLine adds a stat row. When bonus is set a numeric Extra counts toward
// the row's own stat; any other Extra text is scanned for modifier phrases.
func addLine(totals domain.StatTotals, line domain.StatLine, bonus bool) {
	if v, pct, ok := ParseStatValue(line.Value); ok {
		addValue(totals, line.Name, v, pct)
	}
	if line.Extra == "" {
		return
	}
	if v, pct, ok := ParseStatValue(line.Extra); ok {
		if bonus {
			addValue(totals, line.Name, v, pct)
		}
		return
	}
	addModifiers(totals, ParseModifiers(line.Extra))
}

func addValue(totals domain.StatTotals, name string, v float64, percent bool) {
	if percent {
		addPercent(totals, name, v)
		return
	}
	addFlat(totals, name, v)
}

func addModifiers(totals domain.StatTotals, mods []domain.Modifier) {
	for _, m := range mods {
		addPercent(totals, m.Stat, m.Percent)
	}
}

func addFlat(totals domain.StatTotals, name string, v float64) {
	key := NormalizeName(name)
	if key == "" || !(v > 0) || math.IsInf(v, 1) {
		return
	}
	totals.Flat[key] = math.Min(totals.Flat[key]+v, MaxStatTotal)
}

func addPercent(totals domain.StatTotals, name string, v float64) {
	key := NormalizeName(name)
	if key == "" || !(v > 0) || math.IsInf(v, 1) {
		return
	}
	totals.Percent[key] = math.Min(totals.Percent[key]+v, MaxStatTotal)
}
