package domain

import "time"

// LedgerCategory classifies an income or expense entry.
type LedgerCategory string

const (
	LedgerDungeon LedgerCategory = "dungeon"
	LedgerField   LedgerCategory = "field"
	LedgerTrade   LedgerCategory = "trade"
	LedgerQuest   LedgerCategory = "quest"
	LedgerOther   LedgerCategory = "other"
)

// LedgerCategories lists every accepted category.
var LedgerCategories = []LedgerCategory{LedgerDungeon, LedgerField, LedgerTrade, LedgerQuest, LedgerOther}

// Valid reports whether c is a known category.
func (c LedgerCategory) Valid() bool {
	for _, known := range LedgerCategories {
		if c == known {
			return true
		}
	}
	return false
}

// LedgerEntry is one kinah movement. Negative amounts are expenses.
type LedgerEntry struct {
	ID          string         `json:"id"`
	CharacterID string         `json:"character_id"`
	Category    LedgerCategory `json:"category"`
	Amount      int64          `json:"amount"`
	Note        string         `json:"note,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

// DailyTotal is the net amount for one UTC day.
type DailyTotal struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}

// LedgerSummary aggregates entries over a time range.
type LedgerSummary struct {
	CharacterID      string                   `json:"character_id"`
	From             time.Time                `json:"from"`
	To               time.Time                `json:"to"`
	Total            int64                    `json:"total"`
	Income           int64                    `json:"income"`
	Expense          int64                    `json:"expense"`
	ByCategory       map[LedgerCategory]int64 `json:"by_category"`
	Daily            []DailyTotal             `json:"daily"`
	BestDay          *DailyTotal              `json:"best_day,omitempty"`
	AveragePerActive float64                  `json:"average_per_active_day"`
}
