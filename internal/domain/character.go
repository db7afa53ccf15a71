package domain

import "time"

// StatLine is a single stat row as reported by the game API.
// Value is a display string ("1,234", "+12", "5%"); Extra carries auxiliary
// text such as an enhancement bonus ("+40") or a modifier phrase ("공격력 +5%").
type StatLine struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Extra string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// EquipmentItem is one equipped item with its main and soul-engraving stats.
type EquipmentItem struct {
	Slot         int        `json:"slot"`
	SlotName     string     `json:"slot_name,omitempty"`
	Name         string     `json:"name"`
	Grade        string     `json:"grade,omitempty"`
	Enhancement  int        `json:"enhancement"`
	Breakthrough int        `json:"breakthrough"`
	MainStats    []StatLine `json:"main_stats"`
	SubStats     []StatLine `json:"sub_stats,omitempty"`
}

// Title is an owned title; only equipped titles grant their stats.
type Title struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Equipped    bool       `json:"equipped"`
	Stats       []StatLine `json:"stats,omitempty"`
	Description string     `json:"description,omitempty"`
}

// DaevanionBoard records how many nodes of a board have been opened.
type DaevanionBoard struct {
	Name   string `json:"name"`
	Opened int    `json:"opened"`
	Total  int    `json:"total"`
}

// BaseStat is a character's innate stat value.
type BaseStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CharacterSheet is everything the combat pipeline needs to evaluate a character.
type CharacterSheet struct {
	Equipment []EquipmentItem  `json:"equipment"`
	Titles    []Title          `json:"titles,omitempty"`
	Boards    []DaevanionBoard `json:"boards,omitempty"`
	BaseStats []BaseStat       `json:"base_stats,omitempty"`
}

// Character is a stored snapshot of a player character.
type Character struct {
	ID        string         `json:"id"`
	Server    string         `json:"server"`
	Name      string         `json:"name"`
	Class     string         `json:"class"`
	Level     int            `json:"level"`
	Sheet     CharacterSheet `json:"sheet"`
	Score     int64          `json:"score"`
	Grade     Grade          `json:"grade"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CharacterFilter narrows character listings. Empty fields match everything.
type CharacterFilter struct {
	Server string
	Class  string
}

// Matches reports whether c passes the filter.
func (f CharacterFilter) Matches(c Character) bool {
	if f.Server != "" && f.Server != c.Server {
		return false
	}
	if f.Class != "" && f.Class != c.Class {
		return false
	}
	return true
}
