package domain

// LeaderboardEntry is a character's position in a ranking.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	CharacterID string  `json:"character_id"`
	Name        string  `json:"name"`
	Server      string  `json:"server"`
	Class       string  `json:"class"`
	Score       int64   `json:"score"`
	Grade       Grade   `json:"grade"`
	Percentile  float64 `json:"percentile"`
}

// ClassTier summarises one class in the tier list.
type ClassTier struct {
	Class        string  `json:"class"`
	Count        int     `json:"count"`
	AverageScore float64 `json:"average_score"`
	MedianScore  float64 `json:"median_score"`
	Tier         Grade   `json:"tier"`
}
