package domain

// Bucket is one of the canonical stat groups used for scoring.
type Bucket string

const (
	BucketLife    Bucket = "Life"
	BucketAttack  Bucket = "Attack"
	BucketDefense Bucket = "Defense"
	BucketSpirit  Bucket = "Spirit"
)

// AllBuckets lists the canonical buckets in display order.
var AllBuckets = []Bucket{BucketLife, BucketAttack, BucketDefense, BucketSpirit}

// Valid reports whether b is a canonical bucket.
func (b Bucket) Valid() bool {
	switch b {
	case BucketLife, BucketAttack, BucketDefense, BucketSpirit:
		return true
	}
	return false
}

// Grade is the letter grade attached to a power score.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// Modifier is a percentage increase for a stat or bucket parsed from free text.
type Modifier struct {
	Stat    string  `json:"stat"`
	Percent float64 `json:"percent"`
}

// StatTotals holds summed flat contributions and percentage increases per stat name.
type StatTotals struct {
	Flat    map[string]float64 `json:"flat"`
	Percent map[string]float64 `json:"percent"`
}

// NewStatTotals returns empty, non-nil totals.
func NewStatTotals() StatTotals {
	return StatTotals{
		Flat:    make(map[string]float64),
		Percent: make(map[string]float64),
	}
}

// CapResult is the outcome of applying the soft/hard cap model to one stat.
type CapResult struct {
	Name         string  `json:"name"`
	Raw          float64 `json:"raw"`
	Value        float64 `json:"value"`
	IsSoftCapped bool    `json:"is_soft_capped"`
	IsHardCapped bool    `json:"is_hard_capped"`
}

// Buckets holds the consolidated totals per canonical bucket.
// Other collects capped stats that map to no bucket.
type Buckets struct {
	Totals map[Bucket]float64 `json:"totals"`
	Other  map[string]float64 `json:"other,omitempty"`
}

// PowerScore is the scalar score with its grade.
type PowerScore struct {
	TotalScore int64 `json:"total_score"`
	Grade      Grade `json:"grade"`
}

// EquipmentSummary describes gear investment, independent of stats.
type EquipmentSummary struct {
	Items              int     `json:"items"`
	AverageEnhancement float64 `json:"average_enhancement"`
	TotalBreakthrough  int     `json:"total_breakthrough"`
}

// Profile is the full evaluation of a character sheet.
type Profile struct {
	Totals    StatTotals           `json:"totals"`
	Caps      map[string]CapResult `json:"caps"`
	Buckets   Buckets              `json:"buckets"`
	Score     PowerScore           `json:"score"`
	Equipment EquipmentSummary     `json:"equipment"`
}

// StatDelta compares one stat or bucket between two characters (A minus B).
type StatDelta struct {
	Name  string  `json:"name"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Delta float64 `json:"delta"`
}

// Comparison is the side-by-side result of two character profiles.
type Comparison struct {
	A          Character         `json:"a"`
	B          Character         `json:"b"`
	Buckets    []StatDelta       `json:"buckets"`
	Stats      []StatDelta       `json:"stats"`
	ScoreDelta int64             `json:"score_delta"`
	Leaders    map[Bucket]string `json:"leaders"`
}
