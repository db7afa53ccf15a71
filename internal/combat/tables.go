package combat

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/aion2-tracker/internal/domain"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// StatCap is the diminishing-returns configuration for one stat.
type StatCap struct {
	SoftCap float64 `yaml:"soft_cap" json:"soft_cap"`
	HardCap float64 `yaml:"hard_cap" json:"hard_cap"`
	Rate    float64 `yaml:"rate" json:"rate"`
}

// GradeScale holds the minimum score for each letter grade below which the next grade applies.
type GradeScale struct {
	S float64 `yaml:"s" json:"s"`
	A float64 `yaml:"a" json:"a"`
	B float64 `yaml:"b" json:"b"`
}

// GradeFor returns the letter grade for a score.
func (g GradeScale) GradeFor(score int64) domain.Grade {
	s := float64(score)
	switch {
	case s >= g.S:
		return domain.GradeS
	case s >= g.A:
		return domain.GradeA
	case s >= g.B:
		return domain.GradeB
	default:
		return domain.GradeC
	}
}

// Validate checks that thresholds are ordered.
func (g GradeScale) Validate() error {
	if g.B < 0 || g.A < g.B || g.S < g.A {
		return fmt.Errorf(ErrMsgGradeOrder, g.S, g.A, g.B)
	}
	return nil
}

// Tables is the static lookup data the pipeline runs against.
// A Tables value is read-only after Load and safe for concurrent use.
type Tables struct {
	Buckets map[domain.Bucket][]string    `yaml:"buckets"`
	Caps    map[string]StatCap            `yaml:"caps"`
	Boards  map[string]map[string]float64 `yaml:"boards"`
	Weights map[domain.Bucket]float64     `yaml:"weights"`
	Grades  GradeScale                    `yaml:"grades"`

	bucketOf map[string]domain.Bucket
	caps     map[string]StatCap
	boards   map[string]map[string]float64
}

// LoadTables decodes and validates a YAML stat table.
func LoadTables(r io.Reader) (*Tables, error) {
	var t Tables
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeTablesFailed, err)
	}
	if err := t.index(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidStatTable, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidStatTable, err)
	}
	return &t, nil
}

// LoadTablesFile reads a stat table from disk. An empty path yields the embedded defaults.
func LoadTablesFile(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTablesFailed, err)
	}
	defer f.Close()
	return LoadTables(f)
}

var defaultTables = sync.OnceValue(func() *Tables {
	t, err := LoadTables(bytes.NewReader(defaultTablesYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded %s: %v", DefaultTablesFile, err))
	}
	return t
})

// DefaultTables returns the embedded stat table.
func DefaultTables() *Tables {
	return defaultTables()
}

// WithGrades returns a copy of t that uses a different grade scale.
func (t *Tables) WithGrades(g GradeScale) *Tables {
	cp := *t
	cp.Grades = g
	return &cp
}

// index builds the normalised lookup maps.
func (t *Tables) index() error {
	t.bucketOf = make(map[string]domain.Bucket)
	for bucket, names := range t.Buckets {
		if !bucket.Valid() {
			return fmt.Errorf(ErrMsgUnknownBucket, bucket, "buckets")
		}
		// the bucket's own name always maps to itself
		t.bucketOf[NormalizeName(string(bucket))] = bucket
		for _, name := range names {
			key := NormalizeName(name)
			if prev, ok := t.bucketOf[key]; ok && prev != bucket {
				return fmt.Errorf(ErrMsgDuplicateAlias, name, prev, bucket)
			}
			t.bucketOf[key] = bucket
		}
	}

	t.caps = make(map[string]StatCap, len(t.Caps))
	for name, c := range t.Caps {
		t.caps[NormalizeName(name)] = c
	}

	t.boards = make(map[string]map[string]float64, len(t.Boards))
	for board, stats := range t.Boards {
		norm := make(map[string]float64, len(stats))
		for name, v := range stats {
			norm[NormalizeName(name)] = v
		}
		t.boards[NormalizeName(board)] = norm
	}
	return nil
}

// Validate rejects tables that would break the cap and scoring invariants.
func (t *Tables) Validate() error {
	for name, c := range t.Caps {
		if c.SoftCap < 0 || c.HardCap <= 0 {
			return fmt.Errorf(ErrMsgNegativeCap, name, c.SoftCap, c.HardCap)
		}
		if c.SoftCap > c.HardCap {
			return fmt.Errorf(ErrMsgSoftAboveHard, name, c.SoftCap, c.HardCap)
		}
		if c.Rate <= 0 || c.Rate > 1 {
			return fmt.Errorf(ErrMsgRateOutOfRange, name, c.Rate)
		}
	}
	for bucket, w := range t.Weights {
		if !bucket.Valid() {
			return fmt.Errorf(ErrMsgUnknownBucket, bucket, "weights")
		}
		if w < 0 {
			return fmt.Errorf(ErrMsgNegativeWeight, bucket, w)
		}
	}
	for board, stats := range t.Boards {
		for name, v := range stats {
			if v < 0 {
				return fmt.Errorf(ErrMsgNegativeBoardStat, board, name, v)
			}
		}
	}
	return t.Grades.Validate()
}

// BucketOf returns the canonical bucket a stat name belongs to.
func (t *Tables) BucketOf(name string) (domain.Bucket, bool) {
	b, ok := t.bucketOf[NormalizeName(name)]
	return b, ok
}

// Cap returns the cap entry for a stat name.
func (t *Tables) Cap(name string) (StatCap, bool) {
	c, ok := t.caps[NormalizeName(name)]
	return c, ok
}

// BoardMax returns the fully-opened stat table for a daevanion board.
func (t *Tables) BoardMax(name string) (map[string]float64, bool) {
	b, ok := t.boards[NormalizeName(name)]
	return b, ok
}

// CappedStats lists the stat names with a cap entry, sorted.
func (t *Tables) CappedStats() []string {
	names := make([]string, 0, len(t.caps))
	for name := range t.caps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
