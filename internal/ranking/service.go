package ranking

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/combat"
	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/logger"
	"github.com/osse101/aion2-tracker/internal/metrics"
	"github.com/osse101/aion2-tracker/internal/utils"
)

// GradeRegistry exposes the tables in effect and lets the grade scale be swapped.
// *combat.Registry implements it.
type GradeRegistry interface {
	Tables() *combat.Tables
	SetGrades(g combat.GradeScale) error
}

// Recalibration reports the outcome of a Recalibrate call
type Recalibration struct {
	Applied    bool              `json:"applied"`
	Population int               `json:"population"`
	Scale      combat.GradeScale `json:"scale"`
}

// Service builds rankings over stored characters
type Service interface {
	Leaderboard(ctx context.Context, filter domain.CharacterFilter, limit int) ([]domain.LeaderboardEntry, error)
	TierList(ctx context.Context, server string) ([]domain.ClassTier, error)
	// Recalibrate rebuilds the grade scale from the stored score population
	Recalibrate(ctx context.Context) (Recalibration, error)
}

type service struct {
	repo          character.Repository
	registry      GradeRegistry
	minPopulation int
}

// NewService creates a ranking service. minPopulation <= 0 uses DefaultMinPopulation.
func NewService(repo character.Repository, registry GradeRegistry, minPopulation int) Service {
	if minPopulation <= 0 {
		minPopulation = DefaultMinPopulation
	}
	return &service{repo: repo, registry: registry, minPopulation: minPopulation}
}

// ClampLimit maps a requested leaderboard size into [1, MaxLimit].
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Leaderboard ranks by score desc with ties broken by name. Tied scores share
// a rank (1, 2, 2, 4). Percentile is the share of the filtered population at
// or below the entry's score; grades use the current scale.
func (s *service) Leaderboard(ctx context.Context, filter domain.CharacterFilter, limit int) ([]domain.LeaderboardEntry, error) {
	population, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadPopulationFailed, err)
	}
	scores := scoresOf(population)

	top, err := s.repo.TopByScore(ctx, filter, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadPopulationFailed, err)
	}

	grades := s.registry.Tables().Grades
	entries := make([]domain.LeaderboardEntry, len(top))
	for i, c := range top {
		rank := i + 1
		if i > 0 && c.Score == top[i-1].Score {
			rank = entries[i-1].Rank
		}
		entries[i] = domain.LeaderboardEntry{
			Rank:        rank,
			CharacterID: c.ID,
			Name:        c.Name,
			Server:      c.Server,
			Class:       c.Class,
			Score:       c.Score,
			Grade:       grades.GradeFor(c.Score),
			Percentile:  utils.Round(utils.PercentRank(scores, float64(c.Score)), 2),
		}
	}
	return entries, nil
}

// TierList summarises each class on a server (all servers when empty),
// ordered by average score desc then class name.
func (s *service) TierList(ctx context.Context, server string) ([]domain.ClassTier, error) {
	population, err := s.repo.List(ctx, domain.CharacterFilter{Server: server})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadPopulationFailed, err)
	}

	byClass := make(map[string][]float64)
	for _, c := range population {
		class := c.Class
		if class == "" {
			class = UnclassedLabel
		}
		byClass[class] = append(byClass[class], float64(c.Score))
	}

	grades := s.registry.Tables().Grades
	tiers := make([]domain.ClassTier, 0, len(byClass))
	for class, scores := range byClass {
		avg := utils.Mean(scores)
		tiers = append(tiers, domain.ClassTier{
			Class:        class,
			Count:        len(scores),
			AverageScore: utils.Round(avg, 2),
			MedianScore:  utils.Round(utils.Median(scores), 2),
			Tier:         grades.GradeFor(int64(math.Round(avg))),
		})
	}
	sort.Slice(tiers, func(i, j int) bool {
		if tiers[i].AverageScore != tiers[j].AverageScore {
			return tiers[i].AverageScore > tiers[j].AverageScore
		}
		return tiers[i].Class < tiers[j].Class
	})
	return tiers, nil
}

func (s *service) Recalibrate(ctx context.Context) (Recalibration, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRecalibrateStarting)

	population, err := s.repo.List(ctx, domain.CharacterFilter{})
	if err != nil {
		metrics.Recalibrations.WithLabelValues(metrics.OutcomeFailed).Inc()
		return Recalibration{}, fmt.Errorf(ErrMsgLoadPopulationFailed, err)
	}

	result := Recalibration{Population: len(population), Scale: s.registry.Tables().Grades}
	if len(population) < s.minPopulation {
		metrics.Recalibrations.WithLabelValues(metrics.OutcomeSkipped).Inc()
		log.Info(LogMsgRecalibrateSkipped, LogFieldPopulation, len(population), LogFieldMinPopulation, s.minPopulation)
		return result, nil
	}

	scale, ok := combat.GradeScaleFromPercentiles(scoresAsInt(population))
	if !ok {
		metrics.Recalibrations.WithLabelValues(metrics.OutcomeSkipped).Inc()
		return result, nil
	}
	if err := s.registry.SetGrades(scale); err != nil {
		metrics.Recalibrations.WithLabelValues(metrics.OutcomeFailed).Inc()
		return result, fmt.Errorf(ErrMsgApplyScaleFailed, err)
	}

	metrics.Recalibrations.WithLabelValues(metrics.OutcomeApplied).Inc()
	metrics.GradeThreshold.WithLabelValues(string(domain.GradeS)).Set(scale.S)
	metrics.GradeThreshold.WithLabelValues(string(domain.GradeA)).Set(scale.A)
	metrics.GradeThreshold.WithLabelValues(string(domain.GradeB)).Set(scale.B)
	log.Info(LogMsgRecalibrateApplied, LogFieldPopulation, len(population), LogFieldScale, scale)

	result.Applied = true
	result.Scale = scale
	return result, nil
}

func scoresOf(cs []domain.Character) []float64 {
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = float64(c.Score)
	}
	return out
}

func scoresAsInt(cs []domain.Character) []int64 {
	out := make([]int64, len(cs))
	for i, c := range cs {
		out[i] = c.Score
	}
	return out
}
