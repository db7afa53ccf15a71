package character

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/aion2-tracker/internal/combat"
	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/logger"
	"github.com/osse101/aion2-tracker/internal/metrics"
)

// characterNamespace seeds deterministic character IDs
var characterNamespace = uuid.MustParse("6f1c3a52-8d0e-4b7a-9d55-2a4e7c1b9e30")

// TableSource provides the stat tables in effect. *combat.Registry implements it.
type TableSource interface {
	Tables() *combat.Tables
	Generation() uint64
}

// Service manages character snapshots and their combat profiles
type Service interface {
	// Ingest validates, scores and stores a snapshot
	Ingest(ctx context.Context, c domain.Character) (*domain.Character, error)
	Get(ctx context.Context, id string) (*domain.Character, error)
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	Compare(ctx context.Context, idA, idB string) (*domain.Comparison, error)
	// Evaluate scores an ad-hoc sheet without storing it
	Evaluate(ctx context.Context, sheet domain.CharacterSheet) domain.Profile
}

// Config tunes the profile cache
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo   Repository
	tables TableSource
	cache  *profileCache
	now    func() time.Time
}

// NewService creates a character service
func NewService(repo Repository, tables TableSource, cfg Config) Service {
	return &service{
		repo:   repo,
		tables: tables,
		cache:  newProfileCache(cfg.CacheSize, cfg.CacheTTL),
		now:    time.Now,
	}
}

// CharacterID derives the stable ID for a server and character name.
func CharacterID(server, name string) string {
	key := combat.NormalizeName(server) + "/" + combat.NormalizeName(name)
	return uuid.NewSHA1(characterNamespace, []byte(key)).String()
}

func (s *service) Ingest(ctx context.Context, c domain.Character) (*domain.Character, error) {
	log := logger.FromContext(ctx)

	c.Server = strings.TrimSpace(c.Server)
	c.Name = strings.TrimSpace(c.Name)
	c.Class = strings.TrimSpace(c.Class)
	if err := validate(c); err != nil {
		log.Warn(LogMsgIngestRejected, LogFieldError, err)
		return nil, err
	}
	// identity is always server+name
	c.ID = CharacterID(c.Server, c.Name)

	// a swap after this read only makes the cached entry unreachable
	gen := s.tables.Generation()
	tables := s.tables.Tables()
	profile := tables.Evaluate(c.Sheet)
	metrics.ProfilesEvaluated.WithLabelValues(metrics.SourceStored).Inc()

	c.Score = profile.Score.TotalScore
	c.Grade = profile.Score.Grade
	// postgres keeps microseconds
	c.UpdatedAt = s.now().UTC().Truncate(time.Microsecond)

	if err := s.repo.Upsert(ctx, &c); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveFailed, err)
	}

	s.cache.Set(profileKey(c.ID, c.UpdatedAt, gen), profile)
	metrics.CharactersIngested.Inc()
	metrics.GradesAssigned.WithLabelValues(string(c.Grade)).Inc()

	log.Info(LogMsgIngested, LogFieldCharacterID, c.ID, LogFieldScore, c.Score, LogFieldGrade, c.Grade)
	return &c, nil
}

func (s *service) Get(ctx context.Context, id string) (*domain.Character, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFailed, id, err)
	}
	return c, nil
}

func (s *service) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p := s.profile(ctx, c)
	return &p, nil
}

// profile returns the cached profile for a stored snapshot, evaluating on a miss.
func (s *service) profile(ctx context.Context, c *domain.Character) domain.Profile {
	key := profileKey(c.ID, c.UpdatedAt, s.tables.Generation())
	if p, ok := s.cache.Get(key); ok {
		metrics.ProfileCacheHits.Inc()
		logger.FromContext(ctx).Debug(LogMsgProfileCached, LogFieldCharacterID, c.ID)
		return p
	}
	metrics.ProfileCacheMisses.Inc()

	p := s.tables.Tables().Evaluate(c.Sheet)
	metrics.ProfilesEvaluated.WithLabelValues(metrics.SourceStored).Inc()
	s.cache.Set(key, p)
	logger.FromContext(ctx).Debug(LogMsgProfileBuilt, LogFieldCharacterID, c.ID, LogFieldScore, p.Score.TotalScore)
	return p
}

func (s *service) Compare(ctx context.Context, idA, idB string) (*domain.Comparison, error) {
	a, err := s.Get(ctx, idA)
	if err != nil {
		return nil, err
	}
	b, err := s.Get(ctx, idB)
	if err != nil {
		return nil, err
	}

	cmp := compareProfiles(*a, s.profile(ctx, a), *b, s.profile(ctx, b))
	logger.FromContext(ctx).Debug(LogMsgCompared, LogFieldCharacterID, idA, LogFieldOther, idB, LogFieldScore, cmp.ScoreDelta)
	return &cmp, nil
}

func (s *service) Evaluate(ctx context.Context, sheet domain.CharacterSheet) domain.Profile {
	metrics.ProfilesEvaluated.WithLabelValues(metrics.SourceAdhoc).Inc()
	return s.tables.Tables().Evaluate(sheet)
}

func validate(c domain.Character) error {
	switch {
	case c.Server == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidSnapshot, ErrMsgServerRequired)
	case c.Name == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidSnapshot, ErrMsgNameRequired)
	case utf8.RuneCountInString(c.Server) > MaxServerLength:
		return fmt.Errorf("%w: "+ErrMsgFieldTooLong, domain.ErrInvalidSnapshot, "server", MaxServerLength)
	case utf8.RuneCountInString(c.Name) > MaxNameLength:
		return fmt.Errorf("%w: "+ErrMsgFieldTooLong, domain.ErrInvalidSnapshot, "name", MaxNameLength)
	case utf8.RuneCountInString(c.Class) > MaxClassLength:
		return fmt.Errorf("%w: "+ErrMsgFieldTooLong, domain.ErrInvalidSnapshot, "class", MaxClassLength)
	case c.Level < 0 || c.Level > MaxLevel:
		return fmt.Errorf("%w: "+ErrMsgLevelOutOfRange, domain.ErrInvalidSnapshot, MaxLevel)
	}
	return nil
}
