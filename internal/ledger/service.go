package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/logger"
	"github.com/osse101/aion2-tracker/internal/metrics"
)

// Service records kinah income and expenses per character
type Service interface {
	Record(ctx context.Context, e domain.LedgerEntry) (*domain.LedgerEntry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, characterID string, from, to time.Time) ([]domain.LedgerEntry, error)
	Summarize(ctx context.Context, characterID string, from, to time.Time) (*domain.LedgerSummary, error)
}

type service struct {
	repo       Repository
	characters CharacterLookup
	now        func() time.Time
}

// NewService creates a ledger service
func NewService(repo Repository, characters CharacterLookup) Service {
	return &service{repo: repo, characters: characters, now: time.Now}
}

func (s *service) Record(ctx context.Context, e domain.LedgerEntry) (*domain.LedgerEntry, error) {
	e.Note = strings.TrimSpace(e.Note)
	if err := validateEntry(e); err != nil {
		return nil, err
	}
	if _, err := s.characters.Get(ctx, e.CharacterID); err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	e.ID = uuid.NewString()
	e.CreatedAt = now
	if e.OccurredAt.IsZero() {
		e.OccurredAt = now
	}
	e.OccurredAt = e.OccurredAt.UTC().Truncate(time.Microsecond)

	if err := s.repo.Insert(ctx, &e); err != nil {
		return nil, fmt.Errorf(ErrMsgRecordFailed, err)
	}

	metrics.LedgerEntriesRecorded.WithLabelValues(string(e.Category)).Inc()
	logger.FromContext(ctx).Info(LogMsgEntryRecorded,
		LogFieldEntryID, e.ID, LogFieldCharacterID, e.CharacterID,
		LogFieldCategory, e.Category, LogFieldAmount, e.Amount)
	return &e, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: "+ErrMsgInvalidEntryID, domain.ErrInvalidEntry, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, id, err)
	}
	logger.FromContext(ctx).Info(LogMsgEntryDeleted, LogFieldEntryID, id)
	return nil
}

func (s *service) List(ctx context.Context, characterID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	from, to, err := s.window(characterID, from, to)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, characterID, from, to)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return entries, nil
}

func (s *service) Summarize(ctx context.Context, characterID string, from, to time.Time) (*domain.LedgerSummary, error) {
	from, to, err := s.window(characterID, from, to)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, characterID, from, to)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	sum := Summarize(entries)
	sum.CharacterID = characterID
	sum.From = from
	sum.To = to
	return &sum, nil
}

// window fills in defaults: to = now, from = to - DefaultWindow.
func (s *service) window(characterID string, from, to time.Time) (time.Time, time.Time, error) {
	if characterID == "" {
		return from, to, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCharacterRequired)
	}
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.Add(-DefaultWindow)
	}
	if !from.Before(to) {
		return from, to, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidRange)
	}
	return from.UTC(), to.UTC(), nil
}

func validateEntry(e domain.LedgerEntry) error {
	switch {
	case e.CharacterID == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidEntry, ErrMsgCharacterRequired)
	case e.Amount == 0:
		return fmt.Errorf("%w: %s", domain.ErrInvalidEntry, ErrMsgAmountZero)
	case e.Amount > MaxAmount || e.Amount < -MaxAmount:
		return fmt.Errorf("%w: "+ErrMsgAmountOutOfRange, domain.ErrInvalidEntry, MaxAmount, MaxAmount)
	case !e.Category.Valid():
		return fmt.Errorf("%w: "+ErrMsgUnknownCategory, domain.ErrInvalidEntry, e.Category)
	case utf8.RuneCountInString(e.Note) > MaxNoteLength:
		return fmt.Errorf("%w: "+ErrMsgNoteTooLong, domain.ErrInvalidEntry, MaxNoteLength)
	}
	return nil
}
