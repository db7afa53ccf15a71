package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/ranking"
	"github.com/osse101/aion2-tracker/internal/worker"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockCharacterService mocks character.Service
type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) Ingest(ctx context.Context, c domain.Character) (*domain.Character, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) Get(ctx context.Context, id string) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockCharacterService) Compare(ctx context.Context, idA, idB string) (*domain.Comparison, error) {
	args := m.Called(ctx, idA, idB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comparison), args.Error(1)
}

func (m *MockCharacterService) Evaluate(ctx context.Context, sheet domain.CharacterSheet) domain.Profile {
	args := m.Called(ctx, sheet)
	return args.Get(0).(domain.Profile)
}

// MockRankingService mocks ranking.Service
type MockRankingService struct {
	mock.Mock
}

func (m *MockRankingService) Leaderboard(ctx context.Context, filter domain.CharacterFilter, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockRankingService) TierList(ctx context.Context, server string) ([]domain.ClassTier, error) {
	args := m.Called(ctx, server)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassTier), args.Error(1)
}

func (m *MockRankingService) Recalibrate(ctx context.Context) (ranking.Recalibration, error) {
	args := m.Called(ctx)
	return args.Get(0).(ranking.Recalibration), args.Error(1)
}

// MockLedgerService mocks ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Record(ctx context.Context, e domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerService) List(ctx context.Context, characterID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, characterID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) Summarize(ctx context.Context, characterID string, from, to time.Time) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, characterID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}

// MockEnqueuer mocks the worker pool
type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) TryEnqueue(job worker.Job) bool {
	args := m.Called(job)
	return args.Bool(0)
}

// serveRoute mounts h on a chi router so URL parameters resolve.
func serveRoute(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
