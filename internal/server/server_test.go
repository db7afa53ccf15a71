package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/combat"
	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/ledger"
	"github.com/osse101/aion2-tracker/internal/ranking"
	"github.com/osse101/aion2-tracker/internal/worker"
)

const testAPIKey = "test-admin-key"

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (p stubPool) Close()                     {}

func newTestRouter(t *testing.T) *httptest.Server {
	t.Helper()
	registry := combat.NewRegistry(combat.DefaultTables())
	charRepo := character.NewMemoryRepository()
	characters := character.NewService(charRepo, registry, character.Config{CacheSize: 32, CacheTTL: time.Minute})
	rankings := ranking.NewService(charRepo, registry, 1)
	ledgerSvc := ledger.NewService(ledger.NewMemoryRepository(), characters)

	pool := worker.NewPool(1, 4)
	pool.Start()
	t.Cleanup(pool.Stop)

	srv := httptest.NewServer(NewRouter(
		Options{APIKey: testAPIKey, Version: "test"},
		Services{
			DB:         stubPool{},
			Tables:     registry,
			Characters: characters,
			Rankings:   rankings,
			Ledger:     ledgerSvc,
			Jobs:       pool,
		},
	))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string, admin bool) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	if admin {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func ingestBody(name, attack string) string {
	return fmt.Sprintf(`{"server":"이스라펠","name":%q,"class":"검성","level":45,"sheet":{"equipment":[{"slot":1,"name":"대검","main_stats":[{"name":"공격력","value":%q}]}],"base_stats":[{"name":"생명력","value":5000}]}}`, name, attack)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	srv := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		resp, _ := do(t, srv, "GET", path, "", false)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, HeaderValueNoSniff, resp.Header.Get(HeaderContentType), path)
	}
}

func TestRouter_AdminRequiresKey(t *testing.T) {
	srv := newTestRouter(t)

	resp, _ := do(t, srv, "POST", "/api/v1/admin/characters", ingestBody("Aria", "400"), false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, srv, "POST", "/api/v1/admin/rankings/recalibrate", "", false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// read endpoints stay open
	resp, _ = do(t, srv, "GET", "/api/v1/rankings", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_CharacterFlow(t *testing.T) {
	srv := newTestRouter(t)

	resp, body := do(t, srv, "POST", "/api/v1/admin/characters", ingestBody("Aria", "900"), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	var created struct {
		Data domain.Character `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	aria := created.Data.ID
	assert.Equal(t, character.CharacterID("이스라펠", "Aria"), aria)

	resp, body = do(t, srv, "POST", "/api/v1/admin/characters", ingestBody("Bela", "300"), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	bela := character.CharacterID("이스라펠", "Bela")

	resp, body = do(t, srv, "GET", "/api/v1/characters/"+aria+"/profile", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var profile domain.Profile
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Positive(t, profile.Score.TotalScore)

	resp, _ = do(t, srv, "GET", "/api/v1/characters/missing/profile", "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, srv, "GET", "/api/v1/characters/compare?a="+aria+"&b="+bela, "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var cmp domain.Comparison
	require.NoError(t, json.Unmarshal([]byte(body), &cmp))
	assert.Positive(t, cmp.ScoreDelta)

	resp, body = do(t, srv, "GET", "/api/v1/rankings?limit=10", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var board []domain.LeaderboardEntry
	require.NoError(t, json.Unmarshal([]byte(body), &board))
	require.Len(t, board, 2)
	assert.Equal(t, "Aria", board[0].Name)
	assert.Equal(t, 1, board[0].Rank)

	resp, body = do(t, srv, "GET", "/api/v1/tiers", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Contains(t, body, `"class":"검성"`)

	resp, _ = do(t, srv, "GET", "/api/v1/rankings/export", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")

	resp, body = do(t, srv, "POST", "/api/v1/admin/rankings/recalibrate", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Contains(t, body, `"population":2`)

	resp, _ = do(t, srv, "POST", "/api/v1/admin/rankings/recalibrate?async=true", "", true)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestRouter_LedgerFlow(t *testing.T) {
	srv := newTestRouter(t)

	resp, body := do(t, srv, "POST", "/api/v1/admin/characters", ingestBody("Aria", "500"), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	aria := character.CharacterID("이스라펠", "Aria")

	now := time.Now().UTC()
	entry := func(category string, amount int64) string {
		return fmt.Sprintf(`{"character_id":%q,"category":%q,"amount":%d,"occurred_at":%q}`,
			aria, category, amount, now.Add(-time.Hour).Format(time.RFC3339))
	}

	resp, body = do(t, srv, "POST", "/api/v1/ledger", entry("dungeon", 1500), false)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	var recorded domain.LedgerEntry
	require.NoError(t, json.Unmarshal([]byte(body), &recorded))

	resp, body = do(t, srv, "POST", "/api/v1/ledger", entry("trade", -400), false)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	resp, body = do(t, srv, "GET", "/api/v1/ledger?character_id="+aria, "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var entries []domain.LedgerEntry
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	assert.Len(t, entries, 2)

	resp, body = do(t, srv, "GET", "/api/v1/ledger/summary?character_id="+aria, "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var sum domain.LedgerSummary
	require.NoError(t, json.Unmarshal([]byte(body), &sum))
	assert.Equal(t, int64(1100), sum.Total)
	assert.Equal(t, int64(1500), sum.Income)
	assert.Equal(t, int64(400), sum.Expense)

	resp, _ = do(t, srv, "GET", "/api/v1/ledger/export?character_id="+aria, "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, srv, "DELETE", "/api/v1/ledger/"+recorded.ID, "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, srv, "DELETE", "/api/v1/ledger/"+recorded.ID, "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, srv, "POST", "/api/v1/ledger", `{"character_id":"ghost","category":"quest","amount":5}`, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_CombatEndpoints(t *testing.T) {
	srv := newTestRouter(t)

	resp, body := do(t, srv, "POST", "/api/v1/combat/evaluate",
		`{"equipment":[{"slot":1,"name":"대검","main_stats":[{"name":"치명타","value":"1000"}]}]}`, false)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var profile domain.Profile
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.True(t, profile.Caps["치명타"].IsSoftCapped)

	resp, body = do(t, srv, "POST", "/api/v1/combat/caps", `{"name":"치명타","value":5000}`, false)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Contains(t, body, `"is_hard_capped":true`)
}

func TestRouter_ReadyzUnavailable(t *testing.T) {
	r := NewRouter(Options{APIKey: testAPIKey}, Services{DB: stubPool{err: assert.AnError}})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
