package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/aion2-tracker/internal/combat"
	"github.com/osse101/aion2-tracker/internal/config"
	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/scheduler"
	"github.com/osse101/aion2-tracker/internal/worker"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := filepath.Join(dir, fmt.Sprintf("session_2026-01-%02d_00-00-00.log", i+1))
		require.NoError(t, os.WriteFile(name, nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, "session_2026-01-01_00-00-00.log", "oldest removed first")
	assert.Contains(t, logs, "session_2026-01-12_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger(t *testing.T) {
	t.Run("with log dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		f, err := SetupLogger(&config.Config{LogDir: dir, LogLevel: "debug", LogFormat: "json", Environment: "dev"})
		require.NoError(t, err)
		require.NotNil(t, f)
		defer f.Close()

		info, err := f.Stat()
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "startup lines are written to the session file")
	})

	t.Run("stdout only", func(t *testing.T) {
		f, err := SetupLogger(&config.Config{LogLevel: "info", LogFormat: "text"})
		require.NoError(t, err)
		assert.Nil(t, f)
	})
}

func TestLoadRegistry(t *testing.T) {
	t.Run("embedded defaults", func(t *testing.T) {
		reg, err := LoadRegistry("")
		require.NoError(t, err)
		assert.Equal(t, combat.DefaultTables().Grades, reg.Tables().Grades)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grades: {s: 1, a: 5, b: 2}\n"), 0o644))
		_, err := LoadRegistry(path)
		assert.ErrorIs(t, err, domain.ErrInvalidStatTable)
	})
}

type fakeDB struct{ closed bool }

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close()                     { f.closed = true }

func TestGracefulShutdown(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := scheduler.New(pool)
	db := &fakeDB{}

	GracefulShutdown(context.Background(), ShutdownComponents{Scheduler: sched, WorkerPool: pool, DBPool: db})

	assert.True(t, db.closed)
	assert.False(t, pool.TryEnqueue(nil), "pool no longer accepts jobs")
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
