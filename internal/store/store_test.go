package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "linguist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	s := openTestStore(t)

	var mode string
	require.NoError(t, s.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	for _, table := range []string{"records", "llm_request_events", "session_events", "global_sequence"} {
		var name string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestReopenKeepsSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linguist.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	for range 3 {
		_, err := s.seq.Next(ctx)
		require.NoError(t, err)
	}
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.seq.Next(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("override", func(t *testing.T) {
		t.Setenv("LINGUIST_DB", filepath.Join(dir, "env.db"))
		p, err := DBPath(filepath.Join(dir, "flag", "x.db"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "flag", "x.db"), p)
		assert.DirExists(t, filepath.Join(dir, "flag"))
	})
	t.Run("env", func(t *testing.T) {
		t.Setenv("LINGUIST_DB", filepath.Join(dir, "env.db"))
		p, err := DBPath("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "env.db"), p)
	})
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("LINGUIST_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		p, err := DBPath("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "linguist", "linguist.db"), p)
	})
}

func TestRecordRepo(t *testing.T) {
	repo := openTestStore(t).RecordRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "profiles")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Put(ctx, "profiles", []byte(`[1]`)))
	require.NoError(t, repo.Put(ctx, "profiles", []byte(`[1,2]`)))
	got, ok, err := repo.Get(ctx, "profiles")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, string(got))

	require.NoError(t, repo.Delete(ctx, "profiles"))
	require.NoError(t, repo.Delete(ctx, "profiles"), "deleting twice is fine")
	_, ok, err = repo.Get(ctx, "profiles")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLLMEvents(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"lesson-questions", "lesson-questions", "other"} {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-3-flash-preview",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    1200,
			Success:      i != 1,
			RequestBody:  "[system]\nhallo",
		}))
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "other", events[0].Purpose, "newest first")
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
	assert.False(t, events[1].Success)

	older, err := repo.QueryLLMEvents(ctx, QueryOpts{Before: events[1].Sequence})
	require.NoError(t, err)
	require.Len(t, older, 1)
	assert.Equal(t, 100, older[0].InputTokens)

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 101, got.InputTokens)
	assert.Equal(t, "[system]\nhallo", got.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionEvents(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	add := func(profile, action string, score int) {
		t.Helper()
		require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: "s-" + profile,
			Action:    action,
			ProfileID: profile,
			Topic:     "Fotosynthese",
			Mode:      "study",
			Score:     score,
			Points:    score * 50,
		}))
	}
	add("prive-1", SessionActionStart, 0)
	add("prive-1", SessionActionComplete, 4)
	add("openbaar", SessionActionCancel, 0)

	mine, err := repo.QuerySessionEvents(ctx, "prive-1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, SessionActionComplete, mine[0].Action)
	assert.Equal(t, 200, mine[0].Points)

	all, err := repo.QuerySessionEvents(ctx, "", QueryOpts{From: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.QuerySessionEvents(ctx, "", QueryOpts{To: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, none)

	assert.Error(t, repo.AppendSessionEvent(ctx, SessionEventData{}), "session id and action are required")
}
