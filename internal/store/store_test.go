package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	// Monotonic clock so ordering assertions do not depend on wall-clock resolution.
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})
	return s
}

func mustUser(t *testing.T, s *Store, email string) User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), email, "Test User", "hash")
	require.NoError(t, err)
	return u
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "x")
	require.Error(t, err)

	_, err = Open(context.Background(), DriverSQLite, " ")
	require.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u, err := s.CreateUser(ctx, "  Ann@Example.COM ", " Ann ", "hash")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", u.Email)
	assert.Equal(t, "Ann", u.DisplayName)
	assert.NotEmpty(t, u.ID)

	got, err := s.GetUserByEmail(ctx, "ANN@example.com")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = s.CreateUser(ctx, "ann@example.com", "Other", "hash2")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTasks_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := mustUser(t, s, "owner@example.com")

	first, err := s.CreateTask(ctx, u.ID, " buy injera ")
	require.NoError(t, err)
	assert.Equal(t, "buy injera", first.Text)
	assert.False(t, first.Completed)

	second, err := s.CreateTask(ctx, u.ID, "call family")
	require.NoError(t, err)

	tasks, err := s.ListTasks(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)

	updated, err := s.SetTaskCompleted(ctx, u.ID, first.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	toggled, err := s.ToggleTask(ctx, u.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	toggled, err = s.ToggleTask(ctx, u.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	require.NoError(t, s.DeleteTask(ctx, u.ID, first.ID))
	tasks, err = s.ListTasks(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, second.ID, tasks[0].ID)

	assert.ErrorIs(t, s.DeleteTask(ctx, u.ID, first.ID), ErrNotFound)
}

func TestTasks_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	owner := mustUser(t, s, "owner@example.com")
	other := mustUser(t, s, "other@example.com")

	task, err := s.CreateTask(ctx, owner.ID, "private")
	require.NoError(t, err)

	tasks, err := s.ListTasks(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = s.GetTask(ctx, other.ID, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.SetTaskCompleted(ctx, other.ID, task.ID, true)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.ToggleTask(ctx, other.ID, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteTask(ctx, other.ID, task.ID), ErrNotFound)

	got, err := s.GetTask(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestGenerations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := mustUser(t, s, "history@example.com")
	other := mustUser(t, s, "someone@example.com")

	for i, flow := range []string{"generate-quote", "generate-recipe", "answer-general-question"} {
		input := json.RawMessage(`{"n":` + string(rune('0'+i)) + `}`)
		_, err := s.SaveGeneration(ctx, u.ID, flow, input, json.RawMessage(`{"ok":true}`))
		require.NoError(t, err)
	}
	_, err := s.SaveGeneration(ctx, other.ID, "generate-quote", nil, nil)
	require.NoError(t, err)

	got, err := s.ListGenerations(ctx, u.ID, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "answer-general-question", got[0].Flow)
	assert.Equal(t, "generate-recipe", got[1].Flow)
	assert.JSONEq(t, `{"n":1}`, string(got[1].Input))
	assert.JSONEq(t, `{"ok":true}`, string(got[1].Output))

	all, err := s.ListGenerations(ctx, u.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	others, err := s.ListGenerations(ctx, other.ID, 500)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.JSONEq(t, `{}`, string(others[0].Input))
}
