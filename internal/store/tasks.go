package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a to-do item owned by a single user.
type Task struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

const taskColumns = `id, user_id, text, completed, created_at`

// CreateTask adds an uncompleted task for userID.
func (s *Store) CreateTask(ctx context.Context, userID, text string) (Task, error) {
	t := Task{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      strings.TrimSpace(text),
		CreatedAt: fromMillis(toMillis(s.now())),
	}
	_, err := s.exec(ctx,
		`INSERT INTO tasks (id, user_id, text, completed, created_at) VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Text, false, toMillis(t.CreatedAt),
	)
	if err != nil {
		return Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

// ListTasks returns the user's tasks, oldest first.
func (s *Store) ListTasks(ctx context.Context, userID string) ([]Task, error) {
	rows, err := s.query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns one of the user's tasks.
func (s *Store) GetTask(ctx context.Context, userID, id string) (Task, error) {
	row := s.queryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	return scanTask(row)
}

// SetTaskCompleted sets the completion flag and returns the updated task.
func (s *Store) SetTaskCompleted(ctx context.Context, userID, id string, completed bool) (Task, error) {
	res, err := s.exec(ctx,
		`UPDATE tasks SET completed = ? WHERE id = ? AND user_id = ?`, completed, id, userID)
	if err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}
	if err := affectedOne(res); err != nil {
		return Task{}, err
	}
	return s.GetTask(ctx, userID, id)
}

// ToggleTask flips the completion flag.
func (s *Store) ToggleTask(ctx context.Context, userID, id string) (Task, error) {
	res, err := s.exec(ctx,
		`UPDATE tasks SET completed = NOT completed WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return Task{}, fmt.Errorf("toggle task: %w", err)
	}
	if err := affectedOne(res); err != nil {
		return Task{}, err
	}
	return s.GetTask(ctx, userID, id)
}

// DeleteTask removes one of the user's tasks.
func (s *Store) DeleteTask(ctx context.Context, userID, id string) error {
	res, err := s.exec(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return affectedOne(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (Task, error) {
	var (
		t       Task
		created int64
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Text, &t.Completed, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("scan task: %w", err)
	}
	t.CreatedAt = fromMillis(created)
	return t, nil
}
