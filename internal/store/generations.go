package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Generation is a saved flow run.
type Generation struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	Flow      string          `json:"flow"`
	Input     json.RawMessage `json:"input"`
	Output    json.RawMessage `json:"output"`
	CreatedAt time.Time       `json:"createdAt"`
}

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// SaveGeneration records a flow run for userID.
func (s *Store) SaveGeneration(ctx context.Context, userID, flow string, input, output json.RawMessage) (Generation, error) {
	g := Generation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Flow:      flow,
		Input:     orEmptyObject(input),
		Output:    orEmptyObject(output),
		CreatedAt: fromMillis(toMillis(s.now())),
	}
	_, err := s.exec(ctx,
		`INSERT INTO generations (id, user_id, flow, input, output, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.Flow, string(g.Input), string(g.Output), toMillis(g.CreatedAt),
	)
	if err != nil {
		return Generation{}, fmt.Errorf("insert generation: %w", err)
	}
	return g, nil
}

// ListGenerations returns the user's most recent runs, newest first.
// A non-positive limit selects DefaultHistoryLimit; limits above MaxHistoryLimit are clamped.
func (s *Store) ListGenerations(ctx context.Context, userID string, limit int) ([]Generation, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	rows, err := s.query(ctx,
		`SELECT id, user_id, flow, input, output, created_at FROM generations
		WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	out := make([]Generation, 0, limit)
	for rows.Next() {
		var (
			g             Generation
			input, output string
			created       int64
		)
		if err := rows.Scan(&g.ID, &g.UserID, &g.Flow, &input, &output, &created); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		g.Input = json.RawMessage(input)
		g.Output = json.RawMessage(output)
		g.CreatedAt = fromMillis(created)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}
	return out, nil
}

func orEmptyObject(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage(`{}`)
	}
	return raw
}
