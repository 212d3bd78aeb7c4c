package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// SavedGame is an unfinished game and the time already spent playing it.
// Rows written before play time was kept decode with Played zero.
type SavedGame struct {
	engine.Snapshot
	Played time.Duration `json:"played_ns,omitempty"`
}

// SaveGame stores the unfinished game, replacing any previous one.
func (s *Store) SaveGame(game SavedGame) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("storage: cannot encode game: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saved_game (id, state, saved_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET state = excluded.state, saved_at = excluded.saved_at`,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the unfinished game, or nil when there is none.
// The snapshot is decoded but not validated; engine.Restore does that.
func (s *Store) LoadGame() (*SavedGame, error) {
	var data string
	err := s.db.QueryRow("SELECT state FROM saved_game WHERE id = 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game: %w", err)
	}

	var game SavedGame
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		return nil, fmt.Errorf("storage: cannot decode game: %w", err)
	}
	return &game, nil
}

// ClearGame removes the unfinished game.
func (s *Store) ClearGame() error {
	if _, err := s.db.Exec("DELETE FROM saved_game"); err != nil {
		return fmt.Errorf("storage: cannot clear game: %w", err)
	}
	return nil
}
