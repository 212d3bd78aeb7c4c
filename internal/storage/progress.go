package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/progress"
)

// LoadStats returns the lifetime statistics, or zero values before the first game.
func (s *Store) LoadStats() (progress.Stats, error) {
	var st progress.Stats
	var secs int64
	err := s.db.QueryRow(
		`SELECT total_games, wins, best_score, highest_tile, total_score, total_time_secs
		 FROM stats WHERE id = 1`,
	).Scan(&st.TotalGames, &st.Wins, &st.BestScore, &st.HighestTile, &st.TotalScore, &secs)

	if errors.Is(err, sql.ErrNoRows) {
		return progress.Stats{}, nil
	}
	if err != nil {
		return progress.Stats{}, fmt.Errorf("storage: cannot load stats: %w", err)
	}

	st.TotalTime = time.Duration(secs) * time.Second
	return st, nil
}

// SaveStats replaces the lifetime statistics.
func (s *Store) SaveStats(st progress.Stats) error {
	_, err := s.db.Exec(
		`INSERT INTO stats (id, total_games, wins, best_score, highest_tile, total_score, total_time_secs, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
			total_games = excluded.total_games,
			wins = excluded.wins,
			best_score = excluded.best_score,
			highest_tile = excluded.highest_tile,
			total_score = excluded.total_score,
			total_time_secs = excluded.total_time_secs,
			updated_at = excluded.updated_at`,
		st.TotalGames, st.Wins, st.BestScore, st.HighestTile, st.TotalScore, int64(st.TotalTime/time.Second),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save stats: %w", err)
	}
	return nil
}

// UnlockedAchievements returns the ids of unlocked achievements, oldest first.
func (s *Store) UnlockedAchievements() ([]progress.ID, error) {
	rows, err := s.db.Query("SELECT id FROM achievements ORDER BY unlocked_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var ids []progress.ID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, progress.ID(id))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ids, nil
}

// UnlockAchievements marks achievements as unlocked. Already unlocked ids keep
// their original unlock time.
func (s *Store) UnlockAchievements(ids []progress.ID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err := tx.Exec("INSERT OR IGNORE INTO achievements (id) VALUES (?)", string(id)); err != nil {
			return fmt.Errorf("storage: cannot unlock achievement %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit achievements: %w", err)
	}
	return nil
}

var _ progress.Store = (*Store)(nil)
