package progress

import (
	"fmt"
)

// Store persists statistics and unlocked achievements.
type Store interface {
	LoadStats() (Stats, error)
	SaveStats(Stats) error
	UnlockedAchievements() ([]ID, error)
	UnlockAchievements(ids []ID) error
}

// Tracker records finished games against a Store.
type Tracker struct {
	store Store
}

// NewTracker creates a tracker backed by store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Record updates the stored statistics with a finished game, then unlocks any
// achievements it earned. It returns the updated stats and the newly unlocked
// achievements.
func (t *Tracker) Record(r GameResult) (Stats, []ID, error) {
	stats, err := t.store.LoadStats()
	if err != nil {
		return Stats{}, nil, fmt.Errorf("progress: load stats: %w", err)
	}
	stats.Record(r)
	if err := t.store.SaveStats(stats); err != nil {
		return stats, nil, fmt.Errorf("progress: save stats: %w", err)
	}

	ach, err := t.Achievements()
	if err != nil {
		return stats, nil, err
	}
	fresh := ach.Check(r, stats)
	if len(fresh) == 0 {
		return stats, nil, nil
	}
	if err := t.store.UnlockAchievements(fresh); err != nil {
		return stats, nil, fmt.Errorf("progress: unlock achievements: %w", err)
	}
	return stats, fresh, nil
}

// Achievements loads the unlocked set from the store.
func (t *Tracker) Achievements() (*Achievements, error) {
	ids, err := t.store.UnlockedAchievements()
	if err != nil {
		return nil, fmt.Errorf("progress: load achievements: %w", err)
	}
	return NewAchievements(ids...), nil
}

// Stats loads the current statistics from the store.
func (t *Tracker) Stats() (Stats, error) {
	stats, err := t.store.LoadStats()
	if err != nil {
		return Stats{}, fmt.Errorf("progress: load stats: %w", err)
	}
	return stats, nil
}
