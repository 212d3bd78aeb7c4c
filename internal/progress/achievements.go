package progress

import (
	"github.com/zyedidia/generic/mapset"
)

// ID identifies an achievement. IDs are persisted and must not change.
type ID string

const (
	FirstWin    ID = "first_win"
	Reach512    ID = "reach_512"
	Reach1024   ID = "reach_1024"
	Reach2048   ID = "reach_2048"
	Score1000   ID = "score_1000"
	Score5000   ID = "score_5000"
	Play10Games ID = "play_10_games"
	Play50Games ID = "play_50_games"
)

// Achievement is a one-time milestone.
type Achievement struct {
	ID          ID
	Title       string
	Description string

	// reached is evaluated after the game has been recorded in stats.
	reached func(r GameResult, s Stats) bool
}

func tileAtLeast(v int) func(GameResult, Stats) bool {
	return func(r GameResult, _ Stats) bool { return r.MaxTile >= v }
}

func scoreAtLeast(v int) func(GameResult, Stats) bool {
	return func(r GameResult, _ Stats) bool { return r.Score >= v }
}

func gamesAtLeast(n int) func(GameResult, Stats) bool {
	return func(_ GameResult, s Stats) bool { return s.TotalGames >= n }
}

// Catalogue lists every achievement in display order.
var Catalogue = []Achievement{
	{ID: FirstWin, Title: "First Victory", Description: "Win your first game", reached: tileAtLeast(WinTile)},
	{ID: Reach512, Title: "On Fire", Description: "Reach the 512 tile", reached: tileAtLeast(512)},
	{ID: Reach1024, Title: "Rocket", Description: "Reach the 1024 tile", reached: tileAtLeast(1024)},
	{ID: Reach2048, Title: "King", Description: "Reach the 2048 tile", reached: tileAtLeast(2048)},
	{ID: Score1000, Title: "Hundreds", Description: "Score 1000 points", reached: scoreAtLeast(1000)},
	{ID: Score5000, Title: "Sharpshooter", Description: "Score 5000 points", reached: scoreAtLeast(5000)},
	{ID: Play10Games, Title: "Hooked", Description: "Play 10 games", reached: gamesAtLeast(10)},
	{ID: Play50Games, Title: "Expert", Description: "Play 50 games", reached: gamesAtLeast(50)},
}

// Lookup returns the catalogue entry for id.
func Lookup(id ID) (Achievement, bool) {
	for _, a := range Catalogue {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Achievements tracks which achievements have been unlocked.
type Achievements struct {
	unlocked mapset.Set[ID]
}

// NewAchievements creates a set with the given ids already unlocked.
// Unknown ids are kept so they survive a round trip through storage.
func NewAchievements(ids ...ID) *Achievements {
	a := &Achievements{unlocked: mapset.New[ID]()}
	for _, id := range ids {
		a.unlocked.Put(id)
	}
	return a
}

// Unlocked reports whether id has been unlocked.
func (a *Achievements) Unlocked(id ID) bool {
	return a.unlocked.Has(id)
}

// Count returns the number of unlocked achievements.
func (a *Achievements) Count() int {
	return a.unlocked.Size()
}

// Check unlocks every achievement the finished game reached and returns the
// newly unlocked ids in catalogue order. s must already include r.
func (a *Achievements) Check(r GameResult, s Stats) []ID {
	var fresh []ID
	for _, ach := range Catalogue {
		if a.unlocked.Has(ach.ID) || !ach.reached(r, s) {
			continue
		}
		a.unlocked.Put(ach.ID)
		fresh = append(fresh, ach.ID)
	}
	return fresh
}
