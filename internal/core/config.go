package core

// RuntimeConfig contains configuration passed to a game when it starts.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is what the platform observes after every step.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known, including the current one
	MaxTile  int  // Highest tile on the board
	GameOver bool // No move can change the board
	CanUndo  bool // Undo is available
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State     GameState
	Moved     bool // A move changed the board
	Undone    bool // A move was undone
	Restarted bool // A fresh game was started
}
