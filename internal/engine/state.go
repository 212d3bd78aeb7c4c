package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Spawn4Probability is the chance that a spawned tile is a 4 instead of a 2.
const Spawn4Probability = 0.1

type options struct {
	rng          *rand.Rand
	historyDepth int
}

// Option configures a GameState.
type Option func(*options)

// WithRand sets the random source used for spawning tiles.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds a private random source. A zero seed is ignored.
func WithSeed(seed int64) Option {
	return func(o *options) {
		if seed != 0 {
			o.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithHistoryDepth lowers how many moves can be undone. The depth is
// clamped to [1, DefaultHistoryDepth].
func WithHistoryDepth(n int) Option {
	return func(o *options) {
		o.historyDepth = min(max(n, 1), DefaultHistoryDepth)
	}
}

func buildOptions(opts []Option) options {
	o := options{
		historyDepth: DefaultHistoryDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// GameState is a single 2048 game. It is owned by one caller and is not safe
// for concurrent use; independent states share nothing.
type GameState struct {
	board   Board
	score   int
	over    bool
	history *History
	opts    options
}

func newState(o options) *GameState {
	return &GameState{
		history: NewHistory(o.historyDepth),
		opts:    o,
	}
}

// NewGame creates an empty board with score 0 and spawns two tiles.
func NewGame(opts ...Option) *GameState {
	s := newState(buildOptions(opts))
	s.SpawnTile()
	s.SpawnTile()
	return s
}

// Restore builds a game from a saved snapshot. The board is validated and the
// game-over flag is evaluated; history starts empty.
func Restore(snap Snapshot, opts ...Option) (*GameState, error) {
	if err := snap.Board.Validate(); err != nil {
		return nil, err
	}
	if snap.Score < 0 {
		return nil, fmt.Errorf("%w: negative score %d", ErrInvalidBoard, snap.Score)
	}

	s := newState(buildOptions(opts))
	s.board = snap.Board
	s.score = snap.Score
	s.over = IsGameOverState(s.board)
	return s, nil
}

// Restart discards the current game and starts a fresh one with the same
// options and random source.
func (s *GameState) Restart() {
	s.board = Board{}
	s.score = 0
	s.over = false
	s.history.Clear()
	s.SpawnTile()
	s.SpawnTile()
}

// SpawnTile places a 2 (or, rarely, a 4) on a uniformly chosen empty cell.
// Returns the position used, or false when the board is full.
func (s *GameState) SpawnTile() (Position, bool) {
	empty := s.board.EmptyCells()
	if len(empty) == 0 {
		return Position{}, false
	}

	pos := empty[s.opts.rng.Intn(len(empty))]
	value := 2
	if s.opts.rng.Float64() < Spawn4Probability {
		value = 4
	}
	s.board[pos.Index()] = value
	return pos, true
}

// ApplyMove slides the board in direction d. It reports whether the board
// changed; only then is the score updated, a tile spawned, a snapshot kept
// for undo and the game-over state re-evaluated. A finished game ignores moves.
// ApplyMove panics if d is not a valid Direction.
func (s *GameState) ApplyMove(d Direction) bool {
	t := traversalFor(d)
	if s.over {
		return false
	}

	before := s.Snapshot()
	next, gained, moved := slide(s.board, t)
	if !moved {
		return false
	}

	s.history.Push(before)
	s.board = next
	s.score += gained
	s.SpawnTile()
	s.over = IsGameOverState(s.board)
	return true
}

// Undo restores the board and score from before the most recent move.
// Returns false when the game is over or there is nothing to undo.
func (s *GameState) Undo() bool {
	if s.over {
		return false
	}
	snap, ok := s.history.Pop()
	if !ok {
		return false
	}
	s.board = snap.Board
	s.score = snap.Score
	return true
}

// Snapshot returns a copy of the current board and score.
func (s *GameState) Snapshot() Snapshot {
	return Snapshot{Board: s.board, Score: s.score}
}

// Board returns a copy of the board.
func (s *GameState) Board() Board {
	return s.board
}

// Score returns the current score.
func (s *GameState) Score() int {
	return s.score
}

// IsGameOver reports whether no move can change the board.
func (s *GameState) IsGameOver() bool {
	return s.over
}

// CanUndo reports whether Undo would succeed.
func (s *GameState) CanUndo() bool {
	return !s.over && s.history.Len() > 0
}

// HistoryLen returns the number of moves that can currently be undone.
func (s *GameState) HistoryLen() int {
	return s.history.Len()
}

// MaxTile returns the highest tile on the board.
func (s *GameState) MaxTile() int {
	return s.board.MaxTile()
}
