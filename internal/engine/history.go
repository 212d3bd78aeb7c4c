package engine

// DefaultHistoryDepth is the number of moves that can be undone.
const DefaultHistoryDepth = 10

// Snapshot is a copy of board and score taken before a move.
// It is also the serialized form of a game: {"board":[16 ints],"score":n}.
type Snapshot struct {
	Board Board `json:"board"`
	Score int   `json:"score"`
}

// History is a bounded stack of snapshots, most recent last.
// Pushing onto a full history evicts the oldest entry.
type History struct {
	entries []Snapshot
	depth   int
}

// NewHistory creates a history holding at most depth snapshots.
// A depth outside [1, DefaultHistoryDepth] becomes DefaultHistoryDepth.
func NewHistory(depth int) *History {
	if depth < 1 || depth > DefaultHistoryDepth {
		depth = DefaultHistoryDepth
	}
	return &History{
		entries: make([]Snapshot, 0, depth),
		depth:   depth,
	}
}

// Push appends a snapshot, evicting the oldest one when full.
func (h *History) Push(s Snapshot) {
	if len(h.entries) == h.depth {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, s)
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Peek returns the most recent snapshot without removing it.
func (h *History) Peek() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Depth returns the maximum number of snapshots kept.
func (h *History) Depth() int {
	return h.depth
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
