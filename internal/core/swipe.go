package core

// DefaultSwipeThreshold is the travel, in input units, a gesture must exceed
// on at least one axis to count as a swipe.
const DefaultSwipeThreshold = 30

// Point is a position reported by a pointer device.
type Point struct {
	X, Y int
}

// Swipe is a pointer gesture from Start to End.
type Swipe struct {
	Start Point
	End   Point
}

// Action resolves the swipe to a move along its dominant axis.
// Returns ActionNone when neither axis travelled further than threshold.
// Ties go to the vertical axis.
func (s Swipe) Action(threshold int) Action {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y

	if Abs(dx) <= threshold && Abs(dy) <= threshold {
		return ActionNone
	}

	if Abs(dx) > Abs(dy) {
		if dx > 0 {
			return ActionRight
		}
		return ActionLeft
	}
	if dy > 0 {
		return ActionDown
	}
	return ActionUp
}
