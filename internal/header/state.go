// Package header implements the sticky menu bar: it hides while the reader
// scrolls down, catches up from above when they scroll back up, and pins to the
// top of the viewport once it has caught up.
package header

// FixedGap is the distance kept between the viewport top and the bottom of the
// header when it is re-anchored on the first upward scroll.
const FixedGap = 50

// BorderThreshold is the rendered offset from which the header shows a border.
const BorderThreshold = 3

// Classes toggled on the header node.
const (
	ClassPinned   = "sticky"
	ClassBordered = "bordered"
)

// State is the scroll tracking carried between events.
type State struct {
	LastScrollWasUpward  bool
	PreviousScrollOffset float64
}

// Input is what a single scroll event sees of the world.
type Input struct {
	Y            float64 // current scroll offset
	HeaderHeight float64 // header height, measured before any repositioning
	Anchor       float64 // currently recorded anchor offset
	HasAnchor    bool    // false until the header has been anchored once
}

// PinChange describes what happens to the pinned marker.
type PinChange int

const (
	PinUnchanged PinChange = iota
	PinSet
	PinClear
)

// Effects are the mutations a scroll event asks of the header.
type Effects struct {
	Reanchor bool
	Top      float64
	Pin      PinChange
}

// Transition computes the next tracking state and the header effects for one
// scroll event.
func Transition(s State, in Input) (State, Effects) {
	var fx Effects
	movingDownward := in.Y > s.PreviousScrollOffset

	if !movingDownward {
		if s.LastScrollWasUpward {
			if in.HasAnchor && in.Y < in.Anchor {
				fx.Pin = PinSet
			}
		} else {
			fx.Reanchor = true
			fx.Top = in.Y - in.HeaderHeight - FixedGap
		}
	} else {
		if s.LastScrollWasUpward {
			fx.Reanchor = true
			fx.Top = in.Y
		}
		fx.Pin = PinClear
	}

	if in.Y == 0 {
		fx.Pin = PinSet
	}

	return State{
		LastScrollWasUpward:  !movingDownward,
		PreviousScrollOffset: in.Y,
	}, fx
}
