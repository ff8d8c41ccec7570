package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flag struct{ open bool }

func (f *flag) ToggleSidebar() { f.open = !f.open }

func emitAll(feed *Feed, ys ...float64) {
	for _, y := range ys {
		feed.Emit(y)
	}
}

func TestScrollDownThenUpReanchorsAndPins(t *testing.T) {
	feed := NewFeed(0)
	node := NewMemNode(40)
	c := Mount(feed, node, nil)
	defer c.Unmount()

	emitAll(feed, 50, 100)
	_, anchored := node.Anchor()
	assert.False(t, anchored, "plain downward scroll from the top must not re-anchor")
	assert.False(t, node.HasClass(ClassPinned))

	feed.Emit(80)
	top, anchored := node.Anchor()
	require.True(t, anchored, "first upward event re-anchors")
	assert.Equal(t, float64(80-40-FixedGap), top)
	assert.False(t, node.HasClass(ClassPinned))

	feed.Emit(40)
	top, _ = node.Anchor()
	assert.Equal(t, float64(-10), top, "second upward event keeps the anchor")
	assert.False(t, node.HasClass(ClassPinned))

	feed.Emit(0)
	assert.True(t, node.HasClass(ClassPinned), "reaching the top pins the header")
	assert.True(t, c.State().LastScrollWasUpward)
	assert.Equal(t, float64(0), c.State().PreviousScrollOffset)
}

func TestScrollSequenceStartingWithZeroEvent(t *testing.T) {
	feed := NewFeed(0)
	node := NewMemNode(40)
	c := Mount(feed, node, nil)
	defer c.Unmount()

	feed.Emit(0)
	assert.True(t, node.HasClass(ClassPinned))

	feed.Emit(50)
	top, _ := node.Anchor()
	assert.Equal(t, float64(50), top, "downward after upward follows the content")
	assert.False(t, node.HasClass(ClassPinned))
	assert.True(t, node.HasClass(ClassBordered))

	feed.Emit(100)
	top, _ = node.Anchor()
	assert.Equal(t, float64(50), top)

	feed.Emit(80)
	top, _ = node.Anchor()
	assert.Equal(t, float64(-10), top)
	assert.False(t, node.HasClass(ClassBordered), "near-top anchor has no border")

	emitAll(feed, 40, 0)
	assert.True(t, node.HasClass(ClassPinned))
}

func TestUpwardPinsOnceCaughtUp(t *testing.T) {
	feed := NewFeed(500)
	node := NewMemNode(40)
	c := Mount(feed, node, nil)
	defer c.Unmount()

	feed.Emit(400)
	top, _ := node.Anchor()
	require.Equal(t, float64(310), top)
	assert.False(t, node.HasClass(ClassPinned))
	assert.True(t, node.HasClass(ClassBordered))

	feed.Emit(320)
	assert.False(t, node.HasClass(ClassPinned), "still below the anchor")

	feed.Emit(300)
	assert.True(t, node.HasClass(ClassPinned), "scrolled past the anchor")

	feed.Emit(350)
	top, _ = node.Anchor()
	assert.Equal(t, float64(350), top)
	assert.False(t, node.HasClass(ClassPinned), "downward motion always unpins")
}

func TestPinnedAtTopHasNoBorder(t *testing.T) {
	for _, ys := range [][]float64{
		{400, 300, 200, 100, 0},
		{400, 300, 0},
	} {
		feed := NewFeed(500)
		node := NewMemNode(40)
		c := Mount(feed, node, nil)

		emitAll(feed, ys...)
		assert.True(t, node.HasClass(ClassPinned), "sequence %v", ys)
		assert.False(t, node.HasClass(ClassBordered), "pinned at the page top after %v", ys)
		c.Unmount()
	}
}

func TestPinnedBorderFollowsViewport(t *testing.T) {
	feed := NewFeed(500)
	node := NewMemNode(40)
	c := Mount(feed, node, nil)
	defer c.Unmount()

	feed.Emit(400)
	feed.Emit(300)
	require.True(t, node.HasClass(ClassPinned))
	assert.True(t, node.HasClass(ClassBordered), "pinned deep in the page")

	feed.Emit(2)
	require.True(t, node.HasClass(ClassPinned))
	assert.False(t, node.HasClass(ClassBordered), "pinned just below the threshold")

	feed.Emit(3)
	assert.False(t, node.HasClass(ClassPinned))
	top, _ := node.Anchor()
	assert.Equal(t, float64(3), top)
	assert.True(t, node.HasClass(ClassBordered), "downward from the top re-anchors at the threshold")
}

func TestIncreasingThenDecreasingEndsPinned(t *testing.T) {
	feed := NewFeed(0)
	node := NewMemNode(64)
	c := Mount(feed, node, nil)
	defer c.Unmount()

	for y := 10.0; y <= 1000; y += 10 {
		feed.Emit(y)
	}
	for y := 990.0; y >= 0; y -= 10 {
		feed.Emit(y)
	}

	assert.True(t, node.HasClass(ClassPinned))
	assert.False(t, node.HasClass(ClassBordered))
	assert.True(t, c.State().LastScrollWasUpward)
}

func TestMonotonicDownwardNeverPins(t *testing.T) {
	feed := NewFeed(0)
	node := NewMemNode(40)
	c := Mount(feed, node, nil)
	defer c.Unmount()

	for y := 1.0; y < 2000; y *= 1.5 {
		feed.Emit(y)
		require.False(t, node.HasClass(ClassPinned), "pinned at y=%v", y)
		require.False(t, c.State().LastScrollWasUpward)
	}
}

func TestStationaryAtTopPins(t *testing.T) {
	feed := NewFeed(0)
	node := NewMemNode(40)
	c := Mount(feed, node, nil)
	defer c.Unmount()

	feed.Emit(0)
	assert.True(t, node.HasClass(ClassPinned))
}

func TestHeightReadBeforeReposition(t *testing.T) {
	feed := NewFeed(300)
	node := &growingNode{MemNode: NewMemNode(40)}
	c := Mount(feed, node, nil)
	defer c.Unmount()

	feed.Emit(200)
	top, _ := node.Anchor()
	// The node grows to 60 as soon as it is moved; the anchor must use 40.
	assert.Equal(t, float64(200-40-FixedGap), top)
	assert.Equal(t, float64(60), node.Height())
}

// growingNode changes its height when repositioned, like a header whose
// layout reflows after a style change.
type growingNode struct {
	*MemNode
}

func (n *growingNode) SetAnchor(top float64) {
	n.MemNode.SetAnchor(top)
	n.MemNode.SetHeight(60)
}

func TestNilNodeIsGuarded(t *testing.T) {
	feed := NewFeed(0)
	c := Mount(feed, nil, nil)
	defer c.Unmount()

	require.NotPanics(t, func() { emitAll(feed, 10, 20, 5) })
	assert.True(t, c.State().LastScrollWasUpward)
	assert.Equal(t, float64(5), c.State().PreviousScrollOffset)

	node := NewMemNode(40)
	c.Attach(node)
	feed.Emit(0)
	assert.True(t, node.HasClass(ClassPinned))
}

func TestUnmountStopsProcessing(t *testing.T) {
	feed := NewFeed(0)
	node := NewMemNode(40)
	c := Mount(feed, node, nil)
	require.Equal(t, 1, feed.Listeners())

	feed.Emit(100)
	c.Unmount()
	c.Unmount()
	assert.Equal(t, 0, feed.Listeners())

	before := c.State()
	feed.Emit(0)
	assert.Equal(t, before, c.State())
	assert.False(t, node.HasClass(ClassPinned))
}

func TestMountUsesCurrentOffset(t *testing.T) {
	feed := NewFeed(250)
	c := Mount(feed, NewMemNode(40), nil)
	defer c.Unmount()

	assert.Equal(t, State{PreviousScrollOffset: 250}, c.State())
}

func TestToggleIsInvolution(t *testing.T) {
	feed := NewFeed(0)
	sidebar := &flag{open: true}
	c := Mount(feed, NewMemNode(40), sidebar)
	defer c.Unmount()

	emitAll(feed, 30, 60, 20)
	before := c.State()

	c.Toggle()
	assert.False(t, sidebar.open)
	c.Toggle()
	assert.True(t, sidebar.open)
	assert.Equal(t, before, c.State(), "toggling never touches scroll state")
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		name  string
		state State
		in    Input
		want  State
		fx    Effects
	}{
		{
			name:  "first upward re-anchors above the viewport",
			state: State{PreviousScrollOffset: 300},
			in:    Input{Y: 250, HeaderHeight: 40},
			want:  State{LastScrollWasUpward: true, PreviousScrollOffset: 250},
			fx:    Effects{Reanchor: true, Top: 160},
		},
		{
			name:  "continued upward past anchor pins",
			state: State{LastScrollWasUpward: true, PreviousScrollOffset: 250},
			in:    Input{Y: 150, HeaderHeight: 40, Anchor: 160, HasAnchor: true},
			want:  State{LastScrollWasUpward: true, PreviousScrollOffset: 150},
			fx:    Effects{Pin: PinSet},
		},
		{
			name:  "continued upward without anchor does nothing",
			state: State{LastScrollWasUpward: true, PreviousScrollOffset: 250},
			in:    Input{Y: 150, HeaderHeight: 40},
			want:  State{LastScrollWasUpward: true, PreviousScrollOffset: 150},
			fx:    Effects{},
		},
		{
			name:  "downward after upward follows content",
			state: State{LastScrollWasUpward: true, PreviousScrollOffset: 100},
			in:    Input{Y: 120, HeaderHeight: 40},
			want:  State{PreviousScrollOffset: 120},
			fx:    Effects{Reanchor: true, Top: 120, Pin: PinClear},
		},
		{
			name:  "downward after downward only unpins",
			state: State{PreviousScrollOffset: 100},
			in:    Input{Y: 120, HeaderHeight: 40},
			want:  State{PreviousScrollOffset: 120},
			fx:    Effects{Pin: PinClear},
		},
		{
			name:  "top of page pins",
			state: State{LastScrollWasUpward: true, PreviousScrollOffset: 10},
			in:    Input{Y: 0, HeaderHeight: 40, Anchor: -90, HasAnchor: true},
			want:  State{LastScrollWasUpward: true, PreviousScrollOffset: 0},
			fx:    Effects{Pin: PinSet},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, fx := Transition(tc.state, tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.fx, fx)
		})
	}
}

func TestFeedUnsubscribeKeepsOthers(t *testing.T) {
	feed := NewFeed(0)
	var a, b []float64
	unA := feed.Subscribe(func(y float64) { a = append(a, y) })
	unB := feed.Subscribe(func(y float64) { b = append(b, y) })
	defer unB()

	feed.Emit(1)
	unA()
	feed.Emit(2)

	assert.Equal(t, []float64{1}, a)
	assert.Equal(t, []float64{1, 2}, b)
	assert.Equal(t, float64(2), feed.ScrollY())
}
