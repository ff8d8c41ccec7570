package header

// Node is the header element as seen by the controller.
type Node interface {
	Height() float64
	// Anchor returns the recorded top offset; ok is false until one is set.
	Anchor() (top float64, ok bool)
	SetAnchor(top float64)
	// OffsetTop is where the unpinned header is rendered after all mutations
	// so far. A pinned header sits at the viewport offset instead.
	OffsetTop() float64
	SetClass(name string, on bool)
	HasClass(name string) bool
}

// MemNode is an in-memory Node. The websocket transport keeps one per
// connection and ships its state to the browser after every event.
type MemNode struct {
	height    float64
	anchor    float64
	hasAnchor bool
	classes   map[string]bool
}

// NewMemNode returns a node of the given height with no anchor and no classes.
func NewMemNode(height float64) *MemNode {
	return &MemNode{height: height, classes: make(map[string]bool)}
}

func (n *MemNode) Height() float64 { return n.height }

// SetHeight records a new measured height, e.g. after the viewport was resized.
func (n *MemNode) SetHeight(h float64) { n.height = h }

func (n *MemNode) Anchor() (float64, bool) { return n.anchor, n.hasAnchor }

func (n *MemNode) SetAnchor(top float64) {
	n.anchor = top
	n.hasAnchor = true
}

// OffsetTop is the anchor once one is set, the page top before that.
func (n *MemNode) OffsetTop() float64 {
	if n.hasAnchor {
		return n.anchor
	}
	return 0
}

func (n *MemNode) SetClass(name string, on bool) {
	if on {
		n.classes[name] = true
		return
	}
	delete(n.classes, name)
}

func (n *MemNode) HasClass(name string) bool { return n.classes[name] }

// Snapshot is the renderable state of a node.
type Snapshot struct {
	Top      float64 `json:"top"`
	Anchored bool    `json:"anchored"`
	Pinned   bool    `json:"pinned"`
	Bordered bool    `json:"bordered"`
}

// Snapshot captures the node's current state.
func (n *MemNode) Snapshot() Snapshot {
	return Snapshot{
		Top:      n.anchor,
		Anchored: n.hasAnchor,
		Pinned:   n.HasClass(ClassPinned),
		Bordered: n.HasClass(ClassBordered),
	}
}
