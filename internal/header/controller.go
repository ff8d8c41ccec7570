package header

// Toggler flips the visibility of the sidebar.
type Toggler interface {
	ToggleSidebar()
}

// Controller drives one mounted header from a scroll source.
type Controller struct {
	node        Node
	toggler     Toggler
	state       State
	unsubscribe func()
}

// Mount starts tracking src from its current offset. node may be nil until
// the header exists; events then only advance the tracking state.
func Mount(src Source, node Node, toggler Toggler) *Controller {
	c := &Controller{
		node:    node,
		toggler: toggler,
		state:   State{PreviousScrollOffset: src.ScrollY()},
	}
	c.unsubscribe = src.Subscribe(c.HandleScroll)
	return c
}

// Unmount detaches the controller from its source. Safe to call twice.
func (c *Controller) Unmount() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Attach sets the node the controller mutates. A nil node detaches it.
func (c *Controller) Attach(node Node) { c.node = node }

// State returns the current scroll tracking state.
func (c *Controller) State() State { return c.state }

// Toggle flips the sidebar. It never touches the scroll state.
func (c *Controller) Toggle() {
	if c.toggler != nil {
		c.toggler.ToggleSidebar()
	}
}

// HandleScroll processes one scroll offset.
func (c *Controller) HandleScroll(y float64) {
	if c.node == nil {
		c.state, _ = Transition(c.state, Input{Y: y})
		return
	}

	// Height is read before the node is repositioned.
	in := Input{Y: y, HeaderHeight: c.node.Height()}
	in.Anchor, in.HasAnchor = c.node.Anchor()

	var fx Effects
	c.state, fx = Transition(c.state, in)

	if fx.Reanchor {
		c.node.SetAnchor(fx.Top)
	}
	switch fx.Pin {
	case PinSet:
		c.node.SetClass(ClassPinned, true)
	case PinClear:
		c.node.SetClass(ClassPinned, false)
	}

	// A pinned header is stuck to the viewport, so its rendered top is y.
	offset := c.node.OffsetTop()
	if c.node.HasClass(ClassPinned) {
		offset = y
	}
	c.node.SetClass(ClassBordered, offset >= BorderThreshold)
}
