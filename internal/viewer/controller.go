package viewer

// Controller is the linear navigation state machine: a current index and a
// transition guard. While a transition is in flight every navigation request
// is rejected, so at most one transition exists at a time and there is
// nothing to cancel. The settle delay itself is scheduled by the caller
// (the viewer uses a tea.Tick); the controller only tracks the pending
// target and commits it on Settle.
type Controller struct {
	count         int
	index         int
	pending       int
	transitioning bool
}

// NewController creates a controller over count slides, positioned at the
// first slide.
func NewController(count int) *Controller {
	return &Controller{count: count}
}

// Index returns the current slide index.
func (c *Controller) Index() int { return c.index }

// Transitioning reports whether a navigation is in flight.
func (c *Controller) Transitioning() bool { return c.transitioning }

// GoTo requests navigation to index i. Out-of-range targets and requests
// made while a transition is in flight are rejected silently — the return
// value reports whether the request was accepted and the caller should
// schedule the settle.
func (c *Controller) GoTo(i int) bool {
	if c.transitioning || i < 0 || i >= c.count {
		return false
	}
	c.transitioning = true
	c.pending = i
	return true
}

// Next requests navigation to the following slide. No-op at the last slide.
func (c *Controller) Next() bool { return c.GoTo(c.index + 1) }

// Prev requests navigation to the preceding slide. No-op at the first slide.
func (c *Controller) Prev() bool { return c.GoTo(c.index - 1) }

// Settle commits the pending index and clears the transition guard. Called
// when the settle delay elapses; a stray call with no transition in flight
// changes nothing.
func (c *Controller) Settle() {
	if !c.transitioning {
		return
	}
	c.index = c.pending
	c.transitioning = false
}
