package header

import "sync"

// Source delivers scroll offsets.
type Source interface {
	ScrollY() float64
	// Subscribe registers fn for every subsequent offset and returns a function
	// that removes it.
	Subscribe(fn func(y float64)) (unsubscribe func())
}

// Feed is a Source driven by explicit Emit calls. Listeners run synchronously
// on the emitting goroutine, in subscription order.
type Feed struct {
	mu        sync.Mutex
	y         float64
	nextID    int
	listeners []feedListener
}

type feedListener struct {
	id int
	fn func(float64)
}

// NewFeed returns a feed positioned at y.
func NewFeed(y float64) *Feed {
	return &Feed{y: y}
}

func (f *Feed) ScrollY() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.y
}

func (f *Feed) Subscribe(fn func(float64)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.listeners = append(f.listeners, feedListener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { f.remove(id) })
	}
}

func (f *Feed) remove(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.listeners {
		if l.id == id {
			f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
			return
		}
	}
}

// Emit moves the feed to y and notifies every listener.
func (f *Feed) Emit(y float64) {
	f.mu.Lock()
	f.y = y
	listeners := make([]feedListener, len(f.listeners))
	copy(listeners, f.listeners)
	f.mu.Unlock()

	for _, l := range listeners {
		l.fn(y)
	}
}

// Listeners returns the number of active subscriptions.
func (f *Feed) Listeners() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}
