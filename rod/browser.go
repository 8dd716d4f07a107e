package rod

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// restarted. Chrome memory grows with every page and never returns to its
// baseline, so long runs recycle the process.
const DefaultMaxPages = 75

// errBrowserClosed is returned by acquire after close.
var errBrowserClosed = errors.New("browser is closed")

// launchChrome starts a headless Chrome process and connects to it. The
// returned stop func closes the connection and kills the process.
func launchChrome() (*rod.Browser, func() error, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}

	stop := func() error {
		err := b.Close()
		l.Kill()
		return err
	}
	return b, stop, nil
}

// recycler hands out a long-lived process and replaces it after maxPages
// uses. A replaced generation keeps running until its last page is
// released, then it is stopped.
type recycler[T any] struct {
	mu       sync.Mutex
	start    func() (T, func() error, error)
	maxPages int
	current  *generation[T]
	draining map[*generation[T]]struct{}
}

type generation[T any] struct {
	value    T
	stop     func() error
	pages    int
	inflight int
}

func newRecycler[T any](start func() (T, func() error, error), maxPages int) (*recycler[T], error) {
	value, stop, err := start()
	if err != nil {
		return nil, err
	}
	return &recycler[T]{
		start:    start,
		maxPages: maxPages,
		current:  &generation[T]{value: value, stop: stop},
		draining: make(map[*generation[T]]struct{}),
	}, nil
}

// acquire returns the process to open the next page on, counting the page
// toward the recycling threshold. The returned release func must be called
// once the page is closed. Calling it more than once is harmless.
func (r *recycler[T]) acquire() (T, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		var zero T
		return zero, nil, errBrowserClosed
	}
	if r.maxPages > 0 && r.current.pages >= r.maxPages {
		r.recycle()
	}

	g := r.current
	g.pages++
	g.inflight++
	var once sync.Once
	return g.value, func() { once.Do(func() { r.release(g) }) }, nil
}

func (r *recycler[T]) release(g *generation[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g.inflight--
	if _, ok := r.draining[g]; ok && g.inflight == 0 {
		delete(r.draining, g)
		_ = g.stop()
	}
}

// recycle starts a new generation and retires the current one. The current
// one stays in service if the new one fails to start. Must be called with
// mu held.
func (r *recycler[T]) recycle() {
	value, stop, err := r.start()
	if err != nil {
		return
	}
	old := r.current
	r.current = &generation[T]{value: value, stop: stop}
	if old.inflight == 0 {
		_ = old.stop()
		return
	}
	r.draining[old] = struct{}{}
}

// close stops every generation, including ones with pages still open.
func (r *recycler[T]) close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for g := range r.draining {
		_ = g.stop()
	}
	clear(r.draining)

	if r.current == nil {
		return nil
	}
	err := r.current.stop()
	r.current = nil
	return err
}
