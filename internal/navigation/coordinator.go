// Package navigation tracks whether a page transition is in flight.
//
// A Coordinator owns one State value. Input events (clicks, submits, unloads,
// route changes, key presses) and explicit SetLoading calls are the only
// writers; everything else observes through Subscribe. Whatever turns the
// flag on, a safety timer guarantees it returns to false within the ceiling.
package navigation

import (
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	DefaultSettleDelay = 300 * time.Millisecond
	// MaxSafetyCeiling is also the default. Longer values are clamped.
	MaxSafetyCeiling = 5 * time.Second

	escapeKey = "Escape"
)

// State is the shared transition flag plus an optional subject label such as "filme".
type State struct {
	Loading bool
	Label   string
}

// Click describes a pointer click as seen by a capturing document listener.
// Href is the enclosing anchor's href, possibly relative; empty when the click
// was not inside an anchor.
type Click struct {
	Href         string
	Target       string
	Download     bool
	Button       int
	Ctrl         bool
	Meta         bool
	Shift        bool
	Alt          bool
	Navigates    bool // element carries the navigate marker
	SearchResult bool // element is a search result item
}

func (c Click) modified() bool {
	return c.Button != 0 || c.Ctrl || c.Meta || c.Shift || c.Alt
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithSettleDelay sets how long after a route change the flag is cleared.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.settleDelay = d
		}
	}
}

// WithSafetyCeiling bounds how long the flag may stay true. Values above
// MaxSafetyCeiling, or not positive, become MaxSafetyCeiling.
func WithSafetyCeiling(d time.Duration) Option {
	return func(c *Coordinator) {
		if d <= 0 || d > MaxSafetyCeiling {
			d = MaxSafetyCeiling
		}
		c.ceiling = d
	}
}

// WithOrigin sets the scheme://host links are compared against. Without it
// only relative links count as same-origin.
func WithOrigin(origin string) Option {
	return func(c *Coordinator) {
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			c.origin = &url.URL{Scheme: u.Scheme, Host: u.Host}
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type listener struct {
	fn     func(State)
	active bool
}

// Coordinator is safe for concurrent use. Listeners run on a dedicated
// goroutine, one state at a time in change order, and may call back into the
// Coordinator.
type Coordinator struct {
	mu sync.Mutex

	state       State
	origin      *url.URL
	location    *url.URL
	lastRoute   string
	routeSeen   bool
	settleDelay time.Duration
	ceiling     time.Duration
	logger      *slog.Logger

	settleTimer  *time.Timer
	ceilingTimer *time.Timer
	// generation and settleGen invalidate timer callbacks that fire after being replaced.
	generation uint64
	settleGen  uint64

	listeners []*listener
	pending   []State
	wake      *sync.Cond
	closed    bool
	done      chan struct{}
}

// New starts a coordinator with the flag off.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		settleDelay: DefaultSettleDelay,
		ceiling:     MaxSafetyCeiling,
		location:    &url.URL{Path: "/"},
		logger:      slog.New(slog.DiscardHandler),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.origin != nil {
		c.location.Scheme = c.origin.Scheme
		c.location.Host = c.origin.Host
	}
	c.wake = sync.NewCond(&c.mu)

	go c.dispatch()

	return c
}

// State returns the current snapshot.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Subscribe registers fn for every later state change. The returned func
// removes it and may be called more than once.
func (c *Coordinator) Subscribe(fn func(State)) func() {
	l := &listener{fn: fn, active: true}

	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		l.active = false
		for i, existing := range c.listeners {
			if existing == l {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)

				break
			}
		}
	}
}

// SetLoading is the imperative setter. The first label, if any, is used.
func (c *Coordinator) SetLoading(loading bool, label ...string) {
	var l string
	if loading && len(label) > 0 {
		l = label[0]
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if loading {
		c.startLocked(l)
	} else {
		c.stopLocked()
	}
}

// HandleClick turns the flag on for clicks that start an in-app navigation
// and reports whether it did.
func (c *Coordinator) HandleClick(click Click) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if click.Navigates || click.SearchResult {
		c.startLocked(c.labelForHrefLocked(click.Href))

		return true
	}

	target, ok := c.inAppTargetLocked(click)
	if !ok {
		return false
	}
	c.startLocked(LabelForPath(target.Path))

	return true
}

// HandleSubmit turns the flag on for a form submission to action.
func (c *Coordinator) HandleSubmit(action string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.startLocked(c.labelForHrefLocked(action))
}

// HandleBeforeUnload turns the flag on when the page is about to unload.
// The label comes from the path being left.
func (c *Coordinator) HandleBeforeUnload(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.startLocked(LabelForPath(path))
}

// RouteChanged records the current route. When path and query differ from
// the last observed route the flag is cleared after the settle delay.
func (c *Coordinator) RouteChanged(path, query string) {
	route := path
	if query = strings.TrimPrefix(query, "?"); query != "" {
		route += "?" + query
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || (c.routeSeen && route == c.lastRoute) {
		return
	}
	c.routeSeen = true
	c.lastRoute = route
	c.location.Path = path
	c.location.RawQuery = query

	if c.settleTimer != nil {
		c.settleTimer.Stop()
	}
	c.settleGen++
	gen, settleGen := c.generation, c.settleGen
	c.settleTimer = time.AfterFunc(c.settleDelay, func() {
		c.expire(func() bool { return gen == c.generation && settleGen == c.settleGen }, "route settled")
	})
}

// HandleKey clears a stuck indicator on Escape.
func (c *Coordinator) HandleKey(key string) {
	if key != escapeKey {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Loading {
		c.logger.Debug("Loading cleared by user")
	}
	c.stopLocked()
}

// Close stops all timers. Listeners receive any changes already queued, then
// no more. Further calls on c are ignored. Close must not be called from a listener.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		<-c.done

		return
	}
	c.closed = true
	c.stopTimersLocked()
	c.wake.Signal()
	c.mu.Unlock()

	<-c.done
}

func (c *Coordinator) startLocked(label string) {
	if c.closed {
		return
	}

	c.stopTimersLocked()
	gen := c.generation
	c.ceilingTimer = time.AfterFunc(c.ceiling, func() {
		c.expire(func() bool { return gen == c.generation }, "safety ceiling reached")
	})

	c.publishLocked(State{Loading: true, Label: label})
}

func (c *Coordinator) stopLocked() {
	if c.closed {
		return
	}

	c.stopTimersLocked()
	c.publishLocked(State{})
}

func (c *Coordinator) stopTimersLocked() {
	c.generation++
	if c.settleTimer != nil {
		c.settleTimer.Stop()
		c.settleTimer = nil
	}
	if c.ceilingTimer != nil {
		c.ceilingTimer.Stop()
		c.ceilingTimer = nil
	}
}

// expire clears the flag unless current, evaluated under the lock, reports the timer was replaced.
func (c *Coordinator) expire(current func() bool, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !current() {
		return
	}
	if c.state.Loading {
		c.logger.Debug("Loading cleared", slog.String("reason", reason))
	}
	c.stopLocked()
}

func (c *Coordinator) publishLocked(next State) {
	if next == c.state {
		return
	}
	c.state = next
	c.pending = append(c.pending, next)
	c.wake.Signal()
}

func (c *Coordinator) dispatch() {
	defer close(c.done)

	for {
		c.mu.Lock()
		for len(c.pending) == 0 && !c.closed {
			c.wake.Wait()
		}
		if len(c.pending) == 0 {
			c.mu.Unlock()

			return
		}
		batch := c.pending
		c.pending = nil
		c.mu.Unlock()

		for _, s := range batch {
			c.notify(s)
		}
	}
}

func (c *Coordinator) notify(s State) {
	c.mu.Lock()
	targets := append([]*listener(nil), c.listeners...)
	c.mu.Unlock()

	for _, l := range targets {
		c.mu.Lock()
		active := l.active
		c.mu.Unlock()

		if active {
			l.fn(s)
		}
	}
}

// inAppTargetLocked resolves an anchor click and reports whether following it
// is a same-origin navigation this coordinator should announce.
func (c *Coordinator) inAppTargetLocked(click Click) (*url.URL, bool) {
	if click.Href == "" || click.Download || click.modified() {
		return nil, false
	}
	if click.Target != "" && click.Target != "_self" {
		return nil, false
	}

	ref, err := url.Parse(click.Href)
	if err != nil {
		return nil, false
	}
	target := c.location.ResolveReference(ref)

	if ref.IsAbs() || ref.Host != "" {
		if c.origin == nil || target.Scheme != c.origin.Scheme || target.Host != c.origin.Host {
			return nil, false
		}
	}
	if target.Scheme != "" && target.Scheme != "http" && target.Scheme != "https" {
		return nil, false
	}

	// Fragment-only moves stay on the page.
	if target.Fragment != "" && target.Path == c.location.Path && target.RawQuery == c.location.RawQuery {
		return nil, false
	}

	return target, true
}

func (c *Coordinator) labelForHrefLocked(href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	return LabelForPath(c.location.ResolveReference(ref).Path)
}

// LabelForPath derives the loading label from a route path. The first
// matching fragment wins.
func LabelForPath(path string) string {
	switch {
	case strings.Contains(path, "/filme/"):
		return "filme"
	case strings.Contains(path, "/serie/"):
		return "série"
	case strings.Contains(path, "/filmes"):
		return "filmes"
	case strings.Contains(path, "/series"):
		return "séries"
	case strings.Contains(path, "/busca"):
		return "resultados"
	default:
		return ""
	}
}
