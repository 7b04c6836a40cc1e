package navigation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) record(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) snapshot() []State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]State(nil), r.states...)
}

func newCoordinator(t *testing.T, opts ...Option) *Coordinator {
	t.Helper()

	c := New(opts...)
	t.Cleanup(c.Close)

	return c
}

func TestLabelForPath(t *testing.T) {
	tests := map[string]string{
		"/filme/550":         "filme",
		"/serie/1399":        "série",
		"/filmes":            "filmes",
		"/filmes?genre=28":   "filmes",
		"/series":            "séries",
		"/busca":             "resultados",
		"/":                  "",
		"/perfil":            "",
		"/api/filme/550/foo": "filme",
	}

	for path, want := range tests {
		assert.Equal(t, want, LabelForPath(path), path)
	}
}

func TestCoordinator_SubscribersSeeChangesInOrder(t *testing.T) {
	c := newCoordinator(t)
	rec := &recorder{}
	c.Subscribe(rec.record)

	c.SetLoading(true, "filme")
	c.SetLoading(true, "séries")
	c.SetLoading(false)

	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 3 }, waitFor, tick)
	assert.Equal(t, []State{
		{Loading: true, Label: "filme"},
		{Loading: true, Label: "séries"},
		{Loading: false},
	}, rec.snapshot())
	assert.Equal(t, State{}, c.State())
}

func TestCoordinator_UnchangedStateIsNotRepublished(t *testing.T) {
	c := newCoordinator(t)
	rec := &recorder{}
	c.Subscribe(rec.record)

	c.SetLoading(false)
	c.SetLoading(true)
	c.SetLoading(true)

	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, waitFor, tick)
	assert.Never(t, func() bool { return len(rec.snapshot()) > 1 }, 50*time.Millisecond, tick)
}

func TestCoordinator_SafetyCeilingClearsFlag(t *testing.T) {
	c := newCoordinator(t, WithSafetyCeiling(40*time.Millisecond))

	c.SetLoading(true, "filmes")
	require.True(t, c.State().Loading)

	assert.Eventually(t, func() bool { return !c.State().Loading }, waitFor, tick)
}

func TestCoordinator_SafetyCeilingRestartsOnEachTrigger(t *testing.T) {
	c := newCoordinator(t, WithSafetyCeiling(80*time.Millisecond))

	c.SetLoading(true)
	time.Sleep(50 * time.Millisecond)
	c.HandleBeforeUnload("/filmes")

	// The first timer would have fired by now; the restarted one has not.
	time.Sleep(50 * time.Millisecond)
	assert.True(t, c.State().Loading)
	assert.Eventually(t, func() bool { return !c.State().Loading }, waitFor, tick)
}

func TestWithSafetyCeiling_Clamps(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{in: time.Hour, want: MaxSafetyCeiling},
		{in: 0, want: MaxSafetyCeiling},
		{in: -time.Second, want: MaxSafetyCeiling},
		{in: 2 * time.Second, want: 2 * time.Second},
	}

	for _, tt := range tests {
		c := New(WithSafetyCeiling(tt.in))
		assert.Equal(t, tt.want, c.ceiling, tt.in.String())
		c.Close()
	}
}

func TestCoordinator_RouteChangeSettles(t *testing.T) {
	c := newCoordinator(t, WithSettleDelay(20*time.Millisecond))
	c.RouteChanged("/", "")

	c.SetLoading(true, "filme")
	c.RouteChanged("/filme/550", "")

	assert.Eventually(t, func() bool { return !c.State().Loading }, waitFor, tick)
}

func TestCoordinator_SameRouteDoesNotSettle(t *testing.T) {
	c := newCoordinator(t, WithSettleDelay(10*time.Millisecond))
	c.RouteChanged("/filmes", "page=2")
	time.Sleep(30 * time.Millisecond)

	c.SetLoading(true)
	c.RouteChanged("/filmes", "?page=2")

	assert.Never(t, func() bool { return !c.State().Loading }, 60*time.Millisecond, tick)

	c.RouteChanged("/filmes", "page=3")
	assert.Eventually(t, func() bool { return !c.State().Loading }, waitFor, tick)
}

func TestCoordinator_NewTriggerCancelsPendingSettle(t *testing.T) {
	c := newCoordinator(t, WithSettleDelay(30*time.Millisecond))
	c.RouteChanged("/", "")

	c.SetLoading(true)
	c.RouteChanged("/filmes", "")
	c.HandleClick(Click{Href: "/series"})

	assert.Never(t, func() bool { return !c.State().Loading }, 100*time.Millisecond, tick)
	assert.Equal(t, "séries", c.State().Label)
}

func TestCoordinator_HandleClick(t *testing.T) {
	tests := []struct {
		name      string
		click     Click
		triggered bool
		label     string
	}{
		{name: "relative link", click: Click{Href: "/filme/550"}, triggered: true, label: "filme"},
		{name: "same origin absolute", click: Click{Href: "https://ondeta.app/series"}, triggered: true, label: "séries"},
		{name: "self target", click: Click{Href: "/busca?q=matrix", Target: "_self"}, triggered: true, label: "resultados"},
		{name: "path without label", click: Click{Href: "/perfil"}, triggered: true, label: ""},
		{name: "cross origin", click: Click{Href: "https://www.themoviedb.org/movie/550"}},
		{name: "protocol relative cross origin", click: Click{Href: "//evil.example/filmes"}},
		{name: "new tab", click: Click{Href: "/filmes", Target: "_blank"}},
		{name: "download", click: Click{Href: "/filmes", Download: true}},
		{name: "ctrl click", click: Click{Href: "/filmes", Ctrl: true}},
		{name: "meta click", click: Click{Href: "/filmes", Meta: true}},
		{name: "shift click", click: Click{Href: "/filmes", Shift: true}},
		{name: "middle button", click: Click{Href: "/filmes", Button: 1}},
		{name: "hash only", click: Click{Href: "#elenco"}},
		{name: "hash on current path", click: Click{Href: "/#topo"}},
		{name: "mailto", click: Click{Href: "mailto:contato@ondeta.app"}},
		{name: "not a link", click: Click{}},
		{name: "navigate marker", click: Click{Navigates: true}, triggered: true, label: ""},
		{name: "search result", click: Click{SearchResult: true, Href: "/serie/1399"}, triggered: true, label: "série"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCoordinator(t, WithOrigin("https://ondeta.app"))
			c.RouteChanged("/", "")

			assert.Equal(t, tt.triggered, c.HandleClick(tt.click))
			assert.Equal(t, State{Loading: tt.triggered, Label: tt.label}, c.State())
		})
	}
}

func TestCoordinator_SubmitAndUnloadLabels(t *testing.T) {
	c := newCoordinator(t)

	c.HandleSubmit("/busca?q=matrix")
	assert.Equal(t, State{Loading: true, Label: "resultados"}, c.State())

	c.SetLoading(false)
	c.HandleBeforeUnload("/filme/603")
	assert.Equal(t, State{Loading: true, Label: "filme"}, c.State())
}

func TestCoordinator_EscapeClears(t *testing.T) {
	c := newCoordinator(t)

	c.SetLoading(true, "filmes")
	c.HandleKey("Enter")
	assert.True(t, c.State().Loading)

	c.HandleKey("Escape")
	assert.Equal(t, State{}, c.State())
}

func TestCoordinator_Unsubscribe(t *testing.T) {
	c := newCoordinator(t)
	rec := &recorder{}
	unsubscribe := c.Subscribe(rec.record)

	c.SetLoading(true)
	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, waitFor, tick)

	unsubscribe()
	unsubscribe()
	c.SetLoading(false)

	assert.Never(t, func() bool { return len(rec.snapshot()) > 1 }, 50*time.Millisecond, tick)
}

func TestCoordinator_ListenerMayCallBack(t *testing.T) {
	c := newCoordinator(t)
	c.Subscribe(func(s State) {
		if s.Loading && s.Label == "auto" {
			c.SetLoading(false)
		}
	})

	c.SetLoading(true, "auto")

	assert.Eventually(t, func() bool { return !c.State().Loading }, waitFor, tick)
}

func TestCoordinator_CloseStopsTimers(t *testing.T) {
	c := New(WithSafetyCeiling(20 * time.Millisecond))
	rec := &recorder{}
	c.Subscribe(rec.record)

	c.SetLoading(true)
	c.Close()
	c.Close()

	time.Sleep(60 * time.Millisecond)
	assert.True(t, c.State().Loading)

	c.SetLoading(false)
	assert.True(t, c.State().Loading)
	assert.Equal(t, []State{{Loading: true}}, rec.snapshot())
}
