package treebank

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/conllview/pkg/conll"
	"github.com/matzehuels/conllview/pkg/depgraph"
)

func graph(t *testing.T, forms ...string) *depgraph.Graph {
	t.Helper()
	sent := make(conll.Sentence, len(forms))
	for i, f := range forms {
		sent[i] = conll.Token{Form: f, Head: conll.NewHead(0), HeadRel: "ROOT"}
	}
	g, err := depgraph.Build(sent, depgraph.LayerSurface)
	require.NoError(t, err)
	return g
}

type recorder struct {
	events []Event
	states []State
}

func (r *recorder) record(s State) {
	r.events = append(r.events, s.Event)
	r.states = append(r.states, s)
}

func (r *recorder) reset() {
	r.events = nil
	r.states = nil
}

func newRecordedModel() (*Model, *recorder) {
	m := NewModel()
	rec := &recorder{}
	m.Connect(EventAny, rec.record)
	return m, rec
}

func TestStore(t *testing.T) {
	var s Store
	assert.Equal(t, 0, s.Len())

	_, ok := s.Get(0)
	assert.False(t, ok)

	g := graph(t, "a")
	s.Push(g)
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(0)
	require.True(t, ok)
	assert.Same(t, g, got)

	_, ok = s.Get(-1)
	assert.False(t, ok)
}

func TestModel_Empty(t *testing.T) {
	m, rec := newRecordedModel()

	_, ok := m.Graph()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	assert.False(t, m.First())
	assert.False(t, m.Next())
	assert.False(t, m.Previous())
	assert.False(t, m.Select(0))
	assert.Empty(t, rec.events, "navigation on an empty model must not fire")
}

func TestModel_PushFirstGraph(t *testing.T) {
	m, rec := newRecordedModel()
	g := graph(t, "a")

	m.Push(g)

	assert.Equal(t, []Event{EventTreebankLen, EventTreeSelection}, rec.events)
	assert.Equal(t, 0, m.Idx())
	got, ok := m.Graph()
	require.True(t, ok)
	assert.Same(t, g, got)

	sel := rec.states[1]
	assert.Equal(t, 0, sel.Idx)
	assert.Equal(t, 1, sel.Len)
	assert.Same(t, g, sel.Graph)
}

func TestModel_PushKeepsSelection(t *testing.T) {
	m, rec := newRecordedModel()
	first := graph(t, "a")
	m.Push(first)
	rec.reset()

	m.Push(graph(t, "b"))

	assert.Equal(t, []Event{EventTreebankLen}, rec.events)
	assert.Equal(t, 2, rec.states[0].Len)
	assert.Equal(t, 0, m.Idx())
	got, _ := m.Graph()
	assert.Same(t, first, got)
}

func TestModel_Navigation(t *testing.T) {
	m, rec := newRecordedModel()
	graphs := []*depgraph.Graph{graph(t, "a"), graph(t, "b"), graph(t, "c")}
	for _, g := range graphs {
		m.Push(g)
	}
	rec.reset()

	assert.True(t, m.Next())
	assert.True(t, m.Next())
	assert.Equal(t, 2, m.Idx())
	assert.Equal(t, []Event{EventTreeSelection, EventTreeSelection}, rec.events)

	rec.reset()
	assert.False(t, m.Next(), "Next at the last graph is a no-op")
	assert.Equal(t, 2, m.Idx())
	assert.Empty(t, rec.events)

	assert.True(t, m.Previous())
	assert.Equal(t, 1, m.Idx())
	got, _ := m.Graph()
	assert.Same(t, graphs[1], got)

	assert.True(t, m.First())
	assert.Equal(t, 0, m.Idx())

	rec.reset()
	assert.False(t, m.Previous(), "Previous at 0 is a no-op")
	assert.Equal(t, 0, m.Idx())
	assert.Empty(t, rec.events)
}

func TestModel_FirstAlwaysFires(t *testing.T) {
	m, rec := newRecordedModel()
	m.Push(graph(t, "a"))
	rec.reset()

	assert.True(t, m.First())
	assert.Equal(t, []Event{EventTreeSelection}, rec.events)
}

func TestModel_Select(t *testing.T) {
	m, rec := newRecordedModel()
	for _, f := range []string{"a", "b", "c"} {
		m.Push(graph(t, f))
	}
	rec.reset()

	assert.True(t, m.Select(2))
	assert.Equal(t, 2, m.Idx())
	assert.Equal(t, []Event{EventTreeSelection}, rec.events)

	rec.reset()
	assert.True(t, m.Select(2))
	assert.Empty(t, rec.events, "selecting the current index does not fire")

	assert.False(t, m.Select(3))
	assert.False(t, m.Select(-1))
	assert.Equal(t, 2, m.Idx())
}

func TestModel_SubscriberOrder(t *testing.T) {
	m := NewModel()
	var calls []string

	m.Connect(EventTreeSelection, func(State) { calls = append(calls, "sel-1") })
	m.Connect(EventAny, func(s State) { calls = append(calls, "any:"+s.Event.String()) })
	m.Connect(EventTreebankLen, func(State) { calls = append(calls, "len") })
	m.Connect(EventTreeSelection, func(State) { calls = append(calls, "sel-2") })

	m.Push(graph(t, "a"))

	assert.Equal(t, []string{
		"any:treebank-len", "len",
		"sel-1", "any:tree-selection", "sel-2",
	}, calls)
}

func TestModel_IndexInvariant(t *testing.T) {
	m := NewModel()
	ops := []func() bool{m.Next, m.Previous, m.First}
	for i := 0; i < 5; i++ {
		m.Push(graph(t, "x"))
		for _, op := range ops {
			op()
			op()
			idx := m.Idx()
			assert.True(t, idx >= 0 && idx < m.Len(), "idx %d out of [0,%d)", idx, m.Len())
		}
	}
}

func TestModel_ConcurrentPush(t *testing.T) {
	m := NewModel()
	var mu sync.Mutex
	lenEvents := 0
	m.Connect(EventTreebankLen, func(State) {
		mu.Lock()
		lenEvents++
		mu.Unlock()
	})

	g := graph(t, "x")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				m.Push(g)
				m.Next()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 80, m.Len())
	assert.Equal(t, 80, lenEvents)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "any", EventAny.String())
	assert.Equal(t, "tree-selection", EventTreeSelection.String())
	assert.Equal(t, "treebank-len", EventTreebankLen.String())
	assert.Equal(t, "unknown", Event(42).String())
}
