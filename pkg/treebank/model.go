package treebank

import (
	"sync"

	"github.com/matzehuels/conllview/pkg/depgraph"
)

// Event identifies a model change that subscribers can listen for.
type Event int

const (
	// EventAny matches every event.
	EventAny Event = iota
	// EventTreeSelection fires when the selected graph changes.
	EventTreeSelection
	// EventTreebankLen fires when a graph is appended.
	EventTreebankLen
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventAny:
		return "any"
	case EventTreeSelection:
		return "tree-selection"
	case EventTreebankLen:
		return "treebank-len"
	default:
		return "unknown"
	}
}

// State is a snapshot of the model passed to subscribers.
type State struct {
	Event Event           // the event being delivered
	Idx   int             // selected index, 0 when empty
	Len   int             // number of graphs
	Graph *depgraph.Graph // selected graph, nil when empty
}

// Callback receives model events.
type Callback func(State)

type subscription struct {
	event Event
	fn    Callback
}

// Model is a cursor over a [Store] that notifies subscribers of changes.
// All methods are safe for concurrent use.
type Model struct {
	mu    sync.Mutex
	store Store
	idx   int
	subs  []subscription
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Connect registers fn for event. Subscribers for the fired event and for
// [EventAny] run in registration order.
func (m *Model) Connect(event Event, fn Callback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, subscription{event: event, fn: fn})
}

// Push appends g and fires [EventTreebankLen]. When g is the first graph it
// also fires [EventTreeSelection]. The selection never moves otherwise.
func (m *Model) Push(g *depgraph.Graph) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wasEmpty := m.store.Len() == 0
	m.store.Push(g)
	m.fire(EventTreebankLen)
	if wasEmpty {
		m.idx = 0
		m.fire(EventTreeSelection)
	}
}

// First selects the first graph and fires [EventTreeSelection], even if it
// was already selected. It reports false on an empty model.
func (m *Model) First() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store.Len() == 0 {
		return false
	}
	m.idx = 0
	m.fire(EventTreeSelection)
	return true
}

// Next selects the following graph. It reports false, without firing, at
// the last graph or on an empty model.
func (m *Model) Next() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.idx+1 >= m.store.Len() {
		return false
	}
	m.idx++
	m.fire(EventTreeSelection)
	return true
}

// Previous selects the preceding graph. It reports false, without firing,
// at the first graph.
func (m *Model) Previous() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.idx == 0 {
		return false
	}
	m.idx--
	m.fire(EventTreeSelection)
	return true
}

// Select jumps to idx. It fires [EventTreeSelection] only when the selection
// changes and reports false when idx is out of range.
func (m *Model) Select(idx int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if idx < 0 || idx >= m.store.Len() {
		return false
	}
	if idx != m.idx {
		m.idx = idx
		m.fire(EventTreeSelection)
	}
	return true
}

// Graph returns the selected graph, or false when the model is empty.
func (m *Model) Graph() (*depgraph.Graph, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Get(m.idx)
}

// At returns the graph at idx without changing the selection.
func (m *Model) At(idx int) (*depgraph.Graph, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Get(idx)
}

// Idx returns the selected index.
func (m *Model) Idx() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idx
}

// Len returns the number of graphs.
func (m *Model) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Len()
}

// State returns a snapshot of the model.
func (m *Model) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(EventAny)
}

func (m *Model) snapshot(event Event) State {
	g, _ := m.store.Get(m.idx)
	return State{Event: event, Idx: m.idx, Len: m.store.Len(), Graph: g}
}

// fire must be called with mu held.
func (m *Model) fire(event Event) {
	state := m.snapshot(event)
	for _, s := range m.subs {
		if s.event == event || s.event == EventAny {
			s.fn(state)
		}
	}
}
