// Package treebank holds the graphs of a loaded treebank and a cursor over
// them.
//
// # Store and Model
//
// A [Store] is an append-only list of graphs. A [Model] wraps a store with a
// selected index and a set of subscribers:
//
//	m := treebank.NewModel()
//	m.Connect(treebank.EventTreeSelection, func(s treebank.State) {
//	    fmt.Printf("showing %d of %d\n", s.Idx+1, s.Len)
//	})
//	m.Push(g)   // fires EventTreebankLen, then EventTreeSelection
//	m.Next()    // no-op at the last graph
//
// Subscribers run synchronously while the model is locked and receive a
// [State] snapshot. They must not call back into the model.
//
// # Loading
//
// A [Loader] turns CoNLL-X input into graphs. [Loader.Stream] is the
// producer: it reads and builds sentences on its own goroutine and sends a
// [Message] per sentence. [Loader.Apply] is the consumer: it pushes graphs
// into a model in input order. [Loader.Load] runs both under an errgroup:
//
//	l := treebank.NewLoader(treebank.Options{Layer: depgraph.LayerSurface})
//	stats, err := l.Load(ctx, f, m)
//
// Sentences that fail to parse or build are skipped and counted unless
// [Options.AbortOnError] is set.
package treebank
