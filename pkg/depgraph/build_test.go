package depgraph

import (
	"testing"

	"github.com/matzehuels/conllview/pkg/conll"
	"github.com/matzehuels/conllview/pkg/errors"
)

func tok(form string, head int, rel string) conll.Token {
	return conll.Token{Form: form, Head: conll.NewHead(head), HeadRel: rel}
}

func catsChaseMice() conll.Sentence {
	return conll.Sentence{
		tok("Cats", 2, "nsubj"),
		tok("chase", 0, "ROOT"),
		tok("mice", 2, "dobj"),
	}
}

func TestBuild_CatsChaseMice(t *testing.T) {
	g, err := Build(catsChaseMice(), LayerSurface)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}

	want := []Edge{
		{Source: 1, Target: 0, Label: "nsubj"},
		{Source: 1, Target: 2, Label: "dobj"},
	}
	for i, id := range g.Edges() {
		e, ok := g.Edge(id)
		if !ok {
			t.Fatalf("Edge(%d) not found", id)
		}
		if e != want[i] {
			t.Errorf("Edge(%d) = %+v, want %+v", id, e, want[i])
		}
	}

	if roots := g.Roots(); len(roots) != 1 || roots[0] != 1 {
		t.Errorf("Roots() = %v, want [1]", roots)
	}
	if deps := g.Dependents(1); len(deps) != 2 || deps[0] != 0 || deps[1] != 2 {
		t.Errorf("Dependents(1) = %v, want [0 2]", deps)
	}
	if h, ok := g.Head(0); !ok || h.Source != 1 {
		t.Errorf("Head(0) = %+v, %v, want source 1", h, ok)
	}
	if _, ok := g.Head(1); ok {
		t.Error("Head(1) should not exist for the root")
	}
}

func TestBuild_NodeOrder(t *testing.T) {
	sent := catsChaseMice()
	g, err := Build(sent, LayerSurface)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i, id := range g.Nodes() {
		n, _ := g.Node(id)
		if n.Offset != i {
			t.Errorf("node %d has offset %d", i, n.Offset)
		}
		if g.Form(id) != sent[i].Form {
			t.Errorf("Form(%d) = %q, want %q", id, g.Form(id), sent[i].Form)
		}
	}
}

func TestBuild_EdgeCountProperty(t *testing.T) {
	tests := []struct {
		name string
		sent conll.Sentence
	}{
		{"single root", conll.Sentence{tok("Hi", 0, "ROOT")}},
		{"two roots", conll.Sentence{tok("Yes", 0, "ROOT"), tok("no", 0, "ROOT")}},
		{"chain", conll.Sentence{tok("a", 0, ""), tok("b", 1, "x"), tok("c", 2, "y"), tok("d", 3, "z")}},
		{"cats", catsChaseMice()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.sent, LayerSurface)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			nonRoot := 0
			for _, tk := range tt.sent {
				if tk.Head.Index != 0 {
					nonRoot++
				}
			}
			if g.NodeCount() != len(tt.sent) {
				t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), len(tt.sent))
			}
			if g.EdgeCount() != nonRoot {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), nonRoot)
			}
			for _, id := range g.Nodes() {
				_, hasHead := g.Head(id)
				isRoot := tt.sent[id].Head.Index == 0
				if hasHead == isRoot {
					t.Errorf("node %d: hasHead=%v isRoot=%v", id, hasHead, isRoot)
				}
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		sent conll.Sentence
		code errors.Code
	}{
		{
			name: "missing head",
			sent: conll.Sentence{{Form: "Hi"}},
			code: errors.ErrCodeMissingHead,
		},
		{
			name: "missing relation",
			sent: conll.Sentence{tok("a", 0, "ROOT"), tok("b", 1, "")},
			code: errors.ErrCodeMissingRelation,
		},
		{
			name: "head beyond sentence",
			sent: conll.Sentence{tok("a", 0, "ROOT"), tok("b", 5, "x")},
			code: errors.ErrCodeInvalidHead,
		},
		{
			name: "negative head",
			sent: conll.Sentence{tok("a", 0, "ROOT"), tok("b", -1, "x")},
			code: errors.ErrCodeInvalidHead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.sent, LayerSurface)
			if err == nil {
				t.Fatal("Build() expected error")
			}
			if g != nil {
				t.Error("Build() returned a graph with an error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error code = %s, want %s", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestBuild_RootWithoutRelation(t *testing.T) {
	g, err := Build(conll.Sentence{tok("Hi", 0, "")}, LayerSurface)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestBuild_ProjectiveLayer(t *testing.T) {
	sent := conll.Sentence{
		{Form: "a", Head: conll.NewHead(0), HeadRel: "ROOT", PHead: conll.NewHead(2), PHeadRel: "dep"},
		{Form: "b", Head: conll.NewHead(1), HeadRel: "obj", PHead: conll.NewHead(0), PHeadRel: "ROOT"},
	}

	surface, err := Build(sent, LayerSurface)
	if err != nil {
		t.Fatalf("Build(surface) error = %v", err)
	}
	projective, err := Build(sent, LayerProjective)
	if err != nil {
		t.Fatalf("Build(projective) error = %v", err)
	}

	se, _ := surface.Edge(0)
	pe, _ := projective.Edge(0)
	if se != (Edge{Source: 0, Target: 1, Label: "obj"}) {
		t.Errorf("surface edge = %+v", se)
	}
	if pe != (Edge{Source: 1, Target: 0, Label: "dep"}) {
		t.Errorf("projective edge = %+v", pe)
	}
	if projective.Layer() != LayerProjective {
		t.Errorf("Layer() = %v, want projective", projective.Layer())
	}
}

func TestBuild_ProjectiveMissing(t *testing.T) {
	_, err := Build(catsChaseMice(), LayerProjective)
	if !errors.Is(err, errors.ErrCodeMissingHead) {
		t.Errorf("Build() error = %v, want MISSING_HEAD", err)
	}
}

func TestBuild_Marked(t *testing.T) {
	sent := catsChaseMice()
	sent[2].Features = conll.Features{"highlight": ""}

	g, err := Build(sent, LayerSurface)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.Marked(0) || g.Marked(1) || !g.Marked(2) {
		t.Errorf("Marked = [%v %v %v], want [false false true]", g.Marked(0), g.Marked(1), g.Marked(2))
	}

	g, _ = Build(sent, LayerSurface, WithMarkFeature(""))
	if g.Marked(2) {
		t.Error("Marked(2) should be false with marking disabled")
	}

	sent[0].Features = conll.Features{"focus": "yes"}
	g, _ = Build(sent, LayerSurface, WithMarkFeature("focus"))
	if !g.Marked(0) || g.Marked(2) {
		t.Error("WithMarkFeature(focus) should mark only node 0")
	}
}

func TestBuild_Empty(t *testing.T) {
	g, err := Build(nil, LayerSurface)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("empty graph has %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestGraph_OutOfRange(t *testing.T) {
	g, _ := Build(catsChaseMice(), LayerSurface)

	if _, ok := g.Node(3); ok {
		t.Error("Node(3) should not exist")
	}
	if _, ok := g.Edge(-1); ok {
		t.Error("Edge(-1) should not exist")
	}
	if g.Form(10) != "" {
		t.Error("Form(10) should be empty")
	}
	if g.Dependents(10) != nil {
		t.Error("Dependents(10) should be nil")
	}
}

func TestParseLayer(t *testing.T) {
	tests := []struct {
		in      string
		want    Layer
		wantErr bool
	}{
		{"surface", LayerSurface, false},
		{"headrel", LayerSurface, false},
		{"", LayerSurface, false},
		{"Projective", LayerProjective, false},
		{"pheadrel", LayerProjective, false},
		{"deep", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLayer(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLayer(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidLayer) {
					t.Errorf("ParseLayer(%q) code = %s", tt.in, errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseLayer(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
