package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/conllview/pkg/depgraph"
)

type graph struct {
	Layer  string  `json:"layer"`
	Label  string  `json:"label"`
	Tokens []token `json:"tokens"`
	Edges  []edge  `json:"edges"`
}

type token struct {
	ID     int    `json:"id"`
	Form   string `json:"form"`
	Text   string `json:"text"`
	Lemma  string `json:"lemma,omitempty"`
	CPOS   string `json:"cpos,omitempty"`
	POS    string `json:"pos,omitempty"`
	Feats  string `json:"feats,omitempty"`
	Head   *int   `json:"head,omitempty"`
	DepRel string `json:"deprel,omitempty"`
	Marked bool   `json:"marked,omitempty"`
}

type edge struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Label  string `json:"label"`
}

// WriteJSON encodes g as indented JSON and writes it to w.
func WriteJSON(g *depgraph.Graph, w io.Writer) error {
	out := graph{
		Layer:  g.Layer().String(),
		Label:  g.Label().String(),
		Tokens: make([]token, 0, g.NodeCount()),
		Edges:  make([]edge, 0, g.EdgeCount()),
	}

	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		t := token{
			ID:     n.Offset + 1,
			Form:   n.Token.Form,
			Text:   n.Text,
			Lemma:  n.Token.Lemma,
			CPOS:   n.Token.CPOS,
			POS:    n.Token.POS,
			Marked: n.Marked,
		}
		if len(n.Token.Features) > 0 {
			t.Feats = n.Token.Features.String()
		}
		head, rel := g.Layer().Select(n.Token)
		if head.Valid {
			h := head.Index
			t.Head = &h
		}
		t.DepRel = rel
		out.Tokens = append(out.Tokens, t)
	}
	for _, id := range g.Edges() {
		e, _ := g.Edge(id)
		out.Edges = append(out.Edges, edge{Source: int(e.Source) + 1, Target: int(e.Target) + 1, Label: e.Label})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *depgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
