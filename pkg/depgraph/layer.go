package depgraph

import (
	"strings"

	"github.com/matzehuels/conllview/pkg/conll"
	"github.com/matzehuels/conllview/pkg/errors"
)

// Layer selects which head/relation pair of a token is used for edges.
type Layer int

const (
	// LayerSurface uses the HEAD and DEPREL columns.
	LayerSurface Layer = iota
	// LayerProjective uses the PHEAD and PDEPREL columns.
	LayerProjective
)

// String returns the canonical layer name.
func (l Layer) String() string {
	switch l {
	case LayerSurface:
		return "surface"
	case LayerProjective:
		return "projective"
	default:
		return "unknown"
	}
}

// Select returns the head and relation of tok on this layer.
func (l Layer) Select(tok conll.Token) (conll.Head, string) {
	if l == LayerProjective {
		return tok.PHead, tok.PHeadRel
	}
	return tok.Head, tok.HeadRel
}

// ParseLayer parses a layer name. Besides the canonical names it accepts the
// column names "headrel" and "pheadrel".
func ParseLayer(s string) (Layer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "surface", "headrel", "":
		return LayerSurface, nil
	case "projective", "pheadrel":
		return LayerProjective, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidLayer, "unknown layer %q (want surface or projective)", s)
}

// Layers lists the canonical layer names for flag help and completion.
func Layers() []string {
	return []string{LayerSurface.String(), LayerProjective.String()}
}
