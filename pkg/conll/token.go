package conll

import (
	"maps"
	"slices"
	"strings"
)

const (
	// FieldSeparator separates the columns of a token line.
	FieldSeparator = "\t"
	// NumFields is the number of columns in a CoNLL-X token line.
	NumFields = 10

	featuresSeparator = "|"
	featureSeparator  = "="
	absent            = "_"
)

// Head is an optional 1-based governor index. Index 0 denotes the root.
// Valid is false when the column held "_".
type Head struct {
	Index int
	Valid bool
}

// NewHead returns a present head with the given index.
func NewHead(index int) Head { return Head{Index: index, Valid: true} }

// Features holds the FEATS column as key/value pairs. Bare flags such as
// "highlight" are stored with an empty value.
type Features map[string]string

// Has reports whether the feature key is present.
func (f Features) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// String formats the features in canonical sorted order, or "_" when empty.
func (f Features) String() string {
	if len(f) == 0 {
		return absent
	}
	parts := make([]string, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		if v := f[k]; v != "" {
			parts = append(parts, k+featureSeparator+v)
		} else {
			parts = append(parts, k)
		}
	}
	return strings.Join(parts, featuresSeparator)
}

// ParseFeatures parses a FEATS column. "_" yields nil.
func ParseFeatures(s string) Features {
	if s == absent || s == "" {
		return nil
	}
	feats := make(Features)
	for _, part := range strings.Split(s, featuresSeparator) {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, featureSeparator)
		feats[k] = v
	}
	return feats
}

// Token is one annotated word of a sentence.
type Token struct {
	Form     string
	Lemma    string
	CPOS     string
	POS      string
	Features Features

	// Surface layer.
	Head    Head
	HeadRel string

	// Projective layer.
	PHead    Head
	PHeadRel string
}

// Sentence is an ordered sequence of tokens.
type Sentence []Token

// Forms returns the surface forms in token order.
func (s Sentence) Forms() []string {
	forms := make([]string, len(s))
	for i, t := range s {
		forms[i] = t.Form
	}
	return forms
}

// Text joins the surface forms with single spaces.
func (s Sentence) Text() string {
	return strings.Join(s.Forms(), " ")
}
