package depgraph

import (
	"strings"

	"github.com/matzehuels/conllview/pkg/conll"
	"github.com/matzehuels/conllview/pkg/errors"
)

// Label selects which token column names a node in rendered output.
type Label int

const (
	// LabelForm uses the FORM column.
	LabelForm Label = iota
	// LabelLemma uses the LEMMA column.
	LabelLemma
	// LabelCPOS uses the CPOSTAG column.
	LabelCPOS
	// LabelPOS uses the POSTAG column.
	LabelPOS
)

// absentColumn is shown for a label column the token leaves empty.
const absentColumn = "_"

var labelNames = []string{"form", "lemma", "cpos", "pos"}

// String returns the label name.
func (l Label) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return "unknown"
	}
	return labelNames[l]
}

// Select returns the column of tok named by l, or "_" when it is empty.
func (l Label) Select(tok conll.Token) string {
	var s string
	switch l {
	case LabelLemma:
		s = tok.Lemma
	case LabelCPOS:
		s = tok.CPOS
	case LabelPOS:
		s = tok.POS
	default:
		s = tok.Form
	}
	if s == "" {
		return absentColumn
	}
	return s
}

// ParseLabel parses a label name. The empty string is [LabelForm].
func ParseLabel(s string) (Label, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return LabelForm, nil
	}
	for i, n := range labelNames {
		if n == name {
			return Label(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidLabel, "unknown label %q (want %s)", s, strings.Join(labelNames, ", "))
}

// Labels lists the label names for flag help and completion.
func Labels() []string {
	return append([]string(nil), labelNames...)
}
