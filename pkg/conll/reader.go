package conll

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	cverrors "github.com/matzehuels/conllview/pkg/errors"
)

// maxLineSize bounds a single token line.
const maxLineSize = 1 << 20

// ErrFieldCount is returned when a token line does not have NumFields columns.
var ErrFieldCount = errors.New("wrong number of fields")

// ParseError describes a malformed token line.
type ParseError struct {
	Line int   // 1-based line number in the input
	Err  error // what was wrong with the line
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Reader reads sentences from a CoNLL-X stream.
// It is not safe for concurrent use.
type Reader struct {
	scanner  *bufio.Scanner
	line     int
	sentence int
}

// NewReader returns a reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: s}
}

// Read returns the next sentence, or io.EOF when the input is exhausted.
//
// A malformed line produces an INVALID_INPUT error wrapping a *ParseError.
// The remaining lines of that sentence are discarded so the next call
// resumes at the following sentence.
func (r *Reader) Read() (Sentence, error) {
	var (
		sent    Sentence
		started bool
		bad     error
	)

	for r.scanner.Scan() {
		r.line++
		line := strings.TrimRight(r.scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			if !started {
				continue
			}
			break
		}
		if !started {
			started = true
			r.sentence++
		}
		if bad != nil || strings.HasPrefix(line, "#") {
			continue
		}

		tok, skip, err := parseLine(line, len(sent)+1)
		if err != nil {
			bad = &ParseError{Line: r.line, Err: err}
			continue
		}
		if !skip {
			sent = append(sent, tok)
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", r.line+1, err)
	}
	if bad != nil {
		return nil, cverrors.Wrap(cverrors.ErrCodeInvalidInput, bad, "sentence %d", r.sentence)
	}
	if !started {
		return nil, io.EOF
	}
	if len(sent) == 0 {
		return nil, cverrors.New(cverrors.ErrCodeInvalidInput, "sentence %d has no tokens", r.sentence)
	}
	return sent, nil
}

// ReadAll reads every sentence until io.EOF. It stops at the first error.
func (r *Reader) ReadAll() ([]Sentence, error) {
	var sents []Sentence
	for {
		s, err := r.Read()
		if err == io.EOF {
			return sents, nil
		}
		if err != nil {
			return sents, err
		}
		sents = append(sents, s)
	}
}

// parseLine parses one token line. skip is true for multiword ranges and
// empty nodes. wantID is the expected 1-based token ID.
func parseLine(line string, wantID int) (tok Token, skip bool, err error) {
	fields := strings.Split(line, FieldSeparator)
	if len(fields) != NumFields {
		return tok, false, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), NumFields)
	}

	if strings.ContainsAny(fields[0], "-.") {
		return tok, true, nil
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tok, false, fmt.Errorf("parse ID %q: %w", fields[0], err)
	}
	if id != wantID {
		return tok, false, fmt.Errorf("token ID %d out of sequence, want %d", id, wantID)
	}

	if fields[1] == "" {
		return tok, false, errors.New("empty FORM field")
	}
	tok.Form = fields[1]
	tok.Lemma = optional(fields[2])
	tok.CPOS = optional(fields[3])
	tok.POS = optional(fields[4])
	tok.Features = ParseFeatures(fields[5])

	if tok.Head, err = parseHead(fields[6]); err != nil {
		return tok, false, fmt.Errorf("parse HEAD: %w", err)
	}
	tok.HeadRel = optional(fields[7])

	if tok.PHead, err = parseHead(fields[8]); err != nil {
		return tok, false, fmt.Errorf("parse PHEAD: %w", err)
	}
	tok.PHeadRel = optional(fields[9])

	return tok, false, nil
}

func parseHead(s string) (Head, error) {
	if s == absent {
		return Head{}, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return Head{}, err
	}
	if i < 0 {
		return Head{}, fmt.Errorf("negative head %d", i)
	}
	return NewHead(i), nil
}

func optional(s string) string {
	if s == absent {
		return ""
	}
	return s
}
