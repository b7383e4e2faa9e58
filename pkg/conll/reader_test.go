package conll

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cverrors "github.com/matzehuels/conllview/pkg/errors"
)

const catsChaseMice = "# sent_id = 1\n" +
	"1\tCats\tcat\tNOUN\tNNS\t_\t2\tnsubj\t2\tnsubj\n" +
	"2\tchase\tchase\tVERB\tVBP\t_\t0\tROOT\t0\tROOT\n" +
	"3\tmice\tmouse\tNOUN\tNNS\thighlight|Number=Plur\t2\tdobj\t2\tdobj\n"

func TestReadSentence(t *testing.T) {
	r := NewReader(strings.NewReader(catsChaseMice))

	sent, err := r.Read()
	require.NoError(t, err)
	require.Len(t, sent, 3)

	assert.Equal(t, []string{"Cats", "chase", "mice"}, sent.Forms())
	assert.Equal(t, "Cats chase mice", sent.Text())

	assert.Equal(t, NewHead(2), sent[0].Head)
	assert.Equal(t, "nsubj", sent[0].HeadRel)
	assert.Equal(t, NewHead(0), sent[1].Head)
	assert.Equal(t, "cat", sent[0].Lemma)
	assert.Equal(t, "NOUN", sent[0].CPOS)
	assert.Equal(t, "NNS", sent[0].POS)

	assert.True(t, sent[2].Features.Has("highlight"))
	assert.Equal(t, "Plur", sent[2].Features["Number"])
	assert.Nil(t, sent[0].Features)

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReadAbsentColumns(t *testing.T) {
	input := "1\tHello\t_\t_\t_\t_\t_\t_\t_\t_\n"
	sent, err := NewReader(strings.NewReader(input)).Read()
	require.NoError(t, err)
	require.Len(t, sent, 1)

	tok := sent[0]
	assert.False(t, tok.Head.Valid)
	assert.False(t, tok.PHead.Valid)
	assert.Empty(t, tok.HeadRel)
	assert.Empty(t, tok.Lemma)
}

func TestReadUnderscoreForm(t *testing.T) {
	input := "1\t_\t_\tPUNCT\t_\t_\t0\tpunct\t_\t_\n"
	sent, err := NewReader(strings.NewReader(input)).Read()
	require.NoError(t, err)
	assert.Equal(t, "_", sent[0].Form)
}

func TestReadQuoteForm(t *testing.T) {
	input := "1\t\"\t_\tPUNCT\t_\t_\t0\tpunct\t_\t_\n"
	sent, err := NewReader(strings.NewReader(input)).Read()
	require.NoError(t, err)
	assert.Equal(t, `"`, sent[0].Form)
}

func TestReadMultipleSentences(t *testing.T) {
	input := "\n\n" + catsChaseMice + "\n\n\n" +
		"1\tRun\t_\tVERB\t_\t_\t0\tROOT\t_\t_\n" +
		"2\t!\t_\tPUNCT\t_\t_\t1\tpunct\t_\t_\n"

	sents, err := NewReader(strings.NewReader(input)).ReadAll()
	require.NoError(t, err)
	require.Len(t, sents, 2)
	assert.Len(t, sents[0], 3)
	assert.Equal(t, "Run !", sents[1].Text())
}

func TestReadSkipsMultiwordAndEmptyNodes(t *testing.T) {
	input := "1-2\tdel\t_\t_\t_\t_\t_\t_\t_\t_\n" +
		"1\tde\t_\tADP\t_\t_\t2\tcase\t_\t_\n" +
		"2\tel\t_\tDET\t_\t_\t0\tROOT\t_\t_\n" +
		"2.1\tx\t_\t_\t_\t_\t_\t_\t_\t_\n"

	sent, err := NewReader(strings.NewReader(input)).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "el"}, sent.Forms())
}

func TestReadMalformedSentenceIsSkippable(t *testing.T) {
	input := "1\tBad\t_\t_\t_\t_\tx\tnsubj\t_\t_\n" +
		"2\tline\t_\t_\t_\t_\t0\tROOT\t_\t_\n" +
		"\n" +
		"1\tGood\t_\t_\t_\t_\t0\tROOT\t_\t_\n"

	r := NewReader(strings.NewReader(input))

	_, err := r.Read()
	require.Error(t, err)
	assert.True(t, cverrors.Is(err, cverrors.ErrCodeInvalidInput))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Line)

	sent, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "Good", sent.Text())

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReadFieldCount(t *testing.T) {
	input := "1\tShort\t_\n"
	_, err := NewReader(strings.NewReader(input)).Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldCount)
}

func TestReadOutOfSequenceID(t *testing.T) {
	input := "2\tWrong\t_\t_\t_\t_\t0\tROOT\t_\t_\n"
	_, err := NewReader(strings.NewReader(input)).Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of sequence")
}

func TestReadCommentOnlySentence(t *testing.T) {
	input := "# just a comment\n\n"
	_, err := NewReader(strings.NewReader(input)).Read()
	require.Error(t, err)
	assert.True(t, cverrors.Is(err, cverrors.ErrCodeInvalidInput))
}

func TestReadEmptyInput(t *testing.T) {
	_, err := NewReader(strings.NewReader("")).Read()
	assert.Equal(t, io.EOF, err)
}

func TestFeatures(t *testing.T) {
	tests := []struct {
		in   string
		want Features
		str  string
	}{
		{"_", nil, "_"},
		{"Number=Sing", Features{"Number": "Sing"}, "Number=Sing"},
		{"highlight|Case=Nom", Features{"highlight": "", "Case": "Nom"}, "Case=Nom|highlight"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseFeatures(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.str, got.String())
		})
	}
}
