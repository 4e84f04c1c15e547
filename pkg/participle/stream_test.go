package participle

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/hebmorph/pkg/hebrew"
	"github.com/miajio/hebmorph/pkg/tokenizer"
)

func readAll(t *testing.T, s *StreamLemmatizer) []Word {
	t.Helper()
	var out []Word
	for {
		w, err := s.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, w)
	}
}

func TestStreamLemmatizer(t *testing.T) {
	input := `לכלבי test 2024 שלחן ב-כלבי צה"ל מילהלאקיימת`
	s := NewStreamLemmatizer(strings.NewReader(input), testLemmatizer(t))
	words := readAll(t, s)
	require.Len(t, words, 7)

	assert.Equal(t, KindHebrew, words[0].Kind)
	assert.Equal(t, "לכלבי", words[0].Text)
	require.Len(t, words[0].Lemmas, 1)
	assert.Equal(t, "כלב", words[0].Lemmas[0].Lemma)
	assert.Equal(t, 1, words[0].Lemmas[0].PrefixLength)

	assert.Equal(t, KindNonHebrew, words[1].Kind)
	assert.Equal(t, "test", words[1].Text)
	assert.Equal(t, 6, words[1].Offset)
	assert.Empty(t, words[1].Lemmas)

	assert.Equal(t, KindNumeric, words[2].Kind)
	assert.Equal(t, "2024", words[2].Text)

	assert.Equal(t, KindHebrew, words[3].Kind)
	require.Len(t, words[3].Lemmas, 1)
	assert.Equal(t, "שולחן", words[3].Lemmas[0].Lemma)
	assert.Equal(t, Tolerated, words[3].Lemmas[0].Provenance)

	// ב- 作为前缀片段被跳过
	assert.Equal(t, "כלבי", words[4].Text)
	assert.Equal(t, 23, words[4].Offset)
	assert.Equal(t, KindHebrew, words[4].Kind)

	assert.Equal(t, KindHebrew, words[5].Kind)
	assert.True(t, words[5].Type.Has(tokenizer.Acronym))
	require.Len(t, words[5].Lemmas, 1)
	assert.Equal(t, hebrew.DAcronym, words[5].Lemmas[0].Mask)
	assert.Equal(t, `צה"ל`, words[5].Lemmas[0].Lemma)

	assert.Equal(t, KindUnrecognized, words[6].Kind)
	assert.Equal(t, "מילהלאקיימת", words[6].Text)
	assert.Nil(t, words[6].Lemmas)
}

func TestStreamLemmatizerStripsQuotedPrefix(t *testing.T) {
	s := NewStreamLemmatizer(strings.NewReader(`ה"שולחן`), testLemmatizer(t))
	words := readAll(t, s)
	require.Len(t, words, 1)
	assert.Equal(t, "שולחן", words[0].Text)
	assert.False(t, words[0].Type.Has(tokenizer.Acronym))
	require.NotEmpty(t, words[0].Lemmas)
	assert.Equal(t, 1.0, words[0].Lemmas[0].Score)
}

func TestStreamLemmatizerRemovesNiqqud(t *testing.T) {
	s := NewStreamLemmatizer(strings.NewReader("\u05DB\u05BC\u05B0\u05DC\u05B8\u05D1\u05B4\u05D9"), testLemmatizer(t))
	words := readAll(t, s)
	require.Len(t, words, 1)
	assert.Equal(t, "כלבי", words[0].Text)
	assert.Equal(t, KindHebrew, words[0].Kind)
	assert.Equal(t, 8, words[0].Length)
}

func TestStreamLemmatizerWithoutTolerance(t *testing.T) {
	s := NewStreamLemmatizer(strings.NewReader("שלחן"), testLemmatizer(t), WithTolerance(false))
	words := readAll(t, s)
	require.Len(t, words, 1)
	assert.Equal(t, KindUnrecognized, words[0].Kind)
}

func TestStreamLemmatizerStopWords(t *testing.T) {
	input := "של כלבי"
	s := NewStreamLemmatizer(strings.NewReader(input), testLemmatizer(t), WithStopWords(DefaultStopWords(), false))
	words := readAll(t, s)
	require.Len(t, words, 2)
	assert.True(t, words[0].Stop)
	assert.False(t, words[1].Stop)

	s = NewStreamLemmatizer(strings.NewReader(input), testLemmatizer(t), WithStopWords(DefaultStopWords(), true))
	words = readAll(t, s)
	require.Len(t, words, 1)
	assert.Equal(t, "כלבי", words[0].Text)
}

func TestStreamLemmatizerReset(t *testing.T) {
	s := NewStreamLemmatizer(strings.NewReader("בית"), testLemmatizer(t))
	require.Len(t, readAll(t, s), 1)

	s.Reset(strings.NewReader("כלבי שבתו"))
	words := readAll(t, s)
	require.Len(t, words, 2)
	assert.Equal(t, 0, words[0].Offset)
	assert.Equal(t, 5, words[1].Offset)
}
