package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipRune 跳过查询中多出的 r
type skipRune struct {
	r     rune
	score float64
}

func (s skipRune) Tolerate(_ rune, key []rune, keyPos int, _ []rune) (Tolerance, bool) {
	if key[keyPos] != s.r {
		return Tolerance{}, false
	}
	return Tolerance{Score: s.score, KeyAdvance: 1}, true
}

// insertRune 接受字典中多出的 r
type insertRune struct {
	r     rune
	score float64
}

func (s insertRune) Tolerate(edge rune, _ []rune, _ int, _ []rune) (Tolerance, bool) {
	if edge != s.r {
		return Tolerance{}, false
	}
	return Tolerance{Score: s.score, EdgeAdvance: 1}, true
}

type stuck struct{}

func (stuck) Tolerate(rune, []rune, int, []rune) (Tolerance, bool) {
	return Tolerance{Score: 1}, true
}

func TestLookupTolerantExact(t *testing.T) {
	d := New[int]()
	d.Insert("abc", 1)
	d.Insert("abcd", 2)

	res := d.LookupTolerant("abc")
	require.Len(t, res, 1)
	assert.Equal(t, LookupResult[int]{Word: "abc", Value: 1, Score: 1.0}, res[0])
}

func TestLookupTolerantSkipsKeyRune(t *testing.T) {
	d := New[int]()
	d.Insert("abc", 1)

	res := d.LookupTolerant("abxc", skipRune{'x', 0.5})
	require.Len(t, res, 1)
	assert.Equal(t, "abc", res[0].Word)
	assert.Equal(t, 0.5, res[0].Score)
}

func TestLookupTolerantAcceptsEdgeRune(t *testing.T) {
	d := New[int]()
	d.Insert("abxc", 1)
	d.Insert("ab", 2)

	res := d.LookupTolerant("abc", insertRune{'x', 0.8})
	require.Len(t, res, 1)
	assert.Equal(t, "abxc", res[0].Word)
	assert.InDelta(t, 0.8, res[0].Score, 1e-9)
}

func TestLookupTolerantAcrossNodes(t *testing.T) {
	d := New[int]()
	d.Insert("ab", 1)
	d.Insert("abxcd", 2)
	d.Insert("abxce", 3)

	res := d.LookupTolerant("abcd", insertRune{'x', 0.8})
	require.Len(t, res, 1)
	assert.Equal(t, "abxcd", res[0].Word)
	assert.Equal(t, 2, res[0].Value)
}

func TestLookupTolerantScoresMultiply(t *testing.T) {
	d := New[int]()
	d.Insert("axbxc", 1)

	res := d.LookupTolerant("abc", insertRune{'x', 0.5})
	require.Len(t, res, 1)
	assert.InDelta(t, 0.25, res[0].Score, 1e-9)
}

func TestLookupTolerantNoMatch(t *testing.T) {
	d := New[int]()
	d.Insert("abc", 1)
	assert.Empty(t, d.LookupTolerant("abd", skipRune{'x', 0.5}))
	assert.Empty(t, d.LookupTolerant(""))
}

func TestLookupTolerantSkipsLongKeys(t *testing.T) {
	d := New[int](WithMaxTolerantKeyLength(3))
	d.Insert("abcd", 1)
	assert.Nil(t, d.LookupTolerant("abcd"))
	assert.Equal(t, 3, d.MaxTolerantKeyLength())

	_, ok := d.Lookup("abcd")
	assert.True(t, ok)
}

func TestLookupTolerantRuleWithoutProgressPanics(t *testing.T) {
	d := New[int]()
	d.Insert("abc", 1)
	assert.Panics(t, func() { d.LookupTolerant("abc", stuck{}) })
}
