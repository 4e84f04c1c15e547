package prefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/hebmorph/pkg/hebrew"
)

func TestIsLegal(t *testing.T) {
	a := New(false)
	for _, p := range []string{"ב", "ה", "ו", "כ", "ל", "מ", "ש", "וכש", "שב", "ומשל"} {
		assert.True(t, a.IsLegal(p), p)
	}
	for _, p := range []string{"", "לל", "א", "בב", "ולל"} {
		assert.False(t, a.IsLegal(p), p)
	}
	assert.Equal(t, len(hebrew.Prefixes(false)), a.Len())
}

func TestMask(t *testing.T) {
	plain, withH := New(false), New(true)

	m, ok := plain.Mask("ה")
	require.True(t, ok)
	assert.Zero(t, m&hebrew.PSVerb)

	m, ok = withH.Mask("ה")
	require.True(t, ok)
	assert.NotZero(t, m&hebrew.PSVerb)

	_, ok = plain.Mask("xyz")
	assert.False(t, ok)
}

func TestTryStrip(t *testing.T) {
	a := New(false)
	cases := []struct{ in, want string }{
		{`ה"שטיח`, "שטיח"},
		{`ש"המידע`, "המידע"},
		{"ש'המידע", "המידע"},
		{`צה"ל`, `צה"ל`}, // צה 不是前缀
		{`ה"ל`, `ה"ל`},   // 引号后只剩一个字母
		{`ו"ש`, `ו"ש`},
		{"שלום", "שלום"},
		{"ב'", "ב'"},         // Geresh 在词尾
		{`צה"ל'ב`, `צה"ל'ב`}, // Geresh 在 Gershayim 之后
		{`'שלום`, `'שלום`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, a.TryStrip(c.in), c.in)
	}
}
