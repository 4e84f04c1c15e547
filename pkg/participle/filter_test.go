package participle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/miajio/hebmorph/pkg/hebrew"
)

func TestBasicLemmaFilter(t *testing.T) {
	noun := func(score float64) HebrewToken { return HebrewToken{Mask: hebrew.DNoun, Score: score} }
	verb := func(score float64) HebrewToken { return HebrewToken{Mask: hebrew.DVerb | hebrew.DPast, Score: score} }
	f := BasicLemmaFilter{}

	// 只有一个候选时不过滤
	single := []HebrewToken{noun(0.1)}
	assert.Equal(t, single, f.Filter("", single))

	got := f.Filter("", []HebrewToken{noun(0.9), noun(0.6), verb(0.8), verb(0.9)})
	assert.Equal(t, []HebrewToken{noun(0.9), verb(0.9)}, got)

	// 全部被过滤时保留原结果
	all := []HebrewToken{noun(0.5), verb(0.8)}
	assert.Equal(t, all, f.Filter("", all))

	assert.Empty(t, f.Filter("", nil))
}

func TestStopWords(t *testing.T) {
	sw := DefaultStopWords()
	assert.Equal(t, len(BasicStopWords), sw.Len())
	assert.True(t, sw.IsStop("של"))
	assert.True(t, sw.IsStop(`ע"י`))
	assert.False(t, sw.IsStop("כלב"))

	sw.Add("כלב")
	assert.True(t, sw.IsStop("כלב"))
	sw.Remove("כלב")
	assert.False(t, sw.IsStop("כלב"))

	assert.Zero(t, NewStopWords().Len())
}
