package participle

import (
	"fmt"
	"iter"

	"github.com/miajio/hebmorph/pkg/prefix"
	"github.com/miajio/hebmorph/pkg/radix"
)

// Dictionary 词典与前缀表, 构建后只读
type Dictionary struct {
	words    *radix.Dict[MorphEntry]
	prefixes *prefix.Analyzer
}

// NewDictionary 由词条构建词典
// expected 为外部记录的词数, 小于 0 时不校验
func NewDictionary(cfg Config, entries iter.Seq2[string, MorphEntry], expected int) (*Dictionary, error) {
	maxLen := cfg.MaxTolerantLength
	if maxLen <= 0 {
		maxLen = DefaultConfig().MaxTolerantLength
	}
	words := radix.New[MorphEntry](
		radix.WithValueOverride(cfg.AllowValueOverride),
		radix.WithMaxTolerantKeyLength(maxLen),
	)
	for word, entry := range entries {
		if word == "" {
			return nil, fmt.Errorf("build dictionary: %w: empty word", ErrInvalidWord)
		}
		words.Insert(word, entry)
	}

	if words.Len() == 0 {
		return nil, ErrDictionaryEmpty
	}
	if expected >= 0 && words.Len() != expected {
		return nil, fmt.Errorf("%w: loaded %d, expected %d", ErrWordCountMismatch, words.Len(), expected)
	}

	return &Dictionary{
		words:    words,
		prefixes: prefix.New(cfg.AllowHeHasheela),
	}, nil
}

// Len 词数
func (d *Dictionary) Len() int { return d.words.Len() }

// Lookup 精确查找
func (d *Dictionary) Lookup(word string) (MorphEntry, bool) {
	return d.words.Lookup(word)
}

// Words 按字典序遍历所有词条
func (d *Dictionary) Words() iter.Seq2[string, MorphEntry] {
	return d.words.All()
}

// Prefixes 前缀分析器
func (d *Dictionary) Prefixes() *prefix.Analyzer { return d.prefixes }
