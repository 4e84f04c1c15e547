package participle

import (
	"cmp"
	"slices"
	"strings"

	"github.com/miajio/hebmorph/pkg/hebrew"
	"github.com/miajio/hebmorph/pkg/radix"
	"github.com/miajio/hebmorph/pkg/tolerance"
)

const (
	prefixScore  = 0.9
	minStemRunes = 2
)

// Lemmatizer 词元分析器
// 不持有可变状态, 可以被多个 goroutine 共用
type Lemmatizer struct {
	dict  *Dictionary
	rules []radix.ToleranceRule
}

// NewLemmatizer 创建词元分析器
func NewLemmatizer(dict *Dictionary) *Lemmatizer {
	return &Lemmatizer{dict: dict, rules: tolerance.EmKriyaAll()}
}

// Dictionary 使用的词典
func (l *Lemmatizer) Dictionary() *Dictionary { return l.dict }

// IsLegalPrefix 判断是否为合法前缀
func (l *Lemmatizer) IsLegalPrefix(s string) bool {
	return l.dict.prefixes.IsLegal(s)
}

// TryStrippingPrefix 去掉用引号与词隔开的前缀
func (l *Lemmatizer) TryStrippingPrefix(word string) string {
	return l.dict.prefixes.TryStrip(word)
}

// candidates 去重后的候选, 重复时保留先出现的
type candidates struct {
	seen map[tokenKey]struct{}
	list []HebrewToken
}

func (c *candidates) add(t HebrewToken) {
	if c.seen == nil {
		c.seen = make(map[tokenKey]struct{})
	}
	k := t.key()
	if _, ok := c.seen[k]; ok {
		return
	}
	c.seen[k] = struct{}{}
	c.list = append(c.list, t)
}

func (c *candidates) sorted() []HebrewToken {
	slices.SortStableFunc(c.list, func(a, b HebrewToken) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return c.list
}

// Lemmatize 精确分析: 整词查找, 再逐个尝试合法前缀
func (l *Lemmatizer) Lemmatize(word string) []HebrewToken {
	var c candidates
	w := []rune(word)

	if e, ok := l.dict.Lookup(word); ok {
		for _, rec := range e.Lemmas {
			c.add(newHebrewToken(word, 0, word, rec, 1.0, Exact))
		}
	} else if strings.HasSuffix(word, "'") {
		// 去掉词尾的 Geresh 再试
		stem := string(w[:len(w)-1])
		if e, ok := l.dict.Lookup(stem); ok {
			for _, rec := range e.Lemmas {
				c.add(newHebrewToken(word, 0, stem, rec, 1.0, Exact))
			}
		}
	}

	l.eachPrefix(w, func(n int, pm hebrew.PrefixType) {
		stem := string(w[n:])
		e, ok := l.dict.Lookup(stem)
		if !ok || e.Prefixes&pm == 0 {
			return
		}
		for _, rec := range e.Lemmas {
			if hebrew.MaskToPrefix(rec.Mask)&pm != 0 {
				c.add(newHebrewToken(word, n, stem, rec, prefixScore, WithPrefix))
			}
		}
	})
	return c.sorted()
}

// LemmatizeTolerant 容错分析, 过长的词直接返回空
func (l *Lemmatizer) LemmatizeTolerant(word string) []HebrewToken {
	var c candidates
	w := []rune(word)
	if len(w) > l.dict.words.MaxTolerantKeyLength() {
		return nil
	}

	for _, r := range l.dict.words.LookupTolerant(word, l.rules...) {
		p := Tolerated
		if r.Score == 1.0 {
			p = Exact
		}
		for _, rec := range r.Value.Lemmas {
			c.add(newHebrewToken(r.Word, 0, r.Word, rec, r.Score, p))
		}
	}

	l.eachPrefix(w, func(n int, pm hebrew.PrefixType) {
		pre := string(w[:n])
		for _, r := range l.dict.words.LookupTolerant(string(w[n:]), l.rules...) {
			if r.Value.Prefixes&pm == 0 {
				continue
			}
			p := ToleratedWithPrefix
			if r.Score == 1.0 {
				p = WithPrefix
			}
			for _, rec := range r.Value.Lemmas {
				if hebrew.MaskToPrefix(rec.Mask)&pm != 0 {
					c.add(newHebrewToken(pre+r.Word, n, r.Word, rec, r.Score*prefixScore, p))
				}
			}
		}
	})
	return c.sorted()
}

// eachPrefix 依次回调每个合法前缀的长度与类别, 前缀之后至少保留两个字母
func (l *Lemmatizer) eachPrefix(w []rune, fn func(n int, pm hebrew.PrefixType)) {
	for n := 1; len(w)-n >= minStemRunes; n++ {
		pm, ok := l.dict.prefixes.Mask(string(w[:n]))
		if !ok {
			return
		}
		fn(n, pm)
	}
}

// IsRecognizedWord 判断词能否被识别, 以及以何种方式识别
func (l *Lemmatizer) IsRecognizedWord(word string, tolerate bool) WordType {
	w := []rune(word)
	if l.dict.words.Contains(word) {
		return HebrewWord
	}
	if strings.HasSuffix(word, "'") && l.dict.words.Contains(string(w[:len(w)-1])) {
		return HebrewWord
	}

	found := false
	l.eachPrefix(w, func(n int, pm hebrew.PrefixType) {
		if found {
			return
		}
		e, ok := l.dict.Lookup(string(w[n:]))
		found = ok && e.Prefixes&pm != 0 && anyLemmaAccepts(e, pm)
	})
	if found {
		return HebrewWithPrefix
	}

	if !tolerate || len(w) > l.dict.words.MaxTolerantKeyLength() {
		return Unrecognized
	}
	if len(l.dict.words.LookupTolerant(word, l.rules...)) > 0 {
		return HebrewTolerated
	}
	l.eachPrefix(w, func(n int, pm hebrew.PrefixType) {
		if found {
			return
		}
		for _, r := range l.dict.words.LookupTolerant(string(w[n:]), l.rules...) {
			if r.Value.Prefixes&pm != 0 && anyLemmaAccepts(r.Value, pm) {
				found = true
				return
			}
		}
	})
	if found {
		return HebrewToleratedWithPrefix
	}
	return Unrecognized
}

func anyLemmaAccepts(e MorphEntry, pm hebrew.PrefixType) bool {
	for _, rec := range e.Lemmas {
		if hebrew.MaskToPrefix(rec.Mask)&pm != 0 {
			return true
		}
	}
	return false
}
