// Package prefix 希伯来文语法前缀分析
package prefix

import (
	"github.com/miajio/hebmorph/pkg/hebrew"
	"github.com/miajio/hebmorph/pkg/radix"
)

// Analyzer 前缀分析器, 构建后只读, 可并发使用
type Analyzer struct {
	tree *radix.Dict[hebrew.PrefixType]
}

// New 根据静态前缀表构建分析器
func New(allowHeHasheela bool) *Analyzer {
	tree := radix.New[hebrew.PrefixType]()
	for _, e := range hebrew.Prefixes(allowHeHasheela) {
		tree.Insert(e.Prefix, e.Mask)
	}
	return &Analyzer{tree: tree}
}

// IsLegal 判断 s 是否为合法前缀
func (a *Analyzer) IsLegal(s string) bool {
	return a.tree.Contains(s)
}

// Mask 返回前缀的类别掩码
func (a *Analyzer) Mask(s string) (hebrew.PrefixType, bool) {
	return a.tree.Lookup(s)
}

// Len 返回前缀表的大小
func (a *Analyzer) Len() int { return a.tree.Len() }

// TryStrip 处理前缀与词之间用引号隔开的写法 (ה"שטיח", ש'המידע),
// 引号之前是合法前缀时返回引号之后的部分, 否则原样返回
func (a *Analyzer) TryStrip(word string) string {
	w := []rune(word)
	firstQuote := index(w, '"')
	if firstQuote > 0 && firstQuote < len(w)-2 {
		if a.IsLegal(string(w[:firstQuote])) {
			return string(w[firstQuote+1:])
		}
	}

	firstGeresh := index(w, '\'')
	if firstGeresh <= 0 || firstGeresh == len(w)-1 {
		return word
	}
	// 只考虑不晚于 Gershayim 出现的 Geresh
	if firstQuote > -1 && firstGeresh > firstQuote {
		return word
	}
	if a.IsLegal(string(w[:firstGeresh])) {
		return string(w[firstGeresh+1:])
	}
	return word
}

func index(w []rune, c rune) int {
	for i, r := range w {
		if r == c {
			return i
		}
	}
	return -1
}
