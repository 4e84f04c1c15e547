// Package tolerance 无元音希伯来文拼写 (Em Kriya) 的容错规则
//
// 无元音拼写中 ו 与 י 既可以是辅音也可以代替元音, 同一个词常有多种写法.
// 这里的规则供 radix 字典的容错查找使用, 每条规则只处理一种变体.
package tolerance

import (
	"github.com/miajio/hebmorph/pkg/hebrew"
	"github.com/miajio/hebmorph/pkg/radix"
)

// EmKriyaAll 按固定优先级返回全部规则
func EmKriyaAll() []radix.ToleranceRule {
	return []radix.ToleranceRule{
		NonDoubledConsonantVav{},
		EmKriyaVav{},
		EmKriyaYud{},
	}
}

func last(word []rune) rune {
	if len(word) == 0 {
		return 0
	}
	return word[len(word)-1]
}

func skipKey(score float64) (radix.Tolerance, bool) {
	return radix.Tolerance{Score: score, KeyAdvance: 1}, true
}

func takeEdge(score float64) (radix.Tolerance, bool) {
	return radix.Tolerance{Score: score, EdgeAdvance: 1}, true
}

// NonDoubledConsonantVav 辅音 ו 的单写与双写 (וו) 之间的差异
type NonDoubledConsonantVav struct{}

// Tolerate 只在字典刚匹配过一个 ו 时生效:
//   - 字典写 וו 而查询只有一个 ו: 消耗字典中的第二个 ו
//   - 查询写 וו 而字典只有一个 ו: 跳过查询中多出的 ו
func (NonDoubledConsonantVav) Tolerate(edge rune, key []rune, keyPos int, word []rune) (radix.Tolerance, bool) {
	if keyPos == 0 || keyPos >= len(key) || last(word) != hebrew.Vav {
		return radix.Tolerance{}, false
	}
	switch {
	case edge == hebrew.Vav && key[keyPos] != hebrew.Vav:
		return takeEdge(0.8)
	case edge != hebrew.Vav && key[keyPos] == hebrew.Vav && keyPos+1 < len(key):
		return skipKey(0.8)
	}
	return radix.Tolerance{}, false
}

// EmKriyaVav 字典中有代替元音的 ו, 查询省略了它
type EmKriyaVav struct{}

// Tolerate 不在词首词尾, 且不会与相邻的 ו 或 י 连在一起时, 接受字典中多出的 ו
func (EmKriyaVav) Tolerate(edge rune, key []rune, keyPos int, word []rune) (radix.Tolerance, bool) {
	if edge != hebrew.Vav || keyPos == 0 || keyPos+1 >= len(key) {
		return radix.Tolerance{}, false
	}
	switch key[keyPos] {
	case hebrew.Yod, hebrew.He, hebrew.Vav:
		return radix.Tolerance{}, false
	}

	prev := last(word)
	if key[keyPos+1] != hebrew.Vav && prev != hebrew.Vav && prev != hebrew.Yod {
		return takeEdge(0.8)
	}
	return radix.Tolerance{}, false
}

// EmKriyaYud 字典与查询之间 י 的增减, 包括 יי 的合并
type EmKriyaYud struct{}

// Tolerate 处理三种情况:
//   - 查询写了 יי 而字典只有一个 י: 跳过查询中的 י, 轻微扣分
//   - 查询多出一个 י (Hirik Haser): 跳过并重扣分
//   - 字典多出一个 י: 接受, 很短的词几乎不允许
func (EmKriyaYud) Tolerate(edge rune, key []rune, keyPos int, word []rune) (radix.Tolerance, bool) {
	if keyPos == 0 || keyPos >= len(key) {
		return radix.Tolerance{}, false
	}
	// י 不在 ו 之前容错
	if key[keyPos] == hebrew.Vav {
		return radix.Tolerance{}, false
	}

	if edge != hebrew.Yod {
		if key[keyPos] != hebrew.Yod || keyPos+1 >= len(key) {
			return radix.Tolerance{}, false
		}
		if key[keyPos-1] == hebrew.Yod {
			return skipKey(0.9)
		}
		return skipKey(0.6)
	}

	// 查询当前位置已经是 י, 若字典需要 יי 很快会再次来到这里
	if key[keyPos] == hebrew.Yod {
		return radix.Tolerance{}, false
	}

	switch prev := last(word); {
	case prev == hebrew.Yod:
		// 只有查询原本就有 י 时才允许补成 יי
		if key[keyPos-1] != hebrew.Yod {
			return radix.Tolerance{}, false
		}
		// 三个字母以内的词 (חיה, בית) 补 י 几乎总是错的
		if keyPos+1 == len(key) && len(key) <= 3 {
			return takeEdge(0.1)
		}
		return takeEdge(0.8)
	case prev != hebrew.Vav:
		return takeEdge(0.8)
	}
	return radix.Tolerance{}, false
}
