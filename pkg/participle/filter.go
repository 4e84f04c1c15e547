package participle

import "github.com/miajio/hebmorph/pkg/hebrew"

// LemmaFilter 候选过滤器
type LemmaFilter interface {
	// Filter 返回保留的候选, 不应修改传入的切片
	Filter(word string, lemmas []HebrewToken) []HebrewToken
}

// BasicLemmaFilter 只过滤多于一个候选的结果, 去掉大量容错得到的低分候选
// 全部被过滤时原样返回
type BasicLemmaFilter struct{}

const (
	minLemmaScore = 0.7
	minVerbScore  = 0.85 // 容错更容易得到无关的动词
)

// Filter 实现 LemmaFilter
func (BasicLemmaFilter) Filter(_ string, lemmas []HebrewToken) []HebrewToken {
	if len(lemmas) <= 1 {
		return lemmas
	}
	out := make([]HebrewToken, 0, len(lemmas))
	for _, t := range lemmas {
		if t.Score < minLemmaScore {
			continue
		}
		if t.Mask.Type() == hebrew.DVerb && t.Score < minVerbScore {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return lemmas
	}
	return out
}
