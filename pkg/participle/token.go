package participle

import (
	"fmt"

	"github.com/miajio/hebmorph/pkg/hebrew"
	"github.com/miajio/hebmorph/pkg/tokenizer"
)

// Provenance 分析结果的来源
type Provenance uint8

const (
	Exact               Provenance = iota // 精确匹配
	Tolerated                             // 容错匹配
	WithPrefix                            // 去掉前缀后精确匹配
	ToleratedWithPrefix                   // 去掉前缀后容错匹配
)

func (p Provenance) String() string {
	switch p {
	case Exact:
		return "exact"
	case Tolerated:
		return "tolerated"
	case WithPrefix:
		return "prefix"
	case ToleratedWithPrefix:
		return "tolerated+prefix"
	}
	return fmt.Sprintf("Provenance(%d)", uint8(p))
}

// HebrewToken 一个候选分析
type HebrewToken struct {
	Word         string      // 匹配到的词形, 容错时可能与输入不同
	PrefixLength int         // 前缀长度
	Mask         hebrew.Mask // 语法掩码
	Lemma        string      // 词元
	Score        float64     // 置信度
	Provenance   Provenance
}

// newHebrewToken 词条未给出词元时以词干作为词元
func newHebrewToken(word string, prefixLength int, stem string, rec LemmaRecord, score float64, p Provenance) HebrewToken {
	lemma := rec.Lemma
	if lemma == "" {
		lemma = stem
	}
	return HebrewToken{
		Word:         word,
		PrefixLength: prefixLength,
		Mask:         rec.Mask,
		Lemma:        lemma,
		Score:        score,
		Provenance:   p,
	}
}

func (t HebrewToken) key() tokenKey {
	return tokenKey{t.PrefixLength, t.Mask, t.Word, t.Lemma}
}

type tokenKey struct {
	prefixLength int
	mask         hebrew.Mask
	word         string
	lemma        string
}

// String 返回候选的可读形式
func (t HebrewToken) String() string {
	return fmt.Sprintf("%s [%s] %.3f prefix=%d %s", t.Lemma, t.Mask, t.Score, t.PrefixLength, t.Provenance)
}

// WordType 词的识别结果
type WordType uint8

const (
	Unrecognized WordType = iota
	HebrewWord
	HebrewWithPrefix
	HebrewTolerated
	HebrewToleratedWithPrefix
)

func (w WordType) String() string {
	switch w {
	case HebrewWord:
		return "hebrew"
	case HebrewWithPrefix:
		return "hebrew-with-prefix"
	case HebrewTolerated:
		return "hebrew-tolerated"
	case HebrewToleratedWithPrefix:
		return "hebrew-tolerated-with-prefix"
	}
	return "unrecognized"
}

// Kind 流式分析输出的词类别
type Kind uint8

const (
	KindNonHebrew Kind = iota
	KindNumeric
	KindHebrew
	KindUnrecognized // 字典中找不到的希伯来词, 原样保留
)

func (k Kind) String() string {
	switch k {
	case KindNonHebrew:
		return "non-hebrew"
	case KindNumeric:
		return "numeric"
	case KindHebrew:
		return "hebrew"
	case KindUnrecognized:
		return "unrecognized"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Word 流式分析输出的一个词
type Word struct {
	Kind   Kind
	Text   string         // 规范化后的词
	Offset int            // 在原文中的位置
	Length int            // 在原文中的长度
	Type   tokenizer.Type // 分词器给出的类型
	Stop   bool           // 是否为停用词
	Lemmas []HebrewToken  // 按得分降序排列的候选, 仅 KindHebrew 非空
}
