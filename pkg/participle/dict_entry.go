package participle

import "github.com/miajio/hebmorph/pkg/hebrew"

// LemmaRecord 词的一种分析结果
type LemmaRecord struct {
	Lemma string      `json:"lemma,omitempty"` // 词元, 为空表示词干本身
	Mask  hebrew.Mask `json:"mask"`            // 语法掩码
}

// MorphEntry 字典词条
type MorphEntry struct {
	Prefixes hebrew.PrefixType `json:"prefixes"` // 可以接受的前缀类别
	Lemmas   []LemmaRecord     `json:"lemmas"`   // 该词的所有分析
}

// ImportRecord 导入文件中的一行
type ImportRecord struct {
	Word     string            `json:"word"`
	Prefixes hebrew.PrefixType `json:"prefixes"`
	Lemmas   []LemmaRecord     `json:"lemmas"`
}

// Entry 返回对应的字典词条
func (r ImportRecord) Entry() MorphEntry {
	return MorphEntry{Prefixes: r.Prefixes, Lemmas: r.Lemmas}
}
