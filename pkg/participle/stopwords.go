package participle

import "github.com/go-ego/gse"

// BasicStopWords 常见的希伯来文停用词
var BasicStopWords = []string{
	"אם", "כי", "בתוך", "לתוך", "הוא", "היא", "הם", "הן", "לא", "היכן", "יש",
	"כן", "או", "היה", "היו", "יהיה", "יהיו", "להיות", "תהיינה", "למה", "מדוע", "האם", "אבל", `ע"י`, "עבור", "זה", "זאת",
	"בשביל", "מה", "גם", "אז", "כלומר", "רק", "בגלל", "מכיוון", "עד", "כמו", "מאד", "של", "את",
	"בעיקר", "זו", "הזה", "מלבד", "בלבד", "בין", "ובין", "לבין", "למשל", "שבהם", "כך", "אך", "למרות",
}

// StopWords 停用词表, 使用 gse 的停用词字典
// 构建完成后只读, 可并发查询
type StopWords struct {
	seg gse.Segmenter
}

// NewStopWords 创建停用词表
func NewStopWords(words ...string) *StopWords {
	s := &StopWords{}
	s.seg.StopWordMap = make(map[string]bool, len(words))
	for _, w := range words {
		s.seg.AddStop(w)
	}
	return s
}

// DefaultStopWords 使用 BasicStopWords 创建停用词表
func DefaultStopWords() *StopWords {
	return NewStopWords(BasicStopWords...)
}

// Add 添加停用词
func (s *StopWords) Add(words ...string) {
	for _, w := range words {
		s.seg.AddStop(w)
	}
}

// Remove 删除停用词
func (s *StopWords) Remove(word string) {
	s.seg.RemoveStop(word)
}

// IsStop 判断是否为停用词
func (s *StopWords) IsStop(word string) bool {
	return s.seg.IsStop(word)
}

// Len 停用词数量
func (s *StopWords) Len() int { return len(s.seg.StopWordMap) }
