package participle

import (
	"io"
	"strings"

	"github.com/miajio/hebmorph/pkg/hebrew"
	"github.com/miajio/hebmorph/pkg/tokenizer"
)

// StreamLemmatizer 对整个输入流分词并逐词分析
// 持有分词状态, 只能由一个调用方使用
type StreamLemmatizer struct {
	lem *Lemmatizer
	tok *tokenizer.Tokenizer

	tolerate  bool
	filter    LemmaFilter
	stopWords *StopWords
	skipStop  bool
}

// StreamOption 流式分析配置项
type StreamOption func(*StreamLemmatizer)

// WithTolerance 精确分析无结果时是否做容错分析, 默认开启
func WithTolerance(tolerate bool) StreamOption {
	return func(s *StreamLemmatizer) { s.tolerate = tolerate }
}

// WithLemmaFilter 过滤容错分析的结果
func WithLemmaFilter(f LemmaFilter) StreamOption {
	return func(s *StreamLemmatizer) { s.filter = f }
}

// WithStopWords 标记停用词, skip 为 true 时直接跳过
func WithStopWords(sw *StopWords, skip bool) StreamOption {
	return func(s *StreamLemmatizer) { s.stopWords, s.skipStop = sw, skip }
}

// NewStreamLemmatizer 创建流式分析器
func NewStreamLemmatizer(r io.Reader, lem *Lemmatizer, opts ...StreamOption) *StreamLemmatizer {
	s := &StreamLemmatizer{
		lem:      lem,
		tok:      tokenizer.New(r),
		tolerate: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset 从新的输入重新开始, 只能在两次完整处理之间调用
func (s *StreamLemmatizer) Reset(r io.Reader) {
	s.tok.Reset(r)
}

// Next 返回下一个词, 输入结束时返回 io.EOF
// 一次调用可能消耗多个原始词, 例如前缀片段与其后的词
func (s *StreamLemmatizer) Next() (Word, error) {
	for {
		tok, err := s.tok.Next()
		if err != nil {
			return Word{}, err
		}

		w := Word{Text: tok.Text, Offset: tok.Offset, Length: tok.Length, Type: tok.Type}
		switch {
		case tok.Type.Has(tokenizer.Hebrew):
			if !s.analyze(&w) {
				continue
			}
		case tok.Type.Has(tokenizer.Numeric):
			w.Kind = KindNumeric
		default:
			w.Kind = KindNonHebrew
		}

		if s.stopWords != nil && s.stopWords.IsStop(w.Text) {
			if s.skipStop {
				continue
			}
			w.Stop = true
		}
		return w, nil
	}
}

// analyze 分析一个希伯来词, 词只是前缀片段时返回 false
func (s *StreamLemmatizer) analyze(w *Word) bool {
	text := hebrew.RemoveNiqqud(w.Text)

	// 以 Makaf 或引号与后面的词隔开的前缀, 例如 ב-2000
	if w.Type.Has(tokenizer.Construct) || w.Type.Has(tokenizer.Acronym) {
		if s.lem.IsLegalPrefix(text) {
			return false
		}
	}

	if w.Type.Has(tokenizer.Acronym) {
		text = s.lem.TryStrippingPrefix(text)
		if !strings.ContainsRune(text, '"') {
			w.Type &^= tokenizer.Acronym
		}
	}
	w.Text = text

	w.Lemmas = s.lem.Lemmatize(text)
	switch {
	case len(w.Lemmas) > 0:
	case w.Type.Has(tokenizer.Acronym):
		w.Lemmas = []HebrewToken{{Word: text, Mask: hebrew.DAcronym, Lemma: text, Score: 1.0, Provenance: Exact}}
	case s.tolerate:
		w.Lemmas = s.lem.LemmatizeTolerant(text)
		if s.filter != nil {
			w.Lemmas = s.filter.Filter(text, w.Lemmas)
		}
	}

	w.Kind = KindHebrew
	if len(w.Lemmas) == 0 {
		// 字典外的词原样保留
		w.Kind = KindUnrecognized
		w.Lemmas = nil
	}
	return true
}
