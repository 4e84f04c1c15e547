package participle

import "github.com/miajio/hebmorph/pkg/hebrew"

// Config 分析配置
type Config struct {
	AllowHeHasheela    bool // 允许疑问前缀 ה
	Tolerate           bool // 精确查找无结果时做容错查找
	FilterLemmas       bool // 对容错结果应用 BasicLemmaFilter
	MarkStopWords      bool // 标记停用词
	SkipStopWords      bool // 跳过停用词
	AllowValueOverride bool // 重复的词以后加载的为准
	MaxTolerantLength  int  // 超过该长度的词不做容错查找
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		Tolerate:          true,
		MarkStopWords:     true,
		MaxTolerantLength: hebrew.MaxTolerantWordLength,
	}
}
