package participle

import "errors"

var (
	// ErrDictionaryEmpty 存储中没有任何词条
	ErrDictionaryEmpty = errors.New("participle: dictionary is empty")
	// ErrWordCountMismatch 加载的词数与记录的词数不一致
	ErrWordCountMismatch = errors.New("participle: word count mismatch")
	// ErrEngineClosed 引擎已关闭
	ErrEngineClosed = errors.New("participle: engine closed")
	// ErrNotFound 词不在字典中
	ErrNotFound = errors.New("participle: word not found")
	// ErrInvalidWord 词为空或超长
	ErrInvalidWord = errors.New("participle: invalid word")
)
