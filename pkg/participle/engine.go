package participle

import (
	"fmt"
	"io"
	"iter"
	"sync/atomic"

	"github.com/miajio/hebmorph/pkg/badger"
)

// Engine 分析引擎, 持有词典存储并发布只读的词典
//
// 写操作只修改数据库, Reload 之后才对新的分析器生效.
// 已经发出的 Lemmatizer 继续使用它创建时的词典.
type Engine struct {
	store     *Store
	cfg       Config
	stopWords *StopWords

	dict   atomic.Pointer[Dictionary] // 当前发布的词典
	closed atomic.Bool
}

// New 创建分析引擎并从数据库加载词典, 加载失败时返回错误
func New(dbEngine *badger.Engine, cfg Config) (*Engine, error) {
	e := &Engine{
		store:     NewStore(dbEngine),
		cfg:       cfg,
		stopWords: DefaultStopWords(),
	}
	if err := e.Reload(); err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	return e, nil
}

// Config 引擎配置
func (e *Engine) Config() Config { return e.cfg }

// Store 词典存储
func (e *Engine) Store() *Store { return e.store }

// Reload 从数据库重新构建词典并发布, 失败时保留原来的词典
func (e *Engine) Reload() error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	dict, err := e.store.Load(e.cfg)
	if err != nil {
		return err
	}
	e.dict.Store(dict)
	return nil
}

// AddWord 添加或替换一个词条
func (e *Engine) AddWord(word string, entry MorphEntry) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	return e.store.AddWord(word, entry)
}

// RemoveWord 删除一个词条
func (e *Engine) RemoveWord(word string) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	return e.store.RemoveWord(word)
}

// Import 批量导入词条
func (e *Engine) Import(records iter.Seq2[ImportRecord, error]) (int, error) {
	if e.closed.Load() {
		return 0, ErrEngineClosed
	}
	return e.store.Import(records)
}

// Backup 备份数据库
func (e *Engine) Backup(w io.Writer) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	return e.store.Backup(w)
}

// Restore 用备份替换词典并重新加载
func (e *Engine) Restore(r io.Reader) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	if err := e.store.Restore(r); err != nil {
		return err
	}
	return e.Reload()
}

// Dictionary 当前发布的词典
func (e *Engine) Dictionary() *Dictionary { return e.dict.Load() }

// StopWords 停用词表
func (e *Engine) StopWords() *StopWords { return e.stopWords }

// Lemmatizer 基于当前词典的词元分析器
func (e *Engine) Lemmatizer() *Lemmatizer {
	return NewLemmatizer(e.dict.Load())
}

// NewStreamLemmatizer 按引擎配置创建流式分析器
func (e *Engine) NewStreamLemmatizer(r io.Reader) *StreamLemmatizer {
	opts := []StreamOption{WithTolerance(e.cfg.Tolerate)}
	if e.cfg.FilterLemmas {
		opts = append(opts, WithLemmaFilter(BasicLemmaFilter{}))
	}
	if e.cfg.MarkStopWords || e.cfg.SkipStopWords {
		opts = append(opts, WithStopWords(e.stopWords, e.cfg.SkipStopWords))
	}
	return NewStreamLemmatizer(r, e.Lemmatizer(), opts...)
}

// Close 关闭引擎与数据库
func (e *Engine) Close() error {
	if e.closed.Swap(true) {
		return ErrEngineClosed
	}
	return e.store.db.Close()
}
