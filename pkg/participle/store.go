package participle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"time"

	bd "github.com/dgraph-io/badger/v4"
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/miajio/hebmorph/pkg/badger"
	"github.com/miajio/hebmorph/pkg/hebrew"
)

const (
	wordPrefix = "w/"         // 词条的key前缀
	countKey   = "meta/count" // 记录的词数
)

func wordKey(word string) []byte { return []byte(wordPrefix + word) }

// Store 词典在数据库中的读写
//
// 词条以 w/<词> 为key, JSON 编码的 MorphEntry 为值; meta/count 记录词数.
type Store struct {
	db *badger.Engine
}

// NewStore 创建词典存储
func NewStore(db *badger.Engine) *Store { return &Store{db: db} }

// DB 底层数据库
func (s *Store) DB() *badger.Engine { return s.db }

// Load 从数据库读取全部词条并构建词典
func (s *Store) Load(cfg Config) (*Dictionary, error) {
	start := time.Now()
	expected, err := s.expectedCount()
	if err != nil {
		return nil, err
	}
	var loadErr error
	dict, err := NewDictionary(cfg, s.entries(&loadErr), expected)
	if loadErr != nil {
		return nil, loadErr
	}
	if err != nil {
		return nil, err
	}
	log.Info("dictionary loaded",
		zap.Int("words", dict.Len()),
		zap.Int("prefixes", dict.Prefixes().Len()),
		zap.Duration("elapsed", time.Since(start)))
	return dict, nil
}

// entries 遍历数据库中的词条, 读取或解码失败时把错误写入 errp
func (s *Store) entries(errp *error) iter.Seq2[string, MorphEntry] {
	return func(yield func(string, MorphEntry) bool) {
		err := s.db.Iterate([]byte(wordPrefix), func(key, val []byte) error {
			var entry MorphEntry
			if err := json.Unmarshal(val, &entry); err != nil {
				return fmt.Errorf("decode entry %q: %w", key, err)
			}
			if !yield(string(key[len(wordPrefix):]), entry) {
				return badger.ErrStopIteration
			}
			return nil
		})
		if err != nil {
			*errp = fmt.Errorf("read db: %w", err)
		}
	}
}

// expectedCount 读取记录的词数, 没有记录时返回 -1
func (s *Store) expectedCount() (int, error) {
	val, err := s.db.Get([]byte(countKey))
	if errors.Is(err, badger.ErrNotFound) {
		return -1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read word count: %w", err)
	}
	n, err := strconv.Atoi(string(val))
	if err != nil {
		return 0, fmt.Errorf("parse word count %q: %w", val, err)
	}
	return n, nil
}

func validWord(word string) error {
	n := len([]rune(word))
	if n == 0 || n > hebrew.MaxWordLength {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	return nil
}

// Has 数据库中是否有该词
func (s *Store) Has(word string) (bool, error) {
	return s.db.Exists(wordKey(word))
}

// AddWord 添加或替换一个词条, 引擎调用 Reload 后生效
func (s *Store) AddWord(word string, entry MorphEntry) error {
	if err := validWord(word); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// 词条与词数在同一个事务中更新
	err = s.db.TxSet(func(tx *bd.Txn) error {
		key := wordKey(word)
		_, err := tx.Get(key)
		isNew := errors.Is(err, bd.ErrKeyNotFound)
		if err != nil && !isNew {
			return err
		}
		if err := tx.Set(key, data); err != nil {
			return err
		}
		if isNew {
			return addCount(tx, 1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save word %q: %w", word, err)
	}
	return nil
}

// RemoveWord 删除一个词条, 引擎调用 Reload 后生效
func (s *Store) RemoveWord(word string) error {
	err := s.db.TxSet(func(tx *bd.Txn) error {
		key := wordKey(word)
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, bd.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return addCount(tx, -1)
	})
	if err != nil {
		return fmt.Errorf("remove word %q: %w", word, err)
	}
	return nil
}

// addCount 在事务中调整记录的词数
func addCount(tx *bd.Txn, delta int) error {
	n := 0
	item, err := tx.Get([]byte(countKey))
	switch {
	case err == nil:
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if n, err = strconv.Atoi(string(val)); err != nil {
			return fmt.Errorf("parse word count %q: %w", val, err)
		}
	case !errors.Is(err, bd.ErrKeyNotFound):
		return err
	}
	return tx.Set([]byte(countKey), []byte(strconv.Itoa(n+delta)))
}

// Import 批量导入词条并更新词数, 返回导入的条数, 引擎调用 Reload 后生效
// 任何一条记录出错时整批放弃
func (s *Store) Import(records iter.Seq2[ImportRecord, error]) (int, error) {
	imported := 0
	err := s.db.Batch(func(wb *bd.WriteBatch) error {
		for r, err := range records {
			if err != nil {
				return err
			}
			if err := validWord(r.Word); err != nil {
				return err
			}
			data, err := json.Marshal(r.Entry())
			if err != nil {
				return err
			}
			if err := wb.Set(wordKey(r.Word), data); err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}

	if err := s.recount(); err != nil {
		return imported, err
	}
	log.Info("dictionary imported", zap.Int("records", imported))
	return imported, nil
}

// recount 按数据库中实际的词条数重写记录的词数
func (s *Store) recount() error {
	keys, err := s.db.GetKey([]byte(wordPrefix))
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	return s.db.Set([]byte(countKey), []byte(strconv.Itoa(len(keys))))
}

// Records 把记录包装成 Import 的输入
func Records(rs ...ImportRecord) iter.Seq2[ImportRecord, error] {
	return func(yield func(ImportRecord, error) bool) {
		for _, r := range rs {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// ReadImport 逐行读取 JSON 格式的导入记录, 空行被忽略
func ReadImport(r io.Reader) iter.Seq2[ImportRecord, error] {
	return func(yield func(ImportRecord, error) bool) {
		dec := json.NewDecoder(r)
		for {
			var rec ImportRecord
			err := dec.Decode(&rec)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(ImportRecord{}, fmt.Errorf("decode import record: %w", err))
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Backup 备份数据库
func (s *Store) Backup(w io.Writer) error {
	_, err := s.db.Backup(w, 0)
	return err
}

// Restore 用备份替换数据库中的词典
func (s *Store) Restore(r io.Reader) error {
	if err := s.db.DropPrefix([]byte(wordPrefix)); err != nil {
		return fmt.Errorf("drop words: %w", err)
	}
	if err := s.db.Load(r); err != nil {
		return fmt.Errorf("load backup: %w", err)
	}
	return nil
}
