package badger

import (
	"errors"
	"io"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound key不存在
var ErrNotFound = badger.ErrKeyNotFound

// ErrStopIteration 在 IterateFunc 中返回以提前结束遍历, Iterate 不会返回该错误
var ErrStopIteration = errors.New("badger: stop iteration")

// BadgerTX 事务函数
type BadgerTX func(tx *badger.Txn) error

// TxSet 事务设置参数操作
func (e *Engine) TxSet(tx BadgerTX) error {
	return e.db.Update(tx)
}

// TxGet 事务获取参数操作
func (e *Engine) TxGet(tx BadgerTX) error {
	return e.db.View(tx)
}

// Set 设置参数
func (e *Engine) Set(key, value []byte) error {
	return e.TxSet(func(tx *badger.Txn) error {
		return tx.Set(key, value)
	})
}

// Get 获取参数, key不存在时返回 ErrNotFound
func (e *Engine) Get(key []byte) ([]byte, error) {
	var value []byte
	err := e.TxGet(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

// Del 删除参数
func (e *Engine) Del(key []byte) error {
	return e.TxSet(func(tx *badger.Txn) error {
		return tx.Delete(key)
	})
}

// DropPrefix 删除所有以 prefix 开头的key
func (e *Engine) DropPrefix(prefix []byte) error {
	return e.db.DropPrefix(prefix)
}

// BadgerBatch 批量操作
type BadgerBatch func(*badger.WriteBatch) error

// Batch 批量写入, bb 返回错误时放弃所有写入
func (e *Engine) Batch(bb BadgerBatch) error {
	wb := e.db.NewWriteBatch()
	defer wb.Cancel()
	if err := bb(wb); err != nil {
		return err
	}
	return wb.Flush()
}

// Backup 把 since 之后的数据备份到 w, 返回可用于下次增量备份的版本号
func (e *Engine) Backup(w io.Writer, since uint64) (uint64, error) {
	return e.db.Backup(w, since)
}

// Load 从 r 加载备份数据
func (e *Engine) Load(r io.Reader) error {
	return e.db.Load(r, 256)
}

// GetKey 获取所有key
// @param prefix 前缀, 为 nil 时返回全部
func (e *Engine) GetKey(prefix []byte) ([][]byte, error) {
	var keys [][]byte
	err := e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // 只获取键，不获取值
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys, err
}

// IterateFunc 遍历回调, key 与 value 只在回调期间有效
type IterateFunc func(key, value []byte) error

// Iterate 按key的顺序遍历所有以 prefix 开头的键值对
// fn 返回错误时停止遍历并返回该错误
func (e *Engine) Iterate(prefix []byte, fn IterateFunc) error {
	err := e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := item.Key()
			if err := item.Value(func(val []byte) error {
				return fn(key, val)
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, ErrStopIteration) {
		return nil
	}
	return err
}

// Exists 判断key是否存在
func (e *Engine) Exists(key []byte) (bool, error) {
	var exists bool
	err := e.TxGet(func(tx *badger.Txn) error {
		_, err := tx.Get(key)
		if err == nil {
			exists = true
			return nil
		}
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	return exists, err
}
