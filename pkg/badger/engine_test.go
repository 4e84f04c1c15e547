package badger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := InMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestSetGetDel(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Set([]byte("a"), []byte("1")))
	val, err := e.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	ok, err := e.Exists([]byte("a"))
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, e.Del([]byte("a")))
	_, err = e.Get([]byte("a"))
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err = e.Exists([]byte("a"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIterate(t *testing.T) {
	e := newTestEngine(t)
	for _, k := range []string{"p/b", "p/a", "p/c", "q/a"} {
		require.NoError(t, e.Set([]byte(k), []byte(k)))
	}

	var keys []string
	err := e.Iterate([]byte("p/"), func(key, value []byte) error {
		assert.Equal(t, key, value)
		keys = append(keys, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p/a", "p/b", "p/c"}, keys)

	// 提前结束
	keys = keys[:0]
	err = e.Iterate([]byte("p/"), func(key, _ []byte) error {
		keys = append(keys, string(key))
		return ErrStopIteration
	})
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	boom := errors.New("boom")
	err = e.Iterate(nil, func(_, _ []byte) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestBatch(t *testing.T) {
	e := newTestEngine(t)
	err := e.Batch(func(wb *badger.WriteBatch) error {
		for _, k := range []string{"k/1", "k/2", "k/3"} {
			if err := wb.Set([]byte(k), []byte("v")); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	keys, err := e.GetKey([]byte("k/"))
	require.NoError(t, err)
	assert.Len(t, keys, 3)

	boom := errors.New("boom")
	err = e.Batch(func(wb *badger.WriteBatch) error {
		_ = wb.Set([]byte("x/1"), []byte("v"))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	ok, err := e.Exists([]byte("x/1"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDropPrefix(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Set([]byte("d/1"), []byte("v")))
	require.NoError(t, e.Set([]byte("e/1"), []byte("v")))
	require.NoError(t, e.DropPrefix([]byte("d/")))

	keys, err := e.GetKey(nil)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, []byte("e/1"), keys[0])
}

func TestBackupLoad(t *testing.T) {
	src := newTestEngine(t)
	require.NoError(t, src.Set([]byte("w/1"), []byte("a")))
	require.NoError(t, src.Set([]byte("w/2"), []byte("b")))

	var buf bytes.Buffer
	since, err := src.Backup(&buf, 0)
	require.NoError(t, err)
	assert.NotZero(t, since)

	dst := newTestEngine(t)
	require.NoError(t, dst.Load(&buf))
	val, err := dst.Get([]byte("w/2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), val)
}

func TestTxSet(t *testing.T) {
	e := newTestEngine(t)
	err := e.TxSet(func(tx *badger.Txn) error {
		if err := tx.Set([]byte("t/1"), []byte("v")); err != nil {
			return err
		}
		return errors.New("rollback")
	})
	require.Error(t, err)
	ok, err := e.Exists([]byte("t/1"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCloseTwice(t *testing.T) {
	e, err := InMemory()
	require.NoError(t, err)
	e.SetGCInterval(time.Second)
	e.SetGCInterval(0)
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
	// 关闭后不再阻塞
	e.SetGCInterval(time.Second)
}
