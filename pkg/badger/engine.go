// Package badger 基于 badger 的词典存储
package badger

import (
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

const defaultGCInterval = 5 * time.Minute

// Engine badger引擎
type Engine struct {
	db       *badger.DB // badgerDB
	inMemory bool

	gcInterval   time.Duration      // GC间隔时间
	gcUpdateChan chan time.Duration // GC更新间隔时间信号

	done      chan struct{} // 退出信号
	gcStopped chan struct{} // GC协程已退出
	closeOnce sync.Once
	err       error // 关闭时的错误
}

// New 创建一个badger引擎
func New(opt badger.Options) (*Engine, error) {
	return open(opt.WithLogger(zapLogger{log.S()}))
}

// Default 在目录 dir 下创建一个badger引擎
func Default(dir string) (*Engine, error) {
	return New(badger.DefaultOptions(dir))
}

// InMemory 创建一个只在内存中的badger引擎
func InMemory() (*Engine, error) {
	return open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

// open 创建一个badger引擎
func open(opt badger.Options) (*Engine, error) {
	db, err := badger.Open(opt)
	if err != nil {
		return nil, err
	}
	be := &Engine{
		db:       db,
		inMemory: opt.InMemory,

		gcInterval:   defaultGCInterval,
		gcUpdateChan: make(chan time.Duration),

		done:      make(chan struct{}),
		gcStopped: make(chan struct{}),
	}
	go be.listenerGC()
	return be, nil
}

// DB 获取badger数据库
func (e *Engine) DB() *badger.DB { return e.db }

// listenerGC 定期回收 value log, 直到引擎关闭
func (e *Engine) listenerGC() {
	defer close(e.gcStopped)
	gcTicker := time.NewTicker(e.gcInterval)
	defer gcTicker.Stop()

	for {
		select {
		case <-gcTicker.C:
			e.runGC()
		case interval := <-e.gcUpdateChan:
			e.gcInterval = interval
			gcTicker.Reset(interval)
		case <-e.done:
			return
		}
	}
}

// runGC 回收到没有可回收的文件为止
func (e *Engine) runGC() {
	if e.inMemory {
		return
	}
	for {
		err := e.db.RunValueLogGC(0.5)
		if err == nil {
			continue
		}
		if err != badger.ErrNoRewrite {
			log.Warn("badger value log gc failed", zap.Error(err))
		}
		return
	}
}

// SetGCInterval 设置GC间隔
func (e *Engine) SetGCInterval(interval time.Duration) {
	if 0 >= interval {
		return
	}
	select {
	case e.gcUpdateChan <- interval:
	case <-e.done:
	}
}

// Close 关闭badger引擎, 可以重复调用
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		close(e.done)
		<-e.gcStopped
		e.err = e.db.Close()
	})
	return e.err
}

// zapLogger 把badger的日志转到 zap
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Errorf(f string, v ...any)   { l.s.Errorf(f, v...) }
func (l zapLogger) Warningf(f string, v ...any) { l.s.Warnf(f, v...) }
func (l zapLogger) Infof(f string, v ...any)    { l.s.Debugf(f, v...) }
func (l zapLogger) Debugf(f string, v ...any)   { l.s.Debugf(f, v...) }
