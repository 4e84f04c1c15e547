// Package radix 压缩前缀树 (radix 字典), 支持精确查找与基于容错规则的模糊查找
//
// 字典在加载阶段通过 Insert 一次性构建, 构建完成并发布之后只读,
// 只读阶段可以被多个 goroutine 并发查询.
package radix

import "sort"

const defaultMaxTolerantKeyLength = 20

// node 前缀树节点, 由父节点独占
type node[V any] struct {
	key      []rune     // 非空的键片段
	value    V          // 节点的值, hasValue 为 false 时无意义
	hasValue bool       // 是否为一个完整的键
	children []*node[V] // 按首字符升序排列的子节点
}

// find 二分查找首字符为 c 的子节点, 未找到时返回应插入的位置
func (n *node[V]) find(c rune) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].key[0] >= c
	})
	return i, i < len(n.children) && n.children[i].key[0] == c
}

func (n *node[V]) insertChild(i int, child *node[V]) {
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// Dict radix 字典
type Dict[V any] struct {
	root                 node[V]
	count                int
	allowValueOverride   bool
	maxTolerantKeyLength int
}

// Option 字典配置项
type Option func(*options)

type options struct {
	allowValueOverride   bool
	maxTolerantKeyLength int
}

// WithValueOverride 重复插入同一个键时是否覆盖旧值, 默认保留第一次插入的值
func WithValueOverride(allow bool) Option {
	return func(o *options) { o.allowValueOverride = allow }
}

// WithMaxTolerantKeyLength 超过该长度的键不做容错查找
func WithMaxTolerantKeyLength(n int) Option {
	return func(o *options) { o.maxTolerantKeyLength = n }
}

// New 创建一个空字典
func New[V any](opts ...Option) *Dict[V] {
	o := options{maxTolerantKeyLength: defaultMaxTolerantKeyLength}
	for _, opt := range opts {
		opt(&o)
	}
	return &Dict[V]{
		allowValueOverride:   o.allowValueOverride,
		maxTolerantKeyLength: o.maxTolerantKeyLength,
	}
}

// Len 返回字典中键的数量
func (d *Dict[V]) Len() int { return d.count }

// MaxTolerantKeyLength 容错查找允许的最大键长
func (d *Dict[V]) MaxTolerantKeyLength() int { return d.maxTolerantKeyLength }

// Insert 插入一个键值对, 空键属于调用方错误
func (d *Dict[V]) Insert(key string, value V) {
	k := []rune(key)
	if len(k) == 0 {
		panic("radix: empty key")
	}

	cur := &d.root
	pos := 0
	for {
		i, found := cur.find(k[pos])
		if !found {
			// 没有可以继续匹配的子节点, 剩余部分作为新的叶子
			cur.insertChild(i, &node[V]{key: clone(k[pos:]), value: value, hasValue: true})
			d.count++
			return
		}

		child := cur.children[i]
		n := commonPrefix(child.key, k[pos:])
		pos += n

		switch {
		case n == len(child.key) && pos < len(k):
			// 子节点的片段已完全匹配, 继续向下
			cur = child

		case n == len(child.key):
			// 键与子节点片段同时耗尽
			if !child.hasValue {
				child.value, child.hasValue = value, true
				d.count++
			} else if d.allowValueOverride {
				child.value = value
			}
			return

		case pos < len(k):
			// 部分匹配: 用桥接节点承载公共前缀, 下挂旧节点的后缀与新叶子
			leaf := &node[V]{key: clone(k[pos:]), value: value, hasValue: true}
			bridge := &node[V]{key: clone(child.key[:n])}
			child.key = child.key[n:]
			if child.key[0] < leaf.key[0] {
				bridge.children = []*node[V]{child, leaf}
			} else {
				bridge.children = []*node[V]{leaf, child}
			}
			cur.children[i] = bridge
			d.count++
			return

		default:
			// 键在子节点片段中间耗尽: 当前位置成为带值节点, 旧节点挂在其下
			split := &node[V]{key: clone(child.key[:n]), value: value, hasValue: true}
			child.key = child.key[n:]
			split.children = []*node[V]{child}
			cur.children[i] = split
			d.count++
			return
		}
	}
}

// Lookup 精确查找
func (d *Dict[V]) Lookup(key string) (V, bool) {
	var zero V
	n := d.lookupNode([]rune(key))
	if n == nil || !n.hasValue {
		return zero, false
	}
	return n.value, true
}

// Contains 判断键是否存在
func (d *Dict[V]) Contains(key string) bool {
	_, ok := d.Lookup(key)
	return ok
}

func (d *Dict[V]) lookupNode(k []rune) *node[V] {
	if len(k) == 0 {
		return nil
	}
	cur := &d.root
	pos := 0
	for {
		i, found := cur.find(k[pos])
		if !found {
			return nil
		}
		child := cur.children[i]
		n := commonPrefix(child.key, k[pos:])
		if n < len(child.key) {
			return nil
		}
		pos += n
		if pos == len(k) {
			return child
		}
		cur = child
	}
}

func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func clone(r []rune) []rune {
	return append([]rune(nil), r...)
}
