package radix

import "iter"

type frame[V any] struct {
	n      *node[V]
	next   int // 下一个要访问的子节点下标
	keyLen int // 进入该节点之前路径的长度
}

// All 按键的字典序遍历所有键值对
func (d *Dict[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		var path []rune
		stack := []frame[V]{{n: &d.root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.n.children) {
				path = path[:top.keyLen]
				stack = stack[:len(stack)-1]
				continue
			}

			child := top.n.children[top.next]
			top.next++
			keyLen := len(path)
			path = append(path, child.key...)
			stack = append(stack, frame[V]{n: child, keyLen: keyLen})
			if child.hasValue && !yield(string(path), child.value) {
				return
			}
		}
	}
}

// Keys 按字典序返回所有键
func (d *Dict[V]) Keys() []string {
	keys := make([]string, 0, d.count)
	for k := range d.All() {
		keys = append(keys, k)
	}
	return keys
}
