package radix

import "fmt"

// Tolerance 一条容错规则的处理结果
type Tolerance struct {
	Score       float64 // 乘到累计得分上的系数
	EdgeAdvance int     // 消耗的字典字符数
	KeyAdvance  int     // 消耗的查询字符数
}

// ToleranceRule 容错规则
//
// edge 为字典当前位置的字符, key 为完整查询, keyPos 为查询的当前位置,
// word 为到目前为止已拼出的字典词. 规则必须至少推进 EdgeAdvance 或 KeyAdvance 之一.
type ToleranceRule interface {
	Tolerate(edge rune, key []rune, keyPos int, word []rune) (Tolerance, bool)
}

// LookupResult 容错查找的一个结果
type LookupResult[V any] struct {
	Word  string  // 字典中实际匹配到的词, 可能与查询不同
	Value V       // 词对应的值
	Score float64 // 累计得分, 未经容错时为 1
}

// LookupTolerant 容错查找, 返回所有匹配 (可能包含从不同路径得到的重复结果)
func (d *Dict[V]) LookupTolerant(key string, rules ...ToleranceRule) []LookupResult[V] {
	k := []rune(key)
	if len(k) == 0 || len(k) > d.maxTolerantKeyLength {
		return nil
	}
	c := crawler[V]{key: k, rules: rules}
	c.visitChildren(&d.root, 0, nil, 1.0)
	return c.results
}

type crawler[V any] struct {
	key     []rune
	rules   []ToleranceRule
	results []LookupResult[V]
}

func (c *crawler[V]) visitChildren(n *node[V], keyPos int, word []rune, score float64) {
	for _, child := range n.children {
		c.match(child, 0, keyPos, word, score)
	}
}

// match 在节点 n 的片段内从 edgePos 开始匹配, 每个位置先尝试所有容错分支, 再做标准匹配
func (c *crawler[V]) match(n *node[V], edgePos, keyPos int, word []rune, score float64) {
	word = append(make([]rune, 0, len(word)+len(n.key)), word...)
	for edgePos < len(n.key) && keyPos < len(c.key) {
		edge := n.key[edgePos]
		for _, rule := range c.rules {
			tol, ok := rule.Tolerate(edge, c.key, keyPos, word)
			if !ok {
				continue
			}
			if tol.EdgeAdvance <= 0 && tol.KeyAdvance <= 0 {
				panic(fmt.Sprintf("radix: tolerance rule %T made no progress at key position %d", rule, keyPos))
			}
			nextEdge, nextKey := edgePos+tol.EdgeAdvance, keyPos+tol.KeyAdvance
			if nextEdge > len(n.key) || nextKey > len(c.key) {
				continue
			}
			branch := append(clone(word), n.key[edgePos:nextEdge]...)
			c.resume(n, nextEdge, nextKey, branch, score*tol.Score)
		}

		if edge != c.key[keyPos] {
			return
		}
		word = append(word, edge)
		edgePos++
		keyPos++
	}
	c.resume(n, edgePos, keyPos, word, score)
}

// resume 从节点 n 的 edgePos 位置继续搜索
func (c *crawler[V]) resume(n *node[V], edgePos, keyPos int, word []rune, score float64) {
	if edgePos < len(n.key) {
		if keyPos < len(c.key) {
			c.match(n, edgePos, keyPos, word, score)
		}
		return
	}
	if keyPos < len(c.key) {
		c.visitChildren(n, keyPos, word, score)
		return
	}
	if n.hasValue {
		c.results = append(c.results, LookupResult[V]{Word: string(word), Value: n.value, Score: score})
	}
}
