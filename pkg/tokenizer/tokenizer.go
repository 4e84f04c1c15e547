// Package tokenizer 希伯来文/拉丁文分词器
//
// Tokenizer 按块缓冲读取输入, 逐个返回分类后的词, 并记录每个词在原文中的偏移与长度.
// 偏移与长度均以字符 (rune) 计. 一个 Tokenizer 只能由一个调用方使用.
package tokenizer

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/miajio/hebmorph/pkg/hebrew"
)

// Type 词的类型标记
type Type uint8

const (
	Hebrew    Type = 1 << iota // 希伯来词
	NonHebrew                  // 非希伯来词 (拉丁字母或数字)
	Numeric                    // 全部由数字组成
	Construct                  // 后面紧跟 Makaf, 通常是结构态
	Acronym                    // 含有 Geresh 或 Gershayim
)

// Has 是否包含指定标记
func (t Type) Has(flag Type) bool { return t&flag != 0 }

// String 返回标记的可读形式
func (t Type) String() string {
	names := []string{"Hebrew", "NonHebrew", "Numeric", "Construct", "Acronym"}
	var parts []string
	for i, name := range names {
		if t&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// Token 一个分类后的词
type Token struct {
	Text   string // 规范化后的文本
	Offset int    // 在原文中的起始位置
	Length int    // 在原文中所占长度, 不含被裁掉的尾部符号
	Type   Type
}

const ioBufferSize = 4096

// Tokenizer 分词器
type Tokenizer struct {
	input *bufio.Reader
	err   error // 输入读取结束的原因

	buf         [ioBufferSize]rune // 输入缓冲块
	dataLen     int                // 缓冲块中有效的字符数
	bufIndex    int                // 缓冲块中下一个要读的位置
	inputOffset int                // 缓冲块第一个字符在输入中的位置

	word [hebrew.MaxWordLength]rune
}

// New 创建分词器
func New(r io.Reader) *Tokenizer {
	t := &Tokenizer{}
	t.Reset(r)
	return t
}

// Reset 重置分词器以读取新的输入, 只能在两次完整处理之间调用
func (t *Tokenizer) Reset(r io.Reader) {
	t.input = bufio.NewReader(r)
	t.err = nil
	t.dataLen = 0
	t.bufIndex = 0
	t.inputOffset = 0
}

// fill 读取下一个缓冲块, 没有更多输入时返回 false
func (t *Tokenizer) fill() bool {
	t.inputOffset += t.dataLen
	t.dataLen = 0
	t.bufIndex = 0
	if t.err != nil {
		return false
	}
	for t.dataLen < ioBufferSize {
		c, _, err := t.input.ReadRune()
		if err != nil {
			t.err = err
			break
		}
		t.buf[t.dataLen] = c
		t.dataLen++
	}
	return t.dataLen > 0
}

// Next 返回下一个词, 输入结束时返回 io.EOF
// 元音符号被保留, 由调用方决定是否去除
func (t *Tokenizer) Next() (Token, error) {
	var (
		length int
		typ    Type
		start  int
		end    int
	)

	for {
		if t.bufIndex >= t.dataLen && !t.fill() {
			end = t.inputOffset
			break
		}

		c := t.buf[t.bufIndex]
		t.bufIndex++
		pos := t.inputOffset + t.bufIndex - 1
		appendChar := false

		switch {
		case length > 0 && typ.Has(NonHebrew):
			// 非希伯来词遇到希伯来字符时结束, 该字符留给下一个词
			if hebrew.IsLetter(c) || hebrew.IsNiqqud(c) {
				t.bufIndex--
				end = pos
			} else if unicode.IsLetter(c) || unicode.IsDigit(c) {
				appendChar = true
			} else if hebrew.IsGeresh(c) {
				// 拉丁词中的撇号 (don't) 保留在词内
				c = '\''
				appendChar = true
			} else {
				if hebrew.IsMakaf(c) {
					typ |= Construct
				}
				end = pos
			}

		case hebrew.IsLetter(c) || (length > 0 && hebrew.IsNiqqud(c)):
			typ |= Hebrew
			appendChar = true

		case unicode.IsLetter(c) || unicode.IsDigit(c):
			// 希伯来词中不混入其他文字
			if length > 0 {
				t.bufIndex--
				end = pos
				break
			}
			typ |= NonHebrew
			appendChar = true

		case length > 0 && hebrew.IsGershayim(c):
			prev := t.word[length-1]
			if !hebrew.IsLetter(prev) && !hebrew.IsNiqqud(prev) {
				end = pos
				break
			}
			typ |= Acronym
			c = '"'
			appendChar = true

		case length > 0 && hebrew.IsGeresh(c):
			prev := t.word[length-1]
			if !hebrew.IsLetter(prev) && !hebrew.IsNiqqud(prev) && prev != '\'' {
				end = pos
				break
			}
			typ |= Acronym
			c = '\''
			appendChar = true

		case length > 0:
			if hebrew.IsMakaf(c) {
				typ |= Construct
			}
			end = pos
		}

		if !appendChar {
			if length > 0 {
				break
			}
			continue
		}

		if length == 0 {
			start = pos
		} else if length == len(t.word) {
			// 超长的词被截断, 剩余字符照常消耗
			continue
		}

		// 两个 Geresh 规范化为 Gershayim
		if c == '\'' && t.word[length-1] == '\'' {
			t.word[length-1] = '"'
			continue
		}
		t.word[length] = c
		length++
	}

	if length == 0 {
		if t.err != nil && !errors.Is(t.err, io.EOF) {
			return Token{}, t.err
		}
		return Token{}, io.EOF
	}

	sourceLen := end - start

	if t.word[length-1] == '"' {
		length--
		sourceLen--
	}
	// 去掉词尾的 Geresh, 除非它跟在会改变读音的字母之后
	if length > 2 && t.word[length-1] == '\'' && !hebrew.AcceptsGeresh(t.word[length-2]) {
		length--
		sourceLen--
	}

	if typ.Has(NonHebrew) && allDigits(t.word[:length]) {
		typ |= Numeric
	}

	return Token{
		Text:   string(t.word[:length]),
		Offset: start,
		Length: max(sourceLen, 0),
		Type:   typ,
	}, nil
}

func allDigits(word []rune) bool {
	for _, c := range word {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return len(word) > 0
}
