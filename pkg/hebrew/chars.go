// Package hebrew 希伯来文字符分类、语法掩码与前缀表
package hebrew

const (
	MaxWordLength = 127 // 分词缓冲区的最大词长, 超出部分被截断

	MaxTolerantWordLength = 20 // 容错查找的最大词长, 已知最长的希伯来词为 19 个字母
)

// 常用字母
const (
	Alef  = 'א'
	Bet   = 'ב'
	He    = 'ה'
	Vav   = 'ו'
	Yod   = 'י'
	Kaf   = 'כ'
	Lamed = 'ל'
	Mem   = 'מ'
	Shin  = 'ש'
	Tav   = 'ת'
)

var (
	gereshChars    = []rune{'\'', '׳', '‘', '’', '‛', '＇'}
	gershayimChars = []rune{'"', '״', '“', '”', '‟', '❞', '＂'}
	makafChars     = []rune{'-', '‒', '–', '—', '―', '־'}

	// 词尾可以合法带 Geresh 的字母 (ג׳ ז׳ צ׳ 等外来音)
	lettersAcceptingGeresh = []rune{'ז', 'ג', 'ץ', 'צ', 'ח'}
)

func isOf(c rune, options []rune) bool {
	for _, o := range options {
		if c == o {
			return true
		}
	}
	return false
}

// IsLetter 判断是否为希伯来字母 (א - ת)
func IsLetter(c rune) bool {
	return c >= 0x05D0 && c <= 0x05EA
}

// IsFinalLetter 判断是否为词尾形字母 (ך ם ן ף ץ)
func IsFinalLetter(c rune) bool {
	return c == 'ך' || c == 'ם' || c == 'ן' || c == 'ף' || c == 'ץ'
}

// IsNiqqud 判断是否为元音符号或吟诵符号
// Makaf (U+05BE) 与 Paseq, Sof Pasuq 等标点不算在内
func IsNiqqud(c rune) bool {
	switch {
	case c >= 0x0591 && c <= 0x05BD:
		return true
	case c == 0x05BF, c == 0x05C1, c == 0x05C2, c == 0x05C4, c == 0x05C5, c == 0x05C7:
		return true
	}
	return false
}

// IsGeresh 判断是否为 Geresh 或其常见替代字符
func IsGeresh(c rune) bool { return isOf(c, gereshChars) }

// IsGershayim 判断是否为 Gershayim 或其常见替代字符
func IsGershayim(c rune) bool { return isOf(c, gershayimChars) }

// IsMakaf 判断是否为 Makaf (连字符)
func IsMakaf(c rune) bool { return isOf(c, makafChars) }

// AcceptsGeresh 判断字母后面的 Geresh 是否有语义
func AcceptsGeresh(c rune) bool { return isOf(c, lettersAcceptingGeresh) }
