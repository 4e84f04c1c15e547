package hebrew

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NFD 会把带点的表现形式 (如 U+FB2A) 拆成基础字母加符号, 再统一去除
var niqqudRemover = runes.Remove(runes.Predicate(IsNiqqud))

// RemoveNiqqud 去除词中所有元音符号
func RemoveNiqqud(word string) string {
	if !hasMarks(word) {
		return word
	}
	t := transform.Chain(norm.NFD, niqqudRemover, norm.NFC)
	result, _, err := transform.String(t, word)
	if err != nil {
		return word
	}
	return result
}

func hasMarks(word string) bool {
	for _, c := range word {
		if IsNiqqud(c) || (c >= 0xFB1D && c <= 0xFB4F) {
			return true
		}
	}
	return false
}
