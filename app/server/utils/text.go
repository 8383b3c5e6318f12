package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// 去除重音符号： NFD 分解后丢弃组合用记号，再合回 NFC
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTitle 规范化标题：小写、去重音、去首尾空白，用于检索匹配
func NormalizeTitle(title string) string {
	stripped, _, err := transform.String(stripMarks, title)
	if err != nil {
		stripped = title
	}

	return strings.TrimSpace(strings.ToLower(stripped))
}

// GenerateSlug 从标题派生链接别名：规范化后非字母数字折叠为单个连字符
func GenerateSlug(title string) string {
	normalized := NormalizeTitle(title)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return b.String()
}
