package resolve

import (
	"strings"
	"unicode"
)

// Normalize приводит строку к ключу для сравнения: нижний регистр,
// без пробелов и дефисов. "AP-20", "AP 20" и "ap20" дают один ключ.
// Не-ASCII символы (кана, кириллица) проходят без изменений.
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isDigits — состоит ли ключ только из ASCII-цифр (непустой).
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
