// Package strutil содержит вспомогательные функции для работы со строками.
package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty сообщает, пуста ли строка.
func IsEmpty(s string) bool {
	return s == ""
}

// IsBlank сообщает, состоит ли строка только из пробельных символов.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Reverse переворачивает строку посимвольно.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Capitalize переводит первый символ строки в верхний регистр.
func Capitalize(s string) string {
	if IsEmpty(s) {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// CountOccurrences считает вхождения символа r в строку.
func CountOccurrences(s string, r rune) int {
	count := 0
	for _, c := range s {
		if c == r {
			count++
		}
	}
	return count
}

// IsPalindrome проверяет, является ли строка палиндромом без учета
// регистра и всех символов, кроме [a-zA-Z0-9]. Пустая строка палиндромом не считается.
func IsPalindrome(s string) bool {
	if IsEmpty(s) {
		return false
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, s)

	return cleaned == Reverse(cleaned)
}
