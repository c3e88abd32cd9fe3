package utils

import (
	"regexp"
	"strings"
)

// Намеренно грубая проверка: local@domain.tld, без полной RFC-валидации.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func LooksLikeEmail(s string) bool {
	return emailRe.MatchString(s)
}

// NormalizeEmail приводит адрес к каноническому виду для хранения и сравнения.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
