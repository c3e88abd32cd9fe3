package utils

import (
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var nanoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{21}$`)

func GenerateNanoID() (string, error) {
	return gonanoid.New()
}

// ValidNanoID проверяет, что строка имеет форму стандартного nanoid (21 символ).
func ValidNanoID(s string) bool {
	return nanoIDRe.MatchString(s)
}
