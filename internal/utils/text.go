package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold приводит строку к форме для регистронезависимого сравнения.
// cases.Caser хранит состояние, поэтому создаётся на каждый вызов.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// NormalizeEmail - email сравнивается без учёта регистра
func NormalizeEmail(email string) string {
	return Fold(email)
}

// IsBlank - пустая строка или только пробельные символы
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// EscapeLike экранирует спецсимволы LIKE. Экранирующий символ '!'
// одинаково работает в Postgres, MySQL и SQLite.
func EscapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}
