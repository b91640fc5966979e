package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// phonePattern - канонический вид номера: '+' и от 5 до 20 цифр
var phonePattern = regexp.MustCompile(`^\+\d{5,20}$`)

// NormalizePhone приводит номер к единому виду: убираем пробелы,
// добавляем '+' если надо и проверяем, что остались только цифры.
func NormalizePhone(phone string) (string, error) {
	if phone == "" {
		return "", ErrEmptyPhone
	}

	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)

	if !strings.HasPrefix(normalized, "+") {
		normalized = "+" + normalized
	}

	if !phonePattern.MatchString(normalized) {
		return "", ErrInvalidPhoneFormat
	}

	return normalized, nil
}
