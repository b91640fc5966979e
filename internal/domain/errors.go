package domain

import "errors"

var (
	// Ошибки формата номера. Текст уходит пользователю как есть,
	// поэтому сообщения человекочитаемые, а не технические.
	ErrEmptyPhone         = errors.New("Пустой номер телефона")
	ErrInvalidPhoneFormat = errors.New("Неверный формат номера телефона")
)
