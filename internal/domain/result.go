package domain

import "strings"

// LookupErrorKind - типизированная классификация исходов Telegram-поиска.
// Сопоставление по подстрокам живет только на границе с внешней библиотекой
// (ClassifyLookupError), дальше по коду ходят только теги.
type LookupErrorKind int

const (
	LookupErrorNone LookupErrorKind = iota
	LookupErrorNotFound
	LookupErrorMultipleAccounts
	LookupErrorOther
)

// Тексты ответов пользователю
const (
	MsgUnknownError     = "Неизвестная ошибка"
	MsgUserNotFound     = "Нет такого пользователя в Telegram или заблокировано добавление в контакты"
	MsgMultipleAccounts = "Номер привязан к нескольким аккаунтам (неожиданная ситуация)"
	MsgNoUsername       = "У пользователя нет username"
	MsgNoInfo           = "Не удалось определить информацию по номеру"
)

// LookupResult - результат поиска аккаунта по номеру телефона.
// Живет в пределах одного запроса, никуда не сохраняется.
type LookupResult struct {
	Username string
	UserID   int64
	ErrKind  LookupErrorKind
	ErrText  string
}

// ClassifyLookupError сопоставляет текст ошибки внешней библиотеки с известными
// случаями. У Telegram нет стабильного кода для этих ситуаций, поэтому на
// границе остается матчинг по подстроке.
func ClassifyLookupError(text string) LookupErrorKind {
	switch {
	case strings.Contains(text, "not on Telegram"):
		return LookupErrorNotFound
	case strings.Contains(text, "multiple Telegram accounts"):
		return LookupErrorMultipleAccounts
	default:
		return LookupErrorOther
	}
}

// LookupFailure строит результат из сырого текста ошибки внешней библиотеки
func LookupFailure(text string) *LookupResult {
	return &LookupResult{ErrKind: ClassifyLookupError(text), ErrText: text}
}

// DisplayString переводит результат поиска в одну человекочитаемую строку.
// Порядок проверок важен: сначала ошибки, потом username, потом id.
func (r *LookupResult) DisplayString() string {
	if r == nil {
		return MsgUnknownError
	}

	switch r.ErrKind {
	case LookupErrorNotFound:
		return MsgUserNotFound
	case LookupErrorMultipleAccounts:
		return MsgMultipleAccounts
	case LookupErrorOther:
		if r.ErrText != "" {
			return r.ErrText
		}
		return MsgUnknownError
	}

	if r.Username != "" {
		// '@' для удобства: визуально отличаем username от текстов ошибок
		return "@" + r.Username
	}

	if r.UserID != 0 {
		return MsgNoUsername
	}

	return MsgNoInfo
}
