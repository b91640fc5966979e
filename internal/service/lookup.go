package service

import (
	"context"
	"fmt"
	"log"

	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"

	"phone-checker/internal/domain"
)

// LookupPhone ищет аккаунт Telegram по нормализованному номеру.
// Используем contacts.importContacts: это единственный способ найти
// пользователя по номеру, не зная его заранее. Временный контакт
// удаляется сразу после проверки.
func (s *TelegramService) LookupPhone(ctx context.Context, phone string) (*domain.LookupResult, error) {
	api, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	imported, err := api.ContactsImportContacts(ctx, []tg.InputPhoneContact{
		{
			ClientID:  0,
			Phone:     phone,
			FirstName: "Phone",
			LastName:  "Checker",
		},
	})
	if err != nil {
		// Ошибки уровня Telegram API (FLOOD_WAIT и т.п.) показываем
		// пользователю текстом, транспортные отдаем наверх
		if rpcErr, ok := tgerr.As(err); ok {
			return domain.LookupFailure(rpcErr.Error()), nil
		}
		return nil, fmt.Errorf("failed to import contact: %w", err)
	}

	users := imported.Users

	switch {
	case len(users) == 0:
		// Аккаунта нет либо пользователь запретил добавлять себя в контакты
		return &domain.LookupResult{ErrKind: domain.LookupErrorNotFound}, nil
	case len(users) > 1:
		s.deleteContacts(ctx, api, users...)
		return &domain.LookupResult{ErrKind: domain.LookupErrorMultipleAccounts}, nil
	}

	s.deleteContacts(ctx, api, users[0])

	user, ok := users[0].(*tg.User)
	if !ok {
		return &domain.LookupResult{}, nil
	}

	username, _ := user.GetUsername()

	return &domain.LookupResult{
		Username: username,
		UserID:   user.ID,
	}, nil
}

// deleteContacts убирает временно импортированные контакты. Ошибка удаления
// не влияет на результат проверки, поэтому только логируется.
func (s *TelegramService) deleteContacts(ctx context.Context, api *tg.Client, users ...tg.UserClass) {
	inputs := make([]tg.InputUserClass, 0, len(users))
	for _, u := range users {
		user, ok := u.(*tg.User)
		if !ok {
			continue
		}

		accessHash, _ := user.GetAccessHash()
		inputs = append(inputs, &tg.InputUser{
			UserID:     user.ID,
			AccessHash: accessHash,
		})
	}

	if len(inputs) == 0 {
		return
	}

	if _, err := api.ContactsDeleteContacts(ctx, inputs); err != nil {
		log.Printf("Failed to delete temporary contacts: %v", err)
	}
}
