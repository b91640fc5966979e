package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/gotd/contrib/bg"
	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
)

// TelegramService держит единственное авторизованное подключение к Telegram.
// Сервис создается на старте приложения, а само подключение поднимается
// лениво при первом запросе - под мьютексом, чтобы конкурентные первые
// запросы не устроили два логина.
type TelegramService struct {
	apiID       int
	apiHash     string
	phoneNumber string
	sessionPath string

	mu   sync.Mutex
	api  *tg.Client
	stop bg.StopFunc

	closeOnce sync.Once
}

// NewTelegramService создает сервис из переменных окружения:
// API_ID, API_HASH и PHONE_NUMBER обязательны, SESSION_FILE опционален.
func NewTelegramService() (*TelegramService, error) {
	apiIDRaw := os.Getenv("API_ID")
	if apiIDRaw == "" {
		return nil, fmt.Errorf("API_ID environment variable is not set")
	}

	apiID, err := strconv.Atoi(apiIDRaw)
	if err != nil {
		return nil, fmt.Errorf("API_ID must be an integer: %w", err)
	}

	apiHash := os.Getenv("API_HASH")
	if apiHash == "" {
		return nil, fmt.Errorf("API_HASH environment variable is not set")
	}

	phoneNumber := os.Getenv("PHONE_NUMBER")
	if phoneNumber == "" {
		return nil, fmt.Errorf("PHONE_NUMBER environment variable is not set")
	}

	sessionPath := os.Getenv("SESSION_FILE")
	if sessionPath == "" {
		sessionPath = "phone-checker.session"
	}

	return &TelegramService{
		apiID:       apiID,
		apiHash:     apiHash,
		phoneNumber: phoneNumber,
		sessionPath: sessionPath,
	}, nil
}

// conn возвращает авторизованный API-клиент, поднимая подключение при
// первом вызове. После Close подключение не пересоздается заново в рамках
// жизни процесса - сервис завершает работу.
func (s *TelegramService) conn(ctx context.Context) (*tg.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.api != nil {
		return s.api, nil
	}

	client := telegram.NewClient(s.apiID, s.apiHash, telegram.Options{
		SessionStorage: &session.FileStorage{Path: s.sessionPath},
	})

	stop, err := bg.Connect(client)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	// При сохраненной сессии авторизация проходит без вопросов,
	// иначе код подтверждения запрашивается в терминале
	flow := auth.NewFlow(terminalAuth{phone: s.phoneNumber}, auth.SendCodeOptions{})
	if err := client.Auth().IfNecessary(ctx, flow); err != nil {
		if stopErr := stop(); stopErr != nil {
			log.Printf("Failed to stop telegram client after auth error: %v", stopErr)
		}
		return nil, fmt.Errorf("failed to authorize: %w", err)
	}

	log.Printf("Telegram client connected and authorized as %s", s.phoneNumber)

	s.api = client.API()
	s.stop = stop

	return s.api, nil
}

// Close разрывает подключение к Telegram. Повторные вызовы безопасны:
// дисконнект выполняется ровно один раз.
func (s *TelegramService) Close() error {
	var err error

	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.stop == nil {
			return
		}

		err = s.stop()
		s.stop = nil
		s.api = nil

		log.Printf("Telegram client disconnected")
	})

	return err
}
