package delivery

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"phone-checker/internal/domain"
)

// PhoneLookup - то, что delivery-слою нужно от Telegram-сервиса
type PhoneLookup interface {
	LookupPhone(ctx context.Context, phone string) (*domain.LookupResult, error)
}

type Handler struct {
	lookup PhoneLookup
}

func NewHandler(lookup PhoneLookup) *Handler {
	return &Handler{lookup: lookup}
}

// CheckPhone - GET-вариант для Google Sheets: номер приходит
// query-параметром ?phone=+7999...
func (h *Handler) CheckPhone(c *fiber.Ctx) error {
	return h.checkPhone(c, c.Query("phone"))
}

// CheckPhonePost - POST-вариант того же функционала
func (h *Handler) CheckPhonePost(c *fiber.Ctx) error {
	var req domain.CheckPhoneRequest

	if err := c.BodyParser(&req); err != nil {
		log.Printf("Failed to parse CheckPhone request: %v", err)
		return respondBadRequest(c, "Invalid request body")
	}

	return h.checkPhone(c, req.Phone)
}

// checkPhone - общий конвейер: нормализация -> поиск -> строка ответа.
// Ошибка формата - это не HTTP-ошибка: интеграции вроде Google Sheets
// ждут единообразный 200, поэтому текст уходит прямо в result.
func (h *Handler) checkPhone(c *fiber.Ctx, phone string) error {
	normalized, err := domain.NormalizePhone(phone)
	if err != nil {
		return respondOK(c, domain.CheckPhoneResponse{Result: err.Error()})
	}

	info, err := h.lookup.LookupPhone(c.Context(), normalized)
	if err != nil {
		log.Printf("Unexpected error while checking phone %s: %v", phone, err)
		return respondInternalError(c, MsgInternalError)
	}

	return respondOK(c, domain.CheckPhoneResponse{Result: info.DisplayString()})
}

// Healthz - проверка живости сервиса
func (h *Handler) Healthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}
