package delivery

import (
	"github.com/gofiber/fiber/v2"
)

// MsgInternalError - обезличенный текст для 500: детали остаются в логах
const MsgInternalError = "Внутренняя ошибка сервиса"

// ErrorResponse - стандартный формат ошибки
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// respondWithError - вспомогательная функция для отправки ошибок
func respondWithError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(ErrorResponse{Detail: detail})
}

// respondBadRequest - ошибка валидации (400)
func respondBadRequest(c *fiber.Ctx, detail string) error {
	return respondWithError(c, fiber.StatusBadRequest, detail)
}

// respondInternalError - внутренняя ошибка (500)
func respondInternalError(c *fiber.Ctx, detail string) error {
	return respondWithError(c, fiber.StatusInternalServerError, detail)
}

// respondOK - успешный ответ (200)
func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}
