package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone-checker/internal/domain"
)

// fakeLookup подменяет Telegram-сервис в тестах
type fakeLookup struct {
	result *domain.LookupResult
	err    error
	phones []string
}

func (f *fakeLookup) LookupPhone(_ context.Context, phone string) (*domain.LookupResult, error) {
	f.phones = append(f.phones, phone)
	return f.result, f.err
}

func newTestApp(lookup PhoneLookup) *fiber.App {
	app := fiber.New()
	handler := NewHandler(lookup)

	app.Get("/check_phone", handler.CheckPhone)
	app.Post("/check_phone", handler.CheckPhonePost)
	app.Get("/healthz", handler.Healthz)

	return app
}

func checkPhoneResult(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out domain.CheckPhoneResponse
	require.NoError(t, json.Unmarshal(body, &out))

	return resp.StatusCode, out.Result
}

func postCheckPhone(phone string) *http.Request {
	body := strings.NewReader(`{"phone": "` + phone + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/check_phone", body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCheckPhoneFound(t *testing.T) {
	fake := &fakeLookup{result: &domain.LookupResult{Username: "alice", UserID: 1}}
	app := newTestApp(fake)

	req := httptest.NewRequest(http.MethodGet, "/check_phone?phone=%2B1234567", nil)
	status, result := checkPhoneResult(t, app, req)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "@alice", result)
	assert.Equal(t, []string{"+1234567"}, fake.phones)
}

func TestCheckPhoneInvalidFormat(t *testing.T) {
	fake := &fakeLookup{}
	app := newTestApp(fake)

	req := httptest.NewRequest(http.MethodGet, "/check_phone?phone=abc", nil)
	status, result := checkPhoneResult(t, app, req)

	// Ошибка формата - не HTTP-ошибка: ответ остается 200
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.ErrInvalidPhoneFormat.Error(), result)
	assert.Empty(t, fake.phones, "lookup must not be called for invalid input")
}

func TestCheckPhoneMissing(t *testing.T) {
	app := newTestApp(&fakeLookup{})

	req := httptest.NewRequest(http.MethodGet, "/check_phone", nil)
	status, result := checkPhoneResult(t, app, req)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.ErrEmptyPhone.Error(), result)
}

func TestCheckPhoneGetAndPostAgree(t *testing.T) {
	fake := &fakeLookup{result: &domain.LookupResult{Username: "alice", UserID: 1}}
	app := newTestApp(fake)

	getReq := httptest.NewRequest(http.MethodGet, "/check_phone?phone=%2B1%20234%20567", nil)
	getStatus, getResult := checkPhoneResult(t, app, getReq)

	postStatus, postResult := checkPhoneResult(t, app, postCheckPhone("+1 234 567"))

	assert.Equal(t, http.StatusOK, getStatus)
	assert.Equal(t, http.StatusOK, postStatus)
	assert.Equal(t, getResult, postResult)
	assert.Equal(t, []string{"+1234567", "+1234567"}, fake.phones)
}

func TestCheckPhoneUpstreamErrorTranslated(t *testing.T) {
	fake := &fakeLookup{result: &domain.LookupResult{ErrKind: domain.LookupErrorNotFound}}
	app := newTestApp(fake)

	status, result := checkPhoneResult(t, app, postCheckPhone("+79991234567"))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.MsgUserNotFound, result)
}

func TestCheckPhoneLookupFailure(t *testing.T) {
	fake := &fakeLookup{err: errors.New("connection reset")}
	app := newTestApp(fake)

	req := httptest.NewRequest(http.MethodGet, "/check_phone?phone=%2B79991234567", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))

	// Наружу уходит только обезличенный текст, без деталей
	assert.Equal(t, MsgInternalError, out.Detail)
	assert.NotContains(t, out.Detail, "connection reset")
}

func TestCheckPhonePostBadJSON(t *testing.T) {
	app := newTestApp(&fakeLookup{})

	req := httptest.NewRequest(http.MethodPost, "/check_phone", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	app := newTestApp(&fakeLookup{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}
