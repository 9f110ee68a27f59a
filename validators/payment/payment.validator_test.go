package paymentValidator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidatorTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/payments", CreatePaymentValidator, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreatePaymentValidatorAcceptsValidPayload(t *testing.T) {
	app := newValidatorTestApp()

	resp := postJSON(t, app, `{"booking_id":1,"payment_type":"deposit","payment_method":"vnpay"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreatePaymentValidatorRejectsMissingBookingID(t *testing.T) {
	app := newValidatorTestApp()

	resp := postJSON(t, app, `{"payment_type":"deposit","payment_method":"cash"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreatePaymentValidatorRejectsUnknownType(t *testing.T) {
	app := newValidatorTestApp()

	resp := postJSON(t, app, `{"booking_id":1,"payment_type":"tip","payment_method":"cash"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreatePaymentValidatorRejectsUnknownMethod(t *testing.T) {
	app := newValidatorTestApp()

	resp := postJSON(t, app, `{"booking_id":1,"payment_type":"deposit","payment_method":"crypto"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreatePaymentValidatorRejectsNegativeAmount(t *testing.T) {
	app := newValidatorTestApp()

	resp := postJSON(t, app, `{"booking_id":1,"payment_type":"deposit","payment_method":"cash","amount":-5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
