package apiv1

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

	"github.com/entrext/companion/app/models"
	"github.com/entrext/companion/internal/pkg/gateway"
	"github.com/entrext/companion/internal/pkg/payment"
)

type stubGateway struct {
	entry  *models.WaitlistEntry
	addErr error

	checkoutURL string
	checkoutErr error
	items       []models.OrderItem

	session   *payment.Session
	verifyErr error
}

func (s *stubGateway) AddToWaitlist(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.entry, nil
}

func (s *stubGateway) CreateCheckoutSession(ctx context.Context, items []models.OrderItem) (string, error) {
	s.items = items
	if s.checkoutErr != nil {
		return "", s.checkoutErr
	}
	return s.checkoutURL, nil
}

func (s *stubGateway) VerifyPayment(ctx context.Context, sessionID string) (*payment.Session, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return s.session, nil
}

func newTestAPI(svc *stubGateway) *fiber.App {
	app := fiber.New()
	RegisterHandlers(app.Group("/api/v1"), NewAPIServer(svc))
	return app
}

func postJSON(app *fiber.App, path, body string) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return app.Test(req, -1)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return out
}

func TestGetPing(t *testing.T) {
	app := newTestAPI(&stubGateway{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "pong", body["ping"])
}

func TestPostWaitlist_Created(t *testing.T) {
	svc := &stubGateway{entry: &models.WaitlistEntry{UUID: "u-1", Email: "jane@example.com"}}
	app := newTestAPI(svc)

	resp, err := postJSON(app, "/api/v1/waitlist", `{"email":"jane@example.com"}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", data["email"])
}

func TestPostWaitlist_ValidationError(t *testing.T) {
	app := newTestAPI(&stubGateway{})

	resp, err := postJSON(app, "/api/v1/waitlist", `{"email":"not-an-email"}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "validation_error", errObj["code"])
}

func TestPostWaitlist_Duplicate(t *testing.T) {
	svc := &stubGateway{addErr: gateway.NewError(gateway.KindDuplicateEntry, "This email is already registered for the waitlist.", nil)}
	app := newTestAPI(svc)

	resp, err := postJSON(app, "/api/v1/waitlist", `{"email":"jane@example.com"}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "duplicate_entry", errObj["code"])
	assert.Equal(t, "This email is already registered for the waitlist.", errObj["message"])
}

func TestPostWaitlist_TransportError(t *testing.T) {
	svc := &stubGateway{addErr: gateway.NewError(gateway.KindTransport, "Please try again later.", errors.New("db down"))}
	app := newTestAPI(svc)

	resp, err := postJSON(app, "/api/v1/waitlist", `{"email":"jane@example.com"}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "transport_error", errObj["code"])
}

func TestPostCheckoutSession(t *testing.T) {
	svc := &stubGateway{checkoutURL: "https://checkout.example.com/pay/cs_test_123"}
	app := newTestAPI(svc)

	resp, err := postJSON(app, "/api/v1/checkout/sessions", `{"items":[{"name":"Companion Plus Plan","price":9.99,"quantity":1}],"currency":"usd"}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "https://checkout.example.com/pay/cs_test_123", data["url"])

	if assert.Len(t, svc.items, 1) {
		assert.Equal(t, "Companion Plus Plan", svc.items[0].Name)
	}
}

func TestPostCheckoutSession_Validation(t *testing.T) {
	app := newTestAPI(&stubGateway{})

	resp, err := postJSON(app, "/api/v1/checkout/sessions", `{"items":[]}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = postJSON(app, "/api/v1/checkout/sessions", `{"items":[{"name":"Plan","price":9.99}],"currency":"eur"}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "Only usd is supported", errObj["message"])
}

func TestPostCheckoutSession_ProcessorError(t *testing.T) {
	svc := &stubGateway{checkoutErr: gateway.NewError(gateway.KindCheckoutCreation, "Invalid API Key provided", nil)}
	app := newTestAPI(svc)

	resp, err := postJSON(app, "/api/v1/checkout/sessions", `{"items":[{"name":"Plan","price":9.99}]}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "checkout_creation_error", errObj["code"])
}

func TestPostVerifyPayment(t *testing.T) {
	svc := &stubGateway{
		session: &payment.Session{
			SessionID:     "cs_test_123",
			Verified:      true,
			Amount:        999,
			Currency:      "usd",
			CustomerEmail: "jane@example.com",
			CustomerName:  "Jane Doe",
		},
	}
	app := newTestAPI(svc)

	resp, err := postJSON(app, "/api/v1/payments/verify", `{"sessionId":"cs_test_123"}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["verified"])
	assert.Equal(t, float64(999), data["amount"])
	assert.Equal(t, "usd", data["currency"])
	assert.Equal(t, "cs_test_123", data["sessionId"])
}

func TestPostVerifyPayment_MissingSessionID(t *testing.T) {
	app := newTestAPI(&stubGateway{})

	resp, err := postJSON(app, "/api/v1/payments/verify", `{"sessionId":"  "}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostVerifyPayment_VerificationError(t *testing.T) {
	svc := &stubGateway{verifyErr: gateway.NewError(gateway.KindVerification, "Failed to verify payment. Please contact support.", nil)}
	app := newTestAPI(svc)

	resp, err := postJSON(app, "/api/v1/payments/verify", `{"sessionId":"cs_test_123"}`)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "verification_error", errObj["code"])
}
