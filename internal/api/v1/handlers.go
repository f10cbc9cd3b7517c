package apiv1

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/entrext/companion/app/models"
	"github.com/entrext/companion/internal/pkg/forms"
	"github.com/entrext/companion/internal/pkg/gateway"
)

// APIServer exposes the three remote operations as JSON endpoints with
// {data}|{error} envelopes, for clients that bypass the server-rendered
// pages.
type APIServer struct {
	gw gateway.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer(gw gateway.Service) *APIServer {
	return &APIServer{gw: gw}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorResponse(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": apiError{Code: code, Message: message}})
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
}

// PostWaitlist inserts a waitlist row. A duplicate email is a 409 with its
// own error code, not a server fault.
func (s *APIServer) PostWaitlist(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	if errs := forms.Validate(forms.WaitlistForm{Email: body.Email}); len(errs) > 0 {
		return errorResponse(c, fiber.StatusBadRequest, "validation_error", errs["Email"])
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	entry, err := s.gw.AddToWaitlist(ctx, body.Email)
	if err != nil {
		if gateway.IsDuplicateEntry(err) {
			return errorResponse(c, fiber.StatusConflict, "duplicate_entry", err.Error())
		}
		return errorResponse(c, fiber.StatusBadGateway, "transport_error", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": entry})
}

// PostCheckoutSession opens a checkout session for the posted line items and
// returns the hosted checkout URL.
func (s *APIServer) PostCheckoutSession(c *fiber.Ctx) error {
	var body struct {
		Items              []models.OrderItem `json:"items"`
		Currency           string             `json:"currency"`
		PaymentMethodTypes []string           `json:"payment_method_types"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if len(body.Items) == 0 {
		return errorResponse(c, fiber.StatusBadRequest, "validation_error", "At least one item is required")
	}
	if body.Currency != "" && !strings.EqualFold(body.Currency, gateway.Currency) {
		return errorResponse(c, fiber.StatusBadRequest, "validation_error", "Only usd is supported")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	url, err := s.gw.CreateCheckoutSession(ctx, body.Items)
	if err != nil {
		return errorResponse(c, fiber.StatusBadGateway, "checkout_creation_error", err.Error())
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"url": url}})
}

// PostVerifyPayment confirms a checkout session once and returns its state.
func (s *APIServer) PostVerifyPayment(c *fiber.Ctx) error {
	var body struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if strings.TrimSpace(body.SessionID) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "validation_error", "sessionId is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	sess, err := s.gw.VerifyPayment(ctx, body.SessionID)
	if err != nil {
		return errorResponse(c, fiber.StatusBadGateway, "verification_error", err.Error())
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"verified":      sess.Verified,
		"amount":        sess.Amount,
		"currency":      sess.Currency,
		"customerEmail": sess.CustomerEmail,
		"customerName":  sess.CustomerName,
		"sessionId":     sess.SessionID,
	}})
}
