package apiv1

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterHandlers attaches the v1 endpoints to the given route group.
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)
	router.Post("/waitlist", s.PostWaitlist)
	router.Post("/checkout/sessions", s.PostCheckoutSession)
	router.Post("/payments/verify", s.PostVerifyPayment)
}
