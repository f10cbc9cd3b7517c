package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleTerms renders the terms of service page.
func HandleTerms(c *fiber.Ctx) error {
	return render(c, "terms", fiber.Map{
		"Title": "Terms of Service",
	})
}

// HandleRefund renders the refund policy page.
func HandleRefund(c *fiber.Ctx) error {
	return render(c, "refund", fiber.Map{
		"Title": "Refund Policy",
	})
}
