package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/entrext/companion/internal/pkg/forms"
	"github.com/entrext/companion/internal/pkg/gateway"
	"github.com/entrext/companion/internal/pkg/session"
)

// HandleWaitlistSignup processes the landing page waitlist form. Every
// outcome is a flash toast followed by a redirect home; the duplicate-email
// case gets its own non-alarming message.
func HandleWaitlistSignup(c *fiber.Ctx) error {
	var form forms.WaitlistForm
	if err := c.BodyParser(&form); err != nil {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Invalid form submission",
		}).Redirect("/")
	}

	if errs := forms.Validate(form); len(errs) > 0 {
		msg := errs["Email"]
		if msg == "" {
			msg = "Invalid email address"
		}
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": msg,
		}).Redirect("/")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	entry, err := gw.AddToWaitlist(ctx, form.Email)
	if err != nil {
		if gateway.IsDuplicateEntry(err) {
			return flash.WithError(c, fiber.Map{
				"type":    "error",
				"message": "Already on the list! This email is already registered for the waitlist.",
			}).Redirect("/")
		}
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Something went wrong. Please try again later.",
		}).Redirect("/")
	}

	_ = session.SetSessionValue(c, session.KeyWaitlistEmail, entry.Email)

	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": "Welcome to the waitlist! We'll notify you when Companion launches.",
	}).Redirect("/")
}
