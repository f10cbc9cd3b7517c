package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/entrext/companion/app/models"
	"github.com/entrext/companion/internal/pkg/session"
)

// HandleStart renders the landing page: hero, how-it-works, connection
// modes, pricing tiers and the waitlist dialog.
func HandleStart(c *fiber.Ctx) error {
	joinedEmail := session.GetSessionValue(c, session.KeyWaitlistEmail)

	return render(c, "index", fiber.Map{
		"Title":       "Companion – Meet people who feel like you",
		"Plans":       models.AllPlans(),
		"JoinedEmail": joinedEmail,
	})
}
