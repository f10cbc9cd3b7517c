package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/entrext/companion/app/controllers"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !h.cfg.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get("/", controllers.HandleStart)
	group.Post("/waitlist", controllers.HandleWaitlistSignup)
	group.Get("/billing", controllers.HandleBillingPage)
	group.Post("/billing/checkout", controllers.HandleBillingCheckout)
	group.Get("/dreams", controllers.HandleDreamIndex)
	group.Post("/dreams/interpret", controllers.HandleDreamInterpret)
}
