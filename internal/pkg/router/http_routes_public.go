package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/entrext/companion/app/controllers"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Static marketing and legal pages
	app.Get("/pricing", controllers.HandlePricing)
	app.Get("/terms", controllers.HandleTerms)
	app.Get("/refund", controllers.HandleRefund)

	// Return landing from the hosted checkout; session id arrives as a
	// query parameter.
	app.Get("/payment-success", controllers.HandlePaymentStatus)
}
