package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/entrext/companion/internal/pkg/config"
)

// Router installs a set of routes into the app.
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires dependencies and installs all route groups. The
// HttpRouter goes first: it initializes the session store and the shared
// gateway the API routes also use.
func InstallRouter(app *fiber.App, cfg config.Config) {
	setup(app, NewHttpRouter(cfg), NewApiRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
