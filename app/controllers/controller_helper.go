package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/entrext/companion/internal/pkg/config"
	"github.com/entrext/companion/internal/pkg/dream"
	"github.com/entrext/companion/internal/pkg/gateway"
)

// Package-level dependencies, wired once by the router during startup.
var (
	gw          gateway.Service
	dreamClient *dream.Client
	appConfig   config.Config
)

// Initialize hands the controllers their dependencies. Tests swap in stub
// gateways through the same entry point.
func Initialize(service gateway.Service, dc *dream.Client, cfg config.Config) {
	gw = service
	dreamClient = dc
	appConfig = cfg
}

// csrfToken returns the token set by the CSRF middleware, or "" on routes
// outside the protected group.
func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals("csrf").(string); ok {
		return token
	}
	return ""
}

// render wraps c.Render with the shared layout and the bindings every page
// needs (flash toast, csrf token).
func render(c *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Flash"] = flash.Get(c)
	bind["CSRFToken"] = csrfToken(c)
	return c.Render(name, bind, "layouts/main")
}
