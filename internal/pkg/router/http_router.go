package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/entrext/companion/app/controllers"
	"github.com/entrext/companion/app/repository"
	"github.com/entrext/companion/internal/pkg/config"
	"github.com/entrext/companion/internal/pkg/database"
	"github.com/entrext/companion/internal/pkg/dream"
	"github.com/entrext/companion/internal/pkg/gateway"
	"github.com/entrext/companion/internal/pkg/payment"
	"github.com/entrext/companion/internal/pkg/session"
)

type HttpRouter struct {
	cfg config.Config
}

func NewHttpRouter(cfg config.Config) *HttpRouter {
	return &HttpRouter{cfg: cfg}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore(h.cfg)

	// Wire the gateway from explicit dependencies; controllers never read
	// configuration themselves.
	repository.InitializeFactory(database.GetDB())
	factory := repository.GetGlobalFactory()

	checkoutClient := payment.NewClient(h.cfg.CheckoutSecretKey, h.cfg.CheckoutAPIBaseURL, h.cfg.PublicDomain)
	gw := gateway.New(factory.GetWaitlistRepository(), factory.GetOrderRepository(), checkoutClient)
	dreamClient := dream.NewClient(h.cfg.DreamAPIKey, h.cfg.DreamAPIBaseURL, h.cfg.DreamModel)

	controllers.Initialize(gw, dreamClient, h.cfg)
	installGateway(gw)

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

// shared gateway instance for the API router, set by the HttpRouter install.
var sharedGateway gateway.Service

func installGateway(gw gateway.Service) {
	sharedGateway = gw
}
