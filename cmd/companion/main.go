package main

import (
	"log"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/entrext/companion/internal/pkg/cache"
	"github.com/entrext/companion/internal/pkg/config"
	"github.com/entrext/companion/internal/pkg/database"
	"github.com/entrext/companion/internal/pkg/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	app := NewApplication(cfg)
	log.Fatal(app.Listen(cfg.Addr()))
}

func NewApplication(cfg config.Config) *fiber.App {
	database.SetupDatabase(cfg)
	cache.SetupCache(cfg)

	// Find the project root relative to the binary location
	basePath := ""
	for _, path := range []string{"./", "../../", "../../../"} {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}
	if basePath == "" {
		panic("Could not find project root directory")
	}

	engine := html.New(basePath+"views", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Use(favicon.New(favicon.Config{
		File:         basePath + "public/assets/img/favicon.svg",
		URL:          "/favicon.svg",
		CacheControl: "public, max-age=604800",
	}))

	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())
	app.Static("/", basePath+"public/assets")

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, cfg)

	return app
}
