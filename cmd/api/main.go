package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"luxrealty_backend/internal/controller"
	"luxrealty_backend/internal/middleware"
	"luxrealty_backend/internal/model"
	"luxrealty_backend/internal/store"
	"luxrealty_backend/pkg/cache"
	"luxrealty_backend/pkg/config"
	"luxrealty_backend/pkg/cron"
	"luxrealty_backend/pkg/database"
	"luxrealty_backend/pkg/email"
	"luxrealty_backend/pkg/seed"
	"luxrealty_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.Locale())

	// Public site
	api.Get("/projects", controller.ListProjects)
	api.Get("/projects/:slug", controller.GetProjectBySlug)
	api.Post("/clients", controller.CreateClient)

	// Language & translations
	api.Get("/language", controller.GetLanguage)
	api.Put("/language", controller.SetLanguage)
	api.Get("/i18n/translations", controller.GetTranslations)

	// CRM auth
	crm := api.Group("/crm")
	crm.Post("/login", controller.Login)

	// CRM protected routes
	protected := crm.Group("/", middleware.AuthMiddleware())
	protected.Post("/logout", controller.Logout)
	protected.Get("/me", controller.GetMe)

	protected.Get("/dashboard/stats", controller.GetDashboardStats)

	leads := protected.Group("/clients")
	leads.Get("/", controller.GetMyLeads)
	leads.Get("/export.csv", controller.ExportLeadsCSV)
	leads.Put("/:id/status", controller.UpdateLeadStatus)

	appointments := protected.Group("/appointments")
	appointments.Get("/", controller.ListAppointments)
	appointments.Post("/", controller.CreateAppointment)

	settings := protected.Group("/settings")
	settings.Get("/profile", controller.GetProfile)
	settings.Put("/profile", controller.UpdateProfile)

	// Catalogue management, admin only
	projects := protected.Group("/projects", middleware.RequireAdmin())
	projects.Post("/", controller.CreateProject)
	projects.Put("/:id", controller.UpdateProject)
	projects.Post("/:id/images", controller.UploadProjectImage)
	projects.Post("/:id/brochure", controller.UploadProjectBrochure)

	// Unknown CRM paths land on the dashboard, everything else on the
	// public root (mirrors the SPA redirect rules).
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "luxrealty-api", "status": "ok"})
	})

	app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		if strings.HasPrefix(path, "/api/crm/") {
			return c.Redirect("/api/crm/dashboard/stats", fiber.StatusTemporaryRedirect)
		}
		if strings.HasPrefix(path, "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Not found",
			})
		}
		return c.Redirect("/", fiber.StatusTemporaryRedirect)
	})
}

func main() {
	cfg := config.Load()

	if cfg.Email.ResendAPIKey != "" {
		if err := email.InitEmailService(cfg.Email.ResendAPIKey); err != nil {
			log.Printf("Could not initialize email service: %v", err)
		}
	} else {
		log.Println("RESEND_API_KEY not set, lead notifications disabled")
	}

	if err := storage.InitStorage(cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		log.Printf("Could not initialize file storage: %v", err)
	}

	var dataStore store.Store = store.NotConfiguredStore{}
	if cfg.Database.URL == "" {
		log.Println("DATABASE_URL not set, serving fixture data")
	} else if err := database.InitDB(cfg.Database.URL); err != nil {
		log.Printf("Could not connect to database, serving fixture data: %v", err)
	} else {
		err := database.MigrateDatabase(
			&model.User{},
			&model.Project{},
			&model.Unit{},
			&model.Client{},
			&model.Appointment{},
		)
		if err != nil {
			log.Printf("Migration warning: %v", err)
		}

		seed.SeedProjects(database.GetDB())
		seed.SeedAdminUser(database.GetDB())

		dataStore = store.NewGormStore(database.GetDB())
		cron.InitLeadDigestCron(cfg.Email.DigestTo)
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password)
	controller.Init(store.NewFallbackStore(dataStore), cacheClient)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
