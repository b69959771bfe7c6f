package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/internal/middleware"
	"luxrealty_backend/internal/model"
	"luxrealty_backend/internal/store"
	"luxrealty_backend/pkg/database"
	"luxrealty_backend/pkg/email"
	"luxrealty_backend/pkg/i18n"
)

// CreateClient handles the public contact form. Whatever status the caller
// sends is discarded: every new lead starts at "new". This is the one path
// where a backend failure is shown to the visitor instead of being masked.
func CreateClient(c *fiber.Ctx) error {
	input := new(store.ClientInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	client, err := dataStore.CreateClient(c.Context(), *input)
	if err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Missing required fields",
				"fields": vErr.Fields,
			})
		}

		lang := middleware.RequestLanguage(c)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": i18n.Translate("form_error", lang),
		})
	}

	notifyOperators(client)

	lang := middleware.RequestLanguage(c)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": i18n.Translate("form_success", lang),
		"client":  client,
	})
}

func notifyOperators(client *model.Client) {
	if email.GlobalEmailService == nil {
		return
	}
	db := database.GetDB()
	if db == nil {
		return
	}

	projectName := client.ProjectSelected
	var project model.Project
	if err := db.Where("slug = ?", client.ProjectSelected).First(&project).Error; err == nil {
		projectName = project.Name
	}

	var admins []model.User
	db.Where("role = ?", model.RoleAdmin).Find(&admins)
	for _, admin := range admins {
		err := email.GlobalEmailService.SendLeadNotificationEmail(admin.Email, email.LeadNotificationData{
			ProjectName: projectName,
			LeadName:    client.FullName,
			LeadEmail:   client.Email,
			LeadPhone:   client.Phone,
			LeadLang:    client.Language,
			LeadMessage: client.Message,
		})
		if err != nil {
			log.Printf("Could not send lead notification email: %v", err)
		}
	}
}
