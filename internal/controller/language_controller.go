package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/internal/middleware"
	"luxrealty_backend/pkg/i18n"
)

// GetLanguage reports the resolved language and text direction.
func GetLanguage(c *fiber.Ctx) error {
	lang := middleware.RequestLanguage(c)
	return c.JSON(fiber.Map{
		"language": lang,
		"rtl":      i18n.IsRTL(lang),
	})
}

// SetLanguage persists the visitor's choice in the language cookie.
// Unrecognized codes are rejected, never stored.
func SetLanguage(c *fiber.Ctx) error {
	input := struct {
		Language string `json:"language"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	lang, ok := i18n.ParseLanguage(input.Language)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported language",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:    middleware.LanguageCookie,
		Value:   string(lang),
		Expires: time.Now().AddDate(1, 0, 0),
	})

	return c.JSON(fiber.Map{
		"language": lang,
		"rtl":      i18n.IsRTL(lang),
	})
}

// GetTranslations serves the full table for the requested (or resolved)
// language, with English filling missing keys.
func GetTranslations(c *fiber.Ctx) error {
	lang := middleware.RequestLanguage(c)
	if q := c.Query("lang"); q != "" {
		if parsed, ok := i18n.ParseLanguage(q); ok {
			lang = parsed
		}
	}

	return c.JSON(fiber.Map{
		"language":     lang,
		"rtl":          i18n.IsRTL(lang),
		"translations": i18n.Table(lang),
	})
}
