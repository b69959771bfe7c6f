package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/pkg/i18n"
)

// LanguageCookie persists the visitor's language choice between sessions.
const LanguageCookie = "lang"

// Locale resolves the request language: cookie first, then Accept-Language,
// then the default. Unrecognized codes are ignored, never stored.
func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := i18n.DefaultLanguage

		if cookie := c.Cookies(LanguageCookie); cookie != "" {
			if parsed, ok := i18n.ParseLanguage(cookie); ok {
				lang = parsed
			}
		} else if header := c.Get("Accept-Language"); header != "" {
			for _, part := range strings.Split(header, ",") {
				code := strings.SplitN(strings.TrimSpace(part), ";", 2)[0]
				if parsed, ok := i18n.ParseLanguage(code); ok {
					lang = parsed
					break
				}
			}
		}

		c.Locals("lang", lang)
		return c.Next()
	}
}

// RequestLanguage reads the language resolved by Locale.
func RequestLanguage(c *fiber.Ctx) i18n.Language {
	if lang, ok := c.Locals("lang").(i18n.Language); ok {
		return lang
	}
	return i18n.DefaultLanguage
}
