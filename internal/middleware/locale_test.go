package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/pkg/i18n"
)

func localeApp() *fiber.App {
	app := fiber.New()
	app.Get("/lang", Locale(), func(c *fiber.Ctx) error {
		lang := RequestLanguage(c)
		return c.JSON(fiber.Map{"language": lang, "rtl": i18n.IsRTL(lang)})
	})
	return app
}

func resolve(t *testing.T, build func(*http.Request)) (string, bool) {
	t.Helper()
	app := localeApp()

	req := httptest.NewRequest(http.MethodGet, "/lang", nil)
	build(req)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Language string `json:"language"`
		RTL      bool   `json:"rtl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return body.Language, body.RTL
}

func TestLocale_Default(t *testing.T) {
	lang, rtl := resolve(t, func(*http.Request) {})
	if lang != "en" || rtl {
		t.Fatalf("expected default en/ltr, got %s rtl=%v", lang, rtl)
	}
}

func TestLocale_CookieWins(t *testing.T) {
	lang, rtl := resolve(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: LanguageCookie, Value: "he"})
		req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	})
	if lang != "he" || !rtl {
		t.Fatalf("expected he/rtl from cookie, got %s rtl=%v", lang, rtl)
	}
}

func TestLocale_AcceptLanguageHeader(t *testing.T) {
	lang, _ := resolve(t, func(req *http.Request) {
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9,ru;q=0.8")
	})
	if lang != "ru" {
		t.Fatalf("expected ru from Accept-Language, got %s", lang)
	}
}

func TestLocale_UnrecognizedCookieIgnored(t *testing.T) {
	lang, _ := resolve(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: LanguageCookie, Value: "xx"})
	})
	if lang != "en" {
		t.Fatalf("expected fallback en, got %s", lang)
	}
}
