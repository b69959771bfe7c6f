package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"luxrealty_backend/internal/middleware"
	"luxrealty_backend/internal/model"
	"luxrealty_backend/pkg/database"
	"luxrealty_backend/pkg/utils/jwt"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login signs a CRM operator in and sets the session cookie.
func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Backend not configured",
		})
	}

	var user model.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, string(user.Role))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.GetPublicProfile(),
	})
}

// Logout clears the session cookie.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Signed out",
	})
}

// GetMe returns the identity the CRM header displays.
func GetMe(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	if db := database.GetDB(); db != nil {
		var user model.User
		if err := db.First(&user, claims.UserID).Error; err == nil {
			return c.JSON(fiber.Map{"user": user.GetPublicProfile()})
		}
	}

	// Session is valid even if the user row is unreachable right now.
	user := model.User{Email: claims.Email, FullName: claims.FullName, Role: model.Role(claims.Role)}
	user.ID = claims.UserID
	return c.JSON(fiber.Map{"user": user.GetPublicProfile()})
}
