package controller

import (
	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/internal/model"
	"luxrealty_backend/pkg/database"
	"luxrealty_backend/pkg/utils/jwt"
)

type ProfileUpdateInput struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Title       string `json:"title"`
}

func GetProfile(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Backend not configured",
		})
	}

	var user model.User
	if err := db.First(&user, claims.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(user.GetPublicProfile())
}

func UpdateProfile(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	input := new(ProfileUpdateInput)
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
	if err := db.First(&user, claims.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	updates := map[string]interface{}{
		"full_name":    input.FullName,
		"phone_number": input.PhoneNumber,
		"title":        input.Title,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update profile",
		})
	}

	db.First(&user, claims.UserID)
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user.GetPublicProfile(),
	})
}
