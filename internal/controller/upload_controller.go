package controller

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"luxrealty_backend/internal/model"
	"luxrealty_backend/pkg/database"
	"luxrealty_backend/pkg/utils/image"
	"luxrealty_backend/pkg/utils/storage"
	"luxrealty_backend/pkg/utils/validation"
)

const MaxProjectImages = 16

// UploadProjectImage re-encodes an uploaded photo as webp, pushes it to S3
// and appends the URL to the project's ordered image list.
func UploadProjectImage(c *fiber.Ctx) error {
	if !storage.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "File storage not configured",
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Backend not configured",
		})
	}

	var project model.Project
	if err := db.First(&project, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file provided",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var urls []string
	if len(project.Images) > 0 {
		if err := json.Unmarshal(project.Images, &urls); err != nil {
			urls = nil
		}
	}
	if len(urls) >= MaxProjectImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maximum number of images reached",
		})
	}

	buf, contentType, err := image.ProcessImage(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	url, err := storage.UploadProjectImage(c.Context(), project.ID, buf, contentType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload image",
		})
	}

	urls = append(urls, url)
	raw, _ := json.Marshal(urls)
	if err := db.Model(&project).Update("images", datatypes.JSON(raw)).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save image list",
		})
	}

	cacheClient.Invalidate(c.Context(), projectListCacheKey)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":    url,
		"images": urls,
	})
}

// UploadProjectBrochure stores the project PDF and records its URL.
func UploadProjectBrochure(c *fiber.Ctx) error {
	if !storage.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "File storage not configured",
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Backend not configured",
		})
	}

	var project model.Project
	if err := db.First(&project, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	file, err := c.FormFile("brochure")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No brochure file provided",
		})
	}

	if err := validation.ValidateBrochure(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read brochure",
		})
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read brochure",
		})
	}

	url, err := storage.UploadBrochure(c.Context(), project.ID, buf)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload brochure",
		})
	}

	if err := db.Model(&project).Update("brochure_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save brochure URL",
		})
	}

	cacheClient.Invalidate(c.Context(), projectListCacheKey)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"brochure_url": url,
	})
}
