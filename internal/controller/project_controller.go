package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/internal/model"
	"luxrealty_backend/internal/store"
	"luxrealty_backend/pkg/database"
)

const (
	projectListCacheKey = "projects:list"
	projectCacheTTL     = 5 * time.Minute
)

// ListProjects serves the public catalogue, newest first. Results are cached
// briefly in Redis when it is configured; store failures degrade to fixtures
// inside the fallback decorator, so this endpoint never errors.
func ListProjects(c *fiber.Ctx) error {
	var projects []model.Project
	if cacheClient.GetJSON(c.Context(), projectListCacheKey, &projects) {
		return c.JSON(projects)
	}

	projects, err := dataStore.ListProjects(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch projects",
		})
	}

	cacheClient.SetJSON(c.Context(), projectListCacheKey, projects, projectCacheTTL)
	return c.JSON(projects)
}

// GetProjectBySlug serves the public project detail page.
func GetProjectBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	project, err := dataStore.GetProjectBySlug(c.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch project",
		})
	}

	return c.JSON(project)
}

type ProjectInput struct {
	Name             string `json:"project_name"`
	City             string `json:"city"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	MapEmbedURL      string `json:"map_embed_url"`
}

// CreateProject admin-only catalogue management.
func CreateProject(c *fiber.Ctx) error {
	input := new(ProjectInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" || input.City == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Missing required fields",
			"fields": []string{"project_name", "city"},
		})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Backend not configured",
		})
	}

	project := model.Project{
		Name:             input.Name,
		City:             input.City,
		Slug:             input.Slug,
		ShortDescription: input.ShortDescription,
		LongDescription:  input.LongDescription,
		MapEmbedURL:      input.MapEmbedURL,
	}
	if err := db.Create(&project).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create project",
		})
	}

	cacheClient.Invalidate(c.Context(), projectListCacheKey)
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject admin-only catalogue management.
func UpdateProject(c *fiber.Ctx) error {
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

	input := new(ProjectInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	updates := map[string]interface{}{
		"name":              input.Name,
		"city":              input.City,
		"short_description": input.ShortDescription,
		"long_description":  input.LongDescription,
		"map_embed_url":     input.MapEmbedURL,
	}
	if input.Slug != "" {
		updates["slug"] = input.Slug
	}

	if err := db.Model(&project).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update project",
		})
	}

	cacheClient.Invalidate(c.Context(), projectListCacheKey)
	db.Preload("Units").First(&project, project.ID)
	return c.JSON(project)
}
