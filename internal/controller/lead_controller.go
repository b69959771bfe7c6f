package controller

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/internal/lead"
	"luxrealty_backend/internal/store"
)

// leadFilterFromQuery reads the three list predicates from the query string.
func leadFilterFromQuery(c *fiber.Ctx) lead.Filter {
	return lead.Filter{
		Search:   c.Query("search"),
		Status:   c.Query("status", lead.FilterAll),
		Language: c.Query("language", lead.FilterAll),
	}
}

// GetMyLeads lists clients for the CRM, filtered in memory so the list, its
// count and the export all share one code path.
func GetMyLeads(c *fiber.Ctx) error {
	clients, err := dataStore.ListClients(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch leads",
		})
	}

	filtered := leadFilterFromQuery(c).Apply(clients)

	return c.JSON(fiber.Map{
		"clients": filtered,
		"total":   len(clients),
		"shown":   len(filtered),
	})
}

// UpdateLeadStatus moves a lead to another pipeline stage. Any valid status
// may replace any other; only set membership is checked.
func UpdateLeadStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lead ID",
		})
	}

	input := struct {
		Status string `json:"status"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	status, ok := lead.ParseStatus(input.Status)
	if !ok {
		valid := make([]string, 0, 5)
		for _, s := range lead.Pipeline() {
			valid = append(valid, string(s))
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          "Invalid status value",
			"valid_statuses": valid,
		})
	}

	client, err := dataStore.UpdateClientStatus(c.Context(), uint(id), status)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lead not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update lead status",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Lead status updated successfully",
		"client":  client,
	})
}

// ExportLeadsCSV streams the currently filtered view as a CSV download named
// with today's date.
func ExportLeadsCSV(c *fiber.Ctx) error {
	clients, err := dataStore.ListClients(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch leads",
		})
	}

	filtered := leadFilterFromQuery(c).Apply(clients)

	var buf bytes.Buffer
	if err := lead.ExportCSV(&buf, filtered); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not build export",
		})
	}

	filename := lead.ExportFilename(time.Now())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
