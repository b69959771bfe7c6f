package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/internal/dashboard"
)

// GetDashboardStats recomputes the overview counters from fresh reads on
// every load. Both reads fall back to fixtures independently, so a partial
// outage still renders a populated dashboard.
func GetDashboardStats(c *fiber.Ctx) error {
	clients, err := dataStore.ListClients(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch clients",
		})
	}

	appointments, err := dataStore.ListAppointments(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch appointments",
		})
	}

	stats := dashboard.Aggregate(clients, appointments, time.Now())

	return c.JSON(fiber.Map{
		"stats":          stats,
		"recent_clients": dashboard.RecentClients(clients, 5),
	})
}
