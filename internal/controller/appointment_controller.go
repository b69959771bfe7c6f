package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/internal/model"
	"luxrealty_backend/internal/store"
)

// ListAppointments serves the CRM calendar, ordered by date then time.
func ListAppointments(c *fiber.Ctx) error {
	appointments, err := dataStore.ListAppointments(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch appointments",
		})
	}

	return c.JSON(appointments)
}

type AppointmentInput struct {
	ClientID uint   `json:"client_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// CreateAppointment schedules a meeting with a lead.
func CreateAppointment(c *fiber.Ctx) error {
	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	appt := model.Appointment{
		ClientID: input.ClientID,
		Date:     input.Date,
		Time:     input.Time,
		Type:     model.AppointmentType(input.Type),
		Location: input.Location,
		Notes:    input.Notes,
	}

	if err := dataStore.CreateAppointment(c.Context(), &appt); err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Missing or invalid fields",
				"fields": vErr.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create appointment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(appt)
}
