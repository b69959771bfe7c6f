// Package dashboard derives the CRM overview counters from the client and
// appointment collections. The collections are small and refetched on every
// load, so this is a pure computation with no caching.
package dashboard

import (
	"time"

	"luxrealty_backend/internal/lead"
	"luxrealty_backend/internal/model"
)

type Stats struct {
	TotalClients         int `json:"total_clients"`
	NewClients           int `json:"new_clients"`
	TotalAppointments    int `json:"total_appointments"`
	UpcomingAppointments int `json:"upcoming_appointments"`
}

// Aggregate computes the dashboard counters. An appointment counts as
// upcoming when its date is today or later.
func Aggregate(clients []model.Client, appointments []model.Appointment, now time.Time) Stats {
	stats := Stats{
		TotalClients:      len(clients),
		TotalAppointments: len(appointments),
	}

	for _, c := range clients {
		if c.Status == string(lead.StatusNew) {
			stats.NewClients++
		}
	}

	today := now.Format("2006-01-02")
	for _, a := range appointments {
		if a.Date >= today {
			stats.UpcomingAppointments++
		}
	}

	return stats
}

// RecentClients returns the n most recent clients assuming the input is
// already ordered newest first, as the store returns it.
func RecentClients(clients []model.Client, n int) []model.Client {
	if len(clients) < n {
		n = len(clients)
	}
	return clients[:n]
}
