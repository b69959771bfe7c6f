package dashboard

import (
	"testing"
	"time"

	"luxrealty_backend/internal/model"
)

func TestAggregate_NewClientCount(t *testing.T) {
	clients := []model.Client{
		{Status: "new"},
		{Status: "sold"},
		{Status: "new"},
	}

	stats := Aggregate(clients, nil, time.Now())
	if stats.TotalClients != 3 {
		t.Fatalf("TotalClients = %d, want 3", stats.TotalClients)
	}
	if stats.NewClients != 2 {
		t.Fatalf("NewClients = %d, want 2", stats.NewClients)
	}
}

func TestAggregate_EmptyCollections(t *testing.T) {
	stats := Aggregate(nil, nil, time.Now())
	if stats.TotalClients != 0 || stats.NewClients != 0 || stats.TotalAppointments != 0 || stats.UpcomingAppointments != 0 {
		t.Fatalf("expected all zero, got %+v", stats)
	}
}

func TestAggregate_UpcomingAppointments(t *testing.T) {
	now := time.Date(2024, 8, 11, 15, 0, 0, 0, time.UTC)
	appointments := []model.Appointment{
		{Date: "2024-08-10"}, // past
		{Date: "2024-08-11"}, // today counts as upcoming
		{Date: "2024-08-12"},
		{Date: "2024-09-01"},
	}

	stats := Aggregate(nil, appointments, now)
	if stats.TotalAppointments != 4 {
		t.Fatalf("TotalAppointments = %d, want 4", stats.TotalAppointments)
	}
	if stats.UpcomingAppointments != 3 {
		t.Fatalf("UpcomingAppointments = %d, want 3", stats.UpcomingAppointments)
	}
}

func TestRecentClients(t *testing.T) {
	clients := []model.Client{
		{FullName: "a"}, {FullName: "b"}, {FullName: "c"},
	}

	if got := RecentClients(clients, 5); len(got) != 3 {
		t.Fatalf("expected all 3, got %d", len(got))
	}
	got := RecentClients(clients, 2)
	if len(got) != 2 || got[0].FullName != "a" || got[1].FullName != "b" {
		t.Fatalf("expected first two in order, got %v", got)
	}
}
