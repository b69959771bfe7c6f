package fixtures

import (
	"encoding/json"
	"testing"
)

func TestProjects_Deterministic(t *testing.T) {
	projects := Projects()
	if len(projects) != 4 {
		t.Fatalf("expected 4 demo projects, got %d", len(projects))
	}

	wantSlugs := []string{"david-residence", "tel-aviv-riviera", "haifa-bay-tower", "ashdod-luxe-garden"}
	for i, slug := range wantSlugs {
		if projects[i].Slug != slug {
			t.Fatalf("project %d: expected slug %q, got %q", i, slug, projects[i].Slug)
		}
		var images []string
		if err := json.Unmarshal(projects[i].Images, &images); err != nil {
			t.Fatalf("project %s: images not a JSON array: %v", slug, err)
		}
		if len(images) != 3 {
			t.Fatalf("project %s: expected 3 images, got %d", slug, len(images))
		}
	}
}

func TestClients_NewestFirst(t *testing.T) {
	clients := Clients()
	if len(clients) != 8 {
		t.Fatalf("expected 8 demo clients, got %d", len(clients))
	}
	for i := 1; i < len(clients); i++ {
		if clients[i].CreatedAt.After(clients[i-1].CreatedAt) {
			t.Fatalf("clients not ordered newest first at index %d", i)
		}
	}
}

func TestAppointments_ValidTypes(t *testing.T) {
	for _, a := range Appointments() {
		switch a.Type {
		case "phone", "in_person", "zoom":
		default:
			t.Fatalf("appointment %d has invalid type %q", a.ID, a.Type)
		}
	}
}
