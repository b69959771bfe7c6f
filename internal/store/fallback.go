package store

import (
	"context"
	"errors"
	"log"

	"luxrealty_backend/internal/lead"
	"luxrealty_backend/internal/model"
	"luxrealty_backend/pkg/fixtures"
)

// FallbackStore decorates a Store so every read that fails, for whatever
// reason, answers with the fixture dataset for that one call. Each call site
// decides independently, so a partial outage shows partial live data next to
// partial demo data. Writes are never masked.
type FallbackStore struct {
	next Store
}

func NewFallbackStore(next Store) *FallbackStore {
	return &FallbackStore{next: next}
}

func (s *FallbackStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.next.ListProjects(ctx)
	if err != nil {
		log.Printf("projects read failed, serving fixtures: %v", err)
		return fixtures.Projects(), nil
	}
	return projects, nil
}

func (s *FallbackStore) GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error) {
	project, err := s.next.GetProjectBySlug(ctx, slug)
	if err == nil {
		return project, nil
	}
	if errors.Is(err, ErrNotFound) {
		// The backend answered; the slug genuinely does not exist.
		return nil, ErrNotFound
	}

	log.Printf("project read failed, serving fixtures: %v", err)
	for _, p := range fixtures.Projects() {
		if p.Slug == slug {
			fixture := p
			return &fixture, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FallbackStore) ListClients(ctx context.Context) ([]model.Client, error) {
	clients, err := s.next.ListClients(ctx)
	if err != nil {
		log.Printf("clients read failed, serving fixtures: %v", err)
		return fixtures.Clients(), nil
	}
	return clients, nil
}

// CreateClient passes through: the contact form is the one path where a
// backend failure must reach the visitor.
func (s *FallbackStore) CreateClient(ctx context.Context, in ClientInput) (*model.Client, error) {
	return s.next.CreateClient(ctx, in)
}

func (s *FallbackStore) UpdateClientStatus(ctx context.Context, id uint, status lead.Status) (*model.Client, error) {
	return s.next.UpdateClientStatus(ctx, id, status)
}

func (s *FallbackStore) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	appointments, err := s.next.ListAppointments(ctx)
	if err != nil {
		log.Printf("appointments read failed, serving fixtures: %v", err)
		return fixtures.Appointments(), nil
	}
	return appointments, nil
}

func (s *FallbackStore) CreateAppointment(ctx context.Context, appt *model.Appointment) error {
	return s.next.CreateAppointment(ctx, appt)
}

// NotConfiguredStore stands in when DATABASE_URL is absent: every call fails
// with ErrNotConfigured, which the fallback decorator converts to fixtures on
// the read paths.
type NotConfiguredStore struct{}

func (NotConfiguredStore) ListProjects(context.Context) ([]model.Project, error) {
	return nil, ErrNotConfigured
}

func (NotConfiguredStore) GetProjectBySlug(context.Context, string) (*model.Project, error) {
	return nil, ErrNotConfigured
}

func (NotConfiguredStore) ListClients(context.Context) ([]model.Client, error) {
	return nil, ErrNotConfigured
}

func (NotConfiguredStore) CreateClient(_ context.Context, in ClientInput) (*model.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return nil, ErrNotConfigured
}

func (NotConfiguredStore) UpdateClientStatus(context.Context, uint, lead.Status) (*model.Client, error) {
	return nil, ErrNotConfigured
}

func (NotConfiguredStore) ListAppointments(context.Context) ([]model.Appointment, error) {
	return nil, ErrNotConfigured
}

func (NotConfiguredStore) CreateAppointment(context.Context, *model.Appointment) error {
	return ErrNotConfigured
}
