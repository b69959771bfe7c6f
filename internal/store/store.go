// Package store is the data gateway for the three record collections. The
// live implementation runs on GORM; FallbackStore decorates it so read
// failures degrade to the fixture dataset instead of surfacing errors.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"luxrealty_backend/internal/lead"
	"luxrealty_backend/internal/model"
	"luxrealty_backend/pkg/i18n"
)

var (
	// ErrNotFound no row matched the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrNotConfigured the backend has no database credentials.
	ErrNotConfigured = errors.New("database not configured")
)

// ValidationError a submission was rejected before touching the database.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// ClientInput contact form payload. Whatever status the caller sends is
// ignored: a created lead always starts at "new".
type ClientInput struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Language        string `json:"language"`
	ProjectSelected string `json:"project_selected"`
	Message         string `json:"message"`
}

// Validate rejects empty required fields and unsupported language codes.
func (in *ClientInput) Validate() error {
	var fields []string
	if strings.TrimSpace(in.FullName) == "" {
		fields = append(fields, "full_name")
	}
	if strings.TrimSpace(in.Email) == "" {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(in.Phone) == "" {
		fields = append(fields, "phone")
	}
	if _, ok := i18n.ParseLanguage(in.Language); !ok {
		fields = append(fields, "language")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Store is the CRUD facade over projects, clients and appointments.
type Store interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error)

	ListClients(ctx context.Context) ([]model.Client, error)
	CreateClient(ctx context.Context, in ClientInput) (*model.Client, error)
	UpdateClientStatus(ctx context.Context, id uint, status lead.Status) (*model.Client, error)

	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	CreateAppointment(ctx context.Context, appt *model.Appointment) error
}
