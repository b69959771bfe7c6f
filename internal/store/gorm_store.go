package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"luxrealty_backend/internal/lead"
	"luxrealty_backend/internal/model"
	"luxrealty_backend/pkg/i18n"
)

// GormStore live database gateway.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := s.db.WithContext(ctx).
		Preload("Units").
		Order("created_at desc").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *GormStore) GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var project model.Project
	err := s.db.WithContext(ctx).
		Preload("Units").
		Where("slug = ?", slug).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *GormStore) ListClients(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *GormStore) CreateClient(ctx context.Context, in ClientInput) (*model.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	language, _ := i18n.ParseLanguage(in.Language)
	client := model.Client{
		FullName:        strings.TrimSpace(in.FullName),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		Language:        string(language),
		ProjectSelected: in.ProjectSelected,
		Message:         in.Message,
		Status:          string(lead.StatusNew),
	}

	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *GormStore) UpdateClientStatus(ctx context.Context, id uint, status lead.Status) (*model.Client, error) {
	if !status.Valid() {
		return nil, &ValidationError{Fields: []string{"status"}}
	}

	var client model.Client
	err := s.db.WithContext(ctx).First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&client).Update("status", string(status)).Error; err != nil {
		return nil, err
	}
	client.Status = string(status)
	return &client, nil
}

func (s *GormStore) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	var appointments []model.Appointment
	err := s.db.WithContext(ctx).
		Preload("Client").
		Order("date asc, time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *GormStore) CreateAppointment(ctx context.Context, appt *model.Appointment) error {
	switch appt.Type {
	case model.AppointmentTypePhone, model.AppointmentTypeInPerson, model.AppointmentTypeZoom:
	default:
		return &ValidationError{Fields: []string{"type"}}
	}
	if appt.Date == "" || appt.Time == "" {
		return &ValidationError{Fields: []string{"date", "time"}}
	}
	return s.db.WithContext(ctx).Create(appt).Error
}
