package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// ApplicationStore is the Postgres implementation of the application
// tracker's persistence surface.
type ApplicationStore struct {
	db *gorm.DB
}

func NewApplicationStore(db *gorm.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

func (s *ApplicationStore) CreateApplication(ctx context.Context, app *models.Application) error {
	return s.db.WithContext(ctx).Create(app).Error
}

func (s *ApplicationStore) GetApplication(ctx context.Context, id uint) (*models.Application, error) {
	var a models.Application
	err := s.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *ApplicationStore) UpdateApplication(ctx context.Context, app *models.Application) error {
	return s.db.WithContext(ctx).Save(app).Error
}

func (s *ApplicationStore) ListBySeeker(ctx context.Context, seekerID uint) ([]models.Application, error) {
	var out []models.Application
	err := s.db.WithContext(ctx).
		Where("job_seeker_id = ?", seekerID).
		Order("applied_date DESC").Find(&out).Error
	return out, err
}

func (s *ApplicationStore) ListByVacancy(ctx context.Context, vacancyID uint) ([]models.Application, error) {
	var out []models.Application
	err := s.db.WithContext(ctx).
		Where("vacancy_id = ?", vacancyID).
		Order("applied_date DESC").Find(&out).Error
	return out, err
}
