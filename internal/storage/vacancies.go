package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// VacancyStore is the Postgres implementation of the vacancy engine's
// persistence surface.
type VacancyStore struct {
	db *gorm.DB
}

func NewVacancyStore(db *gorm.DB) *VacancyStore {
	return &VacancyStore{db: db}
}

func (s *VacancyStore) GetVacancy(ctx context.Context, id uint) (*models.Vacancy, error) {
	var v models.Vacancy
	err := s.db.WithContext(ctx).First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VacancyStore) CreateVacancy(ctx context.Context, v *models.Vacancy) error {
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *VacancyStore) UpdateVacancy(ctx context.Context, v *models.Vacancy) error {
	return s.db.WithContext(ctx).Save(v).Error
}

// DeleteVacancy removes the vacancy and its applications in one
// transaction. The application delete is explicit rather than relying on the
// database constraint alone.
func (s *VacancyStore) DeleteVacancy(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vacancy_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vacancy{}, id).Error
	})
}

func (s *VacancyStore) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Vacancy{}).
		Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (s *VacancyStore) ListActive(ctx context.Context, f jobs.ListFilters) ([]models.Vacancy, error) {
	q := s.db.WithContext(ctx).Where("is_active = ?", true)
	if f.JobType != "" {
		q = q.Where("job_type = ?", f.JobType)
	}
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+f.Location+"%")
	}

	var out []models.Vacancy
	err := q.Order("posted_date DESC").Find(&out).Error
	return out, err
}

func (s *VacancyStore) ListFeatured(ctx context.Context, limit int) ([]models.Vacancy, error) {
	var out []models.Vacancy
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("posted_date DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (s *VacancyStore) ListRecent(ctx context.Context, limit int) ([]models.Vacancy, error) {
	var out []models.Vacancy
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("posted_date DESC").Limit(limit).Find(&out).Error
	return out, err
}
