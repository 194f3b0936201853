package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// AdvisoryStore is the Postgres implementation of the advisory content
// persistence surface.
type AdvisoryStore struct {
	db *gorm.DB
}

func NewAdvisoryStore(db *gorm.DB) *AdvisoryStore {
	return &AdvisoryStore{db: db}
}

func (s *AdvisoryStore) ListCategories(ctx context.Context) ([]models.AdvisoryCategory, error) {
	var out []models.AdvisoryCategory
	err := s.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (s *AdvisoryStore) GetCategory(ctx context.Context, id uint) (*models.AdvisoryCategory, error) {
	var c models.AdvisoryCategory
	err := s.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *AdvisoryStore) CreateCategory(ctx context.Context, cat *models.AdvisoryCategory) error {
	return s.db.WithContext(ctx).Create(cat).Error
}

func (s *AdvisoryStore) UpdateCategory(ctx context.Context, cat *models.AdvisoryCategory) error {
	return s.db.WithContext(ctx).Save(cat).Error
}

// DeleteCategory removes the category and its articles in one transaction.
func (s *AdvisoryStore) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.AdvisoryArticle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.AdvisoryCategory{}, id).Error
	})
}

func (s *AdvisoryStore) GetArticle(ctx context.Context, id uint) (*models.AdvisoryArticle, error) {
	var a models.AdvisoryArticle
	err := s.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdvisoryStore) CreateArticle(ctx context.Context, art *models.AdvisoryArticle) error {
	return s.db.WithContext(ctx).Create(art).Error
}

func (s *AdvisoryStore) UpdateArticle(ctx context.Context, art *models.AdvisoryArticle) error {
	return s.db.WithContext(ctx).Save(art).Error
}

func (s *AdvisoryStore) DeleteArticle(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.AdvisoryArticle{}, id).Error
}

func (s *AdvisoryStore) ListPublished(ctx context.Context, limit int) ([]models.AdvisoryArticle, error) {
	q := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []models.AdvisoryArticle
	err := q.Find(&out).Error
	return out, err
}

func (s *AdvisoryStore) ListPublishedByCategory(ctx context.Context, categoryID uint, limit int) ([]models.AdvisoryArticle, error) {
	q := s.db.WithContext(ctx).
		Where("is_published = ? AND category_id = ?", true, categoryID).
		Order("published_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []models.AdvisoryArticle
	err := q.Find(&out).Error
	return out, err
}
