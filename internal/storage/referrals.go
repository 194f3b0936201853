package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// ReferralStore is the Postgres implementation of both the partner
// directory and the request workflow surfaces.
type ReferralStore struct {
	db *gorm.DB
}

func NewReferralStore(db *gorm.DB) *ReferralStore {
	return &ReferralStore{db: db}
}

func (s *ReferralStore) GetPartner(ctx context.Context, id uint) (*models.ReferralPartner, error) {
	var p models.ReferralPartner
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ReferralStore) CreatePartner(ctx context.Context, p *models.ReferralPartner) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *ReferralStore) UpdatePartner(ctx context.Context, p *models.ReferralPartner) error {
	return s.db.WithContext(ctx).Save(p).Error
}

// DeletePartner removes the partner and its requests in one transaction.
func (s *ReferralStore) DeletePartner(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("partner_id = ?", id).Delete(&models.ReferralRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ReferralPartner{}, id).Error
	})
}

func (s *ReferralStore) ListActivePartners(ctx context.Context, category string) ([]models.ReferralPartner, error) {
	q := s.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []models.ReferralPartner
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (s *ReferralStore) CreateRequest(ctx context.Context, r *models.ReferralRequest) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *ReferralStore) GetRequest(ctx context.Context, id uint) (*models.ReferralRequest, error) {
	var r models.ReferralRequest
	err := s.db.WithContext(ctx).First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ReferralStore) UpdateRequest(ctx context.Context, r *models.ReferralRequest) error {
	return s.db.WithContext(ctx).Save(r).Error
}

func (s *ReferralStore) ListRequestsBySeeker(ctx context.Context, seekerID uint) ([]models.ReferralRequest, error) {
	var out []models.ReferralRequest
	err := s.db.WithContext(ctx).
		Where("job_seeker_id = ?", seekerID).
		Order("requested_date DESC").Find(&out).Error
	return out, err
}
