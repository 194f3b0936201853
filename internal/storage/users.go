package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// UserStore is the Postgres implementation of the accounts persistence
// surface. It also serves the profile lookups the other services gate on.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Preload("EmployerProfile").
		Preload("JobseekerProfile").
		First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser persists the user together with whichever role profile hangs
// off it.
func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserStore) EmployerProfileByUser(ctx context.Context, userID uint) (*models.EmployerProfile, error) {
	var p models.EmployerProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *UserStore) UpdateEmployerProfile(ctx context.Context, profile *models.EmployerProfile) error {
	return s.db.WithContext(ctx).Save(profile).Error
}

func (s *UserStore) JobseekerProfileByUser(ctx context.Context, userID uint) (*models.JobseekerProfile, error) {
	var p models.JobseekerProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
