// Package jobs contains the vacancy lifecycle engine and the public
// listing/filter service. It is transport-agnostic: handlers call into it,
// and it talks to storage through the store interfaces below.
package jobs

import (
	"context"
	"io"
	"time"

	"github.com/Elliot-87/YOUTHCENTRE/internal/logging"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

// VacancyStore is the persistence surface the engine needs. Lookups return
// (nil, nil) when the entity is absent; the engine maps that to NotFound.
type VacancyStore interface {
	GetVacancy(ctx context.Context, id uint) (*models.Vacancy, error)
	CreateVacancy(ctx context.Context, v *models.Vacancy) error
	UpdateVacancy(ctx context.Context, v *models.Vacancy) error
	// DeleteVacancy removes the vacancy and cascades removal of its
	// applications.
	DeleteVacancy(ctx context.Context, id uint) error

	CountActive(ctx context.Context) (int64, error)
	ListActive(ctx context.Context, f ListFilters) ([]models.Vacancy, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Vacancy, error)
	ListRecent(ctx context.Context, limit int) ([]models.Vacancy, error)
}

// ProfileStore resolves the employer profile backing the approval gate.
type ProfileStore interface {
	EmployerProfileByUser(ctx context.Context, userID uint) (*models.EmployerProfile, error)
}

// AttachmentStore persists uploaded attachment payloads and yields the
// stored path.
type AttachmentStore interface {
	Save(ctx context.Context, filename string, size int64, r io.Reader) (string, error)
	Remove(path string) error
}

// AttachmentUpload carries an incoming attachment into the engine.
type AttachmentUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// Service is the vacancy lifecycle engine.
type Service struct {
	vacancies VacancyStore
	profiles  ProfileStore
	files     AttachmentStore
	cache     *utils.RedisClient
	logger    logging.Logger
}

// NewService returns a configured Service. cache may be nil, in which case
// the home section is recomputed on every request.
func NewService(vacancies VacancyStore, profiles ProfileStore, files AttachmentStore, cache *utils.RedisClient) *Service {
	return &Service{
		vacancies: vacancies,
		profiles:  profiles,
		files:     files,
		cache:     cache,
		logger:    logging.GetGlobalLogger(),
	}
}

// Create persists a new vacancy for employerID. The caller must own an
// approved employer profile; the check happens here, at the engine
// boundary, not in the HTTP layer.
func (s *Service) Create(ctx context.Context, employerID uint, req models.VacancyRequest, att *AttachmentUpload) (*models.Vacancy, error) {
	profile, err := s.profiles.EmployerProfileByUser(ctx, employerID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load employer profile")
	}
	if profile == nil {
		return nil, utils.NewPermissionDeniedError("you must be an employer to post jobs")
	}
	if !profile.Approved {
		return nil, utils.NewPermissionDeniedError("your employer account is not approved yet")
	}

	v := &models.Vacancy{
		EmployerID: employerID,
		PostedDate: time.Now(),
		IsActive:   true,
		Currency:   utils.GetStringOrDefault(req.Currency, models.CurrencyZAR),
		JobType:    utils.GetStringOrDefault(req.JobType, models.JobTypeFullTime),
	}
	applyRequest(v, req)

	if req.IsUploadOnly && att == nil && v.Attachment == "" {
		return nil, utils.NewValidationError("an upload-only posting requires an attachment")
	}

	if att != nil {
		path, err := s.storeAttachment(ctx, att)
		if err != nil {
			return nil, err
		}
		v.Attachment = path
	}

	if err := s.vacancies.CreateVacancy(ctx, v); err != nil {
		return nil, utils.NewInternalServerError("failed to create vacancy")
	}

	s.invalidateHomeSection(ctx)
	s.logger.Info("Vacancy created", map[string]interface{}{
		"vacancy_id":  v.ID,
		"employer_id": employerID,
		"upload_only": v.IsUploadOnly,
	})
	return v, nil
}

// Edit applies field changes to an existing vacancy. Only the owning
// employer may edit; PostedDate is never touched.
func (s *Service) Edit(ctx context.Context, requesterID, vacancyID uint, req models.VacancyRequest, att *AttachmentUpload) (*models.Vacancy, error) {
	v, err := s.loadOwned(ctx, requesterID, vacancyID, "edit")
	if err != nil {
		return nil, err
	}

	if req.Currency != "" {
		v.Currency = req.Currency
	}
	if req.JobType != "" {
		v.JobType = req.JobType
	}
	applyRequest(v, req)

	if att != nil {
		path, err := s.storeAttachment(ctx, att)
		if err != nil {
			return nil, err
		}
		if v.Attachment != "" && v.Attachment != path {
			s.removeAttachment(v.Attachment)
		}
		v.Attachment = path
	}

	if req.IsUploadOnly && v.Attachment == "" {
		return nil, utils.NewValidationError("an upload-only posting requires an attachment")
	}

	if err := s.vacancies.UpdateVacancy(ctx, v); err != nil {
		return nil, utils.NewInternalServerError("failed to update vacancy")
	}

	s.invalidateHomeSection(ctx)
	return v, nil
}

// Delete removes a vacancy and, through the store cascade, its
// applications. Only the owning employer may delete.
func (s *Service) Delete(ctx context.Context, requesterID, vacancyID uint) error {
	v, err := s.loadOwned(ctx, requesterID, vacancyID, "delete")
	if err != nil {
		return err
	}

	if err := s.vacancies.DeleteVacancy(ctx, v.ID); err != nil {
		return utils.NewInternalServerError("failed to delete vacancy")
	}

	if v.Attachment != "" {
		s.removeAttachment(v.Attachment)
	}

	s.invalidateHomeSection(ctx)
	s.logger.Info("Vacancy deleted", map[string]interface{}{
		"vacancy_id":  v.ID,
		"employer_id": requesterID,
	})
	return nil
}

// Get returns a single vacancy by id.
func (s *Service) Get(ctx context.Context, vacancyID uint) (*models.Vacancy, error) {
	v, err := s.vacancies.GetVacancy(ctx, vacancyID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load vacancy")
	}
	if v == nil {
		return nil, utils.NewNotFoundError("vacancy does not exist")
	}
	return v, nil
}

// SetFeatured flips the editorial featured flag. Reachable only through the
// admin surface; ownership does not apply.
func (s *Service) SetFeatured(ctx context.Context, vacancyID uint, featured bool) (*models.Vacancy, error) {
	return s.setFlag(ctx, vacancyID, func(v *models.Vacancy) { v.IsFeatured = featured })
}

// SetActive opens or closes a vacancy without deleting it. Admin only.
func (s *Service) SetActive(ctx context.Context, vacancyID uint, active bool) (*models.Vacancy, error) {
	return s.setFlag(ctx, vacancyID, func(v *models.Vacancy) { v.IsActive = active })
}

func (s *Service) setFlag(ctx context.Context, vacancyID uint, mutate func(*models.Vacancy)) (*models.Vacancy, error) {
	v, err := s.Get(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	mutate(v)
	if err := s.vacancies.UpdateVacancy(ctx, v); err != nil {
		return nil, utils.NewInternalServerError("failed to update vacancy")
	}
	s.invalidateHomeSection(ctx)
	return v, nil
}

// loadOwned loads a vacancy and enforces the ownership invariant shared by
// Edit and Delete.
func (s *Service) loadOwned(ctx context.Context, requesterID, vacancyID uint, action string) (*models.Vacancy, error) {
	v, err := s.Get(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if v.EmployerID != requesterID {
		return nil, utils.NewPermissionDeniedError("you can only " + action + " your own vacancy")
	}
	return v, nil
}

func (s *Service) storeAttachment(ctx context.Context, att *AttachmentUpload) (string, error) {
	if err := ValidateAttachment(att.Filename, att.Size); err != nil {
		return "", err
	}
	path, err := s.files.Save(ctx, att.Filename, att.Size, att.Reader)
	if err != nil {
		s.logger.WithField("filename", att.Filename).Error("Failed to store attachment", map[string]interface{}{"error": err.Error()})
		return "", utils.NewInternalServerError("failed to store attachment")
	}
	return path, nil
}

func (s *Service) removeAttachment(path string) {
	if err := s.files.Remove(path); err != nil {
		s.logger.Warn("Failed to remove attachment file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}

// applyRequest copies the form fields onto the vacancy. Upload-only
// postings have their free-text fields forced empty server-side regardless
// of what was submitted; that is a normalization, not a validation error.
func applyRequest(v *models.Vacancy, req models.VacancyRequest) {
	v.Title = req.Title
	v.Company = req.Company
	v.Description = req.Description
	v.Location = req.Location
	v.Salary = req.Salary
	v.SalaryMin = req.SalaryMin
	v.SalaryMax = req.SalaryMax
	v.Requirements = req.Requirements
	v.Benefits = req.Benefits
	v.ApplicationEmail = req.ApplicationEmail
	v.ApplicationURL = req.ApplicationURL
	v.IsUploadOnly = req.IsUploadOnly

	if req.ClosingDate != "" {
		if closing, err := time.Parse("2006-01-02", req.ClosingDate); err == nil {
			v.ClosingDate = &closing
		}
	}

	if v.IsUploadOnly {
		v.Title = ""
		v.Company = ""
		v.Description = ""
		v.Location = ""
		v.Salary = ""
		v.SalaryMin = nil
		v.SalaryMax = nil
	}
}
