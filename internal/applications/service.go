package applications

import (
	"context"
	"time"

	"github.com/Elliot-87/YOUTHCENTRE/internal/logging"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

// ApplicationStore is the persistence surface for job applications.
// Lookups return (nil, nil) when no row matches.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *models.Application) error
	GetApplication(ctx context.Context, id uint) (*models.Application, error)
	UpdateApplication(ctx context.Context, app *models.Application) error
	ListBySeeker(ctx context.Context, seekerID uint) ([]models.Application, error)
	ListByVacancy(ctx context.Context, vacancyID uint) ([]models.Application, error)
}

// VacancyStore resolves the vacancy an application targets.
type VacancyStore interface {
	GetVacancy(ctx context.Context, id uint) (*models.Vacancy, error)
}

// SeekerStore resolves whether an account has a jobseeker profile.
type SeekerStore interface {
	JobseekerProfileByUser(ctx context.Context, userID uint) (*models.JobseekerProfile, error)
}

// Service tracks applications from submission through review.
type Service struct {
	applications ApplicationStore
	vacancies    VacancyStore
	seekers      SeekerStore
	logger       logging.Logger
}

func NewService(applications ApplicationStore, vacancies VacancyStore, seekers SeekerStore) *Service {
	return &Service{
		applications: applications,
		vacancies:    vacancies,
		seekers:      seekers,
		logger:       logging.GetGlobalLogger(),
	}
}

// Apply submits an application for a vacancy. Only accounts with a jobseeker
// profile may apply, and the vacancy must exist. Applying twice to the same
// vacancy is allowed; each submission is tracked separately.
func (s *Service) Apply(ctx context.Context, seekerID, vacancyID uint, req models.ApplyRequest) (*models.Application, error) {
	profile, err := s.seekers.JobseekerProfileByUser(ctx, seekerID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load jobseeker profile")
	}
	if profile == nil {
		return nil, utils.NewPermissionDeniedError("you must be a jobseeker to apply for jobs")
	}

	vacancy, err := s.vacancies.GetVacancy(ctx, vacancyID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load vacancy")
	}
	if vacancy == nil {
		return nil, utils.NewNotFoundError("vacancy does not exist")
	}

	app := &models.Application{
		VacancyID:   vacancyID,
		JobSeekerID: seekerID,
		AppliedDate: time.Now(),
		Status:      models.ApplicationPending,
		CoverLetter: req.CoverLetter,
	}
	if err := s.applications.CreateApplication(ctx, app); err != nil {
		return nil, utils.NewInternalServerError("failed to submit application")
	}

	s.logger.Info("Application submitted", map[string]interface{}{
		"application_id": app.ID,
		"vacancy_id":     vacancyID,
		"job_seeker_id":  seekerID,
	})
	return app, nil
}

// ListForSeeker returns the seeker's own applications.
func (s *Service) ListForSeeker(ctx context.Context, seekerID uint) ([]models.Application, error) {
	apps, err := s.applications.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to list applications")
	}
	return apps, nil
}

// ListForVacancy returns a vacancy's applications to its owning employer.
func (s *Service) ListForVacancy(ctx context.Context, requesterID, vacancyID uint) ([]models.Application, error) {
	vacancy, err := s.vacancies.GetVacancy(ctx, vacancyID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load vacancy")
	}
	if vacancy == nil {
		return nil, utils.NewNotFoundError("vacancy does not exist")
	}
	if vacancy.EmployerID != requesterID {
		return nil, utils.NewPermissionDeniedError("you can only view applications for your own vacancy")
	}

	apps, err := s.applications.ListByVacancy(ctx, vacancyID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to list applications")
	}
	return apps, nil
}

// UpdateStatus moves an application to a new review status. Any transition
// between valid statuses is allowed, including moving back to pending. Only
// reachable through the admin surface.
func (s *Service) UpdateStatus(ctx context.Context, applicationID uint, status string) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, utils.NewValidationError("unknown application status: " + status)
	}

	app, err := s.applications.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load application")
	}
	if app == nil {
		return nil, utils.NewNotFoundError("application does not exist")
	}

	app.Status = status
	if err := s.applications.UpdateApplication(ctx, app); err != nil {
		return nil, utils.NewInternalServerError("failed to update application")
	}

	s.logger.Info("Application status updated", map[string]interface{}{
		"application_id": applicationID,
		"status":         status,
	})
	return app, nil
}
