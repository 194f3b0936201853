package applications_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/Elliot-87/YOUTHCENTRE/internal/applications"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

type fakeApplicationStore struct {
	apps   map[uint]*models.Application
	nextID uint
}

func (s *fakeApplicationStore) CreateApplication(_ context.Context, app *models.Application) error {
	s.nextID++
	app.ID = s.nextID
	copied := *app
	s.apps[app.ID] = &copied
	return nil
}

func (s *fakeApplicationStore) GetApplication(_ context.Context, id uint) (*models.Application, error) {
	a, ok := s.apps[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (s *fakeApplicationStore) UpdateApplication(_ context.Context, app *models.Application) error {
	copied := *app
	s.apps[app.ID] = &copied
	return nil
}

func (s *fakeApplicationStore) ListBySeeker(_ context.Context, seekerID uint) ([]models.Application, error) {
	return s.list(func(a *models.Application) bool { return a.JobSeekerID == seekerID }), nil
}

func (s *fakeApplicationStore) ListByVacancy(_ context.Context, vacancyID uint) ([]models.Application, error) {
	return s.list(func(a *models.Application) bool { return a.VacancyID == vacancyID }), nil
}

func (s *fakeApplicationStore) list(match func(*models.Application) bool) []models.Application {
	var out []models.Application
	for _, a := range s.apps {
		if match(a) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeVacancyStore struct {
	vacancies map[uint]*models.Vacancy
}

func (s *fakeVacancyStore) GetVacancy(_ context.Context, id uint) (*models.Vacancy, error) {
	v, ok := s.vacancies[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}

type fakeSeekerStore struct {
	profiles map[uint]*models.JobseekerProfile
}

func (s *fakeSeekerStore) JobseekerProfileByUser(_ context.Context, userID uint) (*models.JobseekerProfile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return p, nil
}

type harness struct {
	service   *applications.Service
	apps      *fakeApplicationStore
	vacancies *fakeVacancyStore
	seekers   *fakeSeekerStore
}

func newHarness() *harness {
	apps := &fakeApplicationStore{apps: make(map[uint]*models.Application)}
	vacancies := &fakeVacancyStore{vacancies: make(map[uint]*models.Vacancy)}
	seekers := &fakeSeekerStore{profiles: make(map[uint]*models.JobseekerProfile)}
	return &harness{
		service:   applications.NewService(apps, vacancies, seekers),
		apps:      apps,
		vacancies: vacancies,
		seekers:   seekers,
	}
}

func (h *harness) addSeeker(userID uint) {
	h.seekers.profiles[userID] = &models.JobseekerProfile{ID: userID, UserID: userID}
}

func (h *harness) addVacancy(id, employerID uint) {
	h.vacancies.vacancies[id] = &models.Vacancy{
		ID: id, EmployerID: employerID, IsActive: true, PostedDate: time.Now(),
	}
}

func TestApply_RequiresJobseekerProfile(t *testing.T) {
	h := newHarness()
	h.addVacancy(1, 10)

	_, err := h.service.Apply(context.Background(), 20, 1, models.ApplyRequest{})
	if !utils.IsPermissionDenied(err) {
		t.Fatalf("Apply without jobseeker profile: got %v, want permission denied", err)
	}
}

func TestApply_VacancyMustExist(t *testing.T) {
	h := newHarness()
	h.addSeeker(20)

	_, err := h.service.Apply(context.Background(), 20, 99, models.ApplyRequest{})
	if !utils.IsNotFound(err) {
		t.Fatalf("Apply to missing vacancy: got %v, want not found", err)
	}
}

func TestApply_StartsPending(t *testing.T) {
	h := newHarness()
	h.addSeeker(20)
	h.addVacancy(1, 10)

	app, err := h.service.Apply(context.Background(), 20, 1, models.ApplyRequest{CoverLetter: "I cook well."})
	if err != nil {
		t.Fatalf("Apply returned unexpected error: %v", err)
	}
	if app.Status != models.ApplicationPending {
		t.Errorf("Status = %q, want pending", app.Status)
	}
	if app.AppliedDate.IsZero() {
		t.Error("AppliedDate should be set on submission")
	}
	if app.CoverLetter != "I cook well." {
		t.Errorf("CoverLetter = %q", app.CoverLetter)
	}
}

func TestApply_DuplicatesAllowed(t *testing.T) {
	h := newHarness()
	h.addSeeker(20)
	h.addVacancy(1, 10)

	for i := 0; i < 2; i++ {
		if _, err := h.service.Apply(context.Background(), 20, 1, models.ApplyRequest{}); err != nil {
			t.Fatalf("Apply #%d returned unexpected error: %v", i+1, err)
		}
	}

	apps, err := h.service.ListForSeeker(context.Background(), 20)
	if err != nil {
		t.Fatalf("ListForSeeker returned unexpected error: %v", err)
	}
	if len(apps) != 2 {
		t.Errorf("expected 2 applications, got %d", len(apps))
	}
}

func TestListForVacancy_OwnerOnly(t *testing.T) {
	h := newHarness()
	h.addSeeker(20)
	h.addVacancy(1, 10)
	if _, err := h.service.Apply(context.Background(), 20, 1, models.ApplyRequest{}); err != nil {
		t.Fatalf("Apply returned unexpected error: %v", err)
	}

	if _, err := h.service.ListForVacancy(context.Background(), 11, 1); !utils.IsPermissionDenied(err) {
		t.Fatalf("ListForVacancy by non-owner: got %v, want permission denied", err)
	}

	apps, err := h.service.ListForVacancy(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("ListForVacancy by owner returned unexpected error: %v", err)
	}
	if len(apps) != 1 {
		t.Errorf("expected 1 application, got %d", len(apps))
	}
}

func TestUpdateStatus(t *testing.T) {
	h := newHarness()
	h.addSeeker(20)
	h.addVacancy(1, 10)
	app, err := h.service.Apply(context.Background(), 20, 1, models.ApplyRequest{})
	if err != nil {
		t.Fatalf("Apply returned unexpected error: %v", err)
	}

	updated, err := h.service.UpdateStatus(context.Background(), app.ID, models.ApplicationAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus returned unexpected error: %v", err)
	}
	if updated.Status != models.ApplicationAccepted {
		t.Errorf("Status = %q, want accepted", updated.Status)
	}

	// No workflow ordering: accepted can move back to pending.
	updated, err = h.service.UpdateStatus(context.Background(), app.ID, models.ApplicationPending)
	if err != nil {
		t.Fatalf("UpdateStatus back to pending returned unexpected error: %v", err)
	}
	if updated.Status != models.ApplicationPending {
		t.Errorf("Status = %q, want pending", updated.Status)
	}
}

func TestUpdateStatus_Guards(t *testing.T) {
	h := newHarness()
	h.addSeeker(20)
	h.addVacancy(1, 10)
	app, err := h.service.Apply(context.Background(), 20, 1, models.ApplyRequest{})
	if err != nil {
		t.Fatalf("Apply returned unexpected error: %v", err)
	}

	if _, err := h.service.UpdateStatus(context.Background(), app.ID, "archived"); err == nil {
		t.Fatal("unknown status should be rejected")
	}
	if _, err := h.service.UpdateStatus(context.Background(), 404, models.ApplicationReviewed); !utils.IsNotFound(err) {
		t.Fatalf("UpdateStatus on missing application: got %v, want not found", err)
	}
}
