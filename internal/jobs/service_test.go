package jobs_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

type fixture struct {
	service   *jobs.Service
	vacancies *fakeVacancyStore
	profiles  *fakeProfileStore
	files     *fakeAttachmentStore
}

func newFixture() *fixture {
	vacancies := newFakeVacancyStore()
	profiles := newFakeProfileStore()
	files := &fakeAttachmentStore{}
	return &fixture{
		service:   jobs.NewService(vacancies, profiles, files, nil),
		vacancies: vacancies,
		profiles:  profiles,
		files:     files,
	}
}

func (f *fixture) addEmployer(userID uint, approved bool) {
	f.profiles.profiles[userID] = &models.EmployerProfile{
		ID:       userID,
		UserID:   userID,
		Approved: approved,
	}
}

func (f *fixture) addVacancy(v models.Vacancy) uint {
	f.vacancies.nextID++
	v.ID = f.vacancies.nextID
	f.vacancies.vacancies[v.ID] = &v
	return v.ID
}


func TestCreate_RequiresEmployerProfile(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), 7, models.VacancyRequest{Title: "Cook"}, nil)
	if !utils.IsPermissionDenied(err) {
		t.Fatalf("Create without employer profile: got %v, want permission denied", err)
	}
}

func TestCreate_RequiresApproval(t *testing.T) {
	f := newFixture()
	f.addEmployer(7, false)

	_, err := f.service.Create(context.Background(), 7, models.VacancyRequest{Title: "Cook"}, nil)
	if !utils.IsPermissionDenied(err) {
		t.Fatalf("Create with unapproved employer: got %v, want permission denied", err)
	}
	if !strings.Contains(err.Error(), "not approved") {
		t.Errorf("error should name the approval failure, got %q", err.Error())
	}
}

func TestCreate_ApprovedEmployerSucceeds(t *testing.T) {
	f := newFixture()
	f.addEmployer(7, true)

	v, err := f.service.Create(context.Background(), 7, models.VacancyRequest{
		Title:    "Junior Cook",
		Company:  "Harbour Kitchen",
		Location: "Cape Town",
		JobType:  models.JobTypePartTime,
	}, nil)
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}

	if v.EmployerID != 7 {
		t.Errorf("EmployerID = %d, want 7", v.EmployerID)
	}
	if !v.IsActive {
		t.Error("new vacancy should be active by default")
	}
	if v.PostedDate.IsZero() {
		t.Error("PostedDate should be set at creation")
	}
	if v.ID == 0 {
		t.Error("vacancy should be persisted with an id")
	}
}

func TestCreate_DefaultsCurrencyAndJobType(t *testing.T) {
	f := newFixture()
	f.addEmployer(7, true)

	v, err := f.service.Create(context.Background(), 7, models.VacancyRequest{Title: "Cook"}, nil)
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}
	if v.Currency != models.CurrencyZAR {
		t.Errorf("Currency = %q, want ZAR default", v.Currency)
	}
	if v.JobType != models.JobTypeFullTime {
		t.Errorf("JobType = %q, want full_time default", v.JobType)
	}
}

func TestCreate_UploadOnlyClearsFreeText(t *testing.T) {
	f := newFixture()
	f.addEmployer(7, true)

	min := 100.0
	v, err := f.service.Create(context.Background(), 7, models.VacancyRequest{
		Title:        "should vanish",
		Company:      "should vanish",
		Description:  "should vanish",
		Location:     "should vanish",
		Salary:       "should vanish",
		SalaryMin:    &min,
		SalaryMax:    &min,
		IsUploadOnly: true,
	}, &jobs.AttachmentUpload{Filename: "posting.pdf", Size: 1 << 20, Reader: strings.NewReader("pdf")})
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}

	if v.Title != "" || v.Company != "" || v.Description != "" || v.Location != "" || v.Salary != "" {
		t.Error("upload-only posting should have its free-text fields cleared")
	}
	if v.SalaryMin != nil || v.SalaryMax != nil {
		t.Error("upload-only posting should have its salary bounds cleared")
	}
	if v.Attachment == "" {
		t.Error("upload-only posting should carry its attachment path")
	}
}

func TestCreate_UploadOnlyRequiresAttachment(t *testing.T) {
	f := newFixture()
	f.addEmployer(7, true)

	_, err := f.service.Create(context.Background(), 7, models.VacancyRequest{IsUploadOnly: true}, nil)
	if err == nil {
		t.Fatal("upload-only posting without attachment should fail")
	}
}

func TestCreate_RejectsInvalidAttachment(t *testing.T) {
	f := newFixture()
	f.addEmployer(7, true)

	_, err := f.service.Create(context.Background(), 7, models.VacancyRequest{Title: "Cook"},
		&jobs.AttachmentUpload{Filename: "virus.exe", Size: 1 << 10, Reader: strings.NewReader("x")})
	if err == nil {
		t.Fatal("expected invalid attachment error")
	}
	if len(f.files.saved) != 0 {
		t.Error("rejected attachment must not reach the store")
	}
}


func TestEdit_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.Edit(context.Background(), 7, 99, models.VacancyRequest{}, nil)
	if !utils.IsNotFound(err) {
		t.Fatalf("Edit on missing vacancy: got %v, want not found", err)
	}
}

func TestEdit_OwnerOnly(t *testing.T) {
	f := newFixture()
	id := f.addVacancy(models.Vacancy{EmployerID: 7, Title: "Cook", IsActive: true, PostedDate: time.Now()})

	_, err := f.service.Edit(context.Background(), 8, id, models.VacancyRequest{Title: "Hijacked"}, nil)
	if !utils.IsPermissionDenied(err) {
		t.Fatalf("Edit by non-owner: got %v, want permission denied", err)
	}
}

func TestEdit_PreservesPostedDate(t *testing.T) {
	f := newFixture()
	posted := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	id := f.addVacancy(models.Vacancy{EmployerID: 7, Title: "Cook", IsActive: true, PostedDate: posted})

	v, err := f.service.Edit(context.Background(), 7, id, models.VacancyRequest{Title: "Head Cook"}, nil)
	if err != nil {
		t.Fatalf("Edit returned unexpected error: %v", err)
	}
	if !v.PostedDate.Equal(posted) {
		t.Errorf("PostedDate changed on edit: got %v, want %v", v.PostedDate, posted)
	}
	if v.Title != "Head Cook" {
		t.Errorf("Title = %q, want %q", v.Title, "Head Cook")
	}
}

func TestEdit_ReplacingAttachmentRemovesOld(t *testing.T) {
	f := newFixture()
	id := f.addVacancy(models.Vacancy{
		EmployerID: 7, IsActive: true, PostedDate: time.Now(),
		Attachment: "media/vacancies/old.pdf",
	})

	v, err := f.service.Edit(context.Background(), 7, id, models.VacancyRequest{Title: "Cook"},
		&jobs.AttachmentUpload{Filename: "new.pdf", Size: 1 << 20, Reader: strings.NewReader("pdf")})
	if err != nil {
		t.Fatalf("Edit returned unexpected error: %v", err)
	}
	if v.Attachment == "media/vacancies/old.pdf" {
		t.Error("attachment should have been replaced")
	}
	if len(f.files.removed) != 1 || f.files.removed[0] != "media/vacancies/old.pdf" {
		t.Errorf("old attachment file should be removed, got %v", f.files.removed)
	}
}


func TestDelete_OwnerOnly(t *testing.T) {
	f := newFixture()
	id := f.addVacancy(models.Vacancy{EmployerID: 7, IsActive: true, PostedDate: time.Now()})

	if err := f.service.Delete(context.Background(), 8, id); !utils.IsPermissionDenied(err) {
		t.Fatalf("Delete by non-owner: got %v, want permission denied", err)
	}
	if _, ok := f.vacancies.vacancies[id]; !ok {
		t.Error("vacancy must survive a denied delete")
	}
}

func TestDelete_CascadesApplications(t *testing.T) {
	f := newFixture()
	id := f.addVacancy(models.Vacancy{EmployerID: 7, IsActive: true, PostedDate: time.Now()})
	f.vacancies.applications[id] = []models.Application{
		{ID: 1, VacancyID: id, JobSeekerID: 20},
		{ID: 2, VacancyID: id, JobSeekerID: 21},
	}

	if err := f.service.Delete(context.Background(), 7, id); err != nil {
		t.Fatalf("Delete returned unexpected error: %v", err)
	}
	if _, ok := f.vacancies.vacancies[id]; ok {
		t.Error("vacancy should be removed")
	}
	if apps := f.vacancies.applications[id]; len(apps) != 0 {
		t.Errorf("applications should be cascade-removed, %d remain", len(apps))
	}
}

func TestDelete_RemovesAttachmentFile(t *testing.T) {
	f := newFixture()
	id := f.addVacancy(models.Vacancy{
		EmployerID: 7, IsActive: true, PostedDate: time.Now(),
		Attachment: "media/vacancies/posting.pdf",
	})

	if err := f.service.Delete(context.Background(), 7, id); err != nil {
		t.Fatalf("Delete returned unexpected error: %v", err)
	}
	if len(f.files.removed) != 1 {
		t.Errorf("attachment file should be removed, got %v", f.files.removed)
	}
}


func TestSetFeaturedAndActive(t *testing.T) {
	f := newFixture()
	id := f.addVacancy(models.Vacancy{EmployerID: 7, IsActive: true, PostedDate: time.Now()})

	v, err := f.service.SetFeatured(context.Background(), id, true)
	if err != nil {
		t.Fatalf("SetFeatured returned unexpected error: %v", err)
	}
	if !v.IsFeatured {
		t.Error("vacancy should be featured")
	}

	v, err = f.service.SetActive(context.Background(), id, false)
	if err != nil {
		t.Fatalf("SetActive returned unexpected error: %v", err)
	}
	if v.IsActive {
		t.Error("vacancy should be closed")
	}

	if _, err := f.service.SetFeatured(context.Background(), 404, true); !utils.IsNotFound(err) {
		t.Fatalf("SetFeatured on missing vacancy: got %v, want not found", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture()
	if _, err := f.service.Get(context.Background(), 42); !utils.IsNotFound(err) {
		t.Fatalf("Get on missing vacancy: got %v, want not found", err)
	}
}
