package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

func activeVacancy(employerID uint, title string, featured bool, postedAgo time.Duration) models.Vacancy {
	return models.Vacancy{
		EmployerID: employerID,
		Title:      title,
		IsActive:   true,
		IsFeatured: featured,
		PostedDate: time.Now().Add(-postedAgo),
	}
}

func TestFeaturedOrRecent_NoActiveJobs(t *testing.T) {
	f := newFixture()
	f.addVacancy(models.Vacancy{EmployerID: 1, Title: "closed", IsActive: false, PostedDate: time.Now()})

	home, err := f.service.FeaturedOrRecent(context.Background())
	if err != nil {
		t.Fatalf("FeaturedOrRecent returned unexpected error: %v", err)
	}
	if home.SectionTitle != "Featured Job Opportunities" {
		t.Errorf("SectionTitle = %q", home.SectionTitle)
	}
	if home.SectionDescription != "No job opportunities available yet" {
		t.Errorf("SectionDescription = %q", home.SectionDescription)
	}
	if len(home.Vacancies) != 0 {
		t.Errorf("expected empty vacancy list, got %d", len(home.Vacancies))
	}
	if home.TotalActiveJobs != 0 {
		t.Errorf("TotalActiveJobs = %d, want 0", home.TotalActiveJobs)
	}
}

func TestFeaturedOrRecent_PrefersFeatured(t *testing.T) {
	f := newFixture()
	f.addVacancy(activeVacancy(1, "plain one", false, 3*time.Hour))
	f.addVacancy(activeVacancy(1, "the featured one", true, 2*time.Hour))
	f.addVacancy(activeVacancy(1, "plain two", false, time.Hour))

	home, err := f.service.FeaturedOrRecent(context.Background())
	if err != nil {
		t.Fatalf("FeaturedOrRecent returned unexpected error: %v", err)
	}
	if home.SectionTitle != "Featured Job Opportunities" {
		t.Errorf("SectionTitle = %q", home.SectionTitle)
	}
	if home.SectionDescription != "Highlighted opportunities from our partner companies" {
		t.Errorf("SectionDescription = %q", home.SectionDescription)
	}
	if len(home.Vacancies) != 1 || home.Vacancies[0].Title != "the featured one" {
		t.Fatalf("expected exactly the featured vacancy, got %+v", home.Vacancies)
	}
	if home.TotalActiveJobs != 3 {
		t.Errorf("TotalActiveJobs = %d, want 3", home.TotalActiveJobs)
	}
}

func TestFeaturedOrRecent_FallsBackToRecent(t *testing.T) {
	f := newFixture()
	f.addVacancy(activeVacancy(1, "oldest", false, 3*time.Hour))
	f.addVacancy(activeVacancy(1, "middle", false, 2*time.Hour))
	f.addVacancy(activeVacancy(1, "newest", false, time.Hour))

	home, err := f.service.FeaturedOrRecent(context.Background())
	if err != nil {
		t.Fatalf("FeaturedOrRecent returned unexpected error: %v", err)
	}
	if home.SectionTitle != "Recent Job Opportunities" {
		t.Errorf("SectionTitle = %q", home.SectionTitle)
	}
	if home.SectionDescription != "Latest opportunities from our partner companies" {
		t.Errorf("SectionDescription = %q", home.SectionDescription)
	}
	if len(home.Vacancies) != 3 {
		t.Fatalf("expected 3 recent vacancies, got %d", len(home.Vacancies))
	}
	if home.Vacancies[0].Title != "newest" {
		t.Errorf("recent list should be newest first, got %q", home.Vacancies[0].Title)
	}
}

func TestFeaturedOrRecent_CapsAtSix(t *testing.T) {
	f := newFixture()
	for i := 0; i < 9; i++ {
		f.addVacancy(activeVacancy(1, "job", false, time.Duration(i)*time.Minute))
	}

	home, err := f.service.FeaturedOrRecent(context.Background())
	if err != nil {
		t.Fatalf("FeaturedOrRecent returned unexpected error: %v", err)
	}
	if len(home.Vacancies) != 6 {
		t.Errorf("home section should cap at 6 vacancies, got %d", len(home.Vacancies))
	}
	if home.TotalActiveJobs != 9 {
		t.Errorf("TotalActiveJobs = %d, want 9", home.TotalActiveJobs)
	}
}

func TestFeed_CapsAtTwenty(t *testing.T) {
	f := newFixture()
	for i := 0; i < 25; i++ {
		f.addVacancy(activeVacancy(1, "job", false, time.Duration(i)*time.Minute))
	}

	views, err := f.service.Feed(context.Background())
	if err != nil {
		t.Fatalf("Feed returned unexpected error: %v", err)
	}
	if len(views) != 20 {
		t.Errorf("feed should cap at 20 vacancies, got %d", len(views))
	}
}

func TestListActive_FiltersByJobType(t *testing.T) {
	f := newFixture()
	remote1 := activeVacancy(1, "remote old", false, 2*time.Hour)
	remote1.JobType = models.JobTypeRemote
	remote2 := activeVacancy(1, "remote new", false, time.Hour)
	remote2.JobType = models.JobTypeRemote
	onsite := activeVacancy(1, "onsite", false, 30*time.Minute)
	onsite.JobType = models.JobTypeFullTime
	f.addVacancy(remote1)
	f.addVacancy(remote2)
	f.addVacancy(onsite)
	f.addVacancy(models.Vacancy{EmployerID: 1, Title: "inactive remote", JobType: models.JobTypeRemote, PostedDate: time.Now()})

	views, err := f.service.ListActive(context.Background(), jobs.ListFilters{JobType: models.JobTypeRemote})
	if err != nil {
		t.Fatalf("ListActive returned unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 remote vacancies, got %d", len(views))
	}
	if views[0].Title != "remote new" || views[1].Title != "remote old" {
		t.Errorf("remote vacancies should be newest first, got %q then %q", views[0].Title, views[1].Title)
	}
}

func TestListActive_FiltersByLocation(t *testing.T) {
	f := newFixture()
	cpt := activeVacancy(1, "cape town job", false, time.Hour)
	cpt.Location = "Cape Town, Western Cape"
	jhb := activeVacancy(1, "jozi job", false, 2*time.Hour)
	jhb.Location = "Johannesburg"
	f.addVacancy(cpt)
	f.addVacancy(jhb)

	views, err := f.service.ListActive(context.Background(), jobs.ListFilters{Location: "cape town"})
	if err != nil {
		t.Fatalf("ListActive returned unexpected error: %v", err)
	}
	if len(views) != 1 || views[0].Title != "cape town job" {
		t.Fatalf("location filter should match case-insensitive substring, got %+v", views)
	}
}

func TestListActive_DecoratesViews(t *testing.T) {
	f := newFixture()
	min, max := 150000.0, 220000.0
	v := activeVacancy(1, "decorated", false, time.Hour)
	v.SalaryMin = &min
	v.SalaryMax = &max
	v.Currency = models.CurrencyZAR
	v.Attachment = "media/vacancies/posting.pdf"
	f.addVacancy(v)

	views, err := f.service.ListActive(context.Background(), jobs.ListFilters{})
	if err != nil {
		t.Fatalf("ListActive returned unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	if views[0].FormattedSalary != "R150,000 - R220,000 per annum" {
		t.Errorf("FormattedSalary = %q", views[0].FormattedSalary)
	}
	if views[0].AttachmentKind != "pdf" {
		t.Errorf("AttachmentKind = %q, want pdf", views[0].AttachmentKind)
	}
}
