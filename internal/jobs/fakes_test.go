package jobs_test

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// In-memory store fakes implementing the engine's store contracts.

type fakeVacancyStore struct {
	vacancies    map[uint]*models.Vacancy
	applications map[uint][]models.Application // keyed by vacancy id
	nextID       uint
}

func newFakeVacancyStore() *fakeVacancyStore {
	return &fakeVacancyStore{
		vacancies:    make(map[uint]*models.Vacancy),
		applications: make(map[uint][]models.Application),
	}
}

func (s *fakeVacancyStore) GetVacancy(_ context.Context, id uint) (*models.Vacancy, error) {
	v, ok := s.vacancies[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (s *fakeVacancyStore) CreateVacancy(_ context.Context, v *models.Vacancy) error {
	s.nextID++
	v.ID = s.nextID
	copied := *v
	s.vacancies[v.ID] = &copied
	return nil
}

func (s *fakeVacancyStore) UpdateVacancy(_ context.Context, v *models.Vacancy) error {
	copied := *v
	s.vacancies[v.ID] = &copied
	return nil
}

func (s *fakeVacancyStore) DeleteVacancy(_ context.Context, id uint) error {
	delete(s.vacancies, id)
	delete(s.applications, id) // cascade
	return nil
}

func (s *fakeVacancyStore) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, v := range s.vacancies {
		if v.IsActive {
			n++
		}
	}
	return n, nil
}

func (s *fakeVacancyStore) ListActive(_ context.Context, f jobs.ListFilters) ([]models.Vacancy, error) {
	var out []models.Vacancy
	for _, v := range s.vacancies {
		if !v.IsActive {
			continue
		}
		if f.JobType != "" && v.JobType != f.JobType {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(v.Location), strings.ToLower(f.Location)) {
			continue
		}
		out = append(out, *v)
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *fakeVacancyStore) ListFeatured(_ context.Context, limit int) ([]models.Vacancy, error) {
	var out []models.Vacancy
	for _, v := range s.vacancies {
		if v.IsActive && v.IsFeatured {
			out = append(out, *v)
		}
	}
	sortNewestFirst(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeVacancyStore) ListRecent(_ context.Context, limit int) ([]models.Vacancy, error) {
	var out []models.Vacancy
	for _, v := range s.vacancies {
		if v.IsActive {
			out = append(out, *v)
		}
	}
	sortNewestFirst(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortNewestFirst(vacancies []models.Vacancy) {
	sort.Slice(vacancies, func(i, j int) bool {
		return vacancies[i].PostedDate.After(vacancies[j].PostedDate)
	})
}

type fakeProfileStore struct {
	profiles map[uint]*models.EmployerProfile // keyed by user id
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[uint]*models.EmployerProfile)}
}

func (s *fakeProfileStore) EmployerProfileByUser(_ context.Context, userID uint) (*models.EmployerProfile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return p, nil
}

type fakeAttachmentStore struct {
	saved   []string
	removed []string
}

func (s *fakeAttachmentStore) Save(_ context.Context, filename string, _ int64, _ io.Reader) (string, error) {
	path := "media/vacancies/" + filename
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeAttachmentStore) Remove(path string) error {
	s.removed = append(s.removed, path)
	return nil
}
