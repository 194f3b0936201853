package jobs

import (
	"context"

	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

// homeSectionLimit caps the home-page highlight set.
const homeSectionLimit = 6

// feedLimit caps the syndication feed.
const feedLimit = 20

// Home-page section copy. The fallback chain below is a deliberate UX
// policy and must not change: featured first, recent second, an explicit
// empty state when there are no active vacancies at all.
const (
	featuredTitle       = "Featured Job Opportunities"
	featuredDescription = "Highlighted opportunities from our partner companies"
	recentTitle         = "Recent Job Opportunities"
	recentDescription   = "Latest opportunities from our partner companies"
	emptyDescription    = "No job opportunities available yet"
)

// ListFilters narrows the public vacancy listing. JobType matches exactly;
// Location is a case-insensitive substring match.
type ListFilters struct {
	JobType  string
	Location string
}

// ListActive returns active vacancies, newest first, narrowed by the
// optional filters.
func (s *Service) ListActive(ctx context.Context, f ListFilters) ([]models.VacancyView, error) {
	vacancies, err := s.vacancies.ListActive(ctx, f)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to list vacancies")
	}
	return Views(vacancies), nil
}

// Feed returns the newest active vacancies for the feed endpoint.
func (s *Service) Feed(ctx context.Context) ([]models.VacancyView, error) {
	vacancies, err := s.vacancies.ListRecent(ctx, feedLimit)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to build vacancy feed")
	}
	return Views(vacancies), nil
}

// FeaturedOrRecent selects the home-page section:
//
//  1. no active vacancies at all: the empty state under the featured title,
//  2. otherwise up to 6 featured active vacancies, newest first,
//  3. otherwise up to 6 recent active vacancies, newest first.
func (s *Service) FeaturedOrRecent(ctx context.Context) (*models.HomeResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetHomeSection(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	total, err := s.vacancies.CountActive(ctx)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to count active vacancies")
	}

	section := &models.HomeResponse{TotalActiveJobs: total}

	switch {
	case total == 0:
		section.SectionTitle = featuredTitle
		section.SectionDescription = emptyDescription
		section.Vacancies = []models.VacancyView{}

	default:
		featured, err := s.vacancies.ListFeatured(ctx, homeSectionLimit)
		if err != nil {
			return nil, utils.NewInternalServerError("failed to list featured vacancies")
		}

		if len(featured) > 0 {
			section.SectionTitle = featuredTitle
			section.SectionDescription = featuredDescription
			section.Vacancies = Views(featured)
		} else {
			recent, err := s.vacancies.ListRecent(ctx, homeSectionLimit)
			if err != nil {
				return nil, utils.NewInternalServerError("failed to list recent vacancies")
			}
			section.SectionTitle = recentTitle
			section.SectionDescription = recentDescription
			section.Vacancies = Views(recent)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetHomeSection(ctx, section); err != nil {
			s.logger.Warn("Failed to cache home section", map[string]interface{}{"error": err.Error()})
		}
	}
	return section, nil
}

// invalidateHomeSection drops the cached home section after a mutation.
func (s *Service) invalidateHomeSection(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateHomeSection(ctx); err != nil {
		s.logger.Warn("Failed to invalidate home section cache", map[string]interface{}{"error": err.Error()})
	}
}

// View decorates a vacancy with its derived display fields.
func View(v models.Vacancy) models.VacancyView {
	view := models.VacancyView{
		Vacancy:         v,
		FormattedSalary: FormattedSalary(&v),
	}
	if v.Attachment != "" {
		view.AttachmentKind = ClassifyAttachment(v.Attachment).String()
	}
	return view
}

// Views decorates a slice of vacancies.
func Views(vacancies []models.Vacancy) []models.VacancyView {
	views := make([]models.VacancyView, 0, len(vacancies))
	for _, v := range vacancies {
		views = append(views, View(v))
	}
	return views
}
