package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// AuthResponse is returned by register and login: the account plus a signed
// bearer token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// VacancyView is a vacancy decorated with its derived display fields.
type VacancyView struct {
	Vacancy
	FormattedSalary string `json:"formatted_salary"`
	AttachmentKind  string `json:"attachment_kind,omitempty"`
}

// VacancyListResponse is the filtered vacancy listing.
type VacancyListResponse struct {
	Vacancies []VacancyView `json:"vacancies"`
	Count     int           `json:"count"`
}

// HomeResponse is the home-page section produced by the featured-or-recent
// selection policy.
type HomeResponse struct {
	SectionTitle       string        `json:"section_title"`
	SectionDescription string        `json:"section_description"`
	Vacancies          []VacancyView `json:"vacancies"`
	TotalActiveJobs    int64         `json:"total_active_jobs"`
}

// AdvisoryHomeResponse is the advisory landing page payload.
type AdvisoryHomeResponse struct {
	Categories       []AdvisoryCategory `json:"categories"`
	FeaturedArticles []AdvisoryArticle  `json:"featured_articles"`
}

// AdvisoryArticleResponse is an article with its related reading.
type AdvisoryArticleResponse struct {
	Article         AdvisoryArticle   `json:"article"`
	RelatedArticles []AdvisoryArticle `json:"related_articles"`
}
