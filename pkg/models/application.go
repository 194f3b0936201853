package models

import "time"

// Application statuses. Administrative updates may move between any two
// statuses; no workflow ordering is enforced.
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// ValidApplicationStatus reports whether s is one of the known statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Application records a jobseeker applying to a vacancy. A seeker may hold
// more than one application against the same vacancy.
type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VacancyID   uint `gorm:"index;not null" json:"vacancy_id"`
	JobSeekerID uint `gorm:"index;not null" json:"job_seeker_id"`

	// AppliedDate is set at creation and never mutated.
	AppliedDate time.Time `gorm:"not null" json:"applied_date"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
}
