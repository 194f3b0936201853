package models

import "time"

// Vacancy job types.
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"
)

// Supported salary currencies.
const (
	CurrencyZAR = "ZAR"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
)

// Vacancy is a job posting. A posting is either authored through the
// structured fields or, when IsUploadOnly is set, represented solely by the
// uploaded attachment with the free-text fields cleared.
type Vacancy struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	EmployerID uint `gorm:"index;not null" json:"employer_id"`

	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location"`

	// Salary is the raw free-text field; SalaryMin/SalaryMax are the
	// structured alternative. FormattedSalary derives the display form.
	Salary    string   `json:"salary"`
	SalaryMin *float64 `json:"salary_min,omitempty"`
	SalaryMax *float64 `json:"salary_max,omitempty"`
	Currency  string   `gorm:"size:3;not null;default:'ZAR'" json:"currency"`

	JobType      string `gorm:"size:20;not null;default:'full_time'" json:"job_type"`
	Requirements string `gorm:"type:text" json:"requirements"`
	Benefits     string `gorm:"type:text" json:"benefits"`

	ApplicationEmail string `json:"application_email"`
	ApplicationURL   string `json:"application_url"`

	IsFeatured bool `gorm:"not null;default:false" json:"is_featured"`
	IsActive   bool `gorm:"not null;default:true" json:"is_active"`

	// PostedDate is set once at creation and never mutated afterwards.
	PostedDate  time.Time  `gorm:"index;not null" json:"posted_date"`
	ClosingDate *time.Time `json:"closing_date,omitempty"`

	Attachment   string `json:"attachment,omitempty"`
	IsUploadOnly bool   `gorm:"not null;default:false" json:"is_upload_only"`

	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
