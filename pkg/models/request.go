package models

// RegisterRequest is the registration payload. Role selects which profile
// branch runs; company fields only apply to the employer branch.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=150"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	Role     string `json:"role" form:"role" validate:"required,oneof=employer jobseeker"`

	CompanyName string `json:"company_name" form:"company_name" validate:"max=255"`
	Website     string `json:"website" form:"website" validate:"omitempty,url"`
}

// LoginRequest is the credential payload for login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// VacancyRequest carries the vacancy form fields for create and edit. The
// attachment itself travels as a multipart file part, not in this struct.
type VacancyRequest struct {
	Title       string `json:"title" form:"title" validate:"max=200"`
	Company     string `json:"company" form:"company" validate:"max=200"`
	Description string `json:"description" form:"description"`
	Location    string `json:"location" form:"location" validate:"max=100"`

	Salary    string   `json:"salary" form:"salary" validate:"max=100"`
	SalaryMin *float64 `json:"salary_min" form:"salary_min"`
	SalaryMax *float64 `json:"salary_max" form:"salary_max"`
	Currency  string   `json:"currency" form:"currency" validate:"omitempty,oneof=ZAR USD EUR GBP"`

	JobType      string `json:"job_type" form:"job_type" validate:"omitempty,oneof=full_time part_time contract internship remote"`
	Requirements string `json:"requirements" form:"requirements"`
	Benefits     string `json:"benefits" form:"benefits"`

	ApplicationEmail string `json:"application_email" form:"application_email" validate:"omitempty,email"`
	ApplicationURL   string `json:"application_url" form:"application_url" validate:"omitempty,url"`

	ClosingDate  string `json:"closing_date" form:"closing_date" validate:"omitempty,datetime=2006-01-02"`
	IsUploadOnly bool   `json:"is_upload_only" form:"is_upload_only"`
}

// ApplyRequest is the payload for applying to a vacancy.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" form:"cover_letter"`
}

// ReferralRequestInput is the payload for requesting a referral.
type ReferralRequestInput struct {
	Reason string `json:"reason" form:"reason" validate:"required"`
}

// ApprovalRequest toggles an employer profile's approved flag.
type ApprovalRequest struct {
	Approved bool `json:"approved"`
}

// FlagRequest toggles a boolean editorial flag (featured, active, published).
type FlagRequest struct {
	Value bool `json:"value"`
}

// StatusUpdateRequest changes an application or referral status.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

// AdvisoryCategoryRequest creates or updates an advisory category.
type AdvisoryCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=50"`
}

// AdvisoryArticleRequest creates or updates an advisory article.
type AdvisoryArticleRequest struct {
	CategoryID    uint   `json:"category_id" validate:"required"`
	Title         string `json:"title" validate:"required,max=200"`
	Content       string `json:"content" validate:"required"`
	Excerpt       string `json:"excerpt"`
	Author        string `json:"author" validate:"max=100"`
	IsPublished   *bool  `json:"is_published"`
	FeaturedImage string `json:"featured_image"`
}

// ReferralPartnerRequest creates or updates a referral partner.
type ReferralPartnerRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,oneof=training counseling financial housing legal health childcare other"`
	Description string `json:"description" validate:"required"`
	ContactInfo string `json:"contact_info"`
	Website     string `json:"website" validate:"omitempty,url"`
	Phone       string `json:"phone" validate:"max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
}
