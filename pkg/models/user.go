package models

import "time"

// Account roles resolved once at registration.
const (
	RoleEmployer  = "employer"
	RoleJobseeker = "jobseeker"
	RoleAdmin     = "admin"
)

// User is an account identity. Exactly one role profile hangs off it,
// depending on the role chosen at registration.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'jobseeker'" json:"role"`

	EmployerProfile  *EmployerProfile  `gorm:"constraint:OnDelete:CASCADE" json:"employer_profile,omitempty"`
	JobseekerProfile *JobseekerProfile `gorm:"constraint:OnDelete:CASCADE" json:"jobseeker_profile,omitempty"`
}

// EmployerProfile carries the admin-controlled approval flag. Only approved
// employers may post vacancies; the owner can never flip Approved themselves.
type EmployerProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Approved    bool   `gorm:"not null;default:false" json:"approved"`
}

// JobseekerProfile holds the seeker-side profile, including an optional
// stored resume path.
type JobseekerProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Skills     string `gorm:"type:text" json:"skills"`
	Experience string `gorm:"type:text" json:"experience"`
	Phone      string `json:"phone"`
	Resume     string `json:"resume,omitempty"`
}
