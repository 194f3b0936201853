package models

import "time"

// Referral partner categories.
const (
	PartnerTraining   = "training"
	PartnerCounseling = "counseling"
	PartnerFinancial  = "financial"
	PartnerHousing    = "housing"
	PartnerLegal      = "legal"
	PartnerHealth     = "health"
	PartnerChildcare  = "childcare"
	PartnerOther      = "other"
)

// Referral request statuses.
const (
	ReferralPending   = "pending"
	ReferralContacted = "contacted"
	ReferralApproved  = "approved"
	ReferralCompleted = "completed"
	ReferralRejected  = "rejected"
)

// ReferralPartner is a directory entry for an external support service.
// Inactive partners are hidden from the public directory.
type ReferralPartner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"size:20;not null" json:"category"`
	Description string `gorm:"type:text;not null" json:"description"`
	ContactInfo string `gorm:"type:text" json:"contact_info"`
	Website     string `json:"website"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `gorm:"type:text" json:"address"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`

	Requests []ReferralRequest `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// ReferralRequest is a jobseeker-initiated request against a partner.
type ReferralRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	JobSeekerID   uint      `gorm:"index;not null" json:"job_seeker_id"`
	PartnerID     uint      `gorm:"index;not null" json:"partner_id"`
	Reason        string    `gorm:"type:text;not null" json:"reason"`
	Status        string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	RequestedDate time.Time `gorm:"not null" json:"requested_date"`
	Notes         string    `gorm:"type:text" json:"notes"`
}
