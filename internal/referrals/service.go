package referrals

import (
	"context"
	"time"

	"github.com/Elliot-87/YOUTHCENTRE/internal/logging"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

// ValidReferralStatus reports whether s is one of the known request statuses.
func ValidReferralStatus(s string) bool {
	switch s {
	case models.ReferralPending, models.ReferralContacted, models.ReferralApproved,
		models.ReferralCompleted, models.ReferralRejected:
		return true
	}
	return false
}

// PartnerStore is the persistence surface for the partner directory.
// Lookups return (nil, nil) when no row matches.
type PartnerStore interface {
	GetPartner(ctx context.Context, id uint) (*models.ReferralPartner, error)
	CreatePartner(ctx context.Context, p *models.ReferralPartner) error
	UpdatePartner(ctx context.Context, p *models.ReferralPartner) error
	DeletePartner(ctx context.Context, id uint) error
	ListActivePartners(ctx context.Context, category string) ([]models.ReferralPartner, error)
}

// RequestStore is the persistence surface for referral requests.
type RequestStore interface {
	CreateRequest(ctx context.Context, r *models.ReferralRequest) error
	GetRequest(ctx context.Context, id uint) (*models.ReferralRequest, error)
	UpdateRequest(ctx context.Context, r *models.ReferralRequest) error
	ListRequestsBySeeker(ctx context.Context, seekerID uint) ([]models.ReferralRequest, error)
}

// SeekerStore resolves whether an account has a jobseeker profile.
type SeekerStore interface {
	JobseekerProfileByUser(ctx context.Context, userID uint) (*models.JobseekerProfile, error)
}

// Service runs the referral partner directory and request workflow.
type Service struct {
	partners PartnerStore
	requests RequestStore
	seekers  SeekerStore
	logger   logging.Logger
}

func NewService(partners PartnerStore, requests RequestStore, seekers SeekerStore) *Service {
	return &Service{
		partners: partners,
		requests: requests,
		seekers:  seekers,
		logger:   logging.GetGlobalLogger(),
	}
}

// ListPartners returns the public directory, optionally narrowed to one
// category. Inactive partners never appear.
func (s *Service) ListPartners(ctx context.Context, category string) ([]models.ReferralPartner, error) {
	partners, err := s.partners.ListActivePartners(ctx, category)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to list referral partners")
	}
	return partners, nil
}

// Partner returns one active partner. Inactive partners read as absent.
func (s *Service) Partner(ctx context.Context, partnerID uint) (*models.ReferralPartner, error) {
	partner, err := s.partners.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load referral partner")
	}
	if partner == nil || !partner.IsActive {
		return nil, utils.NewNotFoundError("referral partner does not exist")
	}
	return partner, nil
}

// RequestReferral opens a pending request against an active partner. Only
// jobseekers may request referrals.
func (s *Service) RequestReferral(ctx context.Context, seekerID, partnerID uint, req models.ReferralRequestInput) (*models.ReferralRequest, error) {
	profile, err := s.seekers.JobseekerProfileByUser(ctx, seekerID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load jobseeker profile")
	}
	if profile == nil {
		return nil, utils.NewPermissionDeniedError("you must be a jobseeker to request referrals")
	}

	if _, err := s.Partner(ctx, partnerID); err != nil {
		return nil, err
	}

	request := &models.ReferralRequest{
		JobSeekerID:   seekerID,
		PartnerID:     partnerID,
		Reason:        req.Reason,
		Status:        models.ReferralPending,
		RequestedDate: time.Now(),
	}
	if err := s.requests.CreateRequest(ctx, request); err != nil {
		return nil, utils.NewInternalServerError("failed to create referral request")
	}

	s.logger.Info("Referral requested", map[string]interface{}{
		"request_id":    request.ID,
		"partner_id":    partnerID,
		"job_seeker_id": seekerID,
	})
	return request, nil
}

// MyRequests returns the seeker's own referral requests.
func (s *Service) MyRequests(ctx context.Context, seekerID uint) ([]models.ReferralRequest, error) {
	requests, err := s.requests.ListRequestsBySeeker(ctx, seekerID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to list referral requests")
	}
	return requests, nil
}

// CreatePartner adds a directory entry. Admin only.
func (s *Service) CreatePartner(ctx context.Context, req models.ReferralPartnerRequest) (*models.ReferralPartner, error) {
	partner := &models.ReferralPartner{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		ContactInfo: req.ContactInfo,
		Website:     req.Website,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		IsActive:    true,
	}
	if err := s.partners.CreatePartner(ctx, partner); err != nil {
		return nil, utils.NewInternalServerError("failed to create referral partner")
	}
	return partner, nil
}

// UpdatePartner edits a directory entry. Admin only.
func (s *Service) UpdatePartner(ctx context.Context, partnerID uint, req models.ReferralPartnerRequest) (*models.ReferralPartner, error) {
	partner, err := s.loadPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	partner.Name = req.Name
	partner.Category = req.Category
	partner.Description = req.Description
	partner.ContactInfo = req.ContactInfo
	partner.Website = req.Website
	partner.Phone = req.Phone
	partner.Email = req.Email
	partner.Address = req.Address
	if err := s.partners.UpdatePartner(ctx, partner); err != nil {
		return nil, utils.NewInternalServerError("failed to update referral partner")
	}
	return partner, nil
}

// SetPartnerActive hides or restores a partner in the public directory.
// Admin only.
func (s *Service) SetPartnerActive(ctx context.Context, partnerID uint, active bool) (*models.ReferralPartner, error) {
	partner, err := s.loadPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	partner.IsActive = active
	if err := s.partners.UpdatePartner(ctx, partner); err != nil {
		return nil, utils.NewInternalServerError("failed to update referral partner")
	}
	return partner, nil
}

// DeletePartner removes a partner and, through the schema, its requests.
// Admin only.
func (s *Service) DeletePartner(ctx context.Context, partnerID uint) error {
	if _, err := s.loadPartner(ctx, partnerID); err != nil {
		return err
	}
	if err := s.partners.DeletePartner(ctx, partnerID); err != nil {
		return utils.NewInternalServerError("failed to delete referral partner")
	}
	s.logger.Info("Referral partner deleted", map[string]interface{}{"partner_id": partnerID})
	return nil
}

// UpdateRequestStatus moves a referral request. Admin only; any transition
// between valid statuses is allowed.
func (s *Service) UpdateRequestStatus(ctx context.Context, requestID uint, status, notes string) (*models.ReferralRequest, error) {
	if !ValidReferralStatus(status) {
		return nil, utils.NewValidationError("unknown referral status: " + status)
	}

	request, err := s.requests.GetRequest(ctx, requestID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load referral request")
	}
	if request == nil {
		return nil, utils.NewNotFoundError("referral request does not exist")
	}

	request.Status = status
	if notes != "" {
		request.Notes = notes
	}
	if err := s.requests.UpdateRequest(ctx, request); err != nil {
		return nil, utils.NewInternalServerError("failed to update referral request")
	}
	return request, nil
}

// loadPartner fetches a partner for admin edits, active or not.
func (s *Service) loadPartner(ctx context.Context, partnerID uint) (*models.ReferralPartner, error) {
	partner, err := s.partners.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load referral partner")
	}
	if partner == nil {
		return nil, utils.NewNotFoundError("referral partner does not exist")
	}
	return partner, nil
}
