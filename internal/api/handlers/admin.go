package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Elliot-87/YOUTHCENTRE/internal/accounts"
	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/internal/referrals"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// ApproveEmployerHandler flips an employer profile's approval flag.
func ApproveEmployerHandler(svc *accounts.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.ApprovalRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		profile, err := svc.ApproveEmployer(c.Request().Context(), userID, req.Approved)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, profile)
	}
}

// FeatureVacancyHandler flips a vacancy's featured flag.
func FeatureVacancyHandler(svc *jobs.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.FlagRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		vacancy, err := svc.SetFeatured(c.Request().Context(), id, req.Value)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, jobs.View(*vacancy))
	}
}

// ActivateVacancyHandler opens or closes a vacancy without deleting it.
func ActivateVacancyHandler(svc *jobs.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.FlagRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		vacancy, err := svc.SetActive(c.Request().Context(), id, req.Value)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, jobs.View(*vacancy))
	}
}

// CreatePartnerHandler adds a referral partner to the directory.
func CreatePartnerHandler(svc *referrals.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ReferralPartnerRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		partner, err := svc.CreatePartner(c.Request().Context(), req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusCreated, partner)
	}
}

// UpdatePartnerHandler edits a referral partner.
func UpdatePartnerHandler(svc *referrals.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.ReferralPartnerRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		partner, err := svc.UpdatePartner(c.Request().Context(), id, req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, partner)
	}
}

// ActivatePartnerHandler hides or restores a partner in the directory.
func ActivatePartnerHandler(svc *referrals.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.FlagRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		partner, err := svc.SetPartnerActive(c.Request().Context(), id, req.Value)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, partner)
	}
}

// DeletePartnerHandler removes a partner and its requests.
func DeletePartnerHandler(svc *referrals.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		if err := svc.DeletePartner(c.Request().Context(), id); err != nil {
			return renderError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// UpdateReferralStatusHandler moves a referral request and records notes.
func UpdateReferralStatusHandler(svc *referrals.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.StatusUpdateRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		request, err := svc.UpdateRequestStatus(c.Request().Context(), id, req.Status, req.Notes)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, request)
	}
}
