package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Elliot-87/YOUTHCENTRE/internal/api/middleware"
	"github.com/Elliot-87/YOUTHCENTRE/internal/referrals"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// ListPartnersHandler serves the public partner directory, optionally
// narrowed by the category query parameter.
func ListPartnersHandler(svc *referrals.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		partners, err := svc.ListPartners(c.Request().Context(), c.QueryParam("category"))
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, partners)
	}
}

// GetPartnerHandler serves one active partner.
func GetPartnerHandler(svc *referrals.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		partner, err := svc.Partner(c.Request().Context(), id)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, partner)
	}
}

// RequestReferralHandler opens a referral request for the authenticated
// jobseeker.
func RequestReferralHandler(svc *referrals.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		partnerID, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.ReferralRequestInput
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		request, err := svc.RequestReferral(c.Request().Context(), middleware.UserID(c), partnerID, req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusCreated, request)
	}
}

// MyReferralsHandler lists the authenticated jobseeker's referral requests.
func MyReferralsHandler(svc *referrals.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requests, err := svc.MyRequests(c.Request().Context(), middleware.UserID(c))
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, requests)
	}
}
