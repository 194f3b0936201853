package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Elliot-87/YOUTHCENTRE/internal/api/middleware"
	"github.com/Elliot-87/YOUTHCENTRE/internal/applications"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// ApplyHandler submits an application for the authenticated jobseeker.
func ApplyHandler(svc *applications.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		vacancyID, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.ApplyRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		app, err := svc.Apply(c.Request().Context(), middleware.UserID(c), vacancyID, req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusCreated, app)
	}
}

// MyApplicationsHandler lists the authenticated jobseeker's applications.
func MyApplicationsHandler(svc *applications.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		apps, err := svc.ListForSeeker(c.Request().Context(), middleware.UserID(c))
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, apps)
	}
}

// VacancyApplicationsHandler lists a vacancy's applications for its owner.
func VacancyApplicationsHandler(svc *applications.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		vacancyID, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		apps, err := svc.ListForVacancy(c.Request().Context(), middleware.UserID(c), vacancyID)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, apps)
	}
}

// UpdateApplicationStatusHandler moves an application through review.
// Admin only.
func UpdateApplicationStatusHandler(svc *applications.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		applicationID, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.StatusUpdateRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		app, err := svc.UpdateStatus(c.Request().Context(), applicationID, req.Status)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, app)
	}
}
