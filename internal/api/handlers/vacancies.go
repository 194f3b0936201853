package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Elliot-87/YOUTHCENTRE/internal/api/middleware"
	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// HomeHandler serves the home-page vacancy section.
func HomeHandler(svc *jobs.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		home, err := svc.FeaturedOrRecent(c.Request().Context())
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, home)
	}
}

// FeedHandler serves the newest active vacancies as a flat feed.
func FeedHandler(svc *jobs.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		views, err := svc.Feed(c.Request().Context())
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, models.VacancyListResponse{
			Vacancies: views,
			Count:     len(views),
		})
	}
}

// ListVacanciesHandler serves the filtered public listing.
func ListVacanciesHandler(svc *jobs.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		filters := jobs.ListFilters{
			JobType:  c.QueryParam("job_type"),
			Location: c.QueryParam("location"),
		}

		views, err := svc.ListActive(c.Request().Context(), filters)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, models.VacancyListResponse{
			Vacancies: views,
			Count:     len(views),
		})
	}
}

// GetVacancyHandler serves a single vacancy detail.
func GetVacancyHandler(svc *jobs.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		vacancy, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, jobs.View(*vacancy))
	}
}

// CreateVacancyHandler posts a new vacancy for the authenticated employer.
// Accepts a multipart form so an attachment can ride along.
func CreateVacancyHandler(svc *jobs.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, att, err := bindVacancyForm(c)
		if err != nil {
			return renderError(c, err)
		}

		vacancy, err := svc.Create(c.Request().Context(), middleware.UserID(c), req, att)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusCreated, jobs.View(*vacancy))
	}
}

// EditVacancyHandler updates a vacancy owned by the authenticated employer.
func EditVacancyHandler(svc *jobs.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		req, att, err := bindVacancyForm(c)
		if err != nil {
			return renderError(c, err)
		}

		vacancy, err := svc.Edit(c.Request().Context(), middleware.UserID(c), id, req, att)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, jobs.View(*vacancy))
	}
}

// DeleteVacancyHandler removes a vacancy owned by the authenticated
// employer, along with its applications and attachment.
func DeleteVacancyHandler(svc *jobs.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		if err := svc.Delete(c.Request().Context(), middleware.UserID(c), id); err != nil {
			return renderError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// bindVacancyForm decodes the vacancy fields plus the optional multipart
// attachment part named "attachment".
func bindVacancyForm(c echo.Context) (models.VacancyRequest, *jobs.AttachmentUpload, error) {
	var req models.VacancyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return req, nil, err
	}

	fh, err := c.FormFile("attachment")
	if err != nil {
		// No attachment part is fine; the engine decides whether one is
		// required.
		return req, nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return req, nil, err
	}
	c.Response().After(func() { f.Close() })

	return req, &jobs.AttachmentUpload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Reader:   f,
	}, nil
}
