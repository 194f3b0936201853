package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Elliot-87/YOUTHCENTRE/internal/advisory"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// AdvisoryHomeHandler serves the advisory landing page.
func AdvisoryHomeHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		home, err := svc.Home(c.Request().Context())
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, home)
	}
}

// AdvisoryCategoryHandler serves a category and its published articles.
func AdvisoryCategoryHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		category, articles, err := svc.CategoryArticles(c.Request().Context(), id)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"category": category,
			"articles": articles,
		})
	}
}

// AdvisoryArticleHandler serves an article with its related reading.
func AdvisoryArticleHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		resp, err := svc.Article(c.Request().Context(), id)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateAdvisoryCategoryHandler adds a category. Admin only.
func CreateAdvisoryCategoryHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.AdvisoryCategoryRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		category, err := svc.CreateCategory(c.Request().Context(), req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusCreated, category)
	}
}

// UpdateAdvisoryCategoryHandler edits a category. Admin only.
func UpdateAdvisoryCategoryHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.AdvisoryCategoryRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		category, err := svc.UpdateCategory(c.Request().Context(), id, req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, category)
	}
}

// DeleteAdvisoryCategoryHandler removes a category and its articles. Admin
// only.
func DeleteAdvisoryCategoryHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		if err := svc.DeleteCategory(c.Request().Context(), id); err != nil {
			return renderError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// CreateAdvisoryArticleHandler adds an article. Admin only.
func CreateAdvisoryArticleHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.AdvisoryArticleRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		article, err := svc.CreateArticle(c.Request().Context(), req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusCreated, article)
	}
}

// UpdateAdvisoryArticleHandler edits an article. Admin only.
func UpdateAdvisoryArticleHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.AdvisoryArticleRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		article, err := svc.UpdateArticle(c.Request().Context(), id, req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, article)
	}
}

// PublishAdvisoryArticleHandler flips an article's published flag. Admin
// only.
func PublishAdvisoryArticleHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		var req models.FlagRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		article, err := svc.SetPublished(c.Request().Context(), id, req.Value)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, article)
	}
}

// DeleteAdvisoryArticleHandler removes an article. Admin only.
func DeleteAdvisoryArticleHandler(svc *advisory.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return renderError(c, err)
		}

		if err := svc.DeleteArticle(c.Request().Context(), id); err != nil {
			return renderError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
