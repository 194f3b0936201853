// Package handlers contains the HTTP handlers. Each handler binds and
// validates its request, delegates to a service, and renders JSON; all
// domain rules live behind the service boundary.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

var validate = validator.New()

// requestID fetches the id the validation middleware assigned.
func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	if id == "" {
		id = utils.GenerateRequestID()
	}
	return id
}

// renderError maps a service error onto the wire. CustomError codes pass
// through; anything else is a 500.
func renderError(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"
	if cerr, ok := utils.AsCustomError(err); ok {
		code = cerr.Code
		message = cerr.Error()
	}

	return c.JSON(code, models.ErrorResponse{
		Error:     errorSlug(code),
		Message:   message,
		RequestID: requestID(c),
		Timestamp: time.Now(),
	})
}

func errorSlug(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusUnauthorized:
		return "authentication_failed"
	case http.StatusForbidden:
		return "permission_denied"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "internal_error"
	}
}

// bindAndValidate decodes the request body into req and runs the struct
// validators.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return utils.NewBadRequestError("Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.NewValidationError(err.Error())
	}
	return nil
}

// pathID parses the named path parameter as an entity id.
func pathID(c echo.Context, name string) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(c).Uint(name, &id).BindError(); err != nil || id == 0 {
		return 0, utils.NewBadRequestError("Invalid " + name + " parameter")
	}
	return id, nil
}
