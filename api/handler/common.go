package handler

import (
	"errors"
	"net/http"

	"medstock/internal/dto"
	"medstock/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// writeServiceError maps the service sentinels onto HTTP statuses; anything
// unrecognized is logged and surfaced as a generic 500.
func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrSamePassword),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrInvalidDetails),
		errors.Is(err, service.ErrFileRequired),
		errors.Is(err, service.ErrInvalidFileType),
		errors.Is(err, service.ErrFileTooLarge):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, service.ErrAccountDisabled):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrMedicineNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
		return writeError(c, status, "Something went wrong!")
	}
	return writeError(c, status, err.Error())
}

// bindAndValidate decodes the request into target and runs the validator,
// writing the joined 400 response itself. Callers stop when ok is false.
func bindAndValidate(c echo.Context, validate *validator.Validate, target any) (ok bool, err error) {
	if err := c.Bind(target); err != nil {
		return false, writeError(c, http.StatusBadRequest, "Invalid request!")
	}
	if validate != nil {
		if err := validate.Struct(target); err != nil {
			return false, writeError(c, http.StatusBadRequest, dto.ValidationMessage(err))
		}
	}
	return true, nil
}

// NewHTTPErrorHandler renders every error echo sees as {"error": message},
// including unmatched routes.
func NewHTTPErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Something went wrong!"

		var httpError *echo.HTTPError
		if errors.As(err, &httpError) {
			status = httpError.Code
			if text, ok := httpError.Message.(string); ok {
				message = text
			}
			if status == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
				message = "Page not found!"
			}
			if status == http.StatusMethodNotAllowed {
				status = http.StatusNotFound
				message = "Page not found!"
			}
		} else if logger != nil {
			logger.WithError(err).WithField("uri", c.Request().RequestURI).Error("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, map[string]string{"error": message})
	}
}
