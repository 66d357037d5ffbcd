package http

import (
	"errors"
	"net/http"

	"tableorders/internal/generated/servers"
	"tableorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors to HTTP responses.
func (s *Server) writeError(ctx echo.Context, err error) error {
	reqCtx := ctx.Request().Context()
	body := servers.Error{Message: err.Error()}

	var validationErr *errs.ValidationError
	switch {
	case errors.As(err, &validationErr):
		reason := string(validationErr.Reason)
		body.Code = http.StatusUnprocessableEntity
		body.Reason = &reason
	case errors.Is(err, errs.ErrIllegalTransition):
		s.logger.WarnContext(reqCtx, "illegal status transition rejected",
			"path", ctx.Request().URL.Path,
			"error", err,
		)
		body.Code = http.StatusConflict
	case errors.Is(err, errs.ErrPersistence):
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			body.Code = http.StatusConflict
			break
		}
		s.logger.ErrorContext(reqCtx, "order store unavailable", "error", err)
		body.Code = http.StatusServiceUnavailable
		body.Message = "order store is unavailable, please retry"
	case errors.Is(err, errs.ErrVersionIsInvalid):
		body.Code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		body.Code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		body.Code = http.StatusBadRequest
	default:
		s.logger.ErrorContext(reqCtx, "request failed", "error", err)
		body.Code = http.StatusInternalServerError
		body.Message = http.StatusText(http.StatusInternalServerError)
	}

	return ctx.JSON(body.Code, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
