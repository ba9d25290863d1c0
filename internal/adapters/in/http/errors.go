package http

import (
	"errors"
	"net/http"

	"catering/internal/core/domain/model/quote"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors to HTTP statuses and renders the uniform
// error body. Validation failures map to 400, authorization failures to 403,
// missing objects to 404, and transition or version conflicts to 409.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, quote.ErrBidAlreadyOpen):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
