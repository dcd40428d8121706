package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"deliverysys/internal/pkg/errs"
)

// ErrorResponse is the JSON error envelope returned on every failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps application errors to HTTP statuses. Upstream failures
// carry the provider's raw payload through so callers can inspect it.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrPreconditionFailed):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamFailure):
		return writeUpstreamError(ctx, err)
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func writeUpstreamError(ctx echo.Context, err error) error {
	var upstream *errs.UpstreamError
	if errors.As(err, &upstream) && len(upstream.Payload) > 0 {
		return ctx.Blob(http.StatusBadGateway, echo.MIMEApplicationJSON, upstream.Payload)
	}

	return ctx.JSON(http.StatusBadGateway, ErrorResponse{
		Code:    http.StatusBadGateway,
		Message: err.Error(),
	})
}
