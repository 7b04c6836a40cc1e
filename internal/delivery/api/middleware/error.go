package middleware

import (
	"log/slog"
	"net/http"

	"ondeta/internal/delivery/api/response"
	deliverycontext "ondeta/internal/delivery/context"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/errors"

	"github.com/labstack/echo/v4"
)

// httpErrorCode is reported for errors raised by echo itself (404 route, 405, body limit).
const httpErrorCode = "HTTP_ERROR"

// ErrorMiddleware renders every error that reaches echo as the standard envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors keep
// their own status and code, echo errors map to HTTP_ERROR, and anything else
// is a logged INTERNAL_ERROR.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message, isString := httpErr.Message.(string)
		if !isString {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, httpErrorCode, message, nil)

		return
	}

	m.logUnhandled(c, err)
	internal := domainerrors.ErrInternalError
	_ = response.InternalServerError(c, internal.ErrorCode(), internal.Message(), err.Error())
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("route", c.Path()),
	)
}
