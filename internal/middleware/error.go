package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusMessages are the fixed strings callers see for each failure
// status; internal error details never reach the response body.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not Found",
	http.StatusUnprocessableEntity: "Unprocessable Entity",
	http.StatusInternalServerError: "Internal Server Error, Please Try Again Later",
}

// ErrorHandler is the centralized error responder, installed as the
// fiber app's ErrorHandler. Domain errors map through their code,
// framework errors keep their status, everything else is a 500. All of
// them render the same fixed-shape envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := http.StatusInternalServerError

		var domainErr *domain.DomainError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &domainErr):
			status = mapDomainErrorToHTTPStatus(domainErr)
			logger.Get().Warn("Request failed",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
				zap.Error(domainErr.Err),
			)
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			logger.Get().Warn("Request rejected",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.Int("status", status),
				zap.String("message", fiberErr.Message),
			)
		default:
			logger.Get().Error("Unhandled error",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.Error(err),
			)
		}

		message, ok := statusMessages[status]
		if !ok {
			message = http.StatusText(status)
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Success: false,
			Error:   status,
			Message: message,
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain error codes to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrBadRequest:
		return http.StatusBadRequest
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
