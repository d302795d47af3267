package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apperrors "resume-builder-backend/lib/utils/app-errors"
	apimodels "resume-builder-backend/models/api"
)

const msgInternalError = "Internal Server Error"

// ErrorHandler is the only place where errors become HTTP responses.
// In production the error detail is never sent to the client.
func ErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := msgInternalError
		detail := ""
		var fiberErr *fiber.Error
		if appErr, ok := apperrors.From(err); ok {
			status = appErr.Status
			message = appErr.Message
			if cause := errors.Unwrap(appErr); cause != nil {
				detail = fmt.Sprintf("%+v", cause)
			}
		} else if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
		} else {
			detail = fmt.Sprintf("%+v", err)
			if !production {
				message = err.Error()
			}
		}

		entry := log.
			WithError(err).
			WithField("status", status).
			WithField("method", c.Method()).
			WithField("path", c.OriginalURL())
		if status >= fiber.StatusInternalServerError {
			entry.Error("ошибка обработки запроса")
		} else {
			entry.Warn("запрос отклонен")
		}

		resp := apimodels.NewError(message)
		if !production {
			resp.Detail = detail
		}
		return c.Status(status).JSON(resp)
	}
}

func NotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return apperrors.NewNotFound(fmt.Sprintf("Not Found - %s", c.OriginalURL()))
	}
}
