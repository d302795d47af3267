package middleware

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	apperrors "resume-builder-backend/lib/utils/app-errors"
)

func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limit <= 0 {
			return c.Next()
		}
		size := int64(len(c.Body()))
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength != "" && contentLength != "0" {
			declared, err := strconv.ParseInt(contentLength, 10, 64)
			if err == nil && declared > size {
				size = declared
			}
		}
		if size > limit {
			return apperrors.NewTooLarge(fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", limit))
		}
		return c.Next()
	}
}
