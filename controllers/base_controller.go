package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	apperrors "resume-builder-backend/lib/utils/app-errors"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return apperrors.NewValidation("Invalid JSON body")
	}
	return nil
}

// JSONBody reads the request body as a JSON object. An empty body or a
// non-JSON content type yields an empty object, so required field checks
// report what is missing.
func (c *BaseAPIController) JSONBody(ctx *fiber.Ctx) (map[string]interface{}, error) {
	body := make(map[string]interface{})
	if len(ctx.Body()) == 0 {
		return body, nil
	}
	contentType := strings.ToLower(string(ctx.Request().Header.ContentType()))
	if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		return body, nil
	}
	if err := c.BodyParser(ctx, &body); err != nil {
		return nil, err
	}
	if body == nil {
		body = make(map[string]interface{})
	}
	return body, nil
}
