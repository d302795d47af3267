package apiv1

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"resume-builder-backend/controllers"
	coverletterhandler "resume-builder-backend/lib/gpt/cover-letter"
)

type coverLetterApiController struct {
	controllers.BaseAPIController
}

func InitCoverLetterApiRouters(api fiber.Router) {
	controller := coverLetterApiController{}
	api.Route("coverletter", func(coverLetterRoute fiber.Router) {
		coverLetterRoute.Post("", controller.Generate)
		coverLetterRoute.Post("pdf", controller.GeneratePDF)
	})
}

// @Summary Сгенерировать сопроводительное письмо
// @Tags CoverLetter
// @Description Письмо 300-400 слов, простой текст
// @Param	body				body		gptmodels.CoverLetterRequest	true	"request body"
// @Success 200 {string} string
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/coverletter [post]
func (c *coverLetterApiController) Generate(ctx *fiber.Ctx) error {
	body, err := c.JSONBody(ctx)
	if err != nil {
		return err
	}
	// the provider call is not tied to the client connection
	text, err := coverletterhandler.Instance.GenerateCoverLetter(context.Background(), body)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.Status(fiber.StatusOK).SendString(strings.TrimSpace(text))
}

// @Summary Сгенерировать сопроводительное письмо в PDF
// @Tags CoverLetter
// @Param	body				body		gptmodels.CoverLetterRequest	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/coverletter/pdf [post]
func (c *coverLetterApiController) GeneratePDF(ctx *fiber.Ctx) error {
	body, err := c.JSONBody(ctx)
	if err != nil {
		return err
	}
	pdfFile, err := coverletterhandler.Instance.GenerateCoverLetterPDF(context.Background(), body)
	if err != nil {
		return err
	}
	ctx.Attachment("cover-letter.pdf")
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}
