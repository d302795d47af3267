package apiv1

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"resume-builder-backend/controllers"
	resumehandler "resume-builder-backend/lib/gpt/resume"
	apimodels "resume-builder-backend/models/api"
)

type resumeApiController struct {
	controllers.BaseAPIController
}

func InitResumeApiRouters(api fiber.Router) {
	controller := resumeApiController{}
	api.Post("resume", controller.Generate)
}

// @Summary Сгенерировать резюме
// @Tags Resume
// @Param	body				body		gptmodels.ResumeRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=gptmodels.ResumeResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/resume [post]
func (c *resumeApiController) Generate(ctx *fiber.Ctx) error {
	body, err := c.JSONBody(ctx)
	if err != nil {
		return err
	}
	resp, err := resumehandler.Instance.GenerateResume(context.Background(), body)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
