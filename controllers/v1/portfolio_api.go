package apiv1

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"resume-builder-backend/controllers"
	portfoliohandler "resume-builder-backend/lib/gpt/portfolio"
	apimodels "resume-builder-backend/models/api"
)

type portfolioApiController struct {
	controllers.BaseAPIController
}

func InitPortfolioApiRouters(api fiber.Router) {
	controller := portfolioApiController{}
	api.Post("portfolio", controller.Generate)
}

// @Summary Сгенерировать текст портфолио
// @Tags Portfolio
// @Param	body				body		gptmodels.PortfolioRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=gptmodels.PortfolioResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/portfolio [post]
func (c *portfolioApiController) Generate(ctx *fiber.Ctx) error {
	body, err := c.JSONBody(ctx)
	if err != nil {
		return err
	}
	resp, err := portfoliohandler.Instance.GeneratePortfolio(context.Background(), body)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
