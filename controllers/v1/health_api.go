package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"resume-builder-backend/controllers"
	apimodels "resume-builder-backend/models/api"
)

const apiName = "AI Resume & Portfolio Builder API"

var startedAt = time.Now()

type healthApiController struct {
	controllers.BaseAPIController
	environment string
}

type HealthResponse struct {
	Status        string `json:"status"`         // ok
	Environment   string `json:"environment"`    // окружение (NODE_ENV)
	UptimeSeconds int64  `json:"uptime_seconds"` // время работы процесса
	Timestamp     string `json:"timestamp"`      // время ответа, RFC3339
}

type InfoResponse struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

func InitHealthApiRouters(app *fiber.App, api fiber.Router, environment string) {
	controller := healthApiController{environment: environment}
	app.Get("/", controller.Info)
	api.Get("health", controller.Health)
}

// @Summary Информация о сервисе
// @Tags Health
// @Success 200 {object} apiv1.InfoResponse
// @router / [get]
func (c *healthApiController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(InfoResponse{
		Name:        apiName,
		Status:      "running",
		Environment: c.environment,
	})
}

// @Summary Проверка доступности
// @Tags Health
// @Success 200 {object} apimodels.Response{data=apiv1.HealthResponse}
// @router /api/health [get]
func (c *healthApiController) Health(ctx *fiber.Ctx) error {
	now := time.Now()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(HealthResponse{
		Status:        "ok",
		Environment:   c.environment,
		UptimeSeconds: int64(now.Sub(startedAt).Seconds()),
		Timestamp:     now.UTC().Format(time.RFC3339),
	}))
}
