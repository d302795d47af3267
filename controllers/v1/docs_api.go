package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
	"resume-builder-backend/controllers"
	"resume-builder-backend/docs"
)

type docsApiController struct {
	controllers.BaseAPIController
}

func InitDocsApiRouters(api fiber.Router) {
	controller := docsApiController{}
	api.Get("docs/openapi.json", controller.OpenAPI)
}

// OpenAPI отдает описание API, собранное swag
func (c *docsApiController) OpenAPI(ctx *fiber.Ctx) error {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return ctx.SendString(doc)
}
