package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	apimodels "resume-builder-backend/models/api"
)

var notifyClient = &http.Client{Timeout: 10 * time.Second}

// ErrNotify posts every 5xx response to addr. Must be registered after the
// request logger so the error handler has already written the response.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			err = nil
		}
		statusCode := c.Response().StatusCode()

		if statusCode >= http.StatusInternalServerError {
			body := string(c.Response().Body())

			var data apimodels.Response
			if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
				log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
			}

			// ctx strings are reused after the handler returns
			method := strings.Clone(c.Method())
			path := strings.Clone(c.OriginalURL())
			if r := c.Route(); r != nil && r.Path != "/" {
				path = r.Path
			}

			msg := data.Message
			if msg == "" {
				msg = body
			}

			go func() {
				payload := fmt.Sprintf(
					`{"code":%d,"method":%q,"path":%q,"error":%q}`,
					statusCode, method, path, msg)
				resp, reqErr := notifyClient.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(payload))
				if reqErr != nil {
					log.WithError(reqErr).Warn("error sending error notification")
					return
				}
				_ = resp.Body.Close()
			}()
		}

		return err
	}
}
