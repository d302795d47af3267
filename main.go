package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"resume-builder-backend/config"
	apiv1 "resume-builder-backend/controllers/v1"
	"resume-builder-backend/docs"
	"resume-builder-backend/fiberlog"
	"resume-builder-backend/initializers"
	"resume-builder-backend/middleware"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	initializers.InitAllServices()

	app := newApp(config.Conf, initializers.LoggerConfig)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, ok := <-c; !ok {
			return
		}
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	log.
		WithField("environment", config.Conf.App.Environment).
		WithField("port", config.Conf.App.Port).
		Info("Server running")
	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	signal.Stop(c)
	close(c)
	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

func newApp(conf *config.Configuration, loggerConfig *fiberlog.Config) *fiber.App {
	fiberConfig := fiber.Config{
		AppName:      "resume-builder-backend",
		BodyLimit:    hardBodyLimit(conf.App.BodyLimit),
		ErrorHandler: middleware.ErrorHandler(conf.IsProduction()),
	}
	if conf.TrustProxyEnabled() {
		fiberConfig.ProxyHeader = fiber.HeaderXForwardedFor
	}
	app := fiber.New(fiberConfig)

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if loggerConfig != nil {
		app.Use(fiberlog.New(*loggerConfig))
	}
	if conf.App.ErrNotifyAddr != "" {
		app.Use(middleware.ErrNotify(conf.App.ErrNotifyAddr))
	}
	app.Use(fiberRecover.New())

	origins := conf.AllowedOrigins()
	app.Use(middleware.CorsOriginGuard(origins))
	app.Use(middleware.Cors(origins))
	app.Use(middleware.WithBodyLimit(conf.App.BodyLimit))

	if conf.App.SwaggerEnabled != nil && *conf.App.SwaggerEnabled {
		initSwagger(app)
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	//api
	api := app.Group("/api")
	apiv1.InitHealthApiRouters(app, api, conf.App.Environment)
	apiv1.InitResumeApiRouters(api)
	apiv1.InitPortfolioApiRouters(api)
	apiv1.InitCoverLetterApiRouters(api)
	apiv1.InitDocsApiRouters(api)

	// must stay last
	app.Use(middleware.NotFound())
	return app
}

func initSwagger(app *fiber.App) {
	if _, err := os.Stat(swaggerFile); err != nil {
		log.WithError(err).Warn("swagger.json не найден, /swagger отключен")
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		Path:     "swagger",
		FilePath: swaggerFile,
		Title:    docs.SwaggerInfo.Title,
	}))
}

// hardBodyLimit is the fasthttp cap, the configured limit is enforced with a
// JSON answer by middleware.WithBodyLimit below it.
func hardBodyLimit(limit int64) int {
	hard := 4 * limit
	if hard < fiber.DefaultBodyLimit {
		return fiber.DefaultBodyLimit
	}
	return int(hard)
}
