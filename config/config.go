package config

import (
	"strings"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

const EnvProduction = "production"

type Configuration struct {
	App struct {
		ListenAddr     string `default:"" env:"APP_HOST"`
		Port           int    `default:"5000" env:"PORT"`
		Environment    string `default:"development" env:"NODE_ENV"`
		TrustProxy     *bool  `default:"false" env:"TRUST_PROXY"`
		CorsOrigins    string `default:"" env:"CORS_ORIGINS"`
		BodyLimit      int64  `default:"1048576" env:"BODY_LIMIT"`
		ErrNotifyAddr  string `default:"" env:"ERR_NOTIFY_ADDR"`
		SwaggerEnabled *bool  `default:"true" env:"SWAGGER_ENABLED"`
	}
	Gemini struct {
		// no default: the key must come from the environment or config.yml
		APIKey  string `default:"" env:"GEMINI_API_KEY"`
		Model   string `default:"gemini-2.5-flash" env:"GEMINI_MODEL"`
		BaseURL string `default:"" env:"GEMINI_BASE_URL"`
	}
}

func (c *Configuration) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// TrustProxyEnabled mirrors the deployment rule: production always sits behind a proxy.
func (c *Configuration) TrustProxyEnabled() bool {
	return c.IsProduction() || (c.App.TrustProxy != nil && *c.App.TrustProxy)
}

// AllowedOrigins splits CORS_ORIGINS, empty list means any origin.
func (c *Configuration) AllowedOrigins() []string {
	result := make([]string, 0)
	for _, origin := range strings.Split(c.App.CorsOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			result = append(result, origin)
		}
	}
	return result
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug(".env не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
