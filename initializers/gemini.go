package initializers

import (
	log "github.com/sirupsen/logrus"
	"resume-builder-backend/config"
	geminiclient "resume-builder-backend/lib/gpt/gemini-client"
)

// InitGemini only prepares the client, the provider handle is built on the
// first generation request. A missing key is reported there, not at startup.
func InitGemini() {
	geminiclient.Instance = geminiclient.NewClient(
		config.Conf.Gemini.APIKey,
		config.Conf.Gemini.Model,
		config.Conf.Gemini.BaseURL,
	)
	if config.Conf.Gemini.APIKey == "" {
		log.Warn("GEMINI_API_KEY не задан, запросы генерации будут завершаться ошибкой")
		return
	}
	log.WithField("model", config.Conf.Gemini.Model).Info("клиент Gemini настроен")
}
