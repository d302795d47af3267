package initializers

import (
	"resume-builder-backend/config"
	"resume-builder-backend/fiberlog"
	coverletterhandler "resume-builder-backend/lib/gpt/cover-letter"
	geminiclient "resume-builder-backend/lib/gpt/gemini-client"
	portfoliohandler "resume-builder-backend/lib/gpt/portfolio"
	resumehandler "resume-builder-backend/lib/gpt/resume"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitGemini()
	coverletterhandler.NewHandler(geminiclient.Instance)
	resumehandler.NewHandler(geminiclient.Instance)
	portfoliohandler.NewHandler(geminiclient.Instance)
}
