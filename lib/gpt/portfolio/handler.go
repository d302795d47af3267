package portfoliohandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	geminiclient "resume-builder-backend/lib/gpt/gemini-client"
	"resume-builder-backend/lib/utils/metrics"
	gptmodels "resume-builder-backend/models/api/gpt"
)

const feature = "portfolio"

type Provider interface {
	GeneratePortfolio(ctx context.Context, body map[string]interface{}) (resp gptmodels.PortfolioResponse, err error)
}

type impl struct {
	gemini geminiclient.Provider
}

var Instance Provider

func NewHandler(gemini geminiclient.Provider) {
	Instance = impl{
		gemini: gemini,
	}
}

func (i impl) GeneratePortfolio(ctx context.Context, body map[string]interface{}) (resp gptmodels.PortfolioResponse, err error) {
	defer func() { metrics.ObserveGeneration(feature, err) }()
	req, err := gptmodels.ParsePortfolioRequest(body)
	if err != nil {
		return resp, err
	}
	resp.Portfolio, err = i.gemini.Generate(ctx, BuildPrompt(req))
	if err != nil {
		log.
			WithField("job_role", req.JobRole).
			WithError(err).
			Error("ошибка генерации портфолио")
		return resp, err
	}
	return resp, nil
}
