package resumehandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	geminiclient "resume-builder-backend/lib/gpt/gemini-client"
	"resume-builder-backend/lib/utils/metrics"
	gptmodels "resume-builder-backend/models/api/gpt"
)

const feature = "resume"

type Provider interface {
	GenerateResume(ctx context.Context, body map[string]interface{}) (resp gptmodels.ResumeResponse, err error)
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

func (i impl) GenerateResume(ctx context.Context, body map[string]interface{}) (resp gptmodels.ResumeResponse, err error) {
	defer func() { metrics.ObserveGeneration(feature, err) }()
	req, err := gptmodels.ParseResumeRequest(body)
	if err != nil {
		return resp, err
	}
	resp.Resume, err = i.gemini.Generate(ctx, BuildPrompt(req))
	if err != nil {
		log.
			WithField("job_role", req.JobRole).
			WithError(err).
			Error("ошибка генерации резюме")
		return resp, err
	}
	return resp, nil
}
