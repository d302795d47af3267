package coverletterhandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	pdfexport "resume-builder-backend/lib/export/pdf"
	geminiclient "resume-builder-backend/lib/gpt/gemini-client"
	"resume-builder-backend/lib/utils/metrics"
	gptmodels "resume-builder-backend/models/api/gpt"
)

const feature = "coverletter"

type Provider interface {
	GenerateCoverLetter(ctx context.Context, body map[string]interface{}) (text string, err error)
	GenerateCoverLetterPDF(ctx context.Context, body map[string]interface{}) (pdfFile []byte, err error)
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

func (i impl) GenerateCoverLetter(ctx context.Context, body map[string]interface{}) (text string, err error) {
	defer func() { metrics.ObserveGeneration(feature, err) }()
	req, err := gptmodels.ParseCoverLetterRequest(body)
	if err != nil {
		return "", err
	}
	text, err = i.gemini.Generate(ctx, BuildPrompt(req))
	if err != nil {
		log.
			WithField("job_role", req.JobRole).
			WithField("company_name", req.CompanyName).
			WithError(err).
			Error("ошибка генерации сопроводительного письма")
		return "", err
	}
	return text, nil
}

func (i impl) GenerateCoverLetterPDF(ctx context.Context, body map[string]interface{}) (pdfFile []byte, err error) {
	req, err := gptmodels.ParseCoverLetterRequest(body)
	if err != nil {
		return nil, err
	}
	text, err := i.GenerateCoverLetter(ctx, body)
	if err != nil {
		return nil, err
	}
	pdfFile, err = pdfexport.RenderText(pdfexport.Document{
		Title:    req.JobRole + " - " + req.CompanyName,
		Subtitle: "Cover letter",
		Body:     text,
	})
	if err != nil {
		log.WithError(err).Error("ошибка формирования PDF сопроводительного письма")
		return nil, err
	}
	return pdfFile, nil
}
