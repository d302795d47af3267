package gptmodels

import (
	"resume-builder-backend/lib/utils/payload"
)

var coverLetterFields = []string{"jobRole", "companyName", "resumeSummary"}

type CoverLetterRequest struct {
	JobRole       string `json:"jobRole"`       // Должность, на которую составляется письмо
	CompanyName   string `json:"companyName"`   // Название компании
	ResumeSummary string `json:"resumeSummary"` // Краткое резюме кандидата, единственный источник фактов
}

func ParseCoverLetterRequest(body map[string]interface{}) (req CoverLetterRequest, err error) {
	fields, err := payload.Validate(body, coverLetterFields)
	if err != nil {
		return req, err
	}
	return CoverLetterRequest{
		JobRole:       fields["jobRole"],
		CompanyName:   fields["companyName"],
		ResumeSummary: fields["resumeSummary"],
	}, nil
}
