package gptmodels

import (
	"resume-builder-backend/lib/utils/payload"
)

var (
	portfolioFields         = []string{"fullName", "jobRole", "projects", "skills"}
	portfolioOptionalFields = []string{"bio"}
)

type PortfolioRequest struct {
	FullName string `json:"fullName"`      // ФИО автора портфолио
	JobRole  string `json:"jobRole"`       // Специализация
	Projects string `json:"projects"`      // Описание проектов
	Skills   string `json:"skills"`        // Навыки
	Bio      string `json:"bio,omitempty"` // О себе
}

func ParsePortfolioRequest(body map[string]interface{}) (req PortfolioRequest, err error) {
	fields, err := payload.Validate(body, portfolioFields, portfolioOptionalFields...)
	if err != nil {
		return req, err
	}
	return PortfolioRequest{
		FullName: fields["fullName"],
		JobRole:  fields["jobRole"],
		Projects: fields["projects"],
		Skills:   fields["skills"],
		Bio:      fields["bio"],
	}, nil
}

type PortfolioResponse struct {
	Portfolio string `json:"portfolio"` // сгенерированный текст портфолио
}
