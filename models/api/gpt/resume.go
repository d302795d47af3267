package gptmodels

import (
	"resume-builder-backend/lib/utils/payload"
)

var (
	resumeFields         = []string{"fullName", "jobRole", "experience", "skills"}
	resumeOptionalFields = []string{"education", "achievements"}
)

type ResumeRequest struct {
	FullName     string `json:"fullName"`               // ФИО кандидата
	JobRole      string `json:"jobRole"`                // Целевая должность
	Experience   string `json:"experience"`             // Опыт работы в свободной форме
	Skills       string `json:"skills"`                 // Навыки
	Education    string `json:"education,omitempty"`    // Образование
	Achievements string `json:"achievements,omitempty"` // Достижения
}

func ParseResumeRequest(body map[string]interface{}) (req ResumeRequest, err error) {
	fields, err := payload.Validate(body, resumeFields, resumeOptionalFields...)
	if err != nil {
		return req, err
	}
	return ResumeRequest{
		FullName:     fields["fullName"],
		JobRole:      fields["jobRole"],
		Experience:   fields["experience"],
		Skills:       fields["skills"],
		Education:    fields["education"],
		Achievements: fields["achievements"],
	}, nil
}

type ResumeResponse struct {
	Resume string `json:"resume"` // сгенерированный текст резюме
}
