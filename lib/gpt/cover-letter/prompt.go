package coverletterhandler

import (
	"fmt"
	"strings"

	gptmodels "resume-builder-backend/models/api/gpt"
)

const coverLetterPromptTpl = `
You are an expert career coach and professional cover letter writer.

Write a personalized, professional cover letter for the role of "%s" at "%s".

Constraints:
- Length: 300 to 400 words (strict).
- Tone: confident, warm, and tailored to the company/role.
- Content: must be based ONLY on the resume summary provided (do not invent employers, degrees, certifications, or metrics).
- Formatting: plain text only, clean paragraphs, no markdown, no bullet lists, no headings, no code fences.
- Include a clear opening, 1-2 short body paragraphs showing fit, and a concise closing with a call to action.

Resume summary (source of truth):
%s

Return ONLY the final cover letter text.
`

func BuildPrompt(req gptmodels.CoverLetterRequest) string {
	return strings.TrimSpace(fmt.Sprintf(coverLetterPromptTpl, req.JobRole, req.CompanyName, req.ResumeSummary))
}
