package resumehandler

import (
	"fmt"
	"strings"

	gptmodels "resume-builder-backend/models/api/gpt"
)

const resumePromptTpl = `
You are an expert career coach and professional resume writer.

Write a polished, ATS-friendly resume for %s, targeting the role of "%s".

Constraints:
- Length: 350 to 600 words.
- Tone: concise, results-oriented, active voice.
- Content: use ONLY the facts provided below (do not invent employers, dates, degrees, certifications, or metrics).
- Formatting: plain text only, no markdown, no tables, no code fences. Use simple section titles in capital letters (SUMMARY, EXPERIENCE, SKILLS%s) followed by short lines.
- Open with a 2-3 sentence professional summary tailored to the target role.

Experience (source of truth):
%s

Skills:
%s
%s
Return ONLY the final resume text.
`

func BuildPrompt(req gptmodels.ResumeRequest) string {
	sections := ""
	extra := ""
	if req.Education != "" {
		sections += ", EDUCATION"
		extra += fmt.Sprintf("\nEducation:\n%s\n", req.Education)
	}
	if req.Achievements != "" {
		sections += ", ACHIEVEMENTS"
		extra += fmt.Sprintf("\nAchievements:\n%s\n", req.Achievements)
	}
	return strings.TrimSpace(fmt.Sprintf(resumePromptTpl,
		req.FullName, req.JobRole, sections, req.Experience, req.Skills, extra))
}
