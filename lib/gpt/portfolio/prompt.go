package portfoliohandler

import (
	"fmt"
	"strings"

	gptmodels "resume-builder-backend/models/api/gpt"
)

const portfolioPromptTpl = `
You are a professional writer who crafts personal portfolio websites.

Write the portfolio copy for %s, a %s.

Constraints:
- Length: 250 to 450 words.
- Tone: professional, engaging, first person.
- Content: describe ONLY the projects and skills provided (do not invent clients, employers, awards, or metrics).
- Formatting: plain text only, no markdown, no bullet lists, no code fences.
- Structure: a short introduction%s, one paragraph per highlighted project, and a closing line inviting visitors to get in touch.

Projects (source of truth):
%s

Skills:
%s
%s
Return ONLY the final portfolio text.
`

func BuildPrompt(req gptmodels.PortfolioRequest) string {
	intro := ""
	bio := ""
	if req.Bio != "" {
		intro = " based on the bio below"
		bio = fmt.Sprintf("\nBio:\n%s\n", req.Bio)
	}
	return strings.TrimSpace(fmt.Sprintf(portfolioPromptTpl,
		req.FullName, req.JobRole, intro, req.Projects, req.Skills, bio))
}
