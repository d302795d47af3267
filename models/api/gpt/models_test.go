package gptmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequests(t *testing.T) {
	t.Run(`cover letter`, func(t *testing.T) {
		req, err := ParseCoverLetterRequest(map[string]interface{}{
			"jobRole":       " Backend Engineer ",
			"companyName":   "Acme",
			"resumeSummary": "5 years Node.js, led a team of 3 ",
		})
		require.Nil(t, err)
		require.Equal(t, CoverLetterRequest{
			JobRole:       "Backend Engineer",
			CompanyName:   "Acme",
			ResumeSummary: "5 years Node.js, led a team of 3",
		}, req)

		_, err = ParseCoverLetterRequest(map[string]interface{}{"jobRole": "", "companyName": "Acme", "resumeSummary": "x"})
		require.Equal(t, "Missing required fields: jobRole", err.Error())
	})

	t.Run(`resume`, func(t *testing.T) {
		req, err := ParseResumeRequest(map[string]interface{}{
			"fullName":   "Jane Doe",
			"jobRole":    "Data Engineer",
			"experience": "3 years at Initech",
			"skills":     "Go, SQL",
			"education":  " BSc Mathematics ",
		})
		require.Nil(t, err)
		require.Equal(t, "BSc Mathematics", req.Education)
		require.Equal(t, "", req.Achievements)

		_, err = ParseResumeRequest(map[string]interface{}{"jobRole": "x"})
		require.Equal(t, "Missing required fields: fullName, experience, skills", err.Error())
	})

	t.Run(`portfolio`, func(t *testing.T) {
		_, err := ParsePortfolioRequest(map[string]interface{}{"fullName": "Jane", "skills": "Go"})
		require.Equal(t, "Missing required fields: jobRole, projects", err.Error())

		req, err := ParsePortfolioRequest(map[string]interface{}{
			"fullName": "Jane",
			"jobRole":  "Designer",
			"projects": "Brand refresh for a bakery",
			"skills":   "Figma",
		})
		require.Nil(t, err)
		require.Equal(t, "Designer", req.JobRole)
		require.Equal(t, "", req.Bio)
	})
}
