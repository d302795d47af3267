package portfoliohandler

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	gptmodels "resume-builder-backend/models/api/gpt"
)

type stubGemini struct {
	err    error
	prompt *string
}

func (s stubGemini) Init() error {
	return nil
}

func (s stubGemini) Generate(_ context.Context, prompt string) (string, error) {
	if s.prompt != nil {
		*s.prompt = prompt
	}
	if s.err != nil {
		return "", s.err
	}
	return "Hi, I am Jane.", nil
}

func TestBuildPrompt(t *testing.T) {
	req := gptmodels.PortfolioRequest{
		FullName: "Jane",
		JobRole:  "Product Designer",
		Projects: "Bakery rebrand",
		Skills:   "Figma, user research",
	}
	prompt := BuildPrompt(req)
	require.True(t, strings.HasPrefix(prompt, "You are a professional writer"))
	require.Contains(t, prompt, "portfolio copy for Jane, a Product Designer.")
	require.Contains(t, prompt, "do not invent clients, employers, awards, or metrics")
	require.Contains(t, prompt, "Projects (source of truth):\nBakery rebrand\n")
	require.Contains(t, prompt, "a short introduction, one paragraph")
	require.NotContains(t, prompt, "Bio:")
	require.True(t, strings.HasSuffix(prompt, "Return ONLY the final portfolio text."))

	req.Bio = "Designer from Lisbon"
	prompt = BuildPrompt(req)
	require.Contains(t, prompt, "a short introduction based on the bio below, one paragraph")
	require.Contains(t, prompt, "Bio:\nDesigner from Lisbon\n")
}

func TestHandler(t *testing.T) {
	t.Run(`success`, func(t *testing.T) {
		var prompt string
		handler := impl{gemini: stubGemini{prompt: &prompt}}
		resp, err := handler.GeneratePortfolio(context.Background(), map[string]interface{}{
			"fullName": "Jane",
			"jobRole":  "Designer ",
			"projects": " Bakery rebrand",
			"skills":   "Figma",
			"bio":      "  ",
		})
		require.Nil(t, err)
		require.Equal(t, "Hi, I am Jane.", resp.Portfolio)
		require.Contains(t, prompt, "Jane, a Designer.")
		require.NotContains(t, prompt, "Bio:")
	})

	t.Run(`generation error`, func(t *testing.T) {
		handler := impl{gemini: stubGemini{err: errors.New("boom")}}
		_, err := handler.GeneratePortfolio(context.Background(), map[string]interface{}{
			"fullName": "Jane", "jobRole": "Designer", "projects": "p", "skills": "s",
		})
		require.Equal(t, "boom", err.Error())
	})
}
