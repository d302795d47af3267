package geminiclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
	apperrors "resume-builder-backend/lib/utils/app-errors"
	"resume-builder-backend/lib/utils/metrics"
)

const (
	DefaultModel = "gemini-2.5-flash"

	msgGenerateFailed = "Failed to generate content with Gemini"
)

type Provider interface {
	Init() error
	Generate(ctx context.Context, prompt string) (text string, err error)
}

// contentGenerator is the part of *genai.Models the client depends on.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type generatorFactory func(ctx context.Context, apiKey, baseURL string) (contentGenerator, error)

type generatorHolder struct {
	generator contentGenerator
}

type impl struct {
	apiKey       string
	model        string
	baseURL      string
	newGenerator generatorFactory
	holder       atomic.Pointer[generatorHolder]
}

var Instance Provider

func NewClient(apiKey, model, baseURL string) Provider {
	return newClient(apiKey, model, baseURL, newGenaiGenerator)
}

func newClient(apiKey, model, baseURL string, factory generatorFactory) *impl {
	if model == "" {
		model = DefaultModel
	}
	return &impl{
		apiKey:       strings.TrimSpace(apiKey),
		model:        model,
		baseURL:      baseURL,
		newGenerator: factory,
	}
}

func newGenaiGenerator(ctx context.Context, apiKey, baseURL string) (contentGenerator, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

// Init builds the provider client once. Concurrent first calls may each build
// one; the first stored wins and the others are dropped.
func (i *impl) Init() error {
	_, err := i.getGenerator()
	return err
}

func (i *impl) getGenerator() (contentGenerator, error) {
	if holder := i.holder.Load(); holder != nil {
		return holder.generator, nil
	}
	if i.apiKey == "" {
		return nil, apperrors.NewConfiguration("GEMINI_API_KEY is not configured", nil)
	}
	generator, err := i.newGenerator(context.Background(), i.apiKey, i.baseURL)
	if err != nil {
		return nil, apperrors.NewConfiguration(
			fmt.Sprintf("Failed to initialize Gemini client: %s", err.Error()),
			errors.Wrap(err, "genai.NewClient"))
	}
	i.holder.CompareAndSwap(nil, &generatorHolder{generator: generator})
	return i.holder.Load().generator, nil
}

func (i *impl) Generate(ctx context.Context, prompt string) (text string, err error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperrors.NewValidation("Prompt must be a non-empty string")
	}
	generator, err := i.getGenerator()
	if err != nil {
		log.WithError(err).Error("ошибка инициализации клиента Gemini")
		return "", err
	}

	started := time.Now()
	response, err := generator.GenerateContent(ctx, i.model, genai.Text(prompt), nil)
	if err != nil {
		code, message, providerStatus := describeProviderError(err)
		metrics.ObserveUpstream(i.model, strconv.Itoa(code), started)
		log.
			WithError(err).
			WithFields(log.Fields{
				"model":           i.model,
				"status":          code,
				"provider_status": providerStatus,
				"error_type":      fmt.Sprintf("%T", err),
			}).
			Error("ошибка запроса к Gemini API")
		return "", apperrors.NewUpstream(code, message, errors.Wrap(err, "Gemini API"))
	}
	metrics.ObserveUpstream(i.model, "200", started)
	if response == nil {
		return "", nil
	}
	return strings.TrimSpace(response.Text()), nil
}

// describeProviderError pulls the HTTP code and message out of a provider error.
// A zero code means the provider did not answer with one.
func describeProviderError(err error) (code int, message, providerStatus string) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.Code
		message = apiErr.Message
		providerStatus = apiErr.Status
	} else {
		message = err.Error()
	}
	if strings.TrimSpace(message) == "" {
		message = msgGenerateFailed
	}
	return code, message, providerStatus
}
