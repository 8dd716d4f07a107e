// Package openai implements link filtering with the OpenAI chat
// completions API.
package openai

import (
	"context"

	"github.com/fwojciec/docgrab"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Ensure Filter implements docgrab.RelevanceFilter at compile time.
var _ docgrab.RelevanceFilter = (*Filter)(nil)

// Filter implements docgrab.RelevanceFilter using OpenAI chat completions.
type Filter struct {
	client openai.Client
	model  string
}

// Option configures a Filter.
type Option func(*settings)

type settings struct {
	model      string
	reqOptions []option.RequestOption
}

// WithModel sets the chat model. An empty name keeps DefaultModel.
func WithModel(model string) Option {
	return func(s *settings) {
		if model != "" {
			s.model = model
		}
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		if baseURL != "" {
			s.reqOptions = append(s.reqOptions, option.WithBaseURL(baseURL))
		}
	}
}

// WithMaxRetries sets how often the SDK retries failed requests.
func WithMaxRetries(n int) Option {
	return func(s *settings) {
		s.reqOptions = append(s.reqOptions, option.WithMaxRetries(n))
	}
}

// NewFilter creates a Filter authenticated with apiKey.
func NewFilter(apiKey string, opts ...Option) *Filter {
	s := settings{model: DefaultModel}
	for _, opt := range opts {
		opt(&s)
	}

	reqOptions := append([]option.RequestOption{option.WithAPIKey(apiKey)}, s.reqOptions...)
	return &Filter{
		client: openai.NewClient(reqOptions...),
		model:  s.model,
	}
}

// Model returns the model name used for requests.
func (f *Filter) Model() string { return f.model }

// Filter asks the model which candidates belong to the documentation at seedURL.
func (f *Filter) Filter(ctx context.Context, seedURL string, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	resp, err := f.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: f.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(docgrab.FilterSystemPrompt),
			openai.UserMessage(docgrab.BuildFilterPrompt(seedURL, candidates)),
		},
	})
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EUNAVAILABLE, "openai chat completion: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, docgrab.Errorf(docgrab.EINTERNAL, "openai returned no choices")
	}

	return docgrab.ParseURLList(resp.Choices[0].Message.Content), nil
}
