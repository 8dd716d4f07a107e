// Package gemini implements link filtering and token counting with Google
// Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/docgrab"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Filter implements docgrab.RelevanceFilter at compile time.
var _ docgrab.RelevanceFilter = (*Filter)(nil)

// Filter implements docgrab.RelevanceFilter using Google Gemini.
type Filter struct {
	client *genai.Client
	model  string
}

// NewFilter creates a new Filter. An empty model selects DefaultModel.
func NewFilter(client *genai.Client, model string) *Filter {
	if model == "" {
		model = DefaultModel
	}
	return &Filter{client: client, model: model}
}

// Model returns the model name used for requests.
func (f *Filter) Model() string { return f.model }

// Filter asks Gemini which candidates belong to the documentation at seedURL.
func (f *Filter) Filter(ctx context.Context, seedURL string, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	result, err := f.client.Models.GenerateContent(ctx, f.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: docgrab.BuildFilterPrompt(seedURL, candidates)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EUNAVAILABLE, "gemini generate content: %v", err)
	}
	if result == nil {
		return nil, docgrab.Errorf(docgrab.EINTERNAL, "gemini returned nil result")
	}

	return docgrab.ParseURLList(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for filter requests.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: docgrab.FilterSystemPrompt}},
		},
		Temperature: &temp,
	}
}
