package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/aquagen/aquagen/internal/logger"
)

const systemPrompt = "You are a hydrology and water-quality analyst preparing groundwater reports for municipal stakeholders. Base conclusions on widely published regional data, flag uncertainty explicitly, and do not invent measurements. Respond in well-structured Markdown."

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5"

// AnthropicMessager is the slice of the Anthropic client the service
// needs; tests substitute a fake.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicClientCreator builds a messager for a given API key. The
// key is an argument because it is read once per generate action, not
// at service construction.
type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

// AnthropicService generates reports through the Anthropic Messages
// API. A single attempt is made per call; there is no retry policy.
type AnthropicService struct {
	newClient AnthropicClientCreator
	model     string
}

// NewAnthropicService creates a service for the given model, falling
// back to DefaultModel when blank.
func NewAnthropicService(model string) *AnthropicService {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	return &AnthropicService{
		newClient: defaultAnthropicCreator,
		model:     model,
	}
}

// ModelName returns the configured model identifier.
func (s *AnthropicService) ModelName() string { return s.model }

// Generate sends the form to the summarization API and assembles the
// processed report. An empty apiKey is passed through unchanged; the
// API rejects invalid credentials with its own error.
func (s *AnthropicService) Generate(ctx context.Context, form FormData, apiKey string) (*Report, error) {
	prompt := buildPrompt(form)
	logger.Debug("Generating report: model=%s location=%q params=%d", s.model, form.Location, len(form.Parameters))

	start := time.Now()
	resp, err := s.newClient(apiKey).New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(s.model),
		MaxTokens:   4096,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0.3),
	})
	if err != nil {
		logger.Error("Report generation failed after %s: %v", time.Since(start), err)
		return nil, err
	}

	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	markdown := strings.TrimSpace(sb.String())
	if markdown == "" {
		return nil, errors.New("empty response from model")
	}
	logger.Debug("Report generated: %d chars in %s", len(markdown), time.Since(start))

	params := make([]string, len(form.Parameters))
	copy(params, form.Parameters)

	return &Report{
		Title:       fmt.Sprintf("%s — %s", form.ReportType, strings.TrimSpace(form.Location)),
		Markdown:    markdown,
		ReportType:  form.ReportType,
		Location:    form.Location,
		Period:      form.Period,
		Parameters:  params,
		Model:       s.model,
		GeneratedAt: time.Now(),
	}, nil
}

// buildPrompt renders the collected form as the user message.
func buildPrompt(form FormData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Prepare a %q groundwater report.\n\n", form.ReportType)
	fmt.Fprintf(&b, "Location: %s\n", strings.TrimSpace(form.Location))
	fmt.Fprintf(&b, "Time period: %s\n", form.Period)
	b.WriteString("Measured parameters:\n")
	for _, p := range form.Parameters {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString(`
Structure the report as Markdown with these sections:
# <title naming the location and report type>
## Summary
## Parameter Analysis (one subsection per requested parameter)
## Trends Over the Requested Period
## Recommendations

Keep it factual and concise. If reliable data for the location is
unlikely to exist, say so in the Summary rather than inventing values.`)
	return b.String()
}
