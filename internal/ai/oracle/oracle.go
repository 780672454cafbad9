// Package oracle wraps the generative-AI service behind a single
// text-completion interface so the analysis pipeline can be tested
// against a fake.
package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Oracle is an opaque text-completion service: prompt in, raw text out.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// FailureKind classifies why an oracle call failed. Each kind maps to a
// distinct outcome reported to API callers.
type FailureKind string

const (
	FailureConfig    FailureKind = "config"    // bad or missing credentials
	FailureQuota     FailureKind = "quota"     // rate limit / quota exhausted
	FailureSafety    FailureKind = "safety"    // generation blocked by content filters
	FailureTransport FailureKind = "transport" // network error or timeout
	FailureUnknown   FailureKind = "unknown"
)

// Failure is a classified oracle error.
type Failure struct {
	Kind   FailureKind
	Reason string
	cause  error
}

func (f *Failure) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("oracle %s failure: %s: %v", f.Kind, f.Reason, f.cause)
	}
	return fmt.Sprintf("oracle %s failure: %s", f.Kind, f.Reason)
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Client is the OpenAI-backed Oracle implementation. It is constructed once
// at startup and shared read-only across requests.
type Client struct {
	client      *openai.Client
	model       openai.ChatModel
	maxTokens   int64
	temperature float64
}

// NewClient creates an oracle client. The API key must be validated by the
// caller at startup; an empty key here yields config failures at call time.
func NewClient(apiKey, model string) *Client {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Client{
		client:      &client,
		model:       openai.ChatModel(model),
		maxTokens:   4096,
		temperature: 0.2,
	}
}

// Complete sends the prompt and returns the raw model text. Failures come
// back as *Failure so callers can map them without string matching.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       c.model,
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(c.maxTokens),
	})
	if err != nil {
		return "", classify(ctx, err)
	}

	if len(completion.Choices) == 0 {
		return "", &Failure{Kind: FailureUnknown, Reason: "no choices in completion"}
	}

	choice := completion.Choices[0]
	if choice.FinishReason == "content_filter" {
		return "", &Failure{Kind: FailureSafety, Reason: "generation blocked by content filter"}
	}

	return choice.Message.Content, nil
}

// classify maps transport and API errors to a FailureKind.
func classify(ctx context.Context, err error) *Failure {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Failure{Kind: FailureTransport, Reason: "request timed out", cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &Failure{Kind: FailureTransport, Reason: "request canceled", cause: err}
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403:
			return &Failure{Kind: FailureConfig, Reason: "authentication rejected", cause: err}
		case 429:
			return &Failure{Kind: FailureQuota, Reason: "quota or rate limit exceeded", cause: err}
		default:
			if apiErr.StatusCode >= 500 {
				return &Failure{Kind: FailureTransport, Reason: "upstream service error", cause: err}
			}
			return &Failure{Kind: FailureUnknown, Reason: "api error", cause: err}
		}
	}

	// No API response at all: DNS, TLS, connection reset.
	return &Failure{Kind: FailureTransport, Reason: "network error", cause: err}
}
