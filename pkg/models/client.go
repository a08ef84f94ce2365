// Package models talks to the GitHub Models inference API. One blocking
// chat-completion request per invocation, a fixed timeout, no retries: a
// failed or timed-out call comes back as a structured failure result, never
// as a fault.
package models

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/promptops/evalctl/pkg/config"
	"github.com/promptops/evalctl/pkg/logger"
)

const (
	evaluationMaxTokens   = 2000
	evaluationTemperature = 0.7
	connectionTestTokens  = 10
)

// ErrNoToken indicates that no GitHub token is available for API calls.
var ErrNoToken = errors.New("GitHub token not available")

// Client issues chat-completion requests against per-model GitHub Models
// endpoints.
type Client struct {
	token          string
	baseURL        string
	requestTimeout time.Duration
	connectTimeout time.Duration
}

// Result records the outcome of a single evaluation call. Failures carry
// the HTTP status code and raw body text where the API produced them.
type Result struct {
	RunID        string                         `json:"run_id"`
	Success      bool                           `json:"success"`
	Model        string                         `json:"model"`
	TargetFile   string                         `json:"target_file"`
	Response     *openai.ChatCompletionResponse `json:"response,omitempty"`
	ResponseTime float64                        `json:"response_time,omitempty"`
	Error        string                         `json:"error,omitempty"`
	StatusCode   int                            `json:"status_code,omitempty"`
	Body         string                         `json:"body,omitempty"`
}

// NewClient builds a client from cfg. An empty token is allowed; every
// network-calling method then fails per-call with ErrNoToken.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		token:          cfg.Token,
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		requestTimeout: cfg.RequestTimeout,
		connectTimeout: cfg.ConnectTimeout,
	}
}

// HasToken reports whether the client holds a credential.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// chatClient builds a go-openai client pointed at the per-model endpoint,
// {base}/{model}/chat/completions being the GitHub Models URL shape.
func (c *Client) chatClient(model string) *openai.Client {
	clientConfig := openai.DefaultConfig(c.token)
	clientConfig.BaseURL = c.baseURL + "/" + model
	return openai.NewClientWithConfig(clientConfig)
}

// TestConnection fires a minimal request at model to verify that the API
// and credential work.
func (c *Client) TestConnection(ctx context.Context, model string) error {
	if !c.HasToken() {
		return ErrNoToken
	}

	ctx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	_, err := c.chatClient(model).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "Hello, this is a test message."},
		},
		MaxTokens: connectionTestTokens,
	})
	if err != nil {
		return errors.Wrap(err, "connection test failed")
	}

	return nil
}

// Evaluate sends prompt to model once and records the outcome. It never
// returns an error: network failures, non-200 statuses, and a missing
// token all come back inside the Result.
func (c *Client) Evaluate(ctx context.Context, targetFile, model, prompt string) *Result {
	result := &Result{
		RunID:      uuid.NewString(),
		Model:      model,
		TargetFile: targetFile,
	}

	if !c.HasToken() {
		result.Error = ErrNoToken.Error()
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	start := time.Now()
	response, err := c.chatClient(model).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   evaluationMaxTokens,
		Temperature: evaluationTemperature,
	})
	elapsed := time.Since(start)

	if err != nil {
		logger.G(ctx).WithFields(map[string]interface{}{
			"model":       model,
			"target_file": targetFile,
		}).WithError(err).Warn("Evaluation request failed")

		result.Error = err.Error()
		result.StatusCode, result.Body = failureDetails(err)
		return result
	}

	result.Success = true
	result.Response = &response
	result.ResponseTime = elapsed.Seconds()
	return result
}

// failureDetails pulls the HTTP status code and raw body text out of
// go-openai error types where present.
func failureDetails(err error) (int, string) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode, apiErr.Message
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode, string(reqErr.Body)
	}

	return 0, ""
}
