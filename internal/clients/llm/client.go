// Package llm wraps an OpenAI-compatible chat-completion API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/coursegen/backend/internal/cache"
	"github.com/coursegen/backend/internal/clients"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	// DefaultModel is used when no model is configured
	DefaultModel = openai.GPT4oMini
	// DefaultTimeout bounds a single completion when no timeout is configured
	DefaultTimeout = 60 * time.Second
)

// Config holds connection settings for the completion API
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Options tune a single completion
type Options struct {
	System      string
	Temperature float32
	MaxTokens   int
}

type client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	cache   cache.Cache
	logger  *zap.Logger
}

// NewClient creates a completion client. Responses are stored in responses keyed by
// model, options and prompt; pass cache.Noop{} to disable caching.
// An empty API key yields a client whose calls fail with clients.KindNotConfigured.
func NewClient(cfg Config, responses cache.Cache, logger *zap.Logger) *client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if responses == nil {
		responses = cache.Noop{}
	}

	c := &client{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		cache:   responses,
		logger:  logger,
	}
	if cfg.APIKey == "" {
		return c
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	apiConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	c.api = openai.NewClientWithConfig(apiConfig)

	return c
}

// Configured reports whether an API key was provided
func (c *client) Configured() bool {
	return c.api != nil
}

// Model returns the configured model name
func (c *client) Model() string {
	return c.model
}

// Complete sends prompt as a single user message and returns the trimmed reply
func (c *client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	const op = "llm.complete"
	if c.api == nil {
		return "", clients.NewError(clients.KindNotConfigured, op, nil)
	}

	key := cache.Key("llm", c.model, opts.System,
		strconv.FormatFloat(float64(opts.Temperature), 'f', 2, 32),
		strconv.Itoa(opts.MaxTokens), prompt)
	if cached, ok := c.cache.Get(ctx, key); ok {
		c.logger.Debug("llm cache hit", zap.String("key", key))
		return cached, nil
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if opts.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: opts.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", classify(op, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", clients.NewError(clients.KindDecode, op, errors.New("empty completion"))
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.cache.Set(ctx, key, content)

	return content, nil
}

func classify(op string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusNotFound {
		return clients.NewError(clients.KindNotFound, op, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusNotFound {
		return clients.NewError(clients.KindNotFound, op, err)
	}
	return clients.NewError(clients.KindUpstream, op, fmt.Errorf("chat completion: %w", err))
}
