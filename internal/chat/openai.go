package chat

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/tauqeerkhan/portfolio/internal/metrics"
)

type OpenAIConfig struct {
	APIKey string
	// BaseURL points at any OpenAI compatible API, e.g. OpenRouter.
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// OpenAICompleter sends the prompt as a single user message.
type OpenAICompleter struct {
	client *openai.Client
	cfg    OpenAIConfig
	log    *zap.Logger
}

func NewOpenAICompleter(cfg OpenAIConfig, log *zap.Logger) *OpenAICompleter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OpenAICompleter{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		log:    log.Named("openai"),
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	metrics.ChatDuration.WithLabelValues(c.cfg.Model).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ChatRequests.WithLabelValues(c.cfg.Model, "error").Inc()
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		metrics.ChatRequests.WithLabelValues(c.cfg.Model, "error_empty_response").Inc()
		return "", ErrEmptyCompletion
	}

	metrics.ChatRequests.WithLabelValues(c.cfg.Model, "success").Inc()
	c.log.Debug("chat completion done",
		zap.String("model", c.cfg.Model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("took", time.Since(start)))
	return resp.Choices[0].Message.Content, nil
}
