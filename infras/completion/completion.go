package completion

//go:generate go run go.uber.org/mock/mockgen -source=./completion.go -destination=./mocks/completion_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"grandhotel/config"
)

const (
	RoleSystem    = openai.ChatMessageRoleSystem
	RoleUser      = openai.ChatMessageRoleUser
	RoleAssistant = openai.ChatMessageRoleAssistant
)

// Message is a single turn handed to the text-completion collaborator.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the external text-completion collaborator. The reception
// assistant treats its output as arbitrary text that may embed a booking or
// cancellation command.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
	Enabled() bool
}

type clientImpl struct {
	api *openai.Client
	cfg *config.Config
}

func New(cfg *config.Config) Client {
	impl := &clientImpl{cfg: cfg}

	if cfg.External.OpenAI.APIKey == "" {
		log.Warn().Msg("OpenAI API key not configured, reception assistant is disabled")

		return impl
	}

	impl.api = openai.NewClient(cfg.External.OpenAI.APIKey)

	log.Info().Str("model", cfg.External.OpenAI.Model).Msg("OpenAI client initialized")

	return impl
}

func (c *clientImpl) Enabled() bool {
	return c.api != nil
}

func (c *clientImpl) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.api == nil {
		return "", fmt.Errorf("completion client is not configured")
	}

	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.External.OpenAI.Model,
		MaxTokens:   c.cfg.External.OpenAI.MaxTokens,
		Temperature: c.cfg.External.OpenAI.Temperature,
		Messages:    chatMessages,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to get chat completion")

		return "", fmt.Errorf("failed to get chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
