package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"AIChatbot_Backend/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

var ErrUnavailable = errors.New("LLM client not configured")

const systemPrompt = "You are a helpful AI assistant. Answer the user's question directly and concisely."

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Completer produces an assistant reply for a prompt and prior turns.
type Completer interface {
	Complete(ctx context.Context, history []Message, prompt string) (string, error)
	Available() bool
}

type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
	keyLength int
}

// NewClient returns a client with no backend when no API key is configured;
// Complete then always fails with ErrUnavailable.
func NewClient(cfg config.LLMConfig) *Client {
	c := &Client{model: cfg.Model, maxTokens: cfg.MaxTokens, keyLength: len(cfg.APIKey)}
	if cfg.APIKey == "" {
		return c
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	oc.HTTPClient = &http.Client{Timeout: timeout}
	c.api = openai.NewClientWithConfig(oc)
	return c
}

func (c *Client) Available() bool {
	return c != nil && c.api != nil
}

func (c *Client) Complete(ctx context.Context, history []Message, prompt string) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: systemPrompt})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("LLM returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

type Status struct {
	ServiceAvailable bool   `json:"serviceAvailable"`
	APIKeyPresent    bool   `json:"apiKeyPresent"`
	APIKeyLength     int    `json:"apiKeyLength"`
	Model            string `json:"model"`
}

func (c *Client) Status() Status {
	return Status{
		ServiceAvailable: c.Available(),
		APIKeyPresent:    c.keyLength > 0,
		APIKeyLength:     c.keyLength,
		Model:            c.model,
	}
}
