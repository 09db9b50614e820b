// Package chat forwards portal assistant conversations to an OpenAI-compatible endpoint
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/communityportal/notifier/pkg/config"
)

// maxMessages limits how much history is forwarded upstream, older messages are dropped
const maxMessages = 20

// ErrEmptyConversation is returned when there is nothing to answer
var ErrEmptyConversation = errors.New("empty conversation")

// Message is a single conversation turn coming from the portal's chat widget
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Proxy completes chat conversations using an LLM
type Proxy struct {
	client    *openai.Client
	config    config.ChatConfig
	systemMsg string
}

// default system prompt for the portal assistant
const defaultSystemPrompt = `You are the assistant of a community portal run by a diaspora association.
Help members find services, events, guides and ads published on the portal, explain how to register,
subscribe to newsletters or manage their interests in the profile page.
Answer briefly and in the language of the question. If you don't know something about the association
or a specific listing, say so and suggest contacting the organizers instead of guessing.`

// NewProxy creates a new chat proxy
func NewProxy(cfg config.ChatConfig) *Proxy {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Proxy{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// Complete returns the assistant reply to the conversation. Client supplied system messages are
// ignored, the configured system prompt always goes first.
func (p *Proxy) Complete(ctx context.Context, messages []Message) (string, error) {
	history := p.history(messages)
	if len(history) == 0 {
		return "", ErrEmptyConversation
	}

	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       p.config.Model,
		Temperature: float32(p.config.Temperature),
		MaxTokens:   p.config.MaxTokens,
		Messages:    append([]openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleSystem, Content: p.systemMsg}}, history...),
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	lgr.Printf("[DEBUG] chat reply %d chars for %d messages, tokens %d", len(reply), len(history), resp.Usage.TotalTokens)
	return reply, nil
}

// history keeps user and assistant turns with content, limited to the last maxMessages
func (p *Proxy) history(messages []Message) []openai.ChatCompletionMessage {
	res := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		switch strings.ToLower(m.Role) {
		case openai.ChatMessageRoleUser, "":
			res = append(res, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: content})
		case openai.ChatMessageRoleAssistant:
			res = append(res, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content})
		}
	}
	if len(res) > maxMessages {
		res = res[len(res)-maxMessages:]
	}
	return res
}
