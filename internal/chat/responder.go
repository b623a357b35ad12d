package chat

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"AIChatbot_Backend/internal/config"
	"AIChatbot_Backend/internal/llm"
	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/metrics"
)

const (
	CustomModel   = "Custom_Response_v1.0"
	FallbackModel = "Fallback_Response"

	fallbackText = "Sorry, I can't answer that right now. Please try again in a moment."
)

type Reply struct {
	Text  string
	Model string
}

type cannedAnswer struct {
	phrases []string
	words   []string
	answer  string
}

// Responder answers a chat message from canned answers first, then the LLM,
// then a fixed apology.
type Responder struct {
	llm        llm.Completer
	modelLabel string
	canned     []cannedAnswer
}

func NewResponder(completer llm.Completer, llmCfg config.LLMConfig, chatCfg config.ChatConfig) *Responder {
	label := llmCfg.ModelLabel
	if label == "" {
		label = llmCfg.Model
	}
	return &Responder{
		llm:        completer,
		modelLabel: label,
		canned:     cannedAnswers(chatCfg.Owner, chatCfg.PortfolioURL),
	}
}

func cannedAnswers(owner, portfolio string) []cannedAnswer {
	name := "I'm an AI Assistant! 🤖"
	if owner != "" {
		name = fmt.Sprintf("I'm %s's AI Assistant! 🤖", owner)
	}
	return []cannedAnswer{
		{phrases: []string{"what is your name", "who are you"}, answer: name},
		{phrases: []string{"what are you studying", "your studies"}, answer: "I'm doing BIT from Otago Polytechnic"},
		{phrases: []string{"what is your interests", "your interests"}, answer: "I'm really into AI right now."},
		{
			phrases: []string{"what projects have you worked on", "your projects"},
			answer:  "I have worked on several projects but if you are interested I can send my Portfolio link. You can have a look " + portfolio,
		},
		{phrases: []string{"portfolio", "website"}, answer: "Here's my portfolio: " + portfolio},
		{phrases: []string{"hello"}, words: []string{"hi", "hey"}, answer: "Hello! How can I help you today?"},
		{phrases: []string{"how are you"}, answer: "I'm doing great! Ready to help you with your questions."},
		{phrases: []string{"thank"}, answer: "You're welcome! Happy to help!"},
		{phrases: []string{"goodbye"}, words: []string{"bye"}, answer: "Goodbye! Come back anytime!"},
	}
}

// Canned returns the first canned answer whose phrase or word appears in
// the message.
func (r *Responder) Canned(message string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))
	words := strings.FieldsFunc(lower, func(c rune) bool {
		return !unicode.IsLetter(c) && c != '\''
	})
	for _, c := range r.canned {
		for _, p := range c.phrases {
			if strings.Contains(lower, p) {
				return c.answer, true
			}
		}
		for _, w := range c.words {
			for _, word := range words {
				if word == w {
					return c.answer, true
				}
			}
		}
	}
	return "", false
}

func (r *Responder) Reply(ctx context.Context, history []llm.Message, message string) Reply {
	if text, ok := r.Canned(message); ok {
		metrics.ChatReplies.WithLabelValues(CustomModel).Inc()
		return Reply{Text: text, Model: CustomModel}
	}

	if r.llm != nil && r.llm.Available() {
		text, err := r.llm.Complete(ctx, history, message)
		if err == nil && text != "" {
			metrics.ChatReplies.WithLabelValues(r.modelLabel).Inc()
			return Reply{Text: text, Model: r.modelLabel}
		}
		logging.Warn().Err(err).Msg("Responder.Reply(): LLM call failed, using fallback reply")
	}

	metrics.ChatReplies.WithLabelValues(FallbackModel).Inc()
	return Reply{Text: fallbackText, Model: FallbackModel}
}
