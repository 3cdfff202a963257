// Package chat answers visitor questions about the site owner from a fixed
// biography prompt.
package chat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

const (
	MsgEmptyQuery = "Please enter a message."
	MsgInvalid    = "Please correct the errors and try again."
	MsgFailed     = "An unexpected error occurred. Please try again."
)

var ErrEmptyCompletion = errors.New("completion returned no text")

// Completer turns a prompt into a model response.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Persona is whose portfolio the bot speaks for.
type Persona struct {
	Name      string
	Biography string
}

type Result struct {
	Message  string              `json:"message,omitempty"`
	Response string              `json:"response,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

var promptTemplate = template.Must(template.New("prompt").Parse(
	`You are a helpful AI assistant for {{.Name}}'s personal portfolio. Your goal is to answer questions about them based on the context provided below. Be friendly, concise, and professional.

Context about {{.Name}}:
{{.Biography}}

Based on this context, please answer the following user query. If the query is unrelated to {{.Name}}'s portfolio, politely decline to answer.

User Query: {{.Query}}`))

// Prompt renders the fixed prompt for persona and query.
func Prompt(p Persona, query string) (string, error) {
	var buf bytes.Buffer
	err := promptTemplate.Execute(&buf, struct {
		Persona
		Query string
	}{p, query})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

type Bot struct {
	completer Completer
	log       *zap.Logger
}

func NewBot(c Completer, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{completer: c, log: log.Named("chat")}
}

// Ask answers query on behalf of persona. The model's text is returned
// as is.
func (b *Bot) Ask(ctx context.Context, p Persona, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Message: MsgInvalid, Errors: map[string][]string{"query": {MsgEmptyQuery}}}
	}

	prompt, err := Prompt(p, query)
	if err != nil {
		b.log.Error("chat prompt failed", zap.Error(err))
		return Result{Message: MsgFailed}
	}

	resp, err := b.completer.Complete(ctx, prompt)
	if err != nil {
		b.log.Error("chat completion failed", zap.String("persona", p.Name), zap.Error(err))
		return Result{Message: MsgFailed}
	}
	return Result{Response: resp}
}

// Unconfigured fails every completion. It stands in when no API key is set.
type Unconfigured struct{}

func (Unconfigured) Complete(context.Context, string) (string, error) {
	return "", errors.New("chat completion API key not configured")
}
