package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	prompt string
	resp   string
	err    error
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.resp, f.err
}

var persona = Persona{Name: "Tauqeer Khan", Biography: "- Skills: Go, React."}

func TestPrompt(t *testing.T) {
	p, err := Prompt(persona, "What does he know?")
	require.NoError(t, err)
	assert.Contains(t, p, "assistant for Tauqeer Khan's personal portfolio")
	assert.Contains(t, p, "- Skills: Go, React.")
	assert.Contains(t, p, "User Query: What does he know?")
}

func TestBot_EmptyQuery(t *testing.T) {
	fc := &fakeCompleter{resp: "unused"}
	res := NewBot(fc, nil).Ask(context.Background(), persona, "   ")

	assert.Equal(t, map[string][]string{"query": {MsgEmptyQuery}}, res.Errors)
	assert.Equal(t, MsgInvalid, res.Message)
	assert.Empty(t, res.Response)
	assert.Empty(t, fc.prompt)
}

func TestBot_ReturnsResponseVerbatim(t *testing.T) {
	fc := &fakeCompleter{resp: "  He knows Go.\n"}
	res := NewBot(fc, nil).Ask(context.Background(), persona, " skills? ")

	assert.Equal(t, "  He knows Go.\n", res.Response)
	assert.Empty(t, res.Message)
	assert.Contains(t, fc.prompt, "User Query: skills?")
}

func TestBot_CompletionFailure(t *testing.T) {
	res := NewBot(&fakeCompleter{err: errors.New("rate limited")}, nil).Ask(context.Background(), persona, "hi")
	assert.Equal(t, MsgFailed, res.Message)
	assert.Empty(t, res.Response)
}

func TestBot_Unconfigured(t *testing.T) {
	res := NewBot(Unconfigured{}, nil).Ask(context.Background(), persona, "hi")
	assert.Equal(t, MsgFailed, res.Message)
}

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		choices := []map[string]any{}
		if content != "" {
			choices = append(choices, map[string]any{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"model":   req.Model,
			"choices": choices,
			"usage":   map[string]int{"prompt_tokens": 10, "completion_tokens": 3, "total_tokens": 13},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAICompleter(t *testing.T) {
	srv := completionServer(t, "He builds web apps.")
	c := NewOpenAICompleter(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"}, nil)

	out, err := c.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "He builds web apps.", out)
}

func TestOpenAICompleter_EmptyChoices(t *testing.T) {
	srv := completionServer(t, "")
	c := NewOpenAICompleter(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"}, nil)

	_, err := c.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
