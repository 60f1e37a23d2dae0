package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sharc777/allam-lambda/internal/config"
)

var (
	ErrRateLimited       = errors.New("upstream rate limit exceeded")
	ErrQuotaExhausted    = errors.New("upstream credits exhausted")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrUpstream          = errors.New("upstream model error")
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Tool is a single function the model is forced to call. Parameters holds a
// JSON schema document.
type Tool struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

type CompletionRequest struct {
	Model       string
	System      string
	Messages    []Message
	Temperature float32
	Tool        *Tool
}

type Completion struct {
	Text          string
	ToolArguments string
}

type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// New picks the provider named in env.AIProvider.
func New(ctx context.Context, env *config.Env) (Provider, error) {
	switch env.AIProvider {
	case "", "openai":
		return NewOpenAIProvider(env.AIAPIKey, env.AIBaseURL), nil
	case "gemini":
		return NewGeminiProvider(ctx, env.GeminiAPIKey)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", env.AIProvider)
	}
}

func statusError(code int, err error) error {
	switch code {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
	default:
		return fmt.Errorf("%w: status %d: %v", ErrUpstream, code, err)
	}
}
