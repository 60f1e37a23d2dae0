package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/llm"
	"github.com/sharc777/allam-lambda/internal/ratelimit"
	"github.com/sharc777/allam-lambda/internal/settings"
)

const (
	maxHistory        = 20
	maxMessageRunes   = 4000
	systemPromptIntro = `أنت معلم خبير ومتخصص في تدريب الطلاب على اختبارات قياس (القدرات العامة والتحصيلي).
اشرح بأسلوب واضح ومبسط وباللغة العربية الفصحى، وقدّم خطوات الحل بالتفصيل عند الحاجة.
لا تعطِ الإجابة مباشرة قبل أن توضح طريقة التفكير، وشجّع الطالب دائماً.`
)

var ErrNoMessages = errors.New("conversation has no user message")

// RateLimitedError is returned when the caller exhausted the tutor quota.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("tutor rate limit exceeded, retry after %s", e.RetryAfter)
}

type Service interface {
	Reply(ctx context.Context, userID string, req ChatRequest) (*ChatResponse, error)
}

type service struct {
	provider llm.Provider
	limiter  ratelimit.Limiter
	settings settings.Loader
}

func NewService(provider llm.Provider, limiter ratelimit.Limiter, loader settings.Loader) Service {
	return &service{provider: provider, limiter: limiter, settings: loader}
}

func (s *service) Reply(ctx context.Context, userID string, req ChatRequest) (*ChatResponse, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	messages := trimHistory(req.Messages)
	if len(messages) == 0 || messages[len(messages)-1].Role != llm.RoleUser {
		return nil, ErrNoMessages
	}

	decision, err := s.limiter.Allow(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("rate limiter unavailable, allowing request")
	} else if !decision.Allowed {
		return nil, &RateLimitedError{RetryAfter: decision.RetryAfter}
	}

	cfg := s.settings.Load(ctx)
	completion, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model:       cfg.Model,
		System:      systemPrompt(req),
		Messages:    messages,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("tutor completion: %w", err)
	}

	return &ChatResponse{Reply: strings.TrimSpace(completion.Text)}, nil
}

func systemPrompt(req ChatRequest) string {
	var b strings.Builder
	b.WriteString(systemPromptIntro)
	switch req.TestType {
	case "achievement":
		b.WriteString("\nالطالب يستعد للاختبار التحصيلي.")
	case "aptitude":
		b.WriteString("\nالطالب يستعد لاختبار القدرات العامة.")
	}
	switch req.Section {
	case "quantitative":
		b.WriteString("\nركّز على القسم الكمي.")
	case "verbal":
		b.WriteString("\nركّز على القسم اللفظي.")
	}
	return b.String()
}

// trimHistory keeps the most recent messages with known roles, each cut to
// maxMessageRunes.
func trimHistory(in []llm.Message) []llm.Message {
	out := make([]llm.Message, 0, len(in))
	for _, m := range in {
		if m.Role != llm.RoleUser && m.Role != llm.RoleAssistant {
			continue
		}
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		if r := []rune(content); len(r) > maxMessageRunes {
			content = string(r[:maxMessageRunes])
		}
		out = append(out, llm.Message{Role: m.Role, Content: content})
	}
	if len(out) > maxHistory {
		out = out[len(out)-maxHistory:]
	}
	return out
}
