package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sharc777/allam-lambda/internal/config"
	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	log := config.WithContext(ctx)
	model := strings.TrimPrefix(req.Model, "google/")

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Tool != nil {
		var schema map[string]any
		if err := json.Unmarshal(req.Tool.Parameters, &schema); err != nil {
			return nil, fmt.Errorf("decode tool schema: %w", err)
		}
		cfg.Tools = []*genai.Tool{{
			FunctionDeclarations: []*genai.FunctionDeclaration{{
				Name:                 req.Tool.Name,
				Description:          req.Tool.Description,
				ParametersJsonSchema: schema,
			}},
		}}
		cfg.ToolConfig = &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode:                 genai.FunctionCallingConfigModeAny,
				AllowedFunctionNames: []string{req.Tool.Name},
			},
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		log.WithError(err).WithField("model", model).Error("gemini generate content failed")
		return nil, mapGeminiError(err)
	}

	out := &Completion{}
	if req.Tool == nil {
		out.Text = result.Text()
		if out.Text == "" {
			return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
		}
		return out, nil
	}

	for _, call := range result.FunctionCalls() {
		if call.Name != req.Tool.Name {
			continue
		}
		raw, err := json.Marshal(call.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		out.ToolArguments = string(raw)
		return out, nil
	}

	// Some responses put the JSON payload in text instead of a function call.
	if text := strings.TrimSpace(result.Text()); text != "" {
		out.ToolArguments = stripCodeFence(text)
		return out, nil
	}
	return nil, fmt.Errorf("%w: no %s function call", ErrMalformedResponse, req.Tool.Name)
}

func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.Code, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return statusError(apiErrPtr.Code, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func stripCodeFence(s string) string {
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
