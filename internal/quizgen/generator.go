package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/llm"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

const submitToolName = "submit_questions"

const submitToolSchema = `{
  "type": "object",
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "question_text": {"type": "string"},
          "options": {"type": "array", "items": {"type": "string"}, "minItems": 4, "maxItems": 4},
          "correct_answer": {"type": "string"},
          "explanation": {"type": "string"},
          "section": {"type": "string", "enum": ["quantitative", "verbal", "achievement"]},
          "subject_tag": {"type": "string"},
          "topic_tag": {"type": "string"}
        },
        "required": ["question_text", "options", "correct_answer", "explanation", "section", "subject_tag", "topic_tag"]
      }
    }
  },
  "required": ["questions"]
}`

// itemSchema is what a decoded item must satisfy to reach the filters.
// Section and tags may be missing; the filters repair or reject those.
const itemSchema = `{
  "type": "object",
  "properties": {
    "question_text": {"type": "string"},
    "options": {"type": "array", "items": {"type": "string"}},
    "correct_answer": {"type": "string"},
    "explanation": {"type": "string"},
    "section": {"type": "string"},
    "subject_tag": {"type": "string"},
    "topic_tag": {"type": "string"}
  },
  "required": ["question_text", "options", "correct_answer"]
}`

var compiledItemSchema = mustSchema(itemSchema)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid question schema: %v", err))
	}
	return s
}

type GenerateParams struct {
	Model       string
	Temperature float32
	System      string
	User        string
}

type Generator interface {
	Generate(ctx context.Context, p GenerateParams) ([]Question, error)
}

type generator struct {
	provider llm.Provider
}

func NewGenerator(provider llm.Provider) Generator {
	return &generator{provider: provider}
}

func (g *generator) Generate(ctx context.Context, p GenerateParams) ([]Question, error) {
	log := config.WithContext(ctx).WithField("model", p.Model)

	completion, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model:       p.Model,
		System:      p.System,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: p.User}},
		Temperature: p.Temperature,
		Tool: &llm.Tool{
			Name:        submitToolName,
			Description: "Submit the generated multiple-choice questions.",
			Parameters:  json.RawMessage(submitToolSchema),
		},
	})
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(completion.ToolArguments)
	if err != nil {
		items = salvageItems(completion.ToolArguments)
		log.WithError(err).WithField("salvaged", len(items)).Warn("tool arguments malformed, salvaging items")
		if len(items) == 0 {
			return nil, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
		}
	}

	questions := make([]Question, 0, len(items))
	for i, raw := range items {
		res, err := compiledItemSchema.Validate(gojsonschema.NewBytesLoader(raw))
		if err != nil || !res.Valid() {
			log.WithFields(logrus.Fields{"index": i, "errors": schemaErrors(res)}).Debug("dropping schema-invalid item")
			continue
		}
		var q Question
		if err := json.Unmarshal(raw, &q); err != nil {
			log.WithError(err).WithField("index", i).Debug("dropping undecodable item")
			continue
		}
		q.Source = SourceAI
		questions = append(questions, q)
	}

	log.WithFields(logrus.Fields{"received": len(items), "accepted": len(questions)}).Info("generation completed")
	return questions, nil
}

func schemaErrors(res *gojsonschema.Result) []string {
	if res == nil {
		return nil
	}
	out := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		out = append(out, e.String())
	}
	return out
}
