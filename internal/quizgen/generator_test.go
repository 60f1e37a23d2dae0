package quizgen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sharc777/allam-lambda/internal/llm"
	"github.com/sharc777/allam-lambda/internal/quizgen"
)

type fakeProvider struct {
	completion *llm.Completion
	err        error
	last       llm.CompletionRequest
}

func (p *fakeProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	p.last = req
	return p.completion, p.err
}

const (
	itemA = `{"question_text":"ما ناتج 2 + 2؟","options":["3","4","5","6"],"correct_answer":"4","explanation":"جمع","section":"quantitative","subject_tag":"حساب","topic_tag":"الجمع"}`
	itemB = `{"question_text":"ما ناتج 3 × 3؟","options":["6","9","12","3"],"correct_answer":"9","explanation":"ضرب","section":"quantitative","subject_tag":"حساب","topic_tag":"الضرب"}`
)

func TestGeneratorGenerate(t *testing.T) {
	params := quizgen.GenerateParams{Model: "m", Temperature: 0.5, System: "sys", User: "user"}

	t.Run("Envelope", func(t *testing.T) {
		p := &fakeProvider{completion: &llm.Completion{ToolArguments: `{"questions":[` + itemA + `,` + itemB + `]}`}}
		got, err := quizgen.NewGenerator(p).Generate(context.Background(), params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("want 2 questions, got %d", len(got))
		}
		if got[1].CorrectAnswer != "9" || got[0].Source != quizgen.SourceAI {
			t.Fatalf("unexpected decode: %+v", got)
		}
		if p.last.Tool == nil || p.last.Tool.Name != "submit_questions" {
			t.Fatal("submit_questions tool not requested")
		}
		if p.last.System != "sys" || len(p.last.Messages) != 1 || p.last.Messages[0].Content != "user" {
			t.Fatalf("prompt not forwarded: %+v", p.last)
		}
	})

	t.Run("BareArray", func(t *testing.T) {
		p := &fakeProvider{completion: &llm.Completion{ToolArguments: `[` + itemA + `]`}}
		got, err := quizgen.NewGenerator(p).Generate(context.Background(), params)
		if err != nil || len(got) != 1 {
			t.Fatalf("got %d, %v", len(got), err)
		}
	})

	t.Run("SchemaInvalidItemDropped", func(t *testing.T) {
		bad := `{"question_text":"بلا خيارات","correct_answer":"x"}`
		wrongType := `{"question_text":"خيارات خاطئة","options":"a,b,c,d","correct_answer":"a"}`
		p := &fakeProvider{completion: &llm.Completion{ToolArguments: `{"questions":[` + bad + `,` + itemA + `,` + wrongType + `]}`}}
		got, err := quizgen.NewGenerator(p).Generate(context.Background(), params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].CorrectAnswer != "4" {
			t.Fatalf("want only the valid item, got %+v", got)
		}
	})

	t.Run("TruncatedSalvaged", func(t *testing.T) {
		truncated := `{"questions":[` + itemA + `,` + itemB + `,{"question_text":"ما ناتج 5 - 1؟","options":["4","`
		p := &fakeProvider{completion: &llm.Completion{ToolArguments: truncated}}
		got, err := quizgen.NewGenerator(p).Generate(context.Background(), params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("want 2 salvaged questions, got %d", len(got))
		}
	})

	t.Run("Unsalvageable", func(t *testing.T) {
		p := &fakeProvider{completion: &llm.Completion{ToolArguments: `لا يوجد`}}
		_, err := quizgen.NewGenerator(p).Generate(context.Background(), params)
		if !errors.Is(err, llm.ErrMalformedResponse) {
			t.Fatalf("want ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("ProviderErrorPassesThrough", func(t *testing.T) {
		p := &fakeProvider{err: llm.ErrQuotaExhausted}
		_, err := quizgen.NewGenerator(p).Generate(context.Background(), params)
		if !errors.Is(err, llm.ErrQuotaExhausted) {
			t.Fatalf("want ErrQuotaExhausted, got %v", err)
		}
	})
}
