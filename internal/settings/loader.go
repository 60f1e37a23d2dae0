package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sharc777/allam-lambda/internal/config"
)

type Loader interface {
	Load(ctx context.Context) GenerationConfig
}

type loader struct {
	repo Repository
}

func NewLoader(repo Repository) Loader {
	return &loader{repo: repo}
}

// Load never fails: a missing table, row or undecodable value keeps the default.
func (l *loader) Load(ctx context.Context) GenerationConfig {
	log := config.WithContext(ctx)

	rows, err := l.repo.FindAll(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read system settings, using defaults")
		return Defaults()
	}

	overrides, errs := OverridesFromRows(rows)
	for _, e := range errs {
		log.WithError(e).Warn("Ignoring undecodable system setting")
	}
	return Merge(Defaults(), overrides)
}

type quizLimits struct {
	MaxQuestions        *int `json:"max_questions"`
	MinQuestions        *int `json:"min_questions"`
	DefaultQuestions    *int `json:"default_questions"`
	AssessmentQuestions *int `json:"assessment_questions"`
}

func OverridesFromRows(rows []SystemSetting) (Overrides, []error) {
	var o Overrides
	var errs []error

	for _, row := range rows {
		raw := []byte(row.Value)
		if len(raw) == 0 {
			continue
		}
		switch row.Key {
		case KeyQuizLimits:
			if v, ok := decode[quizLimits](row.Key, raw, &errs); ok {
				o.MaxQuestions = v.MaxQuestions
				o.MinQuestions = v.MinQuestions
				o.DefaultQuestions = v.DefaultQuestions
				o.AssessmentQuestions = v.AssessmentQuestions
			}
		case KeySectionCounts:
			if v, ok := decode[map[string]int](row.Key, raw, &errs); ok {
				o.SectionDefaults = v
			}
		case KeyModel:
			o.Model = decodePtr[string](row.Key, raw, &errs)
		case KeyTopUpModel:
			o.TopUpModel = decodePtr[string](row.Key, raw, &errs)
		case KeyTemperature:
			o.Temperature = decodePtr[float32](row.Key, raw, &errs)
		case KeyPromptOverrides:
			if v, ok := decode[map[string]string](row.Key, raw, &errs); ok {
				o.PromptOverrides = v
			}
		case KeyKnowledgeLimit:
			o.KnowledgeLimit = decodePtr[int](row.Key, raw, &errs)
		case KeyExcludeHistoryMax:
			o.HistoryLimit = decodePtr[int](row.Key, raw, &errs)
		case KeyBufferMultiplier:
			o.BufferMultiplier = decodePtr[float64](row.Key, raw, &errs)
		case KeyMaxAttempts:
			o.MaxAttempts = decodePtr[int](row.Key, raw, &errs)
		}
	}
	return o, errs
}

func decode[T any](key string, raw []byte, errs *[]error) (T, bool) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		*errs = append(*errs, fmt.Errorf("setting %q: %w", key, err))
		var zero T
		return zero, false
	}
	return v, true
}

func decodePtr[T any](key string, raw []byte, errs *[]error) *T {
	v, ok := decode[T](key, raw, errs)
	if !ok {
		return nil
	}
	return &v
}
