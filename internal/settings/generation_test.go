package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sharc777/allam-lambda/internal/settings"
	"gorm.io/datatypes"
)

func ptr[T any](v T) *T { return &v }

func TestMerge(t *testing.T) {
	t.Run("EmptyOverridesKeepDefaults", func(t *testing.T) {
		got := settings.Merge(settings.Defaults(), settings.Overrides{})
		want := settings.Defaults()
		if got.MaxQuestions != want.MaxQuestions || got.Model != want.Model || got.BufferMultiplier != want.BufferMultiplier {
			t.Errorf("defaults changed: %+v", got)
		}
	})

	t.Run("OverridesApplied", func(t *testing.T) {
		got := settings.Merge(settings.Defaults(), settings.Overrides{
			MaxQuestions:     ptr(30),
			Model:            ptr("openai/gpt-4o-mini"),
			Temperature:      ptr(float32(0.3)),
			SectionDefaults:  map[string]int{"verbal": 15},
			PromptOverrides:  map[string]string{"verbal": "custom"},
			BufferMultiplier: ptr(1.5),
			MaxAttempts:      ptr(5),
		})
		if got.MaxQuestions != 30 {
			t.Errorf("MaxQuestions: want 30, got %d", got.MaxQuestions)
		}
		if got.Model != "openai/gpt-4o-mini" {
			t.Errorf("Model: got %s", got.Model)
		}
		if got.Temperature != 0.3 {
			t.Errorf("Temperature: got %v", got.Temperature)
		}
		if got.SectionDefaults["verbal"] != 15 || got.SectionDefaults["quantitative"] != 10 {
			t.Errorf("SectionDefaults: got %v", got.SectionDefaults)
		}
		if got.PromptOverrides["verbal"] != "custom" {
			t.Errorf("PromptOverrides: got %v", got.PromptOverrides)
		}
		if got.BufferMultiplier != 1.5 || got.MaxAttempts != 5 {
			t.Errorf("tuning: got %v / %d", got.BufferMultiplier, got.MaxAttempts)
		}
	})

	t.Run("InvalidValuesIgnored", func(t *testing.T) {
		got := settings.Merge(settings.Defaults(), settings.Overrides{
			MaxQuestions:     ptr(0),
			MinQuestions:     ptr(100),
			Temperature:      ptr(float32(7)),
			BufferMultiplier: ptr(0.5),
			Model:            ptr(""),
		})
		want := settings.Defaults()
		if got.MaxQuestions != want.MaxQuestions || got.MinQuestions != want.MinQuestions {
			t.Errorf("limits: got min=%d max=%d", got.MinQuestions, got.MaxQuestions)
		}
		if got.Temperature != want.Temperature || got.BufferMultiplier != want.BufferMultiplier || got.Model != want.Model {
			t.Errorf("invalid overrides leaked: %+v", got)
		}
	})

	t.Run("DoesNotMutateBase", func(t *testing.T) {
		base := settings.Defaults()
		settings.Merge(base, settings.Overrides{SectionDefaults: map[string]int{"quantitative": 42}})
		if base.SectionDefaults["quantitative"] != 10 {
			t.Errorf("base mutated: %v", base.SectionDefaults)
		}
	})
}

func TestOverridesFromRows(t *testing.T) {
	rows := []settings.SystemSetting{
		{Key: settings.KeyQuizLimits, Value: datatypes.JSON(`{"max_questions": 40, "min_questions": 3}`)},
		{Key: settings.KeyModel, Value: datatypes.JSON(`"google/gemini-2.5-pro"`)},
		{Key: settings.KeyPromptOverrides, Value: datatypes.JSON(`{"quantitative": "override"}`)},
		{Key: settings.KeyTemperature, Value: datatypes.JSON(`"hot"`)},
		{Key: "unrelated", Value: datatypes.JSON(`true`)},
	}

	o, errs := settings.OverridesFromRows(rows)
	if len(errs) != 1 {
		t.Fatalf("want 1 decode error, got %d (%v)", len(errs), errs)
	}
	if o.MaxQuestions == nil || *o.MaxQuestions != 40 {
		t.Errorf("MaxQuestions: got %v", o.MaxQuestions)
	}
	if o.Model == nil || *o.Model != "google/gemini-2.5-pro" {
		t.Errorf("Model: got %v", o.Model)
	}
	if o.PromptOverrides["quantitative"] != "override" {
		t.Errorf("PromptOverrides: got %v", o.PromptOverrides)
	}
	if o.Temperature != nil {
		t.Errorf("Temperature should stay unset, got %v", *o.Temperature)
	}
}

type failingRepo struct{}

func (failingRepo) FindAll(context.Context) ([]settings.SystemSetting, error) {
	return nil, errors.New("relation \"system_settings\" does not exist")
}

func TestLoaderFallsBackToDefaults(t *testing.T) {
	got := settings.NewLoader(failingRepo{}).Load(context.Background())
	if got.MaxAttempts != settings.Defaults().MaxAttempts {
		t.Errorf("want defaults, got %+v", got)
	}
}
