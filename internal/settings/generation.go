package settings

// GenerationConfig is the effective configuration of one quiz generation call.
// Every field is always populated: build it with Merge(Defaults(), overrides).
type GenerationConfig struct {
	MaxQuestions        int
	MinQuestions        int
	DefaultQuestions    int
	AssessmentQuestions int
	SectionDefaults     map[string]int

	Model       string
	TopUpModel  string
	Temperature float32

	// PromptOverrides replaces a built-in template wholesale, keyed by template name.
	PromptOverrides map[string]string

	KnowledgeLimit   int
	HistoryLimit     int
	BufferMultiplier float64
	MaxAttempts      int
}

func Defaults() GenerationConfig {
	return GenerationConfig{
		MaxQuestions:        50,
		MinQuestions:        5,
		DefaultQuestions:    10,
		AssessmentQuestions: 20,
		SectionDefaults: map[string]int{
			"quantitative": 10,
			"verbal":       10,
		},
		Model:            "google/gemini-2.5-flash",
		TopUpModel:       "google/gemini-2.5-flash-lite",
		Temperature:      0.7,
		PromptOverrides:  map[string]string{},
		KnowledgeLimit:   20,
		HistoryLimit:     500,
		BufferMultiplier: 2.0,
		MaxAttempts:      3,
	}
}

// Overrides is the partial record read from system_settings. Nil means "not set".
type Overrides struct {
	MaxQuestions        *int              `json:"max_questions,omitempty"`
	MinQuestions        *int              `json:"min_questions,omitempty"`
	DefaultQuestions    *int              `json:"default_questions,omitempty"`
	AssessmentQuestions *int              `json:"assessment_questions,omitempty"`
	SectionDefaults     map[string]int    `json:"section_defaults,omitempty"`
	Model               *string           `json:"model,omitempty"`
	TopUpModel          *string           `json:"topup_model,omitempty"`
	Temperature         *float32          `json:"temperature,omitempty"`
	PromptOverrides     map[string]string `json:"prompt_overrides,omitempty"`
	KnowledgeLimit      *int              `json:"knowledge_limit,omitempty"`
	HistoryLimit        *int              `json:"history_limit,omitempty"`
	BufferMultiplier    *float64          `json:"buffer_multiplier,omitempty"`
	MaxAttempts         *int              `json:"max_attempts,omitempty"`
}

// Merge lays o over base. Out-of-range values are ignored so the result stays usable.
func Merge(base GenerationConfig, o Overrides) GenerationConfig {
	out := base
	out.SectionDefaults = copyInts(base.SectionDefaults)
	out.PromptOverrides = copyStrings(base.PromptOverrides)

	setPositive(&out.MaxQuestions, o.MaxQuestions)
	setPositive(&out.MinQuestions, o.MinQuestions)
	setPositive(&out.DefaultQuestions, o.DefaultQuestions)
	setPositive(&out.AssessmentQuestions, o.AssessmentQuestions)
	setPositive(&out.KnowledgeLimit, o.KnowledgeLimit)
	setPositive(&out.HistoryLimit, o.HistoryLimit)
	setPositive(&out.MaxAttempts, o.MaxAttempts)

	if out.MinQuestions > out.MaxQuestions {
		out.MinQuestions, out.MaxQuestions = base.MinQuestions, base.MaxQuestions
	}

	for section, n := range o.SectionDefaults {
		if n > 0 {
			out.SectionDefaults[section] = n
		}
	}
	for key, prompt := range o.PromptOverrides {
		if prompt != "" {
			out.PromptOverrides[key] = prompt
		}
	}

	if o.Model != nil && *o.Model != "" {
		out.Model = *o.Model
	}
	if o.TopUpModel != nil && *o.TopUpModel != "" {
		out.TopUpModel = *o.TopUpModel
	}
	if o.Temperature != nil && *o.Temperature >= 0 && *o.Temperature <= 2 {
		out.Temperature = *o.Temperature
	}
	if o.BufferMultiplier != nil && *o.BufferMultiplier >= 1 {
		out.BufferMultiplier = *o.BufferMultiplier
	}

	return out
}

func setPositive(dst *int, v *int) {
	if v != nil && *v > 0 {
		*dst = *v
	}
}

func copyInts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyStrings(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
