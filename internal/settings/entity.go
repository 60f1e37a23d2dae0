package settings

import (
	"time"

	"gorm.io/datatypes"
)

type SystemSetting struct {
	Key       string         `gorm:"primaryKey;type:text" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (SystemSetting) TableName() string { return "system_settings" }

const (
	KeyQuizLimits        = "quiz_limits"
	KeySectionCounts     = "section_question_counts"
	KeyModel             = "ai_model"
	KeyTopUpModel        = "ai_topup_model"
	KeyTemperature       = "ai_temperature"
	KeyPromptOverrides   = "prompt_overrides"
	KeyKnowledgeLimit    = "knowledge_fetch_limit"
	KeyBufferMultiplier  = "generation_buffer_multiplier"
	KeyMaxAttempts       = "generation_max_attempts"
	KeyExcludeHistoryMax = "served_history_limit"
)
