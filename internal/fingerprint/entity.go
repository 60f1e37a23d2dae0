package fingerprint

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ServedQuestion struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionHash string         `gorm:"type:text;not null;index" json:"question_hash"`
	QuestionData datatypes.JSON `gorm:"type:jsonb" json:"question_data"`
	DayNumber    *int           `json:"day_number,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ServedQuestion) TableName() string { return "served_questions" }
