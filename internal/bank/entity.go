package bank

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BankQuestion struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TestType      string                      `gorm:"type:text;not null;index:idx_bank_lookup" json:"test_type"`
	Track         string                      `gorm:"type:text;not null;index:idx_bank_lookup" json:"track"`
	Section       string                      `gorm:"type:text;index:idx_bank_lookup" json:"section"`
	Difficulty    string                      `gorm:"type:text;not null;index:idx_bank_lookup" json:"difficulty"`
	QuestionText  string                      `gorm:"type:text;not null" json:"question_text"`
	Options       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string                      `gorm:"type:text;not null" json:"correct_answer"`
	Explanation   string                      `gorm:"type:text" json:"explanation"`
	SubjectTag    string                      `gorm:"type:text" json:"subject_tag"`
	TopicTag      string                      `gorm:"type:text" json:"topic_tag"`
	QuestionHash  string                      `gorm:"type:text;uniqueIndex" json:"question_hash"`
	UsageCount    int                         `gorm:"not null;default:0" json:"usage_count"`
	IsActive      bool                        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time                   `json:"created_at"`
}

func (BankQuestion) TableName() string { return "question_bank" }
