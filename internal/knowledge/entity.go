package knowledge

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReferenceTopic struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title         string                      `gorm:"type:text;not null" json:"title"`
	Content       string                      `gorm:"type:text" json:"content"`
	RelatedTopics datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"related_topics"`
	TestType      string                      `gorm:"type:text;not null;index" json:"test_type"`
	Track         string                      `gorm:"type:text;not null" json:"track"`
	IsActive      bool                        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (ReferenceTopic) TableName() string { return "knowledge_base" }

type DailyContent struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DayNumber   int                         `gorm:"not null;index" json:"day_number"`
	Title       string                      `gorm:"type:text;not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	ContentText string                      `gorm:"type:text" json:"content_text"`
	Topics      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"topics"`
	TestType    string                      `gorm:"type:text;not null" json:"test_type"`
	Track       string                      `gorm:"type:text;not null" json:"track"`
	IsPublished bool                        `gorm:"not null;default:false" json:"is_published"`
	CreatedAt   time.Time                   `json:"created_at"`
}

func (DailyContent) TableName() string { return "daily_content" }
