package quizgen

import (
	"github.com/google/uuid"
)

type Question struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Section       Section  `json:"section"`
	SubjectTag    string   `json:"subject_tag"`
	TopicTag      string   `json:"topic_tag"`
	Difficulty    string   `json:"difficulty"`
	Fingerprint   string   `json:"fingerprint"`
	Source        string   `json:"source,omitempty"`
}

// GenerationRequest is the normalized form of an inbound quiz request.
type GenerationRequest struct {
	UserID         uuid.UUID
	Mode           Mode
	TestType       TestType
	Track          string
	Section        Section
	Difficulty     string
	RequestedCount *int
	ContentID      *uuid.UUID
	DayNumber      *int
}
