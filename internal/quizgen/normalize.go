package quizgen

import (
	"strings"

	"github.com/google/uuid"
)

// Normalize applies defaults and validates enums for an inbound request.
func Normalize(userID uuid.UUID, in GenerateQuizRequest) (GenerationRequest, error) {
	req := GenerationRequest{
		UserID:     userID,
		Mode:       Mode(orDefault(in.Mode, string(ModePractice))),
		TestType:   TestType(orDefault(in.TestType, string(TestAptitude))),
		Track:      orDefault(in.Track, TrackGeneral),
		Section:    Section(strings.TrimSpace(in.Section)),
		Difficulty: orDefault(in.Difficulty, DifficultyMedium),
		DayNumber:  in.DayNumber,
	}

	if !req.Mode.Valid() {
		return GenerationRequest{}, invalid("unknown mode %q", req.Mode)
	}
	if !req.TestType.Valid() {
		return GenerationRequest{}, invalid("unknown testType %q", req.TestType)
	}
	if !validTrack(req.Track) {
		return GenerationRequest{}, invalid("unknown track %q", req.Track)
	}
	if !req.Section.Valid() {
		return GenerationRequest{}, invalid("unknown section %q", req.Section)
	}
	if !validDifficulty(req.Difficulty) {
		return GenerationRequest{}, invalid("unknown difficulty %q", req.Difficulty)
	}

	// Out-of-range counts are clamped by TargetCount.
	if in.QuestionCount != nil {
		n := *in.QuestionCount
		req.RequestedCount = &n
	}

	if req.TestType == TestAchievement || req.Mode == ModeInitialAssessment {
		req.Section = SectionNone
	}
	if req.Mode == ModeInitialAssessment {
		req.Difficulty = DifficultyMixed
	}

	if in.ContentID != nil && strings.TrimSpace(*in.ContentID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*in.ContentID))
		if err != nil {
			return GenerationRequest{}, invalid("contentId is not a valid id")
		}
		req.ContentID = &id
	}
	if req.Mode == ModeLesson && req.ContentID == nil && req.DayNumber == nil {
		return GenerationRequest{}, invalid("lesson mode requires contentId or dayNumber")
	}

	return req, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
