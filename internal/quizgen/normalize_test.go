package quizgen_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sharc777/allam-lambda/internal/quizgen"
)

func TestNormalize(t *testing.T) {
	user := uuid.New()

	t.Run("Defaults", func(t *testing.T) {
		req, err := quizgen.Normalize(user, quizgen.GenerateQuizRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Mode != quizgen.ModePractice || req.TestType != quizgen.TestAptitude ||
			req.Track != quizgen.TrackGeneral || req.Difficulty != quizgen.DifficultyMedium {
			t.Fatalf("unexpected defaults: %+v", req)
		}
		if req.RequestedCount != nil {
			t.Error("requested count should stay unset")
		}
		if req.UserID != user {
			t.Error("user id not carried")
		}
	})

	t.Run("SectionClearedForAchievement", func(t *testing.T) {
		req, err := quizgen.Normalize(user, quizgen.GenerateQuizRequest{TestType: "achievement", Track: "scientific", Section: "verbal"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Section != quizgen.SectionNone {
			t.Fatalf("section = %q, want none", req.Section)
		}
	})

	t.Run("InitialAssessmentIsMixed", func(t *testing.T) {
		req, err := quizgen.Normalize(user, quizgen.GenerateQuizRequest{Mode: "initial_assessment", Section: "quantitative", Difficulty: "hard"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Section != quizgen.SectionNone || req.Difficulty != quizgen.DifficultyMixed {
			t.Fatalf("got section %q difficulty %q", req.Section, req.Difficulty)
		}
	})

	t.Run("NonPositiveCountKept", func(t *testing.T) {
		req, err := quizgen.Normalize(user, quizgen.GenerateQuizRequest{QuestionCount: ptr(-3)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.RequestedCount == nil || *req.RequestedCount != -3 {
			t.Fatalf("requested count = %v", req.RequestedCount)
		}
	})

	t.Run("LessonRequiresReference", func(t *testing.T) {
		_, err := quizgen.Normalize(user, quizgen.GenerateQuizRequest{Mode: "lesson"})
		if !errors.Is(err, quizgen.ErrInvalidRequest) {
			t.Fatalf("want ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("LessonContentID", func(t *testing.T) {
		id := uuid.NewString()
		req, err := quizgen.Normalize(user, quizgen.GenerateQuizRequest{Mode: "lesson", ContentID: &id})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.ContentID == nil || req.ContentID.String() != id {
			t.Fatal("content id not parsed")
		}
	})

	invalid := map[string]quizgen.GenerateQuizRequest{
		"Mode":       {Mode: "marathon"},
		"TestType":   {TestType: "iq"},
		"Track":      {Track: "arts"},
		"Section":    {Section: "spatial"},
		"Difficulty": {Difficulty: "extreme"},
		"ContentID":  {Mode: "lesson", ContentID: ptr("not-a-uuid")},
	}
	for name, in := range invalid {
		t.Run("Invalid"+name, func(t *testing.T) {
			if _, err := quizgen.Normalize(user, in); !errors.Is(err, quizgen.ErrInvalidRequest) {
				t.Fatalf("want ErrInvalidRequest, got %v", err)
			}
		})
	}
}
