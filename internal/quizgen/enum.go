package quizgen

type Mode string

const (
	ModePractice          Mode = "practice"
	ModeInitialAssessment Mode = "initial_assessment"
	ModeLesson            Mode = "lesson"
)

func (m Mode) Valid() bool {
	switch m {
	case ModePractice, ModeInitialAssessment, ModeLesson:
		return true
	}
	return false
}

type TestType string

const (
	TestAptitude    TestType = "aptitude"
	TestAchievement TestType = "achievement"
)

func (t TestType) Valid() bool {
	return t == TestAptitude || t == TestAchievement
}

type Section string

const (
	SectionNone         Section = ""
	SectionQuantitative Section = "quantitative"
	SectionVerbal       Section = "verbal"
	// SectionAchievement tags questions of achievement tests, which have no
	// quantitative/verbal split.
	SectionAchievement Section = "achievement"
)

func (s Section) Valid() bool {
	switch s {
	case SectionNone, SectionQuantitative, SectionVerbal:
		return true
	}
	return false
}

const (
	TrackGeneral    = "general"
	TrackScientific = "scientific"
	TrackLiterary   = "literary"
)

func validTrack(track string) bool {
	switch track {
	case TrackGeneral, TrackScientific, TrackLiterary:
		return true
	}
	return false
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyMixed  = "mixed"
)

func validDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

const (
	SourceAI    = "ai"
	SourceBank  = "bank"
	SourceTopUp = "ai_topup"
)
