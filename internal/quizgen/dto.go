package quizgen

type GenerateQuizRequest struct {
	Mode          string  `json:"mode"`
	TestType      string  `json:"testType"`
	Track         string  `json:"track"`
	Section       string  `json:"section"`
	Difficulty    string  `json:"difficulty"`
	QuestionCount *int    `json:"questionCount"`
	ContentID     *string `json:"contentId"`
	DayNumber     *int    `json:"dayNumber"`
}

type GenerateQuizResponse struct {
	Questions    []Question `json:"questions"`
	TestType     TestType   `json:"testType"`
	Track        string     `json:"track"`
	ContentTitle string     `json:"contentTitle,omitempty"`
}
