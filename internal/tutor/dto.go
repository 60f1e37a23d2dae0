package tutor

import "github.com/sharc777/allam-lambda/internal/llm"

type ChatRequest struct {
	Messages []llm.Message `json:"messages"`
	TestType string        `json:"testType"`
	Section  string        `json:"section"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
