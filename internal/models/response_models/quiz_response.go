package response_models

type SlideCatalogResponse struct {
	Slides         []SlideConfig `json:"slides"`
	TotalQuestions int           `json:"total_questions"`
}

type ProgressResponse struct {
	SessionID      string            `json:"session_id"`
	CurrentSlide   int               `json:"current_slide"`
	Answers        map[string]string `json:"answers"`
	QuestionNumber int               `json:"question_number"`
	TotalQuestions int               `json:"total_questions"`
	ShowProgress   bool              `json:"show_progress"`
	CanRetreat     bool              `json:"can_retreat"`
	Submitting     bool              `json:"submitting"`
	SubmissionID   string            `json:"submission_id,omitempty"`
	SubmitError    string            `json:"submit_error,omitempty"`
}

type GenerateResultResponse struct {
	Status         string `json:"status"`
	ResultMarkdown string `json:"result_markdown,omitempty"`
	SubmissionID   string `json:"submission_id,omitempty"`
	ResultID       string `json:"result_id,omitempty"`
	Message        string `json:"message,omitempty"`
}
