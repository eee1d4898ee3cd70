package request_models

type AnswerRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type GenerateResultRequest struct {
	SubmissionID string `json:"submission_id" binding:"required"`
}
