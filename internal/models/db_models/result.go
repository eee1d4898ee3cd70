package db_models

import (
	"github.com/google/uuid"
)

// QuizResult caches the generated report. The unique index on submission_id
// is what makes generation idempotent: at most one result row per submission.
type QuizResult struct {
	BaseModel
	SubmissionID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"submission_id"`
	ResultMarkdown string    `gorm:"type:text;not null" json:"result_markdown"`
	ModelUsed      string    `gorm:"type:varchar(100)" json:"model_used,omitempty"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
