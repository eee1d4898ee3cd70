package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	SubmissionStatusPending    = "pending"
	SubmissionStatusProcessing = "processing"
	SubmissionStatusDone       = "done"
	SubmissionStatusError      = "error"
)

// AnswerMap stores the quiz answers as a jsonb column.
type AnswerMap map[string]string

func (a AnswerMap) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (a *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*a = AnswerMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("cannot scan %T into AnswerMap", value)
	}
}

func (AnswerMap) GormDataType() string {
	return "jsonb"
}

type QuizSubmission struct {
	BaseModel
	Answers      AnswerMap `gorm:"type:jsonb;not null" json:"answers"`
	Status       string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ErrorMessage string    `gorm:"type:text" json:"error_message,omitempty"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}

func ValidSubmissionStatus(status string) error {
	switch status {
	case SubmissionStatusPending, SubmissionStatusProcessing, SubmissionStatusDone, SubmissionStatusError:
		return nil
	}
	return errors.New("invalid submission status: " + status)
}
