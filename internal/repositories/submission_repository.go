package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "mentoria/internal/models/db_models"
)

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, answers dbm.AnswerMap) (*dbm.QuizSubmission, error)
	GetSubmissionById(ctx context.Context, submissionId string) (*dbm.QuizSubmission, error)
	UpdateSubmissionStatus(ctx context.Context, submissionId uuid.UUID, status string, errorMessage string) error
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) CreateSubmission(ctx context.Context, answers dbm.AnswerMap) (*dbm.QuizSubmission, error) {
	submission := dbm.QuizSubmission{
		Answers: answers,
		Status:  dbm.SubmissionStatusPending,
	}
	if err := r.db.WithContext(ctx).Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) GetSubmissionById(ctx context.Context, submissionId string) (*dbm.QuizSubmission, error) {
	var submission dbm.QuizSubmission
	err := r.db.WithContext(ctx).
		Where("id = ?", submissionId).
		First(&submission).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &submission, nil
}

func (r *submissionRepository) UpdateSubmissionStatus(ctx context.Context, submissionId uuid.UUID, status string, errorMessage string) error {
	if err := dbm.ValidSubmissionStatus(status); err != nil {
		return err
	}

	updates := map[string]interface{}{"status": status}
	if errorMessage != "" {
		updates["error_message"] = errorMessage
	}

	return r.db.WithContext(ctx).
		Model(&dbm.QuizSubmission{}).
		Where("id = ?", submissionId).
		Updates(updates).Error
}
