package repositories

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "mentoria/internal/models/db_models"
)

type ResultRepository interface {
	GetResultBySubmissionId(ctx context.Context, submissionId uuid.UUID) (*dbm.QuizResult, error)
	SaveResultOnce(ctx context.Context, result *dbm.QuizResult) (*dbm.QuizResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) GetResultBySubmissionId(ctx context.Context, submissionId uuid.UUID) (*dbm.QuizResult, error) {
	var result dbm.QuizResult
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionId).
		First(&result).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &result, nil
}

// SaveResultOnce inserts the result row. The unique index on submission_id
// decides races between overlapping generations: the loser reads back the
// winner's row and returns that, so callers always see one canonical result.
func (r *resultRepository) SaveResultOnce(ctx context.Context, result *dbm.QuizResult) (*dbm.QuizResult, error) {
	err := r.db.WithContext(ctx).Create(result).Error
	if err == nil {
		return result, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Printf("Result for submission %s already stored, returning existing row", result.SubmissionID)
		return r.GetResultBySubmissionId(ctx, result.SubmissionID)
	}

	return nil, err
}
