package services

import (
	"context"
	"fmt"
	"log"

	dbm "mentoria/internal/models/db_models"
	"mentoria/internal/repositories"
	"mentoria/pkg/utils"
)

type SubmissionServiceInterface interface {
	Submit(ctx context.Context, answers map[string]string) (*dbm.QuizSubmission, error)
	GetSubmission(ctx context.Context, submissionId string) (*dbm.QuizSubmission, error)
}

type SubmissionService struct {
	submissionRepo repositories.SubmissionRepository
	resultService  ResultServiceInterface
}

func NewSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	resultService ResultServiceInterface,
) SubmissionServiceInterface {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		resultService:  resultService,
	}
}

// Submit stores the finished answer set and invokes the generator with the
// new submission id. The record must exist before the generator runs, since
// the generator is keyed by that id.
func (s *SubmissionService) Submit(ctx context.Context, answers map[string]string) (*dbm.QuizSubmission, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: empty answer set", utils.ErrInvalidInput)
	}

	submission, err := s.submissionRepo.CreateSubmission(ctx, dbm.AnswerMap(answers))
	if err != nil {
		log.Printf("Error creating submission: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if _, err := s.resultService.GenerateResult(ctx, submission.ID.String()); err != nil {
		return nil, err
	}

	return submission, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, submissionId string) (*dbm.QuizSubmission, error) {
	submission, err := s.submissionRepo.GetSubmissionById(ctx, submissionId)
	if err != nil {
		log.Printf("Error fetching submission %s: %v", submissionId, err)
		return nil, utils.ErrDatabaseError
	}
	if submission == nil {
		return nil, utils.ErrSubmissionNotFound
	}
	return submission, nil
}
