package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	dbm "mentoria/internal/models/db_models"
	resp "mentoria/internal/models/response_models"
	"mentoria/internal/repositories"
	"mentoria/pkg/utils"
)

type ResultServiceInterface interface {
	GenerateResult(ctx context.Context, submissionId string) (*dbm.QuizResult, error)
	GetResult(ctx context.Context, submissionId string) (*resp.ResultResponse, error)
}

type ResultService struct {
	submissionRepo repositories.SubmissionRepository
	resultRepo     repositories.ResultRepository
	aiClient       utils.ReportClientInterface
}

func NewResultService(
	submissionRepo repositories.SubmissionRepository,
	resultRepo repositories.ResultRepository,
	aiClient utils.ReportClientInterface,
) ResultServiceInterface {
	return &ResultService{
		submissionRepo: submissionRepo,
		resultRepo:     resultRepo,
		aiClient:       aiClient,
	}
}

// GenerateResult produces the strategy report for a submission. Idempotent:
// once a result row exists for the id, every later call returns that row
// unchanged and the provider is never called again.
func (s *ResultService) GenerateResult(ctx context.Context, submissionId string) (*dbm.QuizResult, error) {
	id, err := uuid.Parse(submissionId)
	if err != nil {
		return nil, fmt.Errorf("%w: bad submission id", utils.ErrInvalidInput)
	}

	existing, err := s.resultRepo.GetResultBySubmissionId(ctx, id)
	if err != nil {
		log.Printf("Error checking result cache for %s: %v", submissionId, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	submission, err := s.submissionRepo.GetSubmissionById(ctx, submissionId)
	if err != nil {
		log.Printf("Error fetching submission %s: %v", submissionId, err)
		return nil, utils.ErrDatabaseError
	}
	if submission == nil {
		return nil, utils.ErrSubmissionNotFound
	}

	if err := s.submissionRepo.UpdateSubmissionStatus(ctx, id, dbm.SubmissionStatusProcessing, ""); err != nil {
		log.Printf("Error marking submission %s processing: %v", submissionId, err)
		return nil, utils.ErrDatabaseError
	}

	result, err := s.generateAndStore(ctx, id, submission)
	if err != nil {
		s.markError(id, err)
		return nil, err
	}

	if err := s.submissionRepo.UpdateSubmissionStatus(ctx, id, dbm.SubmissionStatusDone, ""); err != nil {
		log.Printf("Error marking submission %s done: %v", submissionId, err)
	}

	return result, nil
}

func (s *ResultService) generateAndStore(ctx context.Context, id uuid.UUID, submission *dbm.QuizSubmission) (*dbm.QuizResult, error) {
	sanitized := utils.SanitizeAnswers(submission.Answers)

	raw, err := s.aiClient.GenerateReport(ctx, sanitized)
	if err != nil {
		if errors.Is(err, utils.ErrMissingAPIKey) || errors.Is(err, utils.ErrInvalidInput) {
			return nil, err
		}
		log.Printf("AI generation error for submission %s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	// The raw text is stored whether or not it parses as the structured
	// shape; rendering decides how to present it.
	result, err := s.resultRepo.SaveResultOnce(ctx, &dbm.QuizResult{
		SubmissionID:   id,
		ResultMarkdown: raw,
		ModelUsed:      s.aiClient.ModelName(),
	})
	if err != nil {
		log.Printf("Error storing result for submission %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	return result, nil
}

// markError records the failure on the submission. A fresh context is used
// so the status write survives a canceled request.
func (s *ResultService) markError(id uuid.UUID, cause error) {
	msg := cause.Error()
	if len(msg) > 500 {
		msg = msg[:500]
	}
	if err := s.submissionRepo.UpdateSubmissionStatus(context.Background(), id, dbm.SubmissionStatusError, msg); err != nil {
		log.Printf("Error marking submission %s errored: %v", id, err)
	}
}

// GetResult returns the stored report for a submission, generating it first
// when no row exists yet. Safe to call repeatedly: generation is idempotent.
func (s *ResultService) GetResult(ctx context.Context, submissionId string) (*resp.ResultResponse, error) {
	id, err := uuid.Parse(submissionId)
	if err != nil {
		return nil, fmt.Errorf("%w: bad submission id", utils.ErrInvalidInput)
	}

	result, err := s.resultRepo.GetResultBySubmissionId(ctx, id)
	if err != nil {
		log.Printf("Error fetching result for %s: %v", submissionId, err)
		return nil, utils.ErrDatabaseError
	}
	if result == nil {
		result, err = s.GenerateResult(ctx, submissionId)
		if err != nil {
			return nil, err
		}
	}

	body := utils.ParseReportBody(result.ResultMarkdown)
	return &resp.ResultResponse{
		SubmissionID: result.SubmissionID.String(),
		ResultID:     result.ID.String(),
		ModelUsed:    result.ModelUsed,
		Body:         body,
		Rendered:     RenderReport(body),
	}, nil
}
