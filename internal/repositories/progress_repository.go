package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuizProgress is the durable per-session wizard state: the slide the user
// is on plus every answer written so far.
type QuizProgress struct {
	CurrentSlide int               `json:"current_slide"`
	Answers      map[string]string `json:"answers"`
	SubmissionID string            `json:"submission_id,omitempty"`
	SubmitError  string            `json:"submit_error,omitempty"`
}

func NewQuizProgress() *QuizProgress {
	return &QuizProgress{
		CurrentSlide: 1,
		Answers:      map[string]string{},
	}
}

// ProgressStore is the storage port for quiz progress. Absent or corrupt
// data is never fatal: Load falls back to a fresh progress record.
type ProgressStore interface {
	LoadProgress(ctx context.Context, sessionId string) (*QuizProgress, error)
	SaveProgress(ctx context.Context, sessionId string, progress *QuizProgress) error
	ClearProgress(ctx context.Context, sessionId string) error
}

const (
	progressKeyPrefix = "quiz_progress:"
	progressTTL       = 7 * 24 * time.Hour
)

type redisProgressStore struct {
	client *redis.Client
}

func NewRedisProgressStore(client *redis.Client) ProgressStore {
	return &redisProgressStore{client: client}
}

func (s *redisProgressStore) LoadProgress(ctx context.Context, sessionId string) (*QuizProgress, error) {
	data, err := s.client.Get(ctx, progressKeyPrefix+sessionId).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewQuizProgress(), nil
		}
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var progress QuizProgress
	if err := json.Unmarshal([]byte(data), &progress); err != nil {
		log.Printf("Corrupt progress for session %s, starting fresh: %v", sessionId, err)
		return NewQuizProgress(), nil
	}
	if progress.CurrentSlide < 1 {
		progress.CurrentSlide = 1
	}
	if progress.Answers == nil {
		progress.Answers = map[string]string{}
	}
	return &progress, nil
}

func (s *redisProgressStore) SaveProgress(ctx context.Context, sessionId string, progress *QuizProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	return s.client.Set(ctx, progressKeyPrefix+sessionId, data, progressTTL).Err()
}

func (s *redisProgressStore) ClearProgress(ctx context.Context, sessionId string) error {
	return s.client.Del(ctx, progressKeyPrefix+sessionId).Err()
}
