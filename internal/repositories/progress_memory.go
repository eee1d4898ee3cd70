package repositories

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryProgressStore keeps progress in-process. Used by tests and by local
// runs without a Redis instance.
type memoryProgressStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewInMemoryProgressStore() ProgressStore {
	return &memoryProgressStore{slots: map[string][]byte{}}
}

func (s *memoryProgressStore) LoadProgress(ctx context.Context, sessionId string) (*QuizProgress, error) {
	s.mu.RLock()
	data, ok := s.slots[sessionId]
	s.mu.RUnlock()

	if !ok {
		return NewQuizProgress(), nil
	}

	var progress QuizProgress
	if err := json.Unmarshal(data, &progress); err != nil {
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

func (s *memoryProgressStore) SaveProgress(ctx context.Context, sessionId string, progress *QuizProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.slots[sessionId] = data
	s.mu.Unlock()
	return nil
}

func (s *memoryProgressStore) ClearProgress(ctx context.Context, sessionId string) error {
	s.mu.Lock()
	delete(s.slots, sessionId)
	s.mu.Unlock()
	return nil
}
