package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	resp "mentoria/internal/models/response_models"
	"mentoria/internal/repositories"
	"mentoria/pkg/utils"
)

type QuizServiceInterface interface {
	StartSession(ctx context.Context) (*resp.ProgressResponse, error)
	GetProgress(ctx context.Context, sessionId string) (*resp.ProgressResponse, error)
	Answer(ctx context.Context, sessionId string, key string, value string) (*resp.ProgressResponse, error)
	Advance(ctx context.Context, sessionId string) (*resp.ProgressResponse, error)
	Retreat(ctx context.Context, sessionId string) (*resp.ProgressResponse, error)
	Reset(ctx context.Context, sessionId string) (*resp.ProgressResponse, error)
}

// QuizService drives the slide state machine. Slide transitions are gated by
// the catalog's completion predicates; reaching the loading slide submits the
// answer set exactly once per session.
type QuizService struct {
	slideService      SlideServiceInterface
	progressStore     repositories.ProgressStore
	submissionService SubmissionServiceInterface
	autoAdvanceDelay  time.Duration

	mu             sync.Mutex
	pendingAdvance map[string]int  // session -> slide with a scheduled auto-advance
	submitting     map[string]bool // session -> submission in flight
}

func NewQuizService(
	slideService SlideServiceInterface,
	progressStore repositories.ProgressStore,
	submissionService SubmissionServiceInterface,
	autoAdvanceDelay time.Duration,
) *QuizService {
	return &QuizService{
		slideService:      slideService,
		progressStore:     progressStore,
		submissionService: submissionService,
		autoAdvanceDelay:  autoAdvanceDelay,
		pendingAdvance:    map[string]int{},
		submitting:        map[string]bool{},
	}
}

func (q *QuizService) StartSession(ctx context.Context) (*resp.ProgressResponse, error) {
	sessionId := uuid.New().String()
	progress := repositories.NewQuizProgress()
	if err := q.progressStore.SaveProgress(ctx, sessionId, progress); err != nil {
		log.Printf("Error saving new session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}
	return q.buildProgressResponse(sessionId, progress), nil
}

func (q *QuizService) GetProgress(ctx context.Context, sessionId string) (*resp.ProgressResponse, error) {
	progress, err := q.progressStore.LoadProgress(ctx, sessionId)
	if err != nil {
		log.Printf("Error loading session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}
	return q.buildProgressResponse(sessionId, progress), nil
}

// Answer writes one answer key. On choice and question slides the written
// key must be the slide's own key and, unless the slide opts out, a
// debounced auto-advance is scheduled; answering again before it fires must
// not schedule a second one.
func (q *QuizService) Answer(ctx context.Context, sessionId string, key string, value string) (*resp.ProgressResponse, error) {
	if !q.slideService.KnownKey(key) {
		return nil, utils.ErrUnknownAnswerKey
	}

	progress, err := q.progressStore.LoadProgress(ctx, sessionId)
	if err != nil {
		log.Printf("Error loading session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}

	slide := q.slideService.SlideById(progress.CurrentSlide)
	if slide == nil || slide.Type == resp.SlideTypeLoading {
		return nil, utils.ErrInvalidInput
	}

	switch slide.Type {
	case resp.SlideTypeChoice, resp.SlideTypeQuestion:
		if key != slide.AnswerKey {
			return nil, utils.ErrUnknownAnswerKey
		}
	case resp.SlideTypePersonalData:
		if !containsKey(slide.RequiredKeys, key) {
			return nil, utils.ErrUnknownAnswerKey
		}
	}

	progress.Answers[key] = normalizeAnswer(key, value)

	if err := q.progressStore.SaveProgress(ctx, sessionId, progress); err != nil {
		log.Printf("Error saving session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}

	autoAdvance := (slide.Type == resp.SlideTypeChoice || slide.Type == resp.SlideTypeQuestion) &&
		!slide.NoAutoAdvance && progress.Answers[key] != ""
	if autoAdvance {
		q.scheduleAutoAdvance(sessionId, slide.ID)
	}

	return q.buildProgressResponse(sessionId, progress), nil
}

func normalizeAnswer(key string, value string) string {
	value = strings.TrimSpace(value)
	switch key {
	case "whatsapp":
		return utils.FormatPhoneNumber(value)
	case "instagram":
		return utils.FormatInstagramHandle(value)
	default:
		return value
	}
}

// scheduleAutoAdvance is single-flight per slide visit: while one advance is
// pending for the session, later answers reuse it instead of stacking more.
func (q *QuizService) scheduleAutoAdvance(sessionId string, slideId int) {
	q.mu.Lock()
	if _, pending := q.pendingAdvance[sessionId]; pending {
		q.mu.Unlock()
		return
	}
	q.pendingAdvance[sessionId] = slideId
	q.mu.Unlock()

	time.AfterFunc(q.autoAdvanceDelay, func() {
		q.mu.Lock()
		expected, ok := q.pendingAdvance[sessionId]
		delete(q.pendingAdvance, sessionId)
		q.mu.Unlock()
		if !ok || expected != slideId {
			return
		}

		ctx := context.Background()
		progress, err := q.progressStore.LoadProgress(ctx, sessionId)
		if err != nil || progress.CurrentSlide != slideId {
			// The user already moved (or retreated); nothing to do.
			return
		}
		if _, err := q.Advance(ctx, sessionId); err != nil {
			log.Printf("Auto-advance for session %s failed: %v", sessionId, err)
		}
	})
}

// Advance moves to the next slide when the current one is complete. Landing
// on the loading slide triggers the submission pipeline.
func (q *QuizService) Advance(ctx context.Context, sessionId string) (*resp.ProgressResponse, error) {
	progress, err := q.progressStore.LoadProgress(ctx, sessionId)
	if err != nil {
		log.Printf("Error loading session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}

	slide := q.slideService.SlideById(progress.CurrentSlide)
	if slide == nil || slide.Type == resp.SlideTypeLoading {
		// Already terminal; repeated advances are a no-op.
		return q.buildProgressResponse(sessionId, progress), nil
	}

	if !q.slideService.IsComplete(slide, progress.Answers) {
		return nil, utils.ErrSlideIncomplete
	}

	progress.CurrentSlide = slide.ID + 1
	progress.SubmitError = ""
	if err := q.progressStore.SaveProgress(ctx, sessionId, progress); err != nil {
		log.Printf("Error saving session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}

	if progress.CurrentSlide == q.slideService.LoadingSlideId() {
		progress = q.submitOnce(ctx, sessionId, progress)
	}

	return q.buildProgressResponse(sessionId, progress), nil
}

// submitOnce runs the submission pipeline at most once per session entry
// into the loading slide. Overlapping triggers collapse into one effect; a
// failed attempt puts the user back on the last answerable slide with the
// answers intact.
func (q *QuizService) submitOnce(ctx context.Context, sessionId string, progress *repositories.QuizProgress) *repositories.QuizProgress {
	if progress.SubmissionID != "" {
		return progress
	}

	q.mu.Lock()
	if q.submitting[sessionId] {
		q.mu.Unlock()
		return progress
	}
	q.submitting[sessionId] = true
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		delete(q.submitting, sessionId)
		q.mu.Unlock()
	}()

	submission, err := q.submissionService.Submit(ctx, progress.Answers)
	if err != nil {
		log.Printf("Submission failed for session %s: %v", sessionId, err)
		progress.CurrentSlide = q.slideService.LastAnswerableSlideId()
		progress.SubmitError = "Ocorreu um erro ao processar suas respostas. Por favor, tente novamente."
	} else {
		progress.SubmissionID = submission.ID.String()
		progress.SubmitError = ""
	}

	if saveErr := q.progressStore.SaveProgress(ctx, sessionId, progress); saveErr != nil {
		log.Printf("Error saving session %s after submit: %v", sessionId, saveErr)
	}
	return progress
}

// Retreat steps back one slide, floored at the first slide. The first slide
// and slides flagged NoRetreat refuse, as does the terminal loading slide.
func (q *QuizService) Retreat(ctx context.Context, sessionId string) (*resp.ProgressResponse, error) {
	progress, err := q.progressStore.LoadProgress(ctx, sessionId)
	if err != nil {
		log.Printf("Error loading session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}

	slide := q.slideService.SlideById(progress.CurrentSlide)
	if progress.CurrentSlide <= 1 || slide == nil || slide.NoRetreat || slide.Type == resp.SlideTypeLoading {
		return nil, utils.ErrCannotRetreat
	}

	progress.CurrentSlide--
	if progress.CurrentSlide < 1 {
		progress.CurrentSlide = 1
	}
	if err := q.progressStore.SaveProgress(ctx, sessionId, progress); err != nil {
		log.Printf("Error saving session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}

	return q.buildProgressResponse(sessionId, progress), nil
}

// Reset discards the session's progress entirely.
func (q *QuizService) Reset(ctx context.Context, sessionId string) (*resp.ProgressResponse, error) {
	q.mu.Lock()
	delete(q.pendingAdvance, sessionId)
	delete(q.submitting, sessionId)
	q.mu.Unlock()

	if err := q.progressStore.ClearProgress(ctx, sessionId); err != nil {
		log.Printf("Error clearing session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}

	progress := repositories.NewQuizProgress()
	if err := q.progressStore.SaveProgress(ctx, sessionId, progress); err != nil {
		log.Printf("Error saving session %s: %v", sessionId, err)
		return nil, utils.ErrDatabaseError
	}

	return q.buildProgressResponse(sessionId, progress), nil
}

func (q *QuizService) buildProgressResponse(sessionId string, progress *repositories.QuizProgress) *resp.ProgressResponse {
	slide := q.slideService.SlideById(progress.CurrentSlide)

	showProgress := slide != nil && slide.Type != resp.SlideTypeLoading
	canRetreat := slide != nil && progress.CurrentSlide > 1 &&
		!slide.NoRetreat && slide.Type != resp.SlideTypeLoading

	q.mu.Lock()
	submitting := q.submitting[sessionId]
	q.mu.Unlock()

	return &resp.ProgressResponse{
		SessionID:      sessionId,
		CurrentSlide:   progress.CurrentSlide,
		Answers:        progress.Answers,
		QuestionNumber: q.slideService.QuestionNumber(progress.CurrentSlide),
		TotalQuestions: q.slideService.TotalQuestions(),
		ShowProgress:   showProgress,
		CanRetreat:     canRetreat,
		Submitting:     submitting,
		SubmissionID:   progress.SubmissionID,
		SubmitError:    progress.SubmitError,
	}
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
