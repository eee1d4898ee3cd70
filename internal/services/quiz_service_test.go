package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	dbm "mentoria/internal/models/db_models"
	"mentoria/internal/repositories"
	"mentoria/pkg/utils"
)

type fakeSubmissionService struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (s *fakeSubmissionService) Submit(ctx context.Context, answers map[string]string) (*dbm.QuizSubmission, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.fail {
		return nil, utils.ErrDatabaseError
	}
	submission := &dbm.QuizSubmission{
		Answers: dbm.AnswerMap(answers),
		Status:  dbm.SubmissionStatusPending,
	}
	submission.ID = uuid.New()
	return submission, nil
}

func (s *fakeSubmissionService) GetSubmission(ctx context.Context, submissionId string) (*dbm.QuizSubmission, error) {
	return nil, utils.ErrSubmissionNotFound
}

func (s *fakeSubmissionService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestQuizService(delay time.Duration) (*QuizService, repositories.ProgressStore, *fakeSubmissionService) {
	store := repositories.NewInMemoryProgressStore()
	submissions := &fakeSubmissionService{}
	svc := NewQuizService(NewSlideService(), store, submissions, delay)
	return svc, store, submissions
}

func seedProgress(t *testing.T, store repositories.ProgressStore, sessionId string, slide int, answers map[string]string) {
	t.Helper()
	err := store.SaveProgress(context.Background(), sessionId, &repositories.QuizProgress{
		CurrentSlide: slide,
		Answers:      answers,
	})
	if err != nil {
		t.Fatalf("seed progress: %v", err)
	}
}

func completedAnswers() map[string]string {
	return map[string]string{
		"atuacao":                         "consultor",
		"perfil_atuacao":                  "estrategista",
		"tempo_mercado":                   "5_10_anos",
		"faturamento_mensal":              "10k-30k",
		"tipo_demanda":                    "recorrente",
		"natureza_problema":               "estrategia",
		"capacidade_projetos":             "3_5",
		"horas_semanais":                  "10-20",
		"estado_metodologia":              "parcial",
		"capacidade_investimento_publico": "1k_5k",
		"objetivo_90_dias":                "validar",
		"posicionamento_desejado":         "referencia_nicho",
		"nome":                            "Maria",
		"email":                           "maria@example.com",
		"whatsapp":                        "(11) 98765-4321",
		"instagram":                       "@maria",
	}
}

func TestStartSession(t *testing.T) {
	svc, _, _ := newTestQuizService(time.Hour)

	progress, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if progress.SessionID == "" {
		t.Error("session id is empty")
	}
	if progress.CurrentSlide != 1 {
		t.Errorf("current slide = %d, want 1", progress.CurrentSlide)
	}
	if len(progress.Answers) != 0 {
		t.Errorf("answers = %v, want empty", progress.Answers)
	}
	if progress.TotalQuestions != 12 || progress.QuestionNumber != 1 {
		t.Errorf("counter = %d/%d, want 1/12", progress.QuestionNumber, progress.TotalQuestions)
	}
	if progress.CanRetreat {
		t.Error("first slide must not allow retreat")
	}
	if !progress.ShowProgress {
		t.Error("progress indicator hidden on slide 1")
	}
}

func TestAnswerLastWriteWins(t *testing.T) {
	svc, store, _ := newTestQuizService(time.Hour)
	ctx := context.Background()
	session := "sess-overwrite"
	seedProgress(t, store, session, 1, map[string]string{})

	if _, err := svc.Answer(ctx, session, "atuacao", "mentor"); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	progress, err := svc.Answer(ctx, session, "atuacao", "consultor")
	if err != nil {
		t.Fatalf("second answer: %v", err)
	}
	if progress.Answers["atuacao"] != "consultor" {
		t.Errorf("answer = %q, want the later write", progress.Answers["atuacao"])
	}
}

func TestAnswerRejectsUnknownKey(t *testing.T) {
	svc, store, _ := newTestQuizService(time.Hour)
	session := "sess-unknown"
	seedProgress(t, store, session, 1, map[string]string{})

	if _, err := svc.Answer(context.Background(), session, "cpf", "123"); !errors.Is(err, utils.ErrUnknownAnswerKey) {
		t.Errorf("err = %v, want ErrUnknownAnswerKey", err)
	}
}

func TestAnswerRejectsOtherSlidesKey(t *testing.T) {
	svc, store, _ := newTestQuizService(time.Hour)
	session := "sess-wrong-slide"
	seedProgress(t, store, session, 1, map[string]string{})

	// perfil_atuacao belongs to slide 3, the session is on slide 1.
	if _, err := svc.Answer(context.Background(), session, "perfil_atuacao", "executor"); !errors.Is(err, utils.ErrUnknownAnswerKey) {
		t.Errorf("err = %v, want ErrUnknownAnswerKey", err)
	}
}

func TestAnswerNormalizesContactFields(t *testing.T) {
	svc, store, _ := newTestQuizService(time.Hour)
	ctx := context.Background()
	session := "sess-contact"
	seedProgress(t, store, session, 14, map[string]string{})

	progress, err := svc.Answer(ctx, session, "whatsapp", "11 98765 4321")
	if err != nil {
		t.Fatalf("whatsapp answer: %v", err)
	}
	if progress.Answers["whatsapp"] != "(11) 98765-4321" {
		t.Errorf("whatsapp = %q", progress.Answers["whatsapp"])
	}

	progress, err = svc.Answer(ctx, session, "instagram", "maria")
	if err != nil {
		t.Fatalf("instagram answer: %v", err)
	}
	if progress.Answers["instagram"] != "@maria" {
		t.Errorf("instagram = %q", progress.Answers["instagram"])
	}
}

func TestAdvanceGatedOnCompleteness(t *testing.T) {
	svc, store, _ := newTestQuizService(time.Hour)
	ctx := context.Background()
	session := "sess-gate"
	seedProgress(t, store, session, 1, map[string]string{})

	if _, err := svc.Advance(ctx, session); !errors.Is(err, utils.ErrSlideIncomplete) {
		t.Fatalf("err = %v, want ErrSlideIncomplete", err)
	}

	if _, err := svc.Answer(ctx, session, "atuacao", "mentor"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	progress, err := svc.Advance(ctx, session)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if progress.CurrentSlide != 2 {
		t.Errorf("current slide = %d, want 2", progress.CurrentSlide)
	}
}

func TestRetreatRules(t *testing.T) {
	svc, store, _ := newTestQuizService(time.Hour)
	ctx := context.Background()

	session := "sess-retreat-first"
	seedProgress(t, store, session, 1, map[string]string{})
	if _, err := svc.Retreat(ctx, session); !errors.Is(err, utils.ErrCannotRetreat) {
		t.Errorf("retreat from slide 1: err = %v, want ErrCannotRetreat", err)
	}

	session = "sess-retreat-loading"
	seedProgress(t, store, session, 15, completedAnswers())
	if _, err := svc.Retreat(ctx, session); !errors.Is(err, utils.ErrCannotRetreat) {
		t.Errorf("retreat from loading: err = %v, want ErrCannotRetreat", err)
	}

	session = "sess-retreat-ok"
	seedProgress(t, store, session, 3, map[string]string{"atuacao": "mentor"})
	progress, err := svc.Retreat(ctx, session)
	if err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if progress.CurrentSlide != 2 {
		t.Errorf("current slide = %d, want 2", progress.CurrentSlide)
	}
	if progress.Answers["atuacao"] != "mentor" {
		t.Error("answers lost on retreat")
	}
}

func TestAutoAdvanceFiresOnce(t *testing.T) {
	svc, store, _ := newTestQuizService(30 * time.Millisecond)
	ctx := context.Background()
	session := "sess-auto"
	seedProgress(t, store, session, 3, map[string]string{"atuacao": "mentor"})

	// Two quick answers on the same slide share one scheduled advance.
	if _, err := svc.Answer(ctx, session, "perfil_atuacao", "executor"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := svc.Answer(ctx, session, "perfil_atuacao", "professor"); err != nil {
		t.Fatalf("answer: %v", err)
	}

	time.Sleep(150 * time.Millisecond)

	progress, err := svc.GetProgress(ctx, session)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.CurrentSlide != 4 {
		t.Errorf("current slide = %d, want exactly one advance to 4", progress.CurrentSlide)
	}
	if progress.Answers["perfil_atuacao"] != "professor" {
		t.Errorf("answer = %q, want the later write", progress.Answers["perfil_atuacao"])
	}
}

func TestAutoAdvanceSkippedWhenUserAlreadyMoved(t *testing.T) {
	svc, store, _ := newTestQuizService(30 * time.Millisecond)
	ctx := context.Background()
	session := "sess-auto-moved"
	seedProgress(t, store, session, 3, map[string]string{"atuacao": "mentor"})

	if _, err := svc.Answer(ctx, session, "perfil_atuacao", "executor"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := svc.Retreat(ctx, session); err != nil {
		t.Fatalf("retreat: %v", err)
	}

	time.Sleep(150 * time.Millisecond)

	progress, err := svc.GetProgress(ctx, session)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.CurrentSlide != 2 {
		t.Errorf("current slide = %d, stale auto-advance should not fire", progress.CurrentSlide)
	}
}

func TestFinalQuestionDoesNotScheduleAdvance(t *testing.T) {
	svc, store, _ := newTestQuizService(20 * time.Millisecond)
	ctx := context.Background()
	session := "sess-no-auto"
	seedProgress(t, store, session, 13, map[string]string{})

	if _, err := svc.Answer(ctx, session, "posicionamento_desejado", "referencia_nicho"); err != nil {
		t.Fatalf("answer: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	progress, err := svc.GetProgress(ctx, session)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.CurrentSlide != 13 {
		t.Errorf("current slide = %d, want to stay on 13", progress.CurrentSlide)
	}
}

func TestAdvanceIntoLoadingSubmits(t *testing.T) {
	svc, store, submissions := newTestQuizService(time.Hour)
	ctx := context.Background()
	session := "sess-submit"
	seedProgress(t, store, session, 14, completedAnswers())

	progress, err := svc.Advance(ctx, session)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if progress.CurrentSlide != 15 {
		t.Errorf("current slide = %d, want 15", progress.CurrentSlide)
	}
	if progress.SubmissionID == "" {
		t.Error("submission id not recorded")
	}
	if progress.ShowProgress {
		t.Error("progress indicator shown on loading slide")
	}
	if submissions.callCount() != 1 {
		t.Errorf("submit called %d times, want 1", submissions.callCount())
	}

	// Advancing again on the terminal slide is a no-op and must not
	// submit a second time.
	again, err := svc.Advance(ctx, session)
	if err != nil {
		t.Fatalf("second advance: %v", err)
	}
	if again.CurrentSlide != 15 || again.SubmissionID != progress.SubmissionID {
		t.Error("terminal advance changed state")
	}
	if submissions.callCount() != 1 {
		t.Errorf("submit called %d times after no-op advance, want 1", submissions.callCount())
	}
}

func TestFailedSubmitReturnsToPersonalData(t *testing.T) {
	svc, store, submissions := newTestQuizService(time.Hour)
	submissions.fail = true
	ctx := context.Background()
	session := "sess-submit-fail"
	answers := completedAnswers()
	seedProgress(t, store, session, 14, answers)

	progress, err := svc.Advance(ctx, session)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if progress.CurrentSlide != 14 {
		t.Errorf("current slide = %d, want back on 14", progress.CurrentSlide)
	}
	if progress.SubmitError == "" {
		t.Error("submit error message missing")
	}
	if progress.SubmissionID != "" {
		t.Error("submission id set after a failed submit")
	}
	for key, value := range answers {
		if progress.Answers[key] != value {
			t.Errorf("answer %q lost after failed submit", key)
		}
	}

	// Retrying succeeds and clears the error.
	submissions.fail = false
	progress, err = svc.Advance(ctx, session)
	if err != nil {
		t.Fatalf("retry advance: %v", err)
	}
	if progress.CurrentSlide != 15 || progress.SubmissionID == "" {
		t.Error("retry did not reach the loading slide with a submission")
	}
	if progress.SubmitError != "" {
		t.Errorf("submit error = %q, want cleared", progress.SubmitError)
	}
}

func TestResetClearsSession(t *testing.T) {
	svc, store, _ := newTestQuizService(time.Hour)
	ctx := context.Background()
	session := "sess-reset"
	seedProgress(t, store, session, 7, map[string]string{"atuacao": "mentor", "tempo_mercado": "10_mais"})

	progress, err := svc.Reset(ctx, session)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if progress.CurrentSlide != 1 {
		t.Errorf("current slide = %d, want 1", progress.CurrentSlide)
	}
	if len(progress.Answers) != 0 {
		t.Errorf("answers survived reset: %v", progress.Answers)
	}
}

func TestGetProgressUnknownSessionStartsFresh(t *testing.T) {
	svc, _, _ := newTestQuizService(time.Hour)

	progress, err := svc.GetProgress(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.CurrentSlide != 1 || len(progress.Answers) != 0 {
		t.Errorf("unknown session progress = %+v, want fresh state", progress)
	}
}
