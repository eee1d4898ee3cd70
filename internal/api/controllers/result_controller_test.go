package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dbm "mentoria/internal/models/db_models"
	resp "mentoria/internal/models/response_models"
	"mentoria/pkg/utils"
)

type stubResultService struct {
	result *dbm.QuizResult
	view   *resp.ResultResponse
	err    error
	calls  int
}

func (s *stubResultService) GenerateResult(ctx context.Context, submissionId string) (*dbm.QuizResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubResultService) GetResult(ctx context.Context, submissionId string) (*resp.ResultResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func newResultTestRouter(svc *stubResultService) *gin.Engine {
	controller := NewResultController(svc)
	r := gin.New()
	group := r.Group("/results")
	group.POST("/generate", controller.GenerateResult)
	group.GET("/:submissionId", controller.GetResult)
	return r
}

func postGenerate(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/results/generate", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpointSuccessShape(t *testing.T) {
	submissionId := uuid.New()
	result := &dbm.QuizResult{
		SubmissionID:   submissionId,
		ResultMarkdown: "## Diagnóstico\n\nTexto.",
	}
	result.ID = uuid.New()
	svc := &stubResultService{result: result}
	r := newResultTestRouter(svc)

	w := postGenerate(t, r, `{"submission_id": "`+submissionId.String()+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var payload struct {
		Status         string `json:"status"`
		ResultMarkdown string `json:"result_markdown"`
		SubmissionID   string `json:"submission_id"`
		ResultID       string `json:"result_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Status != "ok" {
		t.Errorf("status = %q, want ok", payload.Status)
	}
	if payload.ResultMarkdown != result.ResultMarkdown {
		t.Errorf("result_markdown = %q", payload.ResultMarkdown)
	}
	if payload.SubmissionID != submissionId.String() {
		t.Errorf("submission_id = %q", payload.SubmissionID)
	}
	if payload.ResultID != result.ID.String() {
		t.Errorf("result_id = %q", payload.ResultID)
	}
}

func TestGenerateEndpointMissingSubmissionId(t *testing.T) {
	svc := &stubResultService{}
	r := newResultTestRouter(svc)

	for _, body := range []string{`{}`, `{"submission_id": ""}`, `not json`} {
		w := postGenerate(t, r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
	if svc.calls != 0 {
		t.Errorf("service called %d times for invalid requests", svc.calls)
	}
}

func TestGenerateEndpointErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{utils.ErrSubmissionNotFound, http.StatusNotFound},
		{utils.ErrInvalidInput, http.StatusBadRequest},
		{utils.ErrUnexpectedBehaviorOfAI, http.StatusBadGateway},
		{utils.ErrDatabaseError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := newResultTestRouter(&stubResultService{err: tc.err})
		w := postGenerate(t, r, `{"submission_id": "`+uuid.New().String()+`"}`)
		if w.Code != tc.want {
			t.Errorf("err %v: status = %d, want %d", tc.err, w.Code, tc.want)
		}

		var payload struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if payload.Status != "error" || payload.Message == "" {
			t.Errorf("err %v: payload = %+v", tc.err, payload)
		}
	}
}

func TestGetResultEndpoint(t *testing.T) {
	view := &resp.ResultResponse{
		SubmissionID: uuid.New().String(),
		ResultID:     uuid.New().String(),
		ModelUsed:    "stub-model",
		Body:         resp.RawReport("## Texto"),
		Rendered:     "## Texto",
	}
	r := newResultTestRouter(&stubResultService{view: view})

	req := httptest.NewRequest(http.MethodGet, "/results/"+view.SubmissionID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	var payload resp.ResultResponse
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if payload.Body.Kind != resp.ReportKindRaw || payload.Rendered != "## Texto" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestGetResultEndpointNotFound(t *testing.T) {
	r := newResultTestRouter(&stubResultService{err: utils.ErrSubmissionNotFound})

	req := httptest.NewRequest(http.MethodGet, "/results/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
