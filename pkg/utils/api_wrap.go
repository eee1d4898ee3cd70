package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Quiz session not found")
	case errors.Is(err, ErrSubmissionNotFound):
		RespondError(c, http.StatusNotFound, "Submission not found")
	case errors.Is(err, ErrResultNotFound):
		RespondError(c, http.StatusNotFound, "Result not found")
	case errors.Is(err, ErrSlideIncomplete):
		RespondError(c, http.StatusBadRequest, "Answer the current step before continuing")
	case errors.Is(err, ErrCannotRetreat):
		RespondError(c, http.StatusBadRequest, "Cannot go back from this step")
	case errors.Is(err, ErrUnknownAnswerKey):
		RespondError(c, http.StatusBadRequest, "Unknown answer key")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrMissingAPIKey):
		log.Printf("Configuration error: %v", err)
		RespondError(c, http.StatusInternalServerError, "AI provider not configured")
	case errors.Is(err, ErrUnexpectedBehaviorOfAI), errors.Is(err, ErrGenerationFailed):
		log.Printf("Generation error: %v", err)
		RespondError(c, http.StatusBadGateway, "Could not generate the result. Please try again.")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
