package utils

import "errors"

var (
	ErrSessionNotFound        = errors.New("quiz session not found")
	ErrSubmissionNotFound     = errors.New("submission not found")
	ErrResultNotFound         = errors.New("result not found")
	ErrSlideIncomplete        = errors.New("current slide is not complete")
	ErrCannotRetreat          = errors.New("cannot retreat from this slide")
	ErrUnknownAnswerKey       = errors.New("unknown answer key")
	ErrInvalidInput           = errors.New("invalid input")
	ErrMissingAPIKey          = errors.New("AI provider API key not configured")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI provider")
	ErrGenerationFailed       = errors.New("report generation failed")
	ErrDatabaseError          = errors.New("database error")
)
