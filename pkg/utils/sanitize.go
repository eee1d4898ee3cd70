package utils

import (
	"strings"
)

// MaxAnswerLength bounds each answer value sent to the AI provider.
const MaxAnswerLength = 200

// SanitizeAnswerValue strips control characters and caps the length. Applied
// to every answer before it reaches the provider, both to bound the payload
// and to blunt prompt-injection payloads hidden in free-text fields.
func SanitizeAnswerValue(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	kept := 0
	for _, r := range value {
		if r < 0x20 || r == 0x7F {
			continue
		}
		b.WriteRune(r)
		kept++
		if kept == MaxAnswerLength {
			break
		}
	}
	return b.String()
}

func SanitizeAnswers(answers map[string]string) map[string]string {
	sanitized := make(map[string]string, len(answers))
	for key, value := range answers {
		sanitized[key] = SanitizeAnswerValue(value)
	}
	return sanitized
}

// FormatPhoneNumber renders Brazilian phone digits as (00) 00000-0000.
// Non-digits in the input are ignored.
func FormatPhoneNumber(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	numbers := digits.String()
	if len(numbers) > 11 {
		numbers = numbers[:11]
	}
	switch {
	case len(numbers) <= 2:
		return numbers
	case len(numbers) <= 7:
		return "(" + numbers[:2] + ") " + numbers[2:]
	default:
		return "(" + numbers[:2] + ") " + numbers[2:7] + "-" + numbers[7:]
	}
}

// FormatInstagramHandle normalizes a handle to a single leading @.
func FormatInstagramHandle(value string) string {
	cleaned := strings.TrimLeft(strings.TrimSpace(value), "@")
	if cleaned == "" {
		return ""
	}
	return "@" + cleaned
}
