package utils

import (
	"encoding/json"
	"strings"

	"mentoria/internal/models/response_models"
)

// ParseReportBody turns a provider response into the tagged report form.
// Three stages: direct JSON parse, then a JSON object dug out of a fenced
// code block (or surrounding prose), then the raw text kept verbatim. The
// last stage cannot fail, so this is a total function.
func ParseReportBody(raw string) response_models.ReportBody {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return response_models.RawReport(raw)
	}

	if data, ok := tryParseResultData(trimmed); ok {
		return response_models.StructuredReport(data)
	}

	if extracted := ExtractEmbeddedJSON(trimmed); extracted != "" {
		if data, ok := tryParseResultData(extracted); ok {
			return response_models.StructuredReport(data)
		}
	}

	return response_models.RawReport(raw)
}

func tryParseResultData(candidate string) (*response_models.ResultData, bool) {
	var data response_models.ResultData
	if err := json.Unmarshal([]byte(candidate), &data); err != nil {
		return nil, false
	}
	// An empty object parses fine but carries no report; treat it as a miss
	// so the raw fallback still shows something.
	if len(data.Summary) == 0 && len(data.Formats) == 0 &&
		data.Recomendacao == "" && len(data.ProximosPassos) == 0 {
		return nil, false
	}
	return &data, true
}

// ExtractEmbeddedJSON strips markdown fences and common LLM preambles, then
// returns the first balanced JSON object found in the text. Empty string
// when there is none.
func ExtractEmbeddedJSON(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	if objStart == -1 {
		return ""
	}
	objEnd := findMatchingBrace(response, objStart)
	if objEnd == -1 {
		return ""
	}
	return response[objStart : objEnd+1]
}

// findMatchingBrace finds the matching closing brace for an opening brace,
// string- and escape-aware.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
