package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseErrorKind distinguishes the ways a structured model response can be
// unusable. The kind travels to the API layer as a diagnostic detail.
type ParseErrorKind string

const (
	ParseNotJson       ParseErrorKind = "not_json"       // no JSON payload found at all
	ParseMalformedJson ParseErrorKind = "malformed_json" // payload found but not valid JSON
	ParseInvalidShape  ParseErrorKind = "invalid_shape"  // valid JSON with the wrong structure
)

// ParseError reports why a structured response could not be turned into
// question/answer pairs.
type ParseError struct {
	Kind   ParseErrorKind
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Kind, e.Detail)
}

var (
	matchPercentageRe = regexp.MustCompile(`(?i)match percentage[:\s]*([\d.]+)%`)
	strengthsRe       = regexp.MustCompile(`(?i)strengths[:\s]*([\s\S]*?)(?:missing skills|missing keywords|$)`)
	missingSkillsRe   = regexp.MustCompile(`(?i)missing (?:keywords/)?skills[:\s]*([\s\S]*)`)
)

// ParseMatchAnalysis extracts structured fields from a match-analysis
// response. It is deliberately lenient: models drift in formatting, so any
// field whose label is absent comes back nil and the raw text survives for
// verbatim display. This function never fails.
func ParseMatchAnalysis(raw string) *MatchResult {
	result := &MatchResult{RawText: raw}

	if m := matchPercentageRe.FindStringSubmatch(raw); m != nil {
		pct := m[1] + "%"
		result.MatchPercentage = &pct
	}
	if m := strengthsRe.FindStringSubmatch(raw); m != nil {
		if s := strings.TrimSpace(m[1]); s != "" {
			result.Strengths = &s
		}
	}
	if m := missingSkillsRe.FindStringSubmatch(raw); m != nil {
		if s := strings.TrimSpace(m[1]); s != "" {
			result.MissingSkills = &s
		}
	}

	return result
}

// ParseInterviewQuestions parses a structured model response into question/
// answer pairs. Models wrap JSON in markdown fences and chatty preambles no
// matter how firmly the prompt forbids it, so the payload is located and
// cleaned before parsing. Failures are *ParseError.
func ParseInterviewQuestions(raw string) ([]QuestionAnswer, error) {
	cleaned := stripFences(strings.TrimSpace(raw))

	start := jsonStart(cleaned)
	if start == -1 {
		return nil, &ParseError{Kind: ParseNotJson, Detail: "response contains no '[' or '{'"}
	}
	cleaned = cleaned[start:]

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		// Distinguish "object instead of array" from broken JSON.
		var obj map[string]json.RawMessage
		if json.Unmarshal([]byte(cleaned), &obj) == nil {
			return nil, &ParseError{Kind: ParseInvalidShape, Detail: "expected a JSON array, got an object"}
		}
		return nil, &ParseError{Kind: ParseMalformedJson, Detail: err.Error()}
	}

	if len(items) == 0 {
		return nil, &ParseError{Kind: ParseInvalidShape, Detail: "question array is empty"}
	}

	pairs := make([]QuestionAnswer, 0, len(items))
	for i, item := range items {
		var entry map[string]any
		if err := json.Unmarshal(item, &entry); err != nil {
			return nil, &ParseError{Kind: ParseInvalidShape, Detail: fmt.Sprintf("element %d is not an object", i)}
		}
		question, ok := entry["question"].(string)
		if !ok || question == "" {
			return nil, &ParseError{Kind: ParseInvalidShape, Detail: fmt.Sprintf("element %d is missing a string \"question\"", i)}
		}
		answer, ok := entry["answer"].(string)
		if !ok || answer == "" {
			return nil, &ParseError{Kind: ParseInvalidShape, Detail: fmt.Sprintf("element %d is missing a string \"answer\"", i)}
		}
		pairs = append(pairs, QuestionAnswer{Question: question, Answer: answer})
	}

	return pairs, nil
}

// stripFences removes leading/trailing markdown code fences.
func stripFences(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(s[len("```json"):])
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(s[3:])
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(s[:len(s)-3])
	}
	return s
}

// jsonStart returns the index of the first '[' or '{', whichever comes
// first, or -1 when neither is present.
func jsonStart(s string) int {
	bracket := strings.IndexByte(s, '[')
	brace := strings.IndexByte(s, '{')

	switch {
	case bracket == -1:
		return brace
	case brace == -1:
		return bracket
	case bracket < brace:
		return bracket
	default:
		return brace
	}
}
