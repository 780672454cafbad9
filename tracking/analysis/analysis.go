package analysis

// Mode selects which AI analysis the pipeline performs.
type Mode string

const (
	// ModeMatchAnalysis scores a resume against a job description and
	// returns a labeled prose analysis plus best-effort structured fields.
	ModeMatchAnalysis Mode = "resumeAnalysis"

	// ModeInterviewQuestions generates a free-text numbered question list
	// grounded in resume and job description.
	ModeInterviewQuestions Mode = "interviewQuestions"

	// ModeInterviewPrep generates structured question/answer pairs from the
	// resume alone, parsed strictly as JSON.
	ModeInterviewPrep Mode = "interviewPrep"
)

// ModeSpec makes each mode's input and output contract explicit instead of
// being inferred per call site.
type ModeSpec struct {
	// JobDescriptionRequired rejects requests without a non-blank job
	// description before any file processing happens.
	JobDescriptionRequired bool

	// Structured selects the strict JSON parser over the best-effort
	// free-text one.
	Structured bool
}

// Spec returns the contract for a mode. Unknown modes return the zero spec;
// callers must check Valid first.
func (m Mode) Spec() ModeSpec {
	switch m {
	case ModeMatchAnalysis:
		return ModeSpec{JobDescriptionRequired: true}
	case ModeInterviewQuestions:
		return ModeSpec{JobDescriptionRequired: true}
	case ModeInterviewPrep:
		return ModeSpec{Structured: true}
	default:
		return ModeSpec{}
	}
}

// Valid reports whether m is a known analysis mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeMatchAnalysis, ModeInterviewQuestions, ModeInterviewPrep:
		return true
	}
	return false
}

// QuestionAnswer is one structured interview question with its ideal answer.
// Order within a result is significant: it maps 1:1 to display order.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MatchResult holds the best-effort structured fields extracted from a
// match-analysis response. Fields are nil when the model's prose did not
// contain the corresponding label; RawText is always preserved for fallback
// display.
type MatchResult struct {
	MatchPercentage *string
	Strengths       *string
	MissingSkills   *string
	RawText         string
}

// Result is the typed outcome of one pipeline run. Exactly one of the
// mode-specific fields is populated, according to Mode.
type Result struct {
	Mode      Mode
	Match     *MatchResult     // ModeMatchAnalysis
	RawText   string           // ModeInterviewQuestions
	Questions []QuestionAnswer // ModeInterviewPrep
}
