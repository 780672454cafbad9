package analysis

// MatchAnalysisResponse is the wire shape for match analysis. Result always
// carries the full prose; the structured fields are null when the model's
// formatting drifted.
type MatchAnalysisResponse struct {
	Result          string  `json:"result"`
	MatchPercentage *string `json:"matchPercentage"`
	Strengths       *string `json:"strengths"`
	MissingSkills   *string `json:"missingSkills"`
}

// InterviewQuestionsResponse is the wire shape for the free-text question
// list.
type InterviewQuestionsResponse struct {
	InterviewQuestions string `json:"interviewQuestions"`
}

// InterviewPrepResponse is the wire shape for structured question/answer
// pairs.
type InterviewPrepResponse struct {
	QuestionsAndAnswers []QuestionAnswer `json:"questionsAndAnswers"`
}

// ToMatchResponse converts a match result to its wire shape.
func ToMatchResponse(m *MatchResult) MatchAnalysisResponse {
	return MatchAnalysisResponse{
		Result:          m.RawText,
		MatchPercentage: m.MatchPercentage,
		Strengths:       m.Strengths,
		MissingSkills:   m.MissingSkills,
	}
}
