package dto

// QuizQuestionItem represents one question as served to clients (no answer)
type QuizQuestionItem struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizResponse envelope for GET /quiz
type QuizResponse struct {
	Questions []QuizQuestionItem `json:"questions"`
}

// QuizSubmission represents submitted answers, keyed "q1", "q2", ...
type QuizSubmission struct {
	Answers map[string]string `json:"answers"`
}

// QuizResultResponse reports the score for a submission
type QuizResultResponse struct {
	Score  int  `json:"score"`
	Total  int  `json:"total"`
	Passed bool `json:"passed"`
}
