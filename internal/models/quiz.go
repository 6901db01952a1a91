package models

// QuizQuestion represents one multiple-choice question.
// Correct is never serialized to clients.
type QuizQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  string   `json:"-"`
}
