package models

// SubmissionAnswer is one submitted answer. Answer carries the selected
// option texts; multi-select choices are joined into one string with ", ".
type SubmissionAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// QuizSubmission is the request body of a quiz submission.
type QuizSubmission struct {
	UserID  string             `json:"userId"`
	Answers []SubmissionAnswer `json:"answers"`
}
