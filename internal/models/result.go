package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerSnapshot is one graded answer as captured at submission time. The
// question text is copied, not referenced, so later edits or deletes of the
// question leave stored results intact.
type AnswerSnapshot struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
	Correct  bool   `bson:"correct" json:"correct"`
}

// QuizResult is an immutable scored submission. TotalScore is a percentage in
// [0,100] and is recomputable from Answers.
type QuizResult struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	TotalScore int                `bson:"totalScore" json:"totalScore"`
	Answers    []AnswerSnapshot   `bson:"answers" json:"answers"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
