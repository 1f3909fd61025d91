package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizQuestion is a stored question. CorrectAnswer holds one or more option
// texts; multi-select questions list every correct option.
type QuizQuestion struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question      string             `bson:"question" json:"question"`
	Options       []string           `bson:"options" json:"options"`
	CorrectAnswer []string           `bson:"correctAnswer" json:"correctAnswer"`
	CreatedDate   time.Time          `bson:"createdDate" json:"createdDate"`
	UpdatedDate   time.Time          `bson:"updatedDate" json:"updatedDate"`
}

// QuestionUpdate is a partial replacement for a stored question. Nil fields
// are left untouched; present fields must still satisfy the non-empty rules.
type QuestionUpdate struct {
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *[]string `json:"correctAnswer"`
}
