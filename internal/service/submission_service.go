package service

import (
	"context"
	"time"

	"quiz-backend/internal/apperr"
	"quiz-backend/internal/event"
	"quiz-backend/internal/models"
	"quiz-backend/internal/scoring"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResultStore is the persistence surface for scored submissions;
// repository.ResultRepository satisfies it.
type ResultStore interface {
	Create(ctx context.Context, result *models.QuizResult) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.QuizResult, error)
}

type SubmissionOutcome struct {
	ResultID   string `json:"resultId"`
	TotalScore int    `json:"totalScore"`
}

// SubmissionService validates a submission, grades it and persists exactly
// one QuizResult per successful call. Resubmission creates a new result;
// duplicate prevention is the caller's concern.
type SubmissionService struct {
	Questions scoring.QuestionFinder
	Results   ResultStore
	Events    *event.Publisher
}

func NewSubmissionService(questions scoring.QuestionFinder, results ResultStore, events *event.Publisher) *SubmissionService {
	return &SubmissionService{Questions: questions, Results: results, Events: events}
}

func (s *SubmissionService) Submit(ctx context.Context, sub models.QuizSubmission) (*SubmissionOutcome, error) {
	if sub.UserID == "" {
		return nil, apperr.Validation("userId is required")
	}
	userID, err := primitive.ObjectIDFromHex(sub.UserID)
	if err != nil {
		return nil, apperr.Validation("userId is not a valid id")
	}
	if len(sub.Answers) == 0 {
		return nil, apperr.Validation("answers must not be empty")
	}
	for i, a := range sub.Answers {
		if a.QuestionID == "" {
			return nil, apperr.Validation("answers[%d].questionId is required", i)
		}
		if a.Answer == "" {
			return nil, apperr.Validation("answers[%d].answer is required", i)
		}
	}

	snapshots, total, err := scoring.Grade(ctx, s.Questions, sub.Answers)
	if err != nil {
		return nil, err
	}

	result := &models.QuizResult{
		User:       userID,
		TotalScore: total,
		Answers:    snapshots,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return nil, err
	}

	s.Events.Publish(event.QuizSubmitted, map[string]any{
		"resultId":   result.ID.Hex(),
		"user":       sub.UserID,
		"totalScore": total,
	})
	return &SubmissionOutcome{ResultID: result.ID.Hex(), TotalScore: total}, nil
}
