package service

import (
	"context"
	"time"

	"quiz-backend/internal/apperr"
	"quiz-backend/internal/event"
	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionStore is the persistence surface the question services need;
// repository.QuestionRepository satisfies it.
type QuestionStore interface {
	FindAll(ctx context.Context) ([]models.QuizQuestion, error)
	FindByID(ctx context.Context, id string) (*models.QuizQuestion, error)
	Create(ctx context.Context, question *models.QuizQuestion) error
	Update(ctx context.Context, id string, set bson.M) (*models.QuizQuestion, error)
	Delete(ctx context.Context, id string) error
}

type QuestionService struct {
	Store  QuestionStore
	Events *event.Publisher
}

func NewQuestionService(store QuestionStore, events *event.Publisher) *QuestionService {
	return &QuestionService{Store: store, Events: events}
}

func (s *QuestionService) List(ctx context.Context) ([]models.QuizQuestion, error) {
	return s.Store.FindAll(ctx)
}

func (s *QuestionService) GetByID(ctx context.Context, id string) (*models.QuizQuestion, error) {
	return s.Store.FindByID(ctx, id)
}

func (s *QuestionService) Create(ctx context.Context, question string, options, correctAnswer []string) (*models.QuizQuestion, error) {
	if question == "" {
		return nil, apperr.Validation("question text is required")
	}
	if err := nonEmptyList("options", options); err != nil {
		return nil, err
	}
	if err := nonEmptyList("correctAnswer", correctAnswer); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	q := &models.QuizQuestion{
		Question:      question,
		Options:       options,
		CorrectAnswer: correctAnswer,
		CreatedDate:   now,
		UpdatedDate:   now,
	}
	if err := s.Store.Create(ctx, q); err != nil {
		return nil, err
	}
	s.Events.Publish(event.QuestionCreated, map[string]any{"id": q.ID.Hex()})
	return q, nil
}

func (s *QuestionService) Update(ctx context.Context, id string, update models.QuestionUpdate) (*models.QuizQuestion, error) {
	set := bson.M{}
	if update.Question != nil {
		if *update.Question == "" {
			return nil, apperr.Validation("question text must not be empty")
		}
		set["question"] = *update.Question
	}
	if update.Options != nil {
		if err := nonEmptyList("options", *update.Options); err != nil {
			return nil, err
		}
		set["options"] = *update.Options
	}
	if update.CorrectAnswer != nil {
		if err := nonEmptyList("correctAnswer", *update.CorrectAnswer); err != nil {
			return nil, err
		}
		set["correctAnswer"] = *update.CorrectAnswer
	}
	if len(set) == 0 {
		return nil, apperr.Validation("no updatable fields supplied")
	}
	set["updatedDate"] = time.Now().UTC()
	updated, err := s.Store.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	s.Events.Publish(event.QuestionUpdated, map[string]any{"id": id})
	return updated, nil
}

func (s *QuestionService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	s.Events.Publish(event.QuestionDeleted, map[string]any{"id": id})
	return nil
}

func nonEmptyList(field string, values []string) error {
	if len(values) == 0 {
		return apperr.Validation("%s must not be empty", field)
	}
	for _, v := range values {
		if v == "" {
			return apperr.Validation("%s entries must not be empty", field)
		}
	}
	return nil
}
