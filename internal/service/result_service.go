package service

import (
	"context"

	"quiz-backend/internal/apperr"
	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResultService struct {
	Store ResultStore
}

func NewResultService(store ResultStore) *ResultService {
	return &ResultService{Store: store}
}

// ByUser returns a user's scored submissions, newest first.
func (s *ResultService) ByUser(ctx context.Context, userID string) ([]models.QuizResult, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.Validation("userId is not a valid id")
	}
	return s.Store.FindByUser(ctx, oid)
}
