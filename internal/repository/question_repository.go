package repository

import (
	"context"
	"errors"

	"quiz-backend/internal/apperr"
	"quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("quizquestions")}
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]models.QuizQuestion, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Store("find questions", err)
	}
	defer cur.Close(ctx)
	var questions []models.QuizQuestion
	for cur.Next(ctx) {
		var q models.QuizQuestion
		if err := cur.Decode(&q); err != nil {
			return nil, apperr.Store("decode question", err)
		}
		questions = append(questions, q)
	}
	if err := cur.Err(); err != nil {
		return nil, apperr.Store("read questions", err)
	}
	return questions, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.QuizQuestion, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An id that cannot exist is indistinguishable from an absent one.
		return nil, apperr.NotFound("quiz question", id)
	}
	var question models.QuizQuestion
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&question); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("quiz question", id)
		}
		return nil, apperr.Store("find question", err)
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.QuizQuestion) error {
	res, err := r.Col.InsertOne(ctx, question)
	if err != nil {
		return apperr.Store("insert question", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		question.ID = oid
	}
	return nil
}

// Update applies a $set and returns the refreshed document.
func (r *QuestionRepository) Update(ctx context.Context, id string, set bson.M) (*models.QuizQuestion, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("quiz question", id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.QuizQuestion
	err = r.Col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("quiz question", id)
		}
		return nil, apperr.Store("update question", err)
	}
	return &updated, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("quiz question", id)
	}
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperr.Store("delete question", err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("quiz question", id)
	}
	return nil
}
