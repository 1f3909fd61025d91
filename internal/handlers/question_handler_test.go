package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz-backend/internal/apperr"
	"quiz-backend/internal/models"
	"quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memQuestionStore is an in-memory stand-in for the Mongo-backed question
// repository, with matching error behavior.
type memQuestionStore struct {
	questions map[string]models.QuizQuestion
}

func newMemQuestionStore() *memQuestionStore {
	return &memQuestionStore{questions: make(map[string]models.QuizQuestion)}
}

func (m *memQuestionStore) add(q models.QuizQuestion) string {
	q.ID = primitive.NewObjectID()
	m.questions[q.ID.Hex()] = q
	return q.ID.Hex()
}

func (m *memQuestionStore) FindAll(_ context.Context) ([]models.QuizQuestion, error) {
	var out []models.QuizQuestion
	for _, q := range m.questions {
		out = append(out, q)
	}
	return out, nil
}

func (m *memQuestionStore) FindByID(_ context.Context, id string) (*models.QuizQuestion, error) {
	if q, ok := m.questions[id]; ok {
		return &q, nil
	}
	return nil, apperr.NotFound("quiz question", id)
}

func (m *memQuestionStore) Create(_ context.Context, q *models.QuizQuestion) error {
	q.ID = primitive.NewObjectID()
	m.questions[q.ID.Hex()] = *q
	return nil
}

func (m *memQuestionStore) Update(_ context.Context, id string, set bson.M) (*models.QuizQuestion, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, apperr.NotFound("quiz question", id)
	}
	if v, ok := set["question"].(string); ok {
		q.Question = v
	}
	if v, ok := set["options"].([]string); ok {
		q.Options = v
	}
	if v, ok := set["correctAnswer"].([]string); ok {
		q.CorrectAnswer = v
	}
	if v, ok := set["updatedDate"].(time.Time); ok {
		q.UpdatedDate = v
	}
	m.questions[id] = q
	return &q, nil
}

func (m *memQuestionStore) Delete(_ context.Context, id string) error {
	if _, ok := m.questions[id]; !ok {
		return apperr.NotFound("quiz question", id)
	}
	delete(m.questions, id)
	return nil
}

type memResultStore struct {
	created   []models.QuizResult
	createErr error
}

func (m *memResultStore) Create(_ context.Context, result *models.QuizResult) error {
	if m.createErr != nil {
		return m.createErr
	}
	result.ID = primitive.NewObjectID()
	m.created = append(m.created, *result)
	return nil
}

func (m *memResultStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.QuizResult, error) {
	var out []models.QuizResult
	for _, r := range m.created {
		if r.User == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestRouter(questions *memQuestionStore, results *memResultStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	questionService := service.NewQuestionService(questions, nil)
	submissionService := service.NewSubmissionService(questions, results, nil)
	resultService := service.NewResultService(results)

	questionHandler := NewQuestionHandler(questionService)
	quizHandler := NewQuizHandler(questionService, submissionService, resultService)

	r := gin.New()
	r.POST("/quiz-questions", questionHandler.Create)
	r.GET("/quiz-questions", questionHandler.List)
	r.GET("/quiz-questions/:id", questionHandler.Get)
	r.PUT("/quiz-questions/:id", questionHandler.Update)
	r.DELETE("/quiz-questions/:id", questionHandler.Delete)
	r.GET("/quiz/questions", quizHandler.GetQuestions)
	r.POST("/quiz/submit", quizHandler.Submit)
	r.GET("/quiz/results/:userId", quizHandler.ResultsByUser)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateQuestionEndpoint(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(), &memResultStore{})

	w := doJSON(t, r, http.MethodPost, "/quiz-questions", gin.H{
		"question":      "Capital of France?",
		"options":       []string{"Paris", "Lyon"},
		"correctAnswer": []string{"Paris"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.QuizQuestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Capital of France?", created.Question)
}

func TestCreateQuestionEndpoint_Invalid(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(), &memResultStore{})

	w := doJSON(t, r, http.MethodPost, "/quiz-questions", gin.H{"question": "Q?"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/quiz-questions", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetQuestionEndpoint_NotFound(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(), &memResultStore{})

	w := doJSON(t, r, http.MethodGet, "/quiz-questions/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListQuestionsEndpoint_EmptyIsArray(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(), &memResultStore{})

	w := doJSON(t, r, http.MethodGet, "/quiz-questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUpdateQuestionEndpoint(t *testing.T) {
	store := newMemQuestionStore()
	r := newTestRouter(store, &memResultStore{})
	id := store.add(models.QuizQuestion{Question: "Old?", Options: []string{"a"}, CorrectAnswer: []string{"a"}})

	w := doJSON(t, r, http.MethodPut, "/quiz-questions/"+id, gin.H{"question": "New?"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.QuizQuestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "New?", updated.Question)
}

func TestUpdateQuestionEndpoint_UnknownFieldRejected(t *testing.T) {
	store := newMemQuestionStore()
	r := newTestRouter(store, &memResultStore{})
	id := store.add(models.QuizQuestion{Question: "Q?", Options: []string{"a"}, CorrectAnswer: []string{"a"}})

	w := doJSON(t, r, http.MethodPut, "/quiz-questions/"+id, gin.H{"difficulty": "hard"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Q?", store.questions[id].Question)
}

func TestUpdateQuestionEndpoint_NotFound(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(), &memResultStore{})

	w := doJSON(t, r, http.MethodPut, "/quiz-questions/"+primitive.NewObjectID().Hex(), gin.H{"question": "New?"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteQuestionEndpoint(t *testing.T) {
	store := newMemQuestionStore()
	r := newTestRouter(store, &memResultStore{})
	id := store.add(models.QuizQuestion{Question: "Q?", Options: []string{"a"}, CorrectAnswer: []string{"a"}})

	w := doJSON(t, r, http.MethodDelete, "/quiz-questions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/quiz-questions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/quiz-questions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
