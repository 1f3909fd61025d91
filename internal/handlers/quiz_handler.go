package handlers

import (
	"net/http"

	"quiz-backend/internal/apperr"
	"quiz-backend/internal/models"
	"quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QuizHandler is the public quiz surface: the question feed, submission and
// per-user result history.
type QuizHandler struct {
	Questions   *service.QuestionService
	Submissions *service.SubmissionService
	Results     *service.ResultService
}

func NewQuizHandler(questions *service.QuestionService, submissions *service.SubmissionService, results *service.ResultService) *QuizHandler {
	return &QuizHandler{Questions: questions, Submissions: submissions, Results: results}
}

func (h *QuizHandler) GetQuestions(c *gin.Context) {
	questions, err := h.Questions.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if questions == nil {
		questions = []models.QuizQuestion{}
	}
	c.JSON(http.StatusOK, gin.H{"quizQuestions": questions})
}

func (h *QuizHandler) Submit(c *gin.Context) {
	var sub models.QuizSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required fields or invalid data format.",
		})
		return
	}
	outcome, err := h.Submissions.Submit(c.Request.Context(), sub)
	if err != nil {
		status := apperr.Status(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			msg = "Failed to save quiz results."
		}
		c.JSON(status, gin.H{"success": false, "message": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Quiz results saved successfully.",
		"totalScore": outcome.TotalScore,
		"resultId":   outcome.ResultID,
	})
}

func (h *QuizHandler) ResultsByUser(c *gin.Context) {
	results, err := h.Results.ByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if results == nil {
		results = []models.QuizResult{}
	}
	c.JSON(http.StatusOK, results)
}
