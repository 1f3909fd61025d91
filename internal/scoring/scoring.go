// Package scoring grades quiz submissions. It is pure computation over the
// question store: no writes, no shared state, safe for concurrent use.
package scoring

import (
	"context"
	"math"
	"sort"
	"strings"

	"quiz-backend/internal/models"
)

// Separator joins multi-select choices into one answer string.
const Separator = ", "

// QuestionFinder is the slice of the question store the engine needs.
type QuestionFinder interface {
	FindByID(ctx context.Context, id string) (*models.QuizQuestion, error)
}

// Normalize sorts the comma-separated parts of an answer string so that
// multi-select choices compare order-independently. The parts themselves are
// kept verbatim: comparison stays case- and whitespace-sensitive.
func Normalize(answer string) string {
	parts := strings.Split(answer, Separator)
	sort.Strings(parts)
	return strings.Join(parts, Separator)
}

// IsCorrect reports whether a submitted answer matches the question's correct
// option set, ignoring the order the options were selected in.
func IsCorrect(correctAnswer []string, submitted string) bool {
	correct := append([]string(nil), correctAnswer...)
	sort.Strings(correct)
	return strings.Join(correct, Separator) == Normalize(submitted)
}

// Grade scores each submitted answer against the current question set and
// returns the per-answer snapshots, in submission order, together with the
// aggregate percentage (round half up). An unknown questionId fails the whole
// grading with the repository's not-found error. Callers must not pass an
// empty answer list.
func Grade(ctx context.Context, finder QuestionFinder, answers []models.SubmissionAnswer) ([]models.AnswerSnapshot, int, error) {
	snapshots := make([]models.AnswerSnapshot, 0, len(answers))
	correctCount := 0
	for _, a := range answers {
		question, err := finder.FindByID(ctx, a.QuestionID)
		if err != nil {
			return nil, 0, err
		}
		correct := IsCorrect(question.CorrectAnswer, a.Answer)
		if correct {
			correctCount++
		}
		snapshots = append(snapshots, models.AnswerSnapshot{
			Question: question.Question,
			Answer:   a.Answer,
			Correct:  correct,
		})
	}
	total := int(math.Round(float64(correctCount) / float64(len(answers)) * 100))
	return snapshots, total, nil
}
