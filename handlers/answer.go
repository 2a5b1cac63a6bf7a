package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/models"
)

type answerResponse struct {
	ID            string             `json:"id"`
	FlashcardID   string             `json:"flashcard_id"`
	Answer        string             `json:"answer"`
	IsCorrect     bool               `json:"is_correct"`
	Verdict       flashcards.Verdict `json:"verdict"`
	CorrectAnswer string             `json:"correct_answer"`
	AnsweredAt    time.Time          `json:"answered_at"`
}

func newAnswerResponse(a models.Answer) answerResponse {
	return answerResponse{
		ID:            a.PublicID,
		FlashcardID:   a.Flashcard.PublicID,
		Answer:        a.UserAnswer,
		IsCorrect:     a.IsCorrect,
		Verdict:       a.Verdict,
		CorrectAnswer: a.Flashcard.CorrectAnswer,
		AnsweredAt:    a.AnsweredAt,
	}
}

// POST /api/flashcards/{flashcardID}/answers
func (h *DBHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	flashcardID := r.PathValue("flashcardID")

	var req struct {
		Answer *string `json:"answer"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Answer == nil {
		writeError(w, http.StatusBadRequest, "answer is required")
		return
	}

	answer, err := h.Store.SubmitAnswer(r.Context(), flashcardID, *req.Answer)
	if err != nil {
		h.fail(w, r, "SubmitAnswer", err)
		return
	}

	h.Logger.Debug("SubmitAnswer: graded answer",
		zap.String("flashcard_id", flashcardID), zap.String("verdict", string(answer.Verdict)))
	writeJSON(w, http.StatusCreated, newAnswerResponse(*answer))
}

// GET /api/flashcards/{flashcardID}/answers
func (h *DBHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	answers, err := h.Store.ListAnswers(r.Context(), r.PathValue("flashcardID"))
	if err != nil {
		h.fail(w, r, "ListAnswers", err)
		return
	}

	out := make([]answerResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, newAnswerResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}
