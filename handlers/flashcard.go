package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/models"
)

// flashcardResponse leaves out the correct answer; it is revealed once an
// answer is submitted.
type flashcardResponse struct {
	ID           string              `json:"id"`
	InstanceID   string              `json:"instance_id"`
	PropertyID   string              `json:"property_id"`
	PropertyName string              `json:"property_name"`
	Type         flashcards.CardType `json:"type"`
	Question     string              `json:"question"`
	Options      []string            `json:"options,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

func newFlashcardResponse(card models.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:           card.PublicID,
		InstanceID:   card.Instance.PublicID,
		PropertyID:   card.Property.PublicID,
		PropertyName: card.Property.Name,
		Type:         card.Type,
		Question:     card.Question,
		Options:      card.Options,
		CreatedAt:    card.CreatedAt,
	}
}

func newFlashcardResponses(cards []models.Flashcard) []flashcardResponse {
	out := make([]flashcardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, newFlashcardResponse(c))
	}
	return out
}

// POST /api/instances/{instanceID}/flashcards
func (h *DBHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	instanceID := r.PathValue("instanceID")

	cards, err := h.Store.GenerateFlashcards(r.Context(), h.Generator, instanceID)
	if err != nil {
		h.fail(w, r, "GenerateFlashcards", err)
		return
	}

	h.Logger.Info("GenerateFlashcards: generated flashcards",
		zap.String("instance_id", instanceID), zap.Int("count", len(cards)))
	writeJSON(w, http.StatusCreated, newFlashcardResponses(cards))
}

// GET /api/instances/{instanceID}/flashcards
func (h *DBHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Store.ListFlashcards(r.Context(), r.PathValue("instanceID"))
	if err != nil {
		h.fail(w, r, "ListFlashcards", err)
		return
	}
	writeJSON(w, http.StatusOK, newFlashcardResponses(cards))
}

// GET /api/flashcards/{flashcardID}
func (h *DBHandler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	card, err := h.Store.GetFlashcard(r.Context(), r.PathValue("flashcardID"))
	if err != nil {
		h.fail(w, r, "GetFlashcard", err)
		return
	}
	writeJSON(w, http.StatusOK, newFlashcardResponse(*card))
}
