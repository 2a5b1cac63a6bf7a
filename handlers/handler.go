package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/store"
	"github.com/andrewpaige1/typedeck-api/utils"
)

type DBHandler struct {
	Store     *store.Store
	Generator *flashcards.Generator
	Logger    *zap.Logger
}

func NewDBHandler(s *store.Store, gen *flashcards.Generator, logger *zap.Logger) *DBHandler {
	return &DBHandler{Store: s, Generator: gen, Logger: logger}
}

// Routes registers every endpoint on a new ServeMux.
func (h *DBHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health)

	// Data types
	mux.HandleFunc("GET /api/datatypes", h.ListDataTypes)
	mux.HandleFunc("POST /api/datatypes", h.CreateDataType)
	mux.HandleFunc("GET /api/datatypes/{typeID}", h.GetDataType)
	mux.HandleFunc("POST /api/datatypes/{typeID}/properties", h.CreateProperty)

	// Instances
	mux.HandleFunc("GET /api/datatypes/{typeID}/instances", h.ListInstances)
	mux.HandleFunc("POST /api/datatypes/{typeID}/instances", h.CreateInstance)
	mux.HandleFunc("GET /api/instances/{instanceID}", h.GetInstance)
	mux.HandleFunc("PUT /api/instances/{instanceID}/values/{propertyID}", h.SetPropertyValue)

	// Flashcards
	mux.HandleFunc("POST /api/instances/{instanceID}/flashcards", h.GenerateFlashcards)
	mux.HandleFunc("GET /api/instances/{instanceID}/flashcards", h.ListFlashcards)
	mux.HandleFunc("GET /api/flashcards/{flashcardID}", h.GetFlashcard)

	// Answers
	mux.HandleFunc("POST /api/flashcards/{flashcardID}/answers", h.SubmitAnswer)
	mux.HandleFunc("GET /api/flashcards/{flashcardID}/answers", h.ListAnswers)

	return mux
}

func (h *DBHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		h.Logger.Error("Health: database unreachable", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// fail maps store and generation errors to a status code. Client errors echo
// the error text, which names the offending id; anything else is logged and
// hidden behind a generic message.
func (h *DBHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, flashcards.ErrNoPropertyValues):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, store.ErrPropertyMismatch), errors.Is(err, store.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	requestID, _ := utils.GetRequestID(r.Context())
	fields := []zap.Field{zap.String("request_id", requestID), zap.Int("status", status), zap.Error(err)}

	if status == http.StatusInternalServerError {
		h.Logger.Error(op+": request failed", fields...)
		writeError(w, status, "internal server error")
		return
	}

	h.Logger.Info(op+": rejected", fields...)
	writeError(w, status, err.Error())
}
