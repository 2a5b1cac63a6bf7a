package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/models"
	"github.com/andrewpaige1/typedeck-api/store"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))

	h := NewDBHandler(store.New(db), flashcards.NewGenerator(nil), zap.NewNop())
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(func() {
		srv.Close()
		sqlDB.Close()
	})
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body any, out any) int {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type idResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type cardJSON struct {
	ID           string   `json:"id"`
	InstanceID   string   `json:"instance_id"`
	PropertyName string   `json:"property_name"`
	Type         string   `json:"type"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
}

// seed creates Country/France with Capital and Population and returns the
// instance id.
func seed(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	var dt, capital, population, france idResponse

	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/datatypes", map[string]string{"name": "Country"}, &dt))
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/datatypes/"+dt.ID+"/properties",
		map[string]string{"name": "Capital", "type": "string"}, &capital))
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/datatypes/"+dt.ID+"/properties",
		map[string]string{"name": "Population", "type": "number"}, &population))
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/datatypes/"+dt.ID+"/instances",
		map[string]string{"name": "France"}, &france))

	require.Equal(t, http.StatusOK, doJSON(t, srv, "PUT", "/api/instances/"+france.ID+"/values/"+capital.ID,
		map[string]string{"value": "Paris"}, nil))
	require.Equal(t, http.StatusOK, doJSON(t, srv, "PUT", "/api/instances/"+france.ID+"/values/"+population.ID,
		map[string]string{"value": "67000000"}, nil))

	return france.ID
}

func TestGetInstance_NestedView(t *testing.T) {
	srv := setupTestServer(t)
	franceID := seed(t, srv)

	var view instanceResponse
	require.Equal(t, http.StatusOK, doJSON(t, srv, "GET", "/api/instances/"+franceID, nil, &view))
	assert.Equal(t, "France", view.Name)
	assert.Equal(t, "Country", view.DataType.Name)
	require.Len(t, view.Values, 2)
	assert.Equal(t, "Capital", view.Values[0].Name)
	assert.Equal(t, "Paris", view.Values[0].Value)
	assert.Equal(t, flashcards.PropertyTypeNumber, view.Values[1].Type)
}

func TestGenerateFlashcards_France(t *testing.T) {
	srv := setupTestServer(t)
	franceID := seed(t, srv)

	var cards []cardJSON
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/instances/"+franceID+"/flashcards", nil, &cards))
	require.Len(t, cards, 6)

	assert.Equal(t, "true_false", cards[0].Type)
	assert.Equal(t, "Is the Capital of 'France' equal to 'Paris'?", cards[0].Question)
	assert.Empty(t, cards[0].Options)
	assert.Equal(t, franceID, cards[0].InstanceID)

	assert.Equal(t, "multiple_choice", cards[4].Type)
	assert.Equal(t, "Population", cards[4].PropertyName)
	assert.ElementsMatch(t, []string{"67000001", "66999999", "134000000", "67000000"}, cards[4].Options)

	var listed []cardJSON
	require.Equal(t, http.StatusOK, doJSON(t, srv, "GET", "/api/instances/"+franceID+"/flashcards", nil, &listed))
	assert.Len(t, listed, 6)

	var one cardJSON
	require.Equal(t, http.StatusOK, doJSON(t, srv, "GET", "/api/flashcards/"+cards[1].ID, nil, &one))
	assert.Equal(t, cards[1].Question, one.Question)
}

func TestGenerateFlashcards_Errors(t *testing.T) {
	srv := setupTestServer(t)

	var e errorResponse
	assert.Equal(t, http.StatusNotFound, doJSON(t, srv, "POST", "/api/instances/nope/flashcards", nil, &e))
	assert.Contains(t, e.Error, "nope")

	var dt, empty idResponse
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/datatypes", map[string]string{"name": "Planet"}, &dt))
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/datatypes/"+dt.ID+"/instances",
		map[string]string{"name": "Pluto"}, &empty))

	assert.Equal(t, http.StatusUnprocessableEntity, doJSON(t, srv, "POST", "/api/instances/"+empty.ID+"/flashcards", nil, &e))
	assert.Contains(t, e.Error, empty.ID)
}

func TestSubmitAnswer(t *testing.T) {
	srv := setupTestServer(t)
	franceID := seed(t, srv)

	var cards []cardJSON
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/instances/"+franceID+"/flashcards", nil, &cards))

	tests := []struct {
		name    string
		card    cardJSON
		answer  string
		correct bool
		verdict flashcards.Verdict
	}{
		{"true false variation", cards[0], "Y", true, flashcards.VerdictCorrect},
		{"true false wrong", cards[0], "no", false, flashcards.VerdictIncorrect},
		{"true false ungradeable", cards[0], "maybe", false, flashcards.VerdictUngradeable},
		{"fill in blank case", cards[2], "paris ", true, flashcards.VerdictCorrect},
		{"multiple choice decoy", cards[4], "134000000", false, flashcards.VerdictIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got answerResponse
			status := doJSON(t, srv, "POST", "/api/flashcards/"+tt.card.ID+"/answers", map[string]string{"answer": tt.answer}, &got)
			require.Equal(t, http.StatusCreated, status)
			assert.Equal(t, tt.correct, got.IsCorrect)
			assert.Equal(t, tt.verdict, got.Verdict)
			assert.Equal(t, tt.answer, got.Answer)
			assert.Equal(t, tt.card.ID, got.FlashcardID)
		})
	}

	var history []answerResponse
	require.Equal(t, http.StatusOK, doJSON(t, srv, "GET", "/api/flashcards/"+cards[0].ID+"/answers", nil, &history))
	assert.Len(t, history, 3)
	assert.Equal(t, "true", history[0].CorrectAnswer)
}

func TestSubmitAnswer_BadRequests(t *testing.T) {
	srv := setupTestServer(t)

	var e errorResponse
	assert.Equal(t, http.StatusNotFound, doJSON(t, srv, "POST", "/api/flashcards/nope/answers", map[string]string{"answer": "x"}, &e))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, srv, "POST", "/api/flashcards/nope/answers", map[string]string{}, &e))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, srv, "POST", "/api/flashcards/nope/answers", map[string]string{"guess": "x"}, &e))
}

func TestDataTypeValidation(t *testing.T) {
	srv := setupTestServer(t)

	var dt idResponse
	var e errorResponse
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/datatypes", map[string]string{"name": "Country"}, &dt))
	assert.Equal(t, http.StatusConflict, doJSON(t, srv, "POST", "/api/datatypes", map[string]string{"name": "Country"}, &e))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, srv, "POST", "/api/datatypes", map[string]string{"name": ""}, &e))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, srv, "POST", "/api/datatypes/"+dt.ID+"/properties",
		map[string]string{"name": "Founded", "type": "date"}, &e))
	assert.Equal(t, http.StatusNotFound, doJSON(t, srv, "GET", "/api/datatypes/nope", nil, &e))

	var got models.DataType
	require.Equal(t, http.StatusOK, doJSON(t, srv, "GET", "/api/datatypes/"+dt.ID, nil, &got))
	assert.Equal(t, "Country", got.Name)
	assert.Empty(t, got.Properties)

	var all []models.DataType
	require.Equal(t, http.StatusOK, doJSON(t, srv, "GET", "/api/datatypes", nil, &all))
	assert.Len(t, all, 1)
}

func TestSetPropertyValue_WrongType(t *testing.T) {
	srv := setupTestServer(t)
	franceID := seed(t, srv)

	var city, mayor idResponse
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/datatypes", map[string]string{"name": "City"}, &city))
	require.Equal(t, http.StatusCreated, doJSON(t, srv, "POST", "/api/datatypes/"+city.ID+"/properties",
		map[string]string{"name": "Mayor", "type": "string"}, &mayor))

	var e errorResponse
	assert.Equal(t, http.StatusBadRequest, doJSON(t, srv, "PUT", "/api/instances/"+franceID+"/values/"+mayor.ID,
		map[string]string{"value": "x"}, &e))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, srv, "PUT", "/api/instances/"+franceID+"/values/"+mayor.ID,
		map[string]string{}, &e))

	var instances []models.Instance
	require.Equal(t, http.StatusOK, doJSON(t, srv, "GET", "/api/datatypes/"+city.ID+"/instances", nil, &instances))
	assert.Empty(t, instances)
}

func TestHealth(t *testing.T) {
	srv := setupTestServer(t)
	var out map[string]string
	require.Equal(t, http.StatusOK, doJSON(t, srv, "GET", "/healthz", nil, &out))
	assert.Equal(t, "ok", out["status"])
}
