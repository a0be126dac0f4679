package history_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prlens/internal/http/api"
	"prlens/internal/http/handlers"
	"prlens/internal/http/handlers/history"
	"prlens/internal/http/handlers/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHistoryHandler_List_Success(t *testing.T) {
	mockService := mocks.NewMockHistoryService(t)
	h := history.NewHistoryHandler(handlers.NewLogger(), mockService)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expected := api.HistoryResponse{
		History: []api.HistorySchema{
			{ID: 2, RepoURL: "", Owner: "*", Repo: "*", TotalPRs: 7, CreatedAt: now},
			{ID: 1, RepoURL: "https://github.com/octocat/Hello-World", Owner: "octocat", Repo: "Hello-World", TotalPRs: 2, CreatedAt: now.Add(-time.Hour)},
		},
	}
	mockService.On("History", mock.Anything).Return(&expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got api.HistoryResponse
	err := json.NewDecoder(w.Body).Decode(&got)
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestHistoryHandler_List_Empty(t *testing.T) {
	mockService := mocks.NewMockHistoryService(t)
	h := history.NewHistoryHandler(handlers.NewLogger(), mockService)

	mockService.On("History", mock.Anything).Return(&api.HistoryResponse{History: []api.HistorySchema{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"history":[]}`, w.Body.String())
}

func TestHistoryHandler_List_Error(t *testing.T) {
	mockService := mocks.NewMockHistoryService(t)
	h := history.NewHistoryHandler(handlers.NewLogger(), mockService)

	mockService.On("History", mock.Anything).Return(nil, errors.New("db error"))

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
	assert.Equal(t, "failed to load history", resp.Error.Message)
}
