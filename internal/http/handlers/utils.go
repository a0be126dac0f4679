package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"prlens/internal/http/api"
	"prlens/internal/lib/sl"

	"github.com/stretchr/testify/assert"
)

func NewLogger() *slog.Logger {
	return sl.NewDiscardLogger()
}

func DecodeErrorResponse(t *testing.T, body *bytes.Buffer) api.ErrorResponse {
	var resp api.ErrorResponse
	err := json.NewDecoder(body).Decode(&resp)
	assert.NoError(t, err)
	return resp
}
