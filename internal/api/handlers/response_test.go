package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Ana", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}{"name":"Eva"}`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondConfirmationRequired(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConfirmationRequired(rec, "¿Seguro?")

	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusPreconditionRequired, body.Code)
	assert.Equal(t, "¿Seguro?", body.Prompt)
}

func TestRespondPINError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondPINError(rec, "PIN incorrecto")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"code":403,"message":"PIN incorrecto","pinError":true}`, rec.Body.String())
}

func TestRespondJSON_NilPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
