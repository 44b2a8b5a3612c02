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
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"홍길동"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "홍길동", p.Name)
	})

	t.Run("empty", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		assert.ErrorIs(t, DecodeJSON(r, &p), ErrEmptyBody)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})
}

func TestRespondValidationError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondValidationError(w, "invalid", map[string]string{"guestName": "too short"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid", body.Error)
	assert.Equal(t, "too short", body.Fields["guestName"])
	assert.Empty(t, body.Redirect)
}

func TestRespondRedirect(t *testing.T) {
	w := httptest.NewRecorder()

	RespondRedirect(w, "select a slot", "/")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"select a slot","redirect":"/"}`, w.Body.String())
}

func TestRespondInternalError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"`+msgInternalError+`"}`, w.Body.String())
}
