package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindAuthorization, KindOf(Authorization("nope")))
	assert.Equal(t, KindValidation, KindOf(fmt.Errorf("wrapped: %w", Validation("bad"))))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("repo: %w", ErrNotFound)))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("repo: %w", ErrConflict)))
	assert.Equal(t, KindInternal, KindOf(errors.New("socket closed")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindAuthentication))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(KindAuthorization))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindValidation))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindConflict))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}

func TestWriteJSON(t *testing.T) {
	t.Run("internal error hides cause", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteJSON(rec, Internal(errors.New("pq: connection refused on 10.0.0.3")))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "internal error", body["message"])
	})

	t.Run("authorization keeps message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteJSON(rec, Authorization("only North"))

		require.Equal(t, http.StatusForbidden, rec.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "only North", body["message"])
	})

	t.Run("bare sentinel", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteJSON(rec, ErrConflict)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(KindConflict, "cow already exists", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "duplicate key")
	assert.Equal(t, "cow already exists", PublicMessage(err))
}
