package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMatchesByCode(t *testing.T) {
	withField := ErrValidationFailed.WithField("content")
	assert.ErrorIs(t, withField, ErrValidationFailed)
	assert.Equal(t, "content", withField.Field)
	assert.Empty(t, ErrValidationFailed.Field, "sentinel must not be mutated")

	cause := errors.New("boom")
	wrapped := fmt.Errorf("saving: %w", ErrReviewNotFound.Wrap(cause))
	assert.ErrorIs(t, wrapped, ErrReviewNotFound)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, ErrCourseNotFound)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Contains(t, appErr.Error(), "REVIEW_001")
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrEvaluationNotFound, http.StatusNotFound, "EVALUATION_001"},
		{"conflict", ErrEvaluationTypeConflict, http.StatusConflict, "EVALUATION_003"},
		{"forbidden", ErrUnauthorizedAccess, http.StatusForbidden, "AUTH_001"},
		{"invalid", fmt.Errorf("wrapped: %w", ErrReviewScoreInvalid), http.StatusBadRequest, "REVIEW_002"},
		{"unclassified", errors.New("disk on fire"), http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.status, body.Code)
			if tc.code == "" {
				assert.Nil(t, body.Error)
				return
			}
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}
}
