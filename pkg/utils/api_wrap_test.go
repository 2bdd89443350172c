package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("wrapped: %w", ErrTripNotFound), http.StatusNotFound},
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrUnexpectedBehaviorOfAI, http.StatusBadGateway},
		{ErrDatabaseError, http.StatusInternalServerError},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Set("trace_id", "trace-1")

		HandleServiceError(c, tc.err)

		assert.Equal(t, tc.want, rec.Code, tc.err.Error())
		var body APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "trace-1", body.TraceID)
	}
}

func TestRespondSuccess_WithoutTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondSuccess(c, gin.H{"ok": true}, "done")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"done"`)
}
