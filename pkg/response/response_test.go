package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, send func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	send(c)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestSuccess(t *testing.T) {
	w, env := record(t, func(c *gin.Context) {
		Success(c, gin.H{"count": 3})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", env.Status)
	assert.Empty(t, env.Message)
	assert.NotNil(t, env.Data)
}

func TestCreated(t *testing.T) {
	w, env := record(t, func(c *gin.Context) {
		Created(c, gin.H{"deployment_id": "d1"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ok", env.Status)
	assert.Equal(t, "created", env.Message)
}

func TestErrorHelpers(t *testing.T) {
	testCases := []struct {
		send func(c *gin.Context)
		code int
	}{
		{func(c *gin.Context) { BadRequest(c, "bad input") }, http.StatusBadRequest},
		{func(c *gin.Context) { NotFound(c, "no such deployment") }, http.StatusNotFound},
		{func(c *gin.Context) { InternalError(c, "boom") }, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		w, env := record(t, tc.send)

		assert.Equal(t, tc.code, w.Code)
		assert.Equal(t, "error", env.Status)
		assert.NotEmpty(t, env.Message)
		assert.Nil(t, env.Data)
	}
}
