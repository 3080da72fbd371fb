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

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newContext("/x")
	c.Set("request_id", "rid-1")

	Success(c, 0, map[string]string{"id": "u-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "rid-1", body["request_id"])
	assert.Equal(t, map[string]any{"id": "u-1"}, body["data"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestSuccess_NilDataOmitted(t *testing.T) {
	c, w := newContext("/x")

	Success[any](c, http.StatusCreated, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "request_id")
}

func TestError(t *testing.T) {
	c, w := newContext("/api/auth/register")

	Error(c, http.StatusConflict, "DuplicateEmail", "email already registered", nil)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, ProblemContentType, w.Header().Get("Content-Type"))

	var p Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Conflict", p.Title)
	assert.Equal(t, 409, p.Status)
	assert.Equal(t, "DuplicateEmail", p.Exception)
	assert.Equal(t, "/api/auth/register", p.Path)
	assert.Equal(t, "email already registered", p.Detail)
	assert.Nil(t, p.Errors)
}

func TestFixedBodies(t *testing.T) {
	c, w := newContext("/x")
	Unauthorized(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"code":401,"message":"UNAUTHORIZED"}`, w.Body.String())

	c, w = newContext("/x")
	Forbidden(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"code":403,"message":"FORBIDDEN"}`, w.Body.String())
}
