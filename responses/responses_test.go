package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	// whitelisted keywords pass through verbatim
	passthrough := []string{
		"validation failed on price",
		"email is required",
		"invalid category",
		"product not found",
		"unauthorized",
		"forbidden: wrong role",
	}
	for _, msg := range passthrough {
		assert.Equal(t, msg, SanitizeError(errors.New(msg)))
	}

	// anything else collapses to the generic message
	assert.Equal(t, "An error occurred", SanitizeError(errors.New(`pq: connection refused on host "db-prod-3"`)))
	assert.Equal(t, "An error occurred", SanitizeError(nil))
}

func TestEnvelopeShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ok", func(c *gin.Context) {
		OK(c, Envelope{"value": 7})
	})
	r.GET("/fail", func(c *gin.Context) {
		Error(c, http.StatusForbidden, "Forbidden", Envelope{"sellerStatus": "pending"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 7, body["value"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Forbidden", body["message"])
	assert.Equal(t, "pending", body["sellerStatus"])
}

func TestRecoveryReturnsSanitized500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("secret internal state")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An error occurred", body["message"])
	assert.NotContains(t, w.Body.String(), "secret internal state")
}
