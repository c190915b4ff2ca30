package responses

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape every handler returns.
type Envelope map[string]interface{}

// Error writes a failure envelope with the given status. Extra fields
// are merged into the body.
func Error(c *gin.Context, status int, message string, extra ...Envelope) {
	body := Envelope{"success": false, "message": message}
	for _, e := range extra {
		for k, v := range e {
			body[k] = v
		}
	}
	c.JSON(status, body)
}

// OK writes a success envelope with HTTP 200.
func OK(c *gin.Context, payload Envelope) {
	write(c, http.StatusOK, payload)
}

// Created writes a success envelope with HTTP 201.
func Created(c *gin.Context, payload Envelope) {
	write(c, http.StatusCreated, payload)
}

func write(c *gin.Context, status int, payload Envelope) {
	body := Envelope{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// safeKeywords marks error messages that may be shown to clients
// verbatim. Anything else collapses to a generic message so internal
// detail never leaks.
var safeKeywords = []string{"validation", "required", "invalid", "not found", "unauthorized", "forbidden"}

// SanitizeError returns a client-safe message for err.
func SanitizeError(err error) string {
	if err == nil {
		return "An error occurred"
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	for _, kw := range safeKeywords {
		if strings.Contains(lower, kw) {
			return msg
		}
	}
	return "An error occurred"
}

// Recovery converts any handler panic into a sanitized 500 envelope.
// The full detail is logged server-side only.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic recovered: %v", recovered)
		Error(c, http.StatusInternalServerError, "An error occurred")
	})
}
