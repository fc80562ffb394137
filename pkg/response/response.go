package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the JSON shape every API endpoint responds with
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a 200 response wrapping the payload
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Status: "ok", Data: data})
}

// Created sends a 201 response wrapping the stored resource
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Status: "ok", Message: "created", Data: data})
}

// Error sends an error response with the given HTTP status
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Status: "error", Message: message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
