package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"people-api/internal/repositories"
)

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// respondError translates a service error into the matching HTTP status.
// Duplicate emails and validation failures are both client mistakes and map
// to 400; anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case repositories.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
	case repositories.IsDuplicate(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	case repositories.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	default:
		// Driver and infrastructure failures must not leak into the response.
		var repoErr *repositories.RepositoryError
		if errors.As(err, &repoErr) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Storage operation failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
	}
}
