package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"anatomy-explorer-backend/internal/models"
	"anatomy-explorer-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Model = models.Model
type LabelSet = services.LabelSetInput
type Quiz = services.QuizInput
type MemberItem = services.MemberItem

// respondError maps service errors onto status codes. Missing resources are
// answered with a JSON null body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, nil)
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidFilename):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "method", c.Request.Method, "route", c.FullPath(), "error", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param})
		return 0, false
	}
	return id, true
}

// parseUUID returns the path parameter in canonical lowercase hyphenated form.
func parseUUID(c *gin.Context, param string) (string, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid uuid"})
		return "", false
	}
	return id.String(), true
}
