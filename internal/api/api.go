// Package api exposes the HTTP handlers of the activities service.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington-edu/activities/internal/directory"
	"github.com/mergington-edu/activities/internal/observability"
)

// Handler serves the activity endpoints against an injected directory.
type Handler struct {
	Directory *directory.Directory
	Log       *zap.Logger
}

// NewHandler builds a Handler. A nil logger is replaced with a no-op one.
func NewHandler(dir *directory.Directory, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Directory: dir, Log: log}
}

// GetActivities returns the whole directory keyed by activity name.
func (h *Handler) GetActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.Directory.List())
}

// Signup enrolls the email from the query string into the named activity.
// The email is treated as an opaque string.
func (h *Handler) Signup(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")

	err := h.Directory.Signup(name, email)
	switch {
	case errors.Is(err, directory.ErrActivityNotFound):
		observability.RecordSignup("unknown_activity")
		c.JSON(http.StatusNotFound, gin.H{"detail": "Activity not found"})
	case errors.Is(err, directory.ErrAlreadySignedUp):
		observability.RecordSignup("duplicate")
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Student is already signed up"})
	default:
		observability.RecordSignup("ok")
		h.Log.Info("signed up participant",
			zap.String("activity", name),
			zap.String("email", email))
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Signed up %s for %s", email, name)})
	}
}

// Unregister removes the email from the named activity's roster.
func (h *Handler) Unregister(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")

	err := h.Directory.Unregister(name, email)
	switch {
	case errors.Is(err, directory.ErrActivityNotFound):
		observability.RecordUnregister("unknown_activity")
		c.JSON(http.StatusNotFound, gin.H{"detail": "Activity not found"})
	case errors.Is(err, directory.ErrParticipantNotFound):
		observability.RecordUnregister("not_enrolled")
		c.JSON(http.StatusNotFound, gin.H{"detail": "Participant not found"})
	default:
		observability.RecordUnregister("ok")
		h.Log.Info("unregistered participant",
			zap.String("activity", name),
			zap.String("email", email))
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Unregistered %s from %s", email, name)})
	}
}
