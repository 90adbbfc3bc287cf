package bot

import (
	"errors"
	"net/http"

	"orderapp/internal/session"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// Admin: inspect pending dialogues
// --------------------------------------------------
func (h *AdminHandler) ListSessions(c *gin.Context) {
	sessions, err := h.service.ListSessions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, gin.H{
			"id":         s.ID,
			"user_id":    s.UserID,
			"state":      s.State,
			"updated_at": s.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"sessions": out})
}

// --------------------------------------------------
// Admin: force-reset a stuck dialogue
// --------------------------------------------------
func (h *AdminHandler) ResetSession(c *gin.Context) {
	userID := c.Param("user_id")

	if err := h.service.ResetSession(userID); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no session for user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "session reset", "user_id": userID})
}
