package attendee

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store  *Store
	roster RosterRepository
}

func NewHandler(store *Store, roster RosterRepository) *Handler {
	return &Handler{store: store, roster: roster}
}

// --------------------------------------------------
// Candidate roster
// --------------------------------------------------
func (h *Handler) Roster(c *gin.Context) {
	names, err := h.roster.Candidates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": names})
}

// --------------------------------------------------
// Per-user attendee set
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"attendees": h.store.List(userID)})
}

func (h *Handler) Add(c *gin.Context) {
	userID := c.Param("id")

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if !h.store.Add(userID, req.Name) {
		c.JSON(http.StatusConflict, gin.H{"error": "name already present"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attendees": h.store.List(userID)})
}

func (h *Handler) Remove(c *gin.Context) {
	userID := c.Param("id")
	name := c.Param("name")

	if !h.store.Remove(userID, name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "name not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendees": h.store.List(userID)})
}

func (h *Handler) Clear(c *gin.Context) {
	userID := c.Param("id")
	h.store.Clear(userID)
	c.JSON(http.StatusOK, gin.H{"attendees": []string{}})
}
