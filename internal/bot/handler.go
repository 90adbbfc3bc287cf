package bot

import (
	"net/http"

	"orderapp/internal/attendee"
	"orderapp/internal/order"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	tally   *order.Service
}

func NewHandler(service *Service, tally *order.Service) *Handler {
	return &Handler{service: service, tally: tally}
}

// --------------------------------------------------
// Chat platform delivers one text message per call
// --------------------------------------------------
func (h *Handler) Webhook(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id"`
		Text   string `json:"text"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and text are required"})
		return
	}

	action := h.service.HandleText(c.Request.Context(), req.UserID, req.Text)
	c.JSON(http.StatusOK, action)
}

// --------------------------------------------------
// Stateless one-shot tally over a transcript
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	var req struct {
		Text      string   `json:"text"`
		Attendees []string `json:"attendees"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	var ledger *order.Ledger
	if req.Attendees != nil {
		ledger = h.tally.TallyWithSet(req.Text, attendee.NewSet(req.Attendees...))
	} else {
		ledger = h.tally.TallySections(req.Text)
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":            ledger.Render(),
		"items":              ledger.Items(),
		"attendee_total":     ledger.AttendeeTotal(),
		"non_attendee_total": ledger.NonAttendeeTotal(),
		"matched_lines":      ledger.Lines(),
	})
}
