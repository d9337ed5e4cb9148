package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aegiswhistle/backend/internal/config"
	"aegiswhistle/backend/internal/models"
)

// SubmitReport is the intake endpoint. Voice widget, write form and embedded
// web components all POST the same normalized payload here.
func (h *Handler) SubmitReport(c *gin.Context) {
	var sub models.ReportSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}

	// A voice submission may arrive without a summary (the service fills the
	// fallback), but a report carrying neither summary nor transcript nor
	// audio is empty and rejected at the boundary.
	if sub.Summary == "" && sub.Transcript == "" && sub.AudioURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "report is empty"})
		return
	}
	if len(sub.Summary) > config.MaxSummaryLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "summary too long"})
		return
	}

	complaint := h.Cases.Submit(sub)
	if complaint == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      complaint.ID,
		"ackCode": complaint.AckCode,
		"hint":    h.Localizer.GetString(lang(c), "ack_hint"),
	})
}

type followupRequest struct {
	Code string `json:"code"`
}

// Followup resolves an acknowledgement code to the redacted status view.
func (h *Handler) Followup(c *gin.Context) {
	var req followupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}

	view, found := h.Lookup.FindByCode(req.Code)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": h.Localizer.GetString(lang(c), "lookup_not_found"),
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
