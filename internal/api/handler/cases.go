package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aegiswhistle/backend/internal/dashboard"
	"aegiswhistle/backend/internal/models"
)

// ListCases returns the dashboard projection for the caller's role: officers
// see every case ordered by triage weight, investigators only their own.
func (h *Handler) ListCases(c *gin.Context) {
	sess := currentSession(c)
	all := h.Store.List()

	switch sess.Role {
	case models.RoleOfficer:
		c.JSON(http.StatusOK, gin.H{
			"cases": dashboard.OfficerView(all),
			"stats": dashboard.Stats(all),
		})
	case models.RoleInvestigator:
		mine := dashboard.InvestigatorView(all, sess.Username)
		c.JSON(http.StatusOK, gin.H{
			"cases": mine,
			"stats": dashboard.MyStats(mine),
		})
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

type assignRequest struct {
	Investigator string `json:"investigator" binding:"required"`
}

// AssignCase hands a case to an investigator. Officer only.
func (h *Handler) AssignCase(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "investigator is required"})
		return
	}
	h.caseAction(c, h.Cases.Assign(id, req.Investigator))
}

// ResolveCase marks a case resolved. Officer only.
func (h *Handler) ResolveCase(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	h.caseAction(c, h.Cases.Resolve(id))
}

// EscalateCase escalates a case. Officer only.
func (h *Handler) EscalateCase(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	h.caseAction(c, h.Cases.Escalate(id))
}

// RewardCase sends the anonymous reward. Officer only.
func (h *Handler) RewardCase(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	h.caseAction(c, h.Cases.Reward(id))
}

type noteRequest struct {
	Text string `json:"text"`
}

// UpdateNote overwrites the investigator note on one of the caller's own
// cases.
func (h *Handler) UpdateNote(c *gin.Context) {
	id, ok := h.ownCaseID(c)
	if !ok {
		return
	}
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	h.caseAction(c, h.Cases.UpdateNote(id, req.Text))
}

type evidenceRequest struct {
	Link string `json:"link" binding:"required"`
}

// AttachEvidence records an evidence link on one of the caller's own cases.
func (h *Handler) AttachEvidence(c *gin.Context) {
	id, ok := h.ownCaseID(c)
	if !ok {
		return
	}
	var req evidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "link is required"})
		return
	}
	h.caseAction(c, h.Cases.AttachEvidence(id, req.Link))
}

// GetCase returns the full record, audit trail and transcript included.
// Dashboard only; the anonymous followup flow never reaches this.
func (h *Handler) GetCase(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}
	complaint, found := h.Store.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}

	sess := currentSession(c)
	if sess.Role == models.RoleInvestigator && complaint.AssignedTo != sess.Username {
		c.JSON(http.StatusForbidden, gin.H{"error": "case is not assigned to you"})
		return
	}

	c.JSON(http.StatusOK, complaint)
}

// caseAction maps the store's found/no-op result onto the HTTP surface. The
// store itself stays silent on unknown ids; only the API layer reports 404.
func (h *Handler) caseAction(c *gin.Context, found bool) {
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ownCaseID parses the id and checks the case is assigned to the calling
// investigator.
func (h *Handler) ownCaseID(c *gin.Context) (uint, bool) {
	id, ok := caseID(c)
	if !ok {
		return 0, false
	}
	complaint, found := h.Store.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return 0, false
	}
	sess := currentSession(c)
	if complaint.AssignedTo != sess.Username {
		c.JSON(http.StatusForbidden, gin.H{"error": "case is not assigned to you"})
		return 0, false
	}
	return id, true
}

func caseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case id"})
		return 0, false
	}
	return uint(id), true
}
