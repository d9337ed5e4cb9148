package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"aegiswhistle/backend/internal/casefile"
	"aegiswhistle/backend/internal/casehub"
	"aegiswhistle/backend/internal/localization"
	"aegiswhistle/backend/internal/lookup"
	"aegiswhistle/backend/internal/session"
	"aegiswhistle/backend/internal/store"
)

// Handler wires the HTTP surface to the core services.
type Handler struct {
	Cases     *casefile.Service
	Store     store.CaseStore
	Lookup    *lookup.Service
	Sessions  *session.Manager
	Hub       *casehub.ManagerService
	Localizer *localization.Localizer
}

func NewHandler(cases *casefile.Service, s store.CaseStore, l *lookup.Service, sm *session.Manager, hub *casehub.ManagerService, loc *localization.Localizer) *Handler {
	return &Handler{
		Cases:     cases,
		Store:     s,
		Lookup:    l,
		Sessions:  sm,
		Hub:       hub,
		Localizer: loc,
	}
}

// lang picks the response language from the Accept-Language header.
func lang(c *gin.Context) string {
	al := c.GetHeader("Accept-Language")
	if len(al) >= 2 {
		return strings.ToLower(al[:2])
	}
	return "en"
}
