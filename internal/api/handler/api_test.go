package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aegiswhistle/backend/internal/api/handler"
	"aegiswhistle/backend/internal/casefile"
	"aegiswhistle/backend/internal/casehub"
	"aegiswhistle/backend/internal/config"
	"aegiswhistle/backend/internal/localization"
	"aegiswhistle/backend/internal/lookup"
	"aegiswhistle/backend/internal/models"
	"aegiswhistle/backend/internal/notify"
	"aegiswhistle/backend/internal/session"
	"aegiswhistle/backend/internal/store"
)

type testAPI struct {
	router *gin.Engine
	store  store.CaseStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	caseStore := store.NewMemoryStore()
	localizer, err := localization.NewLocalizer()
	require.NoError(t, err)

	sessions := session.NewManager("test-secret")
	hub := casehub.NewManagerService(nil)
	cases := casefile.NewService(caseStore, notify.LogNotifier{}, hub)
	h := handler.NewHandler(cases, caseStore, lookup.NewService(caseStore), sessions, hub, localizer)

	r := gin.New()
	r.POST("/api/reports", h.SubmitReport)
	r.POST("/api/followup", h.Followup)
	r.POST("/api/login", h.Login)

	authed := r.Group("/api", h.RequireSession())
	authed.GET("/cases", h.ListCases)
	authed.GET("/cases/:id", h.GetCase)

	officer := r.Group("/api", h.RequireRole(models.RoleOfficer))
	officer.POST("/cases/:id/assign", h.AssignCase)
	officer.POST("/cases/:id/resolve", h.ResolveCase)
	officer.POST("/cases/:id/escalate", h.EscalateCase)
	officer.POST("/cases/:id/reward", h.RewardCase)

	investigator := r.Group("/api", h.RequireRole(models.RoleInvestigator))
	investigator.POST("/cases/:id/notes", h.UpdateNote)
	investigator.POST("/cases/:id/evidence", h.AttachEvidence)

	return &testAPI{router: r, store: caseStore}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) login(t *testing.T, role, username, password string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/login", "", gin.H{
		"role":     role,
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestSubmitReport(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/reports", "", gin.H{
		"summary":  "procurement bypass",
		"category": "fraud",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID      uint   `json:"id"`
		AckCode string `json:"ackCode"`
		Hint    string `json:"hint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Len(t, resp.AckCode, config.AckCodeLength)
	assert.Equal(t, "Save this code to check status or reward updates!", resp.Hint)
}

func TestSubmitReport_Empty(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/reports", "", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollowup(t *testing.T) {
	api := newTestAPI(t)
	c := api.store.Create(models.ReportSubmission{Summary: "bypass", Category: "fraud"})

	w := api.do(t, http.MethodPost, "/api/followup", "", gin.H{"code": c.AckCode})
	assert.Equal(t, http.StatusOK, w.Code)

	var view lookup.StatusView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, models.StatusOpen, view.Status)
	assert.Equal(t, lookup.RewardPending, view.Reward)
	assert.Equal(t, "bypass", view.Summary)
	// The redacted view must not leak the transcript or audit trail.
	assert.NotContains(t, w.Body.String(), "auditTrail")
	assert.NotContains(t, w.Body.String(), "transcript")
}

func TestFollowup_NotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/followup", "", gin.H{"code": "NOPE"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No complaint found with this code.")
}

func TestLogin_Failure(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/login", "", gin.H{
		"role":     "officer",
		"username": config.OfficerUsername,
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid password for Ethics Officer")
}

func TestCaseActions_RoleGating(t *testing.T) {
	api := newTestAPI(t)
	c := api.store.Create(models.ReportSubmission{Summary: "x", Category: "fraud"})

	officerToken := api.login(t, "officer", config.OfficerUsername, config.OfficerPassword)
	investigatorToken := api.login(t, "investigator", config.InvestigatorUsername, config.InvestigatorPassword)

	// Investigators cannot resolve.
	w := api.do(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/resolve", c.ID), investigatorToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Officers assign, then resolve.
	w = api.do(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/assign", c.ID), officerToken,
		gin.H{"investigator": config.InvestigatorUsername})
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/resolve", c.ID), officerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	got, _ := api.store.Get(c.ID)
	assert.Equal(t, models.StatusResolved, got.Status)
	assert.True(t, got.Rewarded)

	// The assigned investigator can now note their case.
	w = api.do(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/notes", c.ID), investigatorToken,
		gin.H{"text": "looked into it"})
	assert.Equal(t, http.StatusOK, w.Code)

	got, _ = api.store.Get(c.ID)
	assert.Equal(t, "looked into it", got.Notes)
}

func TestUpdateNote_NotAssigned(t *testing.T) {
	api := newTestAPI(t)
	c := api.store.Create(models.ReportSubmission{Summary: "x", Category: "fraud"})

	investigatorToken := api.login(t, "investigator", config.InvestigatorUsername, config.InvestigatorPassword)

	w := api.do(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/notes", c.ID), investigatorToken,
		gin.H{"text": "note"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCaseAction_UnknownID(t *testing.T) {
	api := newTestAPI(t)
	officerToken := api.login(t, "officer", config.OfficerUsername, config.OfficerPassword)

	w := api.do(t, http.MethodPost, "/api/cases/99/resolve", officerToken, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCases_ByRole(t *testing.T) {
	api := newTestAPI(t)
	api.store.Create(models.ReportSubmission{Summary: "a", Category: "general"})
	c2 := api.store.Create(models.ReportSubmission{Summary: "b", Category: "fraud"})
	api.store.Assign(c2.ID, config.InvestigatorUsername)

	officerToken := api.login(t, "officer", config.OfficerUsername, config.OfficerPassword)
	investigatorToken := api.login(t, "investigator", config.InvestigatorUsername, config.InvestigatorPassword)

	var officerResp struct {
		Cases []models.Complaint `json:"cases"`
	}
	w := api.do(t, http.MethodGet, "/api/cases", officerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &officerResp))
	assert.Len(t, officerResp.Cases, 2)
	// Fraud outranks general in the officer ordering.
	assert.Equal(t, uint(2), officerResp.Cases[0].ID)

	var invResp struct {
		Cases []models.Complaint `json:"cases"`
	}
	w = api.do(t, http.MethodGet, "/api/cases", investigatorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invResp))
	assert.Len(t, invResp.Cases, 1)
	assert.Equal(t, uint(2), invResp.Cases[0].ID)
}

func TestListCases_Unauthenticated(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/cases", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLocalizedFollowupError(t *testing.T) {
	api := newTestAPI(t)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{"code": "NOPE"}))
	req := httptest.NewRequest(http.MethodPost, "/api/followup", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "uk")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Скаргу з таким кодом не знайдено.")
}
