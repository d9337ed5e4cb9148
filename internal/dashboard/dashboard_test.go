package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aegiswhistle/backend/internal/dashboard"
	"aegiswhistle/backend/internal/models"
)

func TestInvestigatorView_FiltersByAssignment(t *testing.T) {
	complaints := []models.Complaint{
		{ID: 1, AssignedTo: "a"},
		{ID: 2, AssignedTo: "b"},
		{ID: 3, AssignedTo: ""},
	}

	mine := dashboard.InvestigatorView(complaints, "a")

	assert.Len(t, mine, 1)
	assert.Equal(t, uint(1), mine[0].ID)
}

// An empty username must not pick up unassigned cases.
func TestInvestigatorView_EmptyUsername(t *testing.T) {
	complaints := []models.Complaint{
		{ID: 1, AssignedTo: ""},
		{ID: 2, AssignedTo: "b"},
	}

	mine := dashboard.InvestigatorView(complaints, "")

	assert.Empty(t, mine)
}

func TestStats(t *testing.T) {
	complaints := []models.Complaint{
		{ID: 1, Status: models.StatusOpen},
		{ID: 2, Status: models.StatusOpen},
		{ID: 3, Status: models.StatusResolved, Rewarded: true},
		{ID: 4, Status: models.StatusEscalated, Rewarded: true},
	}

	stats := dashboard.Stats(complaints)

	assert.Equal(t, 2, stats.Open)
	assert.Equal(t, 1, stats.Resolved)
	assert.Equal(t, 2, stats.Rewarded)
}

func TestMyStats(t *testing.T) {
	mine := []models.Complaint{
		{ID: 1, Status: models.StatusOpen},
		{ID: 2, Status: models.StatusResolved},
		{ID: 3, Status: models.StatusOpen},
	}

	stats := dashboard.MyStats(mine)

	assert.Equal(t, 2, stats.MyOpenCases)
	assert.Equal(t, 3, stats.TotalAssigned)
}

// Officer view orders by triage weight, with creation order as tiebreak.
func TestOfficerView_PriorityOrder(t *testing.T) {
	complaints := []models.Complaint{
		{ID: 1, Category: "general"},
		{ID: 2, Category: "fraud"},
		{ID: 3, Category: "policy"},
		{ID: 4, Category: "harassment"},
	}

	ordered := dashboard.OfficerView(complaints)

	ids := []uint{ordered[0].ID, ordered[1].ID, ordered[2].ID, ordered[3].ID}
	assert.Equal(t, []uint{2, 4, 3, 1}, ids)

	// The input slice is left untouched.
	assert.Equal(t, uint(1), complaints[0].ID)
}
