// Package dashboard derives the read-only projections the officer and
// investigator views render. Everything here is a pure function over the case
// list; views never mutate the store.
package dashboard

import (
	"sort"

	"aegiswhistle/backend/internal/models"
	"aegiswhistle/backend/internal/triage"
)

// OfficerStats are the counters on the officer dashboard.
type OfficerStats struct {
	Open     int `json:"open"`
	Resolved int `json:"resolved"`
	Rewarded int `json:"rewarded"`
}

// InvestigatorStats are the counters on the investigator dashboard.
type InvestigatorStats struct {
	MyOpenCases   int `json:"myOpenCases"`
	TotalAssigned int `json:"totalAssigned"`
}

// OfficerView returns all complaints, highest triage weight first. Equal
// weights keep creation order.
func OfficerView(complaints []models.Complaint) []models.Complaint {
	out := append([]models.Complaint(nil), complaints...)
	sort.SliceStable(out, func(i, j int) bool {
		return triage.GetWeight(out[i].Category) > triage.GetWeight(out[j].Category)
	})
	return out
}

// Stats counts the officer dashboard figures over the full case list.
func Stats(complaints []models.Complaint) OfficerStats {
	var s OfficerStats
	for _, c := range complaints {
		switch c.Status {
		case models.StatusOpen:
			s.Open++
		case models.StatusResolved:
			s.Resolved++
		}
		if c.Rewarded {
			s.Rewarded++
		}
	}
	return s
}

// InvestigatorView returns only the cases assigned to the given username.
// Unassigned cases are never included, even for an empty username.
func InvestigatorView(complaints []models.Complaint, username string) []models.Complaint {
	var out []models.Complaint
	for _, c := range complaints {
		if c.AssignedTo != "" && c.AssignedTo == username {
			out = append(out, c)
		}
	}
	return out
}

// MyStats counts the investigator dashboard figures over an already-filtered
// case list.
func MyStats(myCases []models.Complaint) InvestigatorStats {
	s := InvestigatorStats{TotalAssigned: len(myCases)}
	for _, c := range myCases {
		if c.Status == models.StatusOpen {
			s.MyOpenCases++
		}
	}
	return s
}
