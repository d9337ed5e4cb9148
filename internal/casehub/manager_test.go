package casehub_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aegiswhistle/backend/internal/casehub"
	"aegiswhistle/backend/internal/models"
)

func TestManager_RegisterUnregister(t *testing.T) {
	hub := casehub.NewManagerService(nil)
	client := newMockClient("client_A", models.RoleOfficer, "ethics@aegiswhistle.com")

	go hub.Run()

	hub.RegisterCh <- client
	time.Sleep(100 * time.Millisecond)
	assert.Contains(t, hub.Clients, "client_A")

	hub.UnregisterCh <- client
	time.Sleep(100 * time.Millisecond)
	assert.NotContains(t, hub.Clients, "client_A")
	assert.True(t, client.closed)
}

func TestManager_OfficerSeesEveryEvent(t *testing.T) {
	hub := casehub.NewManagerService(nil)
	officer := newMockClient("client_officer", models.RoleOfficer, "ethics@aegiswhistle.com")
	hub.Clients["client_officer"] = officer

	go hub.Run()

	hub.Emit(models.CaseEvent{CaseID: 1, Action: "submitted"})
	hub.Emit(models.CaseEvent{CaseID: 1, Action: "assigned", AssignedTo: "someone_else"})
	time.Sleep(100 * time.Millisecond)

	events := officer.DrainEvents()
	assert.Len(t, events, 2)
	assert.Equal(t, "submitted", events[0].Action)
	assert.Equal(t, "assigned", events[1].Action)
}

func TestManager_InvestigatorScopedToOwnCases(t *testing.T) {
	hub := casehub.NewManagerService(nil)
	mine := newMockClient("client_mine", models.RoleInvestigator, "investigator@aegiswhistle.com")
	other := newMockClient("client_other", models.RoleInvestigator, "colleague@aegiswhistle.com")
	hub.Clients["client_mine"] = mine
	hub.Clients["client_other"] = other

	go hub.Run()

	hub.Emit(models.CaseEvent{CaseID: 7, Action: "assigned", AssignedTo: "investigator@aegiswhistle.com"})
	// Events for unassigned cases reach no investigator.
	hub.Emit(models.CaseEvent{CaseID: 8, Action: "submitted", AssignedTo: ""})
	time.Sleep(100 * time.Millisecond)

	myEvents := mine.DrainEvents()
	assert.Len(t, myEvents, 1)
	assert.Equal(t, uint(7), myEvents[0].CaseID)

	assert.Empty(t, other.DrainEvents())
}

func TestManager_EmitDoesNotBlockWithoutRun(t *testing.T) {
	hub := casehub.NewManagerService(nil)

	// The event channel is buffered; emitting more than its capacity without
	// a running hub must drop, not deadlock.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Emit(models.CaseEvent{CaseID: uint(i), Action: "submitted"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full event channel")
	}
}
