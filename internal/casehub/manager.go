// Package casehub fans case events out to connected dashboards. Officers see
// every event; investigators only see events for cases assigned to them.
package casehub

import (
	"log"

	"github.com/redis/go-redis/v9"

	"aegiswhistle/backend/internal/models"
)

// EventBus relays case events between server instances. When no bus is
// configured the hub broadcasts locally only.
type EventBus interface {
	PublishEvent(evt models.CaseEvent) error
	SubscribeEvents() *redis.PubSub
}

// ManagerService owns the client map. All state changes go through its Run
// loop, so no locking is needed on Clients.
type ManagerService struct {
	Clients map[string]Client

	// Channels
	EventCh      chan models.CaseEvent
	RegisterCh   chan Client
	UnregisterCh chan Client

	Bus EventBus

	pubSubCh chan models.CaseEvent
}

// NewManagerService creates a hub. bus may be nil for single-instance setups.
func NewManagerService(bus EventBus) *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		EventCh:      make(chan models.CaseEvent, 64),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		Bus:          bus,
		pubSubCh:     make(chan models.CaseEvent, 64),
	}
}

// Emit hands an event to the hub without blocking the caller. Events are
// dropped if the hub is not draining, which only loses a live refresh; the
// store remains the source of truth.
func (m *ManagerService) Emit(evt models.CaseEvent) {
	select {
	case m.EventCh <- evt:
	default:
		log.Printf("WARNING: Dropping case event %s for case %d, hub busy", evt.Action, evt.CaseID)
	}
}

// Run is the hub's main dispatcher goroutine.
func (m *ManagerService) Run() {
	m.startBusListener()

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetClientID()] = client
			log.Printf("Dashboard client registered: %s (%s)", client.GetClientID(), client.GetRole())

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetClientID()]; ok {
				delete(m.Clients, client.GetClientID())
				client.Close()
				log.Printf("Dashboard client unregistered: %s", client.GetClientID())
			}

		case evt := <-m.EventCh:
			m.handleEvent(evt)

		case evt := <-m.pubSubCh:
			// Event arrived from another instance via Redis.
			m.broadcast(evt)
		}
	}
}

// handleEvent routes a locally produced event. With a bus configured the
// event travels through Redis and comes back on pubSubCh, also reaching this
// instance's own subscription; broadcasting here as well would deliver it
// twice.
func (m *ManagerService) handleEvent(evt models.CaseEvent) {
	if m.Bus != nil {
		if err := m.Bus.PublishEvent(evt); err != nil {
			log.Printf("ERROR: Failed to publish case event: %v", err)
			m.broadcast(evt)
		}
		return
	}
	m.broadcast(evt)
}

// broadcast delivers the event to every client allowed to see it.
func (m *ManagerService) broadcast(evt models.CaseEvent) {
	for id, client := range m.Clients {
		if !visible(client, evt) {
			continue
		}
		select {
		case client.GetSendChannel() <- evt:
		default:
			// Slow client, drop the connection.
			delete(m.Clients, id)
			client.Close()
		}
	}
}

// visible implements the dashboard scoping rules.
func visible(client Client, evt models.CaseEvent) bool {
	switch client.GetRole() {
	case models.RoleOfficer:
		return true
	case models.RoleInvestigator:
		return evt.AssignedTo != "" && evt.AssignedTo == client.GetUsername()
	default:
		return false
	}
}
