package casehub_test

import (
	"aegiswhistle/backend/internal/models"
)

// MockClient is a test double for the casehub.Client interface.
type MockClient struct {
	clientID    string
	role        models.Role
	username    string
	closed      bool
	RecvChannel chan models.CaseEvent
}

func newMockClient(clientID string, role models.Role, username string) *MockClient {
	return &MockClient{
		clientID:    clientID,
		role:        role,
		username:    username,
		RecvChannel: make(chan models.CaseEvent, 10),
	}
}

func (c *MockClient) GetClientID() string { return c.clientID }

func (c *MockClient) GetRole() models.Role { return c.role }

func (c *MockClient) GetUsername() string { return c.username }

func (c *MockClient) GetSendChannel() chan<- models.CaseEvent { return c.RecvChannel }

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed = true
}

// DrainEvents empties the receive channel for assertions.
func (c *MockClient) DrainEvents() []models.CaseEvent {
	var events []models.CaseEvent
	for {
		select {
		case evt := <-c.RecvChannel:
			events = append(events, evt)
		default:
			return events
		}
	}
}
