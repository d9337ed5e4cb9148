package casehub

import "aegiswhistle/backend/internal/models"

// Client is the interface for any connected dashboard viewer. It abstracts
// the underlying transport, allowing the hub to manage different client
// types uniformly.
type Client interface {
	// GetClientID returns the unique identifier of this connection. One user
	// may hold several connections (tabs).
	GetClientID() string
	// GetRole returns the viewer's dashboard role.
	GetRole() models.Role
	// GetUsername returns the logged-in username behind the connection.
	GetUsername() string

	// GetSendChannel returns the channel through which the hub delivers case
	// events intended for this client. It is a send-only channel.
	GetSendChannel() chan<- models.CaseEvent

	// Run starts the client's read and write pumps.
	Run()
	// Close gracefully shuts down the client's connection and channels.
	Close()
}
