package casehub

import (
	"encoding/json"
	"log"

	"aegiswhistle/backend/internal/models"
)

// startBusListener starts a goroutine that relays events from the Redis
// subscription into the hub's pubSubCh. No-op when no bus is configured.
func (m *ManagerService) startBusListener() {
	if m.Bus == nil {
		return
	}

	go func() {
		pubsub := m.Bus.SubscribeEvents()
		defer pubsub.Close()

		ch := pubsub.Channel()
		for msg := range ch {
			var evt models.CaseEvent
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				log.Printf("Error unmarshalling case event from Redis: %v", err)
				continue
			}
			m.pubSubCh <- evt
		}
	}()
}
