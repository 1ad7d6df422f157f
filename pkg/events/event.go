package events

import "time"

const (
	PoolResolved        = "POOL_RESOLVED"
	PlayerLoggedIn      = "PLAYER_LOGGED_IN"
	RegistrationCreated = "REGISTRATION_CREATED"
)

// Event defines the contract for all system events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Envelope is the wire form of an event.
func Envelope(e Event) map[string]interface{} {
	return map[string]interface{}{
		"type":        e.EventType(),
		"data":        e.Payload(),
		"occurred_at": e.Timestamp().UTC().Format(time.RFC3339Nano),
	}
}
