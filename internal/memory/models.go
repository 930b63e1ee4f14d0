package memory

import "time"

// Event is one logged line from the agent.
type Event struct {
	ID      int64
	At      time.Time
	Message string
}

// Artifact is a named value stored by the agent, serialized as JSON.
type Artifact struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
