// Package schema defines the data structures shared between the activities
// service, its SDK, and the CLI.
package schema

// Activity represents one extracurricular offering as it appears on the wire.
// MaxParticipants is advisory: the service displays it but never enforces it.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy so callers can hand records across API
// boundaries without sharing the participants slice.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
