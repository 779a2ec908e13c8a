// Package directory holds the in-memory activity directory, the sole state
// of the service. It is built once at startup from the seed and lives for
// the lifetime of the process; nothing is ever persisted.
package directory

import (
	"errors"
	"sync"

	"github.com/mergington-edu/activities/pkg/schema"
)

var (
	// ErrActivityNotFound is returned when the named activity is not a key
	// in the directory.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the email is already on the
	// activity's roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrParticipantNotFound is returned when the email is not on the
	// activity's roster.
	ErrParticipantNotFound = errors.New("participant not found")
)

// Directory is a thread-safe mapping from activity name to its record.
// Activity names are case-sensitive and the key set is fixed after
// construction: the only mutation is adding or removing a participant.
type Directory struct {
	mu         sync.RWMutex
	activities map[string]*schema.Activity
}

// New initializes a directory from the given records. The input map is
// copied; callers may not mutate records after handing them over.
func New(initial map[string]schema.Activity) *Directory {
	activities := make(map[string]*schema.Activity, len(initial))
	for name, act := range initial {
		clone := act.Clone()
		activities[name] = &clone
	}
	return &Directory{activities: activities}
}

// List returns a deep-copied snapshot of every activity, keyed by name.
func (d *Directory) List() map[string]schema.Activity {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]schema.Activity, len(d.activities))
	for name, act := range d.activities {
		out[name] = act.Clone()
	}
	return out
}

// Signup appends email to the named activity's roster. The email is an
// opaque string; no format validation happens here or anywhere else.
// Capacity is advisory, so a roster may grow past MaxParticipants.
func (d *Directory) Signup(name, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	act, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for _, p := range act.Participants {
		if p == email {
			return ErrAlreadySignedUp
		}
	}
	act.Participants = append(act.Participants, email)
	return nil
}

// Unregister removes email from the named activity's roster, preserving
// the order of the remaining participants.
func (d *Directory) Unregister(name, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	act, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantNotFound
}

// Len reports the number of activities in the directory.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.activities)
}
