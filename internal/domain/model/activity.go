// Package model contains domain models passed between layers.
package model

import "slices"

// Activity is an extracurricular offering and its roster.
// Field tags serve both the JSON API and the YAML seed catalog.
type Activity struct {
	Description     string   `json:"description" koanf:"description"`
	Schedule        string   `json:"schedule" koanf:"schedule"`
	MaxParticipants int      `json:"max_participants" koanf:"max_participants"`
	Participants    []string `json:"participants" koanf:"participants"`
}

// Activities maps activity name to activity.
type Activities map[string]Activity

// Has reports whether email is on the roster.
func (a Activity) Has(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Full reports whether the roster has reached MaxParticipants.
// A zero MaxParticipants means unlimited.
func (a Activity) Full() bool {
	return a.MaxParticipants > 0 && len(a.Participants) >= a.MaxParticipants
}

// Clone returns a deep copy. Participants is never nil in the copy.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// Clone returns a deep copy of every activity.
func (as Activities) Clone() Activities {
	out := make(Activities, len(as))
	for name, a := range as {
		out[name] = a.Clone()
	}
	return out
}

// ParticipantCount sums roster sizes.
func (as Activities) ParticipantCount() int {
	n := 0
	for _, a := range as {
		n += len(a.Participants)
	}
	return n
}
