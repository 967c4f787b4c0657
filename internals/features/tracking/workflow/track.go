// file: internals/features/tracking/workflow/track.go
package workflow

import (
	"strings"
)

// Status adalah nilai status aplikasi pada satu track.
type Status string

// Track mendeskripsikan satu jalur aplikasi (college / scholarship):
// himpunan status tertutup, status awal, dan status keputusan (terminal).
type Track struct {
	Name       string
	Initial    Status
	InProgress Status
	Submitted  Status

	statuses  []Status
	decisions map[Status]struct{}
}

// NewTrack membangun Track. Urutan statuses dipertahankan untuk output dashboard.
func NewTrack(name string, statuses []Status, initial, inProgress, submitted Status, decisions ...Status) Track {
	d := make(map[Status]struct{}, len(decisions))
	for _, s := range decisions {
		d[s] = struct{}{}
	}
	return Track{
		Name:       name,
		Initial:    initial,
		InProgress: inProgress,
		Submitted:  submitted,
		statuses:   append([]Status(nil), statuses...),
		decisions:  d,
	}
}

// Statuses mengembalikan salinan enumerasi status track.
func (t Track) Statuses() []Status {
	return append([]Status(nil), t.statuses...)
}

func (t Track) Valid(s Status) bool {
	for _, v := range t.statuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsDecision: true untuk status keputusan (accepted, rejected, waitlisted / not_pursuing).
func (t Track) IsDecision(s Status) bool {
	_, ok := t.decisions[s]
	return ok
}

// Parse menormalisasi input (trim + lowercase) lalu memastikan status ada di enumerasi.
func (t Track) Parse(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid(s) {
		return "", &ValidationError{
			Field:   "status",
			Message: "status must be one of: " + t.joined(),
		}
	}
	return s, nil
}

func (t Track) joined() string {
	parts := make([]string, 0, len(t.statuses))
	for _, s := range t.statuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}
