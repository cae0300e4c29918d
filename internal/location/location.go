// Package location resolves the user's current zone and guards against
// lookups that finish after the user has already moved on.
package location

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrUnavailable is returned when no location source is configured.
var ErrUnavailable = errors.New("current location unavailable")

// Provider resolves the current zone name.
type Provider interface {
	CurrentZone(ctx context.Context) (string, error)
}

// StaticProvider always answers with a configured home zone.
type StaticProvider struct {
	Zone string
}

// CurrentZone returns the configured zone, or ErrUnavailable when empty.
func (p StaticProvider) CurrentZone(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(p.Zone) == "" {
		return "", ErrUnavailable
	}
	return strings.TrimSpace(p.Zone), nil
}

// Snap maps a free-form place name onto a known zone, ignoring case and
// surrounding space. Unknown names come back trimmed but otherwise as-is.
func Snap(name string, zones []string) string {
	name = strings.TrimSpace(name)
	for _, z := range zones {
		if strings.EqualFold(z, name) {
			return z
		}
	}
	return name
}

// Request identifies one in-flight lookup.
type Request struct {
	ID         string
	Generation uint64
}

// Tracker lets only the newest lookup land, and only if the reference zone
// hasn't been written since it started.
type Tracker struct {
	pending string
}

// Begin registers a new lookup, superseding any earlier one. generation is
// the session's zone generation at the time of the request.
func (t *Tracker) Begin(generation uint64) Request {
	req := Request{ID: uuid.NewString(), Generation: generation}
	t.pending = req.ID
	return req
}

// Pending reports whether a lookup is outstanding.
func (t *Tracker) Pending() bool {
	return t.pending != ""
}

// Cancel drops the outstanding lookup; its result will be ignored.
func (t *Tracker) Cancel() {
	t.pending = ""
}

// Settle marks the request finished and reports whether its result may be
// applied.
func (t *Tracker) Settle(req Request, generation uint64) bool {
	if t.pending == "" || req.ID != t.pending {
		return false
	}
	t.pending = ""
	return req.Generation == generation
}
