// Package moderation defines the status domains of the moderatable entity
// kinds and the legal transitions between statuses. The same tables drive the
// API handlers and the console transition executor, so a transition refused
// here is refused everywhere before any I/O happens.
package moderation

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReasonRequired    = errors.New("a non-empty reason is required")
)

// Ruleset describes one entity kind's status domain: which statuses exist,
// which transitions are legal, and which target statuses demand a reason.
type Ruleset struct {
	Kind        string
	Initial     string
	Transitions map[string][]string
	NeedsReason map[string]bool
}

// Verification and credential reviews share the same one-shot decision
// domain: a pending item is decided once and the decision is final.
func DecisionRules(kind string) Ruleset {
	return Ruleset{
		Kind:    kind,
		Initial: "pending",
		Transitions: map[string][]string{
			"pending":  {"approved", "rejected"},
			"approved": {},
			"rejected": {},
		},
		NeedsReason: map[string]bool{"rejected": true},
	}
}

// ReviewRules covers client reviews: visibility toggles freely, a flag can be
// cleared to either visible or hidden. Deletion is removal, not a status.
func ReviewRules() Ruleset {
	return Ruleset{
		Kind:    "review",
		Initial: "visible",
		Transitions: map[string][]string{
			"visible": {"hidden", "flagged"},
			"hidden":  {"visible", "flagged"},
			"flagged": {"visible", "hidden"},
		},
	}
}

// AccountRules covers platform user accounts: active and suspended cycle.
func AccountRules() Ruleset {
	return Ruleset{
		Kind:    "user",
		Initial: "active",
		Transitions: map[string][]string{
			"active":    {"suspended"},
			"suspended": {"active"},
		},
		NeedsReason: map[string]bool{"suspended": true},
	}
}

// Known reports whether s is a status in this ruleset's domain.
func (r Ruleset) Known(s string) bool {
	_, ok := r.Transitions[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (r Ruleset) Terminal(s string) bool {
	next, ok := r.Transitions[s]
	return ok && len(next) == 0
}

// Check validates the transition from -> to with the given reason payload.
// It returns nil only when the transition may proceed.
func (r Ruleset) Check(from, to, reason string) error {
	if !r.Known(from) {
		return fmt.Errorf("%w: %s %q", ErrUnknownStatus, r.Kind, from)
	}
	if !r.Known(to) {
		return fmt.Errorf("%w: %s %q", ErrUnknownStatus, r.Kind, to)
	}
	allowed := false
	for _, next := range r.Transitions[from] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s %s -> %s", ErrInvalidTransition, r.Kind, from, to)
	}
	if r.NeedsReason[to] && reason == "" {
		return fmt.Errorf("%w to mark %s as %s", ErrReasonRequired, r.Kind, to)
	}
	return nil
}
