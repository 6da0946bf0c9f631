package fulfillment

import (
	"fmt"

	"campus/internal/pkg/errs"
)

// Status is the lifecycle state of a fulfillment. It implements a state
// machine with an explicit transition table so that illegal moves are
// impossible to express rather than merely checked against strings.
//
// State transitions:
//
//	Created ──> Accepted ──> In Progress ──> Ready
//	   │            │             │
//	   └────────────┴─────────────┴──────> Rejected
//
// Moves are strictly forward along the chain (skipping intermediate states is
// allowed), Rejected is reachable from any non-terminal state, and nothing
// leaves Ready or Rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status assigned at creation, before the
	// fulfiller has looked at the request.
	Created

	// Accepted indicates the fulfiller has taken the request on.
	Accepted

	// InProgress indicates the fulfiller is actively working on it.
	InProgress

	// Ready indicates the request is ready for pickup. Terminal.
	Ready

	// Rejected indicates the fulfiller declined the request. Terminal.
	Rejected
)

// statusStrings maps every Status to its display string. The display strings
// match what vendors and students see ("In Progress" with a space).
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Accepted:   "Accepted",
		InProgress: "In Progress",
		Ready:      "Ready",
		Rejected:   "Rejected",
	}
}

// validStatusStrings returns only the statuses an entity may legitimately hold.
func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Accepted:   "Accepted",
		InProgress: "In Progress",
		Ready:      "Ready",
		Rejected:   "Rejected",
	}
}

// transitionTable is the single source of truth for legal status moves.
// A missing entry means the combination is rejected.
func transitionTable() map[Status]map[Action]Status {
	return map[Status]map[Action]Status{
		Created: {
			ActionAccept:   Accepted,
			ActionProgress: InProgress,
			ActionReady:    Ready,
			ActionReject:   Rejected,
		},
		Accepted: {
			ActionProgress: InProgress,
			ActionReady:    Ready,
			ActionReject:   Rejected,
		},
		InProgress: {
			ActionReady:  Ready,
			ActionReject: Rejected,
		},
	}
}

// StatusFromString parses a stored status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one an entity may hold.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == Ready || s == Rejected
}

// Apply resolves the transition table for the given action.
//
// Returns the new status, or an InvalidTransitionError when the action is not
// allowed from the current status. The zero Status (Unknown) has no legal
// transitions.
func (s Status) Apply(action Action) (Status, error) {
	if err := action.Validate(); err != nil {
		return Unknown, err
	}

	next, ok := transitionTable()[s][action]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(s.String(), action.String())
	}
	return next, nil
}
