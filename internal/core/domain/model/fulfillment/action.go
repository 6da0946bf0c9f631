package fulfillment

import (
	"fmt"

	"campus/internal/pkg/errs"
)

// Action is the closed alphabet of lifecycle moves a fulfiller may request.
// Surfaces translate their literal syntax into one of these; free-form status
// strings never reach the state machine.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionAccept takes the request on.
	ActionAccept

	// ActionProgress marks the request as being worked on.
	ActionProgress

	// ActionReady marks the request as ready for pickup.
	ActionReady

	// ActionReject declines the request.
	ActionReject
)

func actionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:  "Unknown",
		ActionAccept:   "accept",
		ActionProgress: "progress",
		ActionReady:    "ready",
		ActionReject:   "reject",
	}
}

// ActionFromString parses an action name as supplied by the web or chat
// surface. Unknown names are rejected.
func ActionFromString(s string) (Action, error) {
	for action, str := range actionStrings() {
		if action != ActionUnknown && str == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%q is not a valid action", s))
}

// Validate rejects ActionUnknown and out-of-range values.
func (a Action) Validate() error {
	if a != ActionAccept && a != ActionProgress && a != ActionReady && a != ActionReject {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value, including invalid ones.
func (a Action) String() string {
	if str, ok := actionStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
