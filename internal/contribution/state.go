package contribution

import (
	contributionerrors "github.com/DeboraBSilva/Punchclock/internal/contribution/errors"
)

type State string

type Event string

const (
	StateReceived State = "RECEIVED"
	StateApproved State = "APPROVED"
	StateRefused  State = "REFUSED"

	EventApprove Event = "APPROVE"
	EventRefuse  Event = "REFUSE"
)

// Transition applies a review event to a contribution state. Only a
// RECEIVED contribution can move; APPROVED and REFUSED are terminal,
// so re-reviewing in either direction fails without side effects.
func Transition(state State, event Event) (State, error) {
	if state != StateReceived {
		return state, contributionerrors.ErrInvalidStateTransition
	}

	switch event {
	case EventApprove:
		return StateApproved, nil
	case EventRefuse:
		return StateRefused, nil
	default:
		return state, contributionerrors.ErrInvalidStateTransition
	}
}

// IsTerminal reports whether no further transition can leave the state.
func IsTerminal(state State) bool {
	return state == StateApproved || state == StateRefused
}
