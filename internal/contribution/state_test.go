package contribution_test

import (
	"testing"

	"github.com/DeboraBSilva/Punchclock/internal/contribution"
	contributionerrors "github.com/DeboraBSilva/Punchclock/internal/contribution/errors"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	t.Run("received can be approved", func(t *testing.T) {
		next, err := contribution.Transition(contribution.StateReceived, contribution.EventApprove)

		assert.NoError(t, err)
		assert.Equal(t, contribution.StateApproved, next)
	})

	t.Run("received can be refused", func(t *testing.T) {
		next, err := contribution.Transition(contribution.StateReceived, contribution.EventRefuse)

		assert.NoError(t, err)
		assert.Equal(t, contribution.StateRefused, next)
	})

	t.Run("approved is terminal", func(t *testing.T) {
		for _, event := range []contribution.Event{contribution.EventApprove, contribution.EventRefuse} {
			next, err := contribution.Transition(contribution.StateApproved, event)

			assert.ErrorIs(t, err, contributionerrors.ErrInvalidStateTransition)
			assert.Equal(t, contribution.StateApproved, next)
		}
	})

	t.Run("refused is terminal", func(t *testing.T) {
		for _, event := range []contribution.Event{contribution.EventApprove, contribution.EventRefuse} {
			next, err := contribution.Transition(contribution.StateRefused, event)

			assert.ErrorIs(t, err, contributionerrors.ErrInvalidStateTransition)
			assert.Equal(t, contribution.StateRefused, next)
		}
	})

	t.Run("unknown event on received", func(t *testing.T) {
		next, err := contribution.Transition(contribution.StateReceived, contribution.Event("PUBLISH"))

		assert.ErrorIs(t, err, contributionerrors.ErrInvalidStateTransition)
		assert.Equal(t, contribution.StateReceived, next)
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, contribution.IsTerminal(contribution.StateReceived))
	assert.True(t, contribution.IsTerminal(contribution.StateApproved))
	assert.True(t, contribution.IsTerminal(contribution.StateRefused))
}
