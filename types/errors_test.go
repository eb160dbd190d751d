package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		require.False(t, IsValidationError(nil))
	})

	t.Run("direct sentinel", func(t *testing.T) {
		require.True(t, IsValidationError(ErrInvalidTask))
		require.True(t, IsValidationError(ErrInvalidMember))
		require.True(t, IsValidationError(ErrInvalidConfig))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("%w: field priority must be in [1,3], got 7", ErrInvalidTask)
		require.True(t, IsValidationError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		require.False(t, IsValidationError(errors.New("boom")))
		require.False(t, IsValidationError(ErrInsufficientData))
	})
}

func TestScoreWeights_Validate(t *testing.T) {
	t.Run("default profile sums to one", func(t *testing.T) {
		require.NoError(t, DefaultScoreWeights().Validate())
		require.InDelta(t, 1.0, DefaultScoreWeights().Sum(), 1e-12)
	})

	t.Run("rejects profile not summing to one", func(t *testing.T) {
		w := DefaultScoreWeights()
		w.LoadBalance = 0.5

		err := w.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Contains(t, err.Error(), "sum to 1.0")
	})

	t.Run("rejects negative component", func(t *testing.T) {
		w := ScoreWeights{LoadBalance: 1.1, CategoryPreference: -0.1}
		require.ErrorIs(t, w.Validate(), ErrInvalidConfig)
	})
}
