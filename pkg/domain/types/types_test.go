package types_test

import (
	"testing"

	"github.com/epistat/casetrend/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestMode(t *testing.T) {
	t.Run("known modes are valid", func(t *testing.T) {
		for _, mode := range types.Modes() {
			gt.True(t, mode.IsValid())
		}
	})

	t.Run("unknown mode is invalid", func(t *testing.T) {
		gt.False(t, types.Mode("monthly-transition").IsValid())
		gt.False(t, types.Mode("").IsValid())
	})

	t.Run("default mode is the daily transition", func(t *testing.T) {
		gt.Equal(t, types.DefaultMode(), types.ModeDailyTransition)
		gt.Equal(t, types.Modes()[0], types.DefaultMode())
	})
}

func TestNewSnapshotID(t *testing.T) {
	a := types.NewSnapshotID()
	b := types.NewSnapshotID()
	gt.NotEqual(t, a, b)
	gt.NotEqual(t, a.String(), "")
}
