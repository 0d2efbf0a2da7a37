package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockTracker/internal/common"
)

func TestRegisterValidSpec(t *testing.T) {
	s := New(common.NewSilentLogger(), func() {})
	require.NoError(t, s.Register("0 */15 9-15 * * 1-5"))
}

func TestRegisterInvalidSpec(t *testing.T) {
	s := New(common.NewSilentLogger(), func() {})
	err := s.Register("not a cron spec")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh schedule")
}

func TestRunNowExecutesTask(t *testing.T) {
	ran := 0
	s := New(nil, func() { ran++ })

	s.RunNow()
	s.RunNow()

	assert.Equal(t, 2, ran)
}

func TestStartStop(t *testing.T) {
	s := New(common.NewSilentLogger(), func() {})
	require.NoError(t, s.Register("0 0 0 1 1 *"))

	s.Start()
	s.Stop()
}
