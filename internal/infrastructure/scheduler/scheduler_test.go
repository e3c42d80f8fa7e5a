package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJob(t *testing.T) {
	s := New()

	require.NoError(t, s.AddJob("0 9 * * *", "contact-reminders", func(context.Context) {}))
	require.NoError(t, s.AddJob("@every 1h", "other", func(context.Context) {}))
	assert.Equal(t, 2, s.Len())

	err := s.AddJob("not a schedule", "broken", func(context.Context) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, 2, s.Len())
}

func TestStopCancelsJobContext(t *testing.T) {
	s := New()
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)

	assert.ErrorIs(t, s.ctx.Err(), context.Canceled)
}
