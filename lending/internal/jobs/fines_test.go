package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type refresherFunc func(ctx context.Context) (int, error)

func (f refresherFunc) RefreshFines(ctx context.Context) (int, error) { return f(ctx) }

func TestScheduler_RefreshFines(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	s, err := NewScheduler(refresherFunc(func(ctx context.Context) (int, error) {
		_, hasDeadline := ctx.Deadline()
		require.True(t, hasDeadline)
		calls.Add(1)
		return 2, nil
	}), "@every 1h", time.Second, zap.NewExample())
	require.NoError(t, err)

	s.RefreshFines()
	require.Equal(t, int32(1), calls.Load())
	require.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_RefreshFinesError(t *testing.T) {
	t.Parallel()
	s, err := NewScheduler(refresherFunc(func(context.Context) (int, error) {
		return 0, errors.New("db down")
	}), "@daily", time.Second, zap.NewExample())
	require.NoError(t, err)
	s.RefreshFines()
}

func TestNewScheduler_BadSpec(t *testing.T) {
	t.Parallel()
	_, err := NewScheduler(refresherFunc(nil), "not a spec", time.Second, zap.NewExample())
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()
	s, err := NewScheduler(refresherFunc(func(context.Context) (int, error) { return 0, nil }), "@every 1h", time.Second, zap.NewExample())
	require.NoError(t, err)
	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
