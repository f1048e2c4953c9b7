package autosave

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/multierr"

	"alcyxob/fitness-coach/internal/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu    sync.Mutex
	saved []string
}

func (r *recorder) save(v string) SaveFunc {
	return func(context.Context) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.saved = append(r.saved, v)
		return nil
	}
}

func (r *recorder) values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.saved...)
}

func TestSaver_DebounceKeepsLastDraft(t *testing.T) {
	s := NewSaver(20*time.Millisecond, time.Second, nil)
	rec := &recorder{}

	require.NoError(t, s.Schedule("log-1", rec.save("a")))
	require.NoError(t, s.Schedule("log-1", rec.save("b")))
	require.NoError(t, s.Schedule("log-1", rec.save("c")))

	assert.Eventually(t, func() bool {
		return len(rec.values()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"c"}, rec.values())
	assert.Eventually(t, func() bool { return !s.Pending("log-1") }, time.Second, 5*time.Millisecond)
}

func TestSaver_KeysAreIndependent(t *testing.T) {
	s := NewSaver(10*time.Millisecond, time.Second, nil)
	rec := &recorder{}

	require.NoError(t, s.Schedule("log-1", rec.save("one")))
	require.NoError(t, s.Schedule("log-2", rec.save("two")))

	assert.Eventually(t, func() bool {
		return len(rec.values()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.ElementsMatch(t, []string{"one", "two"}, rec.values())
}

func TestSaver_FlushRunsPendingImmediately(t *testing.T) {
	s := NewSaver(time.Hour, time.Second, nil)
	rec := &recorder{}

	require.NoError(t, s.Schedule("log-1", rec.save("draft")))
	assert.True(t, s.Pending("log-1"))

	require.NoError(t, s.Flush(context.Background(), "log-1"))
	assert.Equal(t, []string{"draft"}, rec.values())
	assert.False(t, s.Pending("log-1"))

	// nothing left to flush
	require.NoError(t, s.Flush(context.Background(), "log-1"))
	require.NoError(t, s.Flush(context.Background(), "unknown"))
	assert.Len(t, rec.values(), 1)
}

func TestSaver_TimerDroppedWhileSaveInFlight(t *testing.T) {
	m := metrics.NewTestManager()
	s := NewSaver(10*time.Millisecond, time.Second, m)
	rec := &recorder{}

	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, s.Schedule("log-1", func(ctx context.Context) error {
		close(started)
		<-release
		return rec.save("first")(ctx)
	}))
	<-started

	require.NoError(t, s.Schedule("log-1", rec.save("second")))
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.CounterAutosave.WithLabelValues("dropped")) == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, s.Pending("log-1"))

	close(release)
	require.NoError(t, s.Flush(context.Background(), "log-1"))

	assert.Equal(t, []string{"first", "second"}, rec.values())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterAutosave.WithLabelValues("saved")))
}

func TestSaver_FlushWaitsForInFlightSave(t *testing.T) {
	s := NewSaver(5*time.Millisecond, time.Second, nil)

	var running atomic.Int32
	var overlapped atomic.Bool
	save := func(context.Context) error {
		if running.Add(1) > 1 {
			overlapped.Store(true)
		}
		time.Sleep(20 * time.Millisecond)
		running.Add(-1)
		return nil
	}

	require.NoError(t, s.Schedule("log-1", save))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.Schedule("log-1", save))
	require.NoError(t, s.Flush(context.Background(), "log-1"))

	assert.False(t, overlapped.Load())
}

func TestSaver_FlushAllCollectsErrors(t *testing.T) {
	m := metrics.NewTestManager()
	s := NewSaver(time.Hour, time.Second, m)
	rec := &recorder{}
	errBoom := errors.New("boom")

	require.NoError(t, s.Schedule("a", rec.save("a")))
	require.NoError(t, s.Schedule("b", func(context.Context) error { return errBoom }))
	require.NoError(t, s.Schedule("c", func(context.Context) error { return errBoom }))

	err := s.FlushAll(context.Background())
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"a"}, rec.values())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterAutosave.WithLabelValues("failed")))
}

func TestSaver_SaveGetsTimeout(t *testing.T) {
	s := NewSaver(time.Hour, 10*time.Millisecond, nil)

	require.NoError(t, s.Schedule("log-1", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	err := s.Flush(context.Background(), "log-1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSaver_Close(t *testing.T) {
	s := NewSaver(time.Hour, time.Second, nil)
	rec := &recorder{}

	require.NoError(t, s.Schedule("log-1", rec.save("last")))
	require.NoError(t, s.Close(context.Background()))
	assert.Equal(t, []string{"last"}, rec.values())

	assert.ErrorIs(t, s.Schedule("log-1", rec.save("late")), ErrClosed)
}
