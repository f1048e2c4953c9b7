package autosave

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"alcyxob/fitness-coach/internal/metrics"
)

const (
	DefaultDelay       = 1500 * time.Millisecond
	DefaultSaveTimeout = 10 * time.Second
)

var ErrClosed = errors.New("autosave: saver is closed")

// SaveFunc persists one draft. It receives a context bounded by the save timeout.
type SaveFunc func(ctx context.Context) error

// Saver debounces draft writes per key. Each Schedule call replaces the
// pending save for its key and restarts the delay; only the last one runs.
// At most one save runs per key at a time: a timer that fires while a save
// is in flight is dropped and its draft stays pending until the next timer
// or an explicit Flush.
type Saver struct {
	delay   time.Duration
	timeout time.Duration
	metrics *metrics.Manager

	mu      sync.Mutex
	entries map[string]*entry
	closed  bool
}

type entry struct {
	timer   *time.Timer
	pending SaveFunc
	saving  sync.Mutex
}

func NewSaver(delay, timeout time.Duration, metricsManager *metrics.Manager) *Saver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	return &Saver{
		delay:   delay,
		timeout: timeout,
		metrics: metricsManager,
		entries: make(map[string]*entry),
	}
}

func (s *Saver) Schedule(key string, fn SaveFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	e.pending = fn
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(s.delay, func() { s.fire(key, e) })

	return nil
}

// Pending reports whether a save is waiting to run for the key.
func (s *Saver) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return ok && e.pending != nil
}

func (s *Saver) fire(key string, e *entry) {
	if !e.saving.TryLock() {
		log.Debugf("autosave [%s]: save in flight, skipping timer", key)
		s.observe("dropped")
		return
	}
	defer e.saving.Unlock()

	fn := s.take(key, e, false)
	if fn == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.run(ctx, key, fn); err != nil {
		log.Errorf("autosave [%s]: %s", key, err)
	}

	s.mu.Lock()
	if e.pending == nil && s.entries[key] == e {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

// take detaches the pending save from the entry. With forget set, the entry
// is removed from the saver as well.
func (s *Saver) take(key string, e *entry, forget bool) SaveFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn := e.pending
	e.pending = nil
	if forget {
		if e.timer != nil {
			e.timer.Stop()
		}
		if s.entries[key] == e {
			delete(s.entries, key)
		}
	}
	return fn
}

// Flush waits for any in-flight save for the key, then runs the pending one
// immediately.
func (s *Saver) Flush(ctx context.Context, key string) error {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok && e.timer != nil {
		e.timer.Stop()
	}
	s.mu.Unlock()
	if !ok {
		return nil
	}

	e.saving.Lock()
	defer e.saving.Unlock()

	fn := s.take(key, e, true)
	if fn == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.run(ctx, key, fn)
}

// FlushAll flushes every key with a pending or running save.
func (s *Saver) FlushAll(ctx context.Context) error {
	s.mu.Lock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	s.mu.Unlock()
	sort.Strings(keys)

	var err error
	for _, k := range keys {
		err = multierr.Append(err, s.Flush(ctx, k))
	}
	return err
}

// Close rejects new saves and flushes the outstanding ones.
func (s *Saver) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.FlushAll(ctx)
}

func (s *Saver) run(ctx context.Context, key string, fn SaveFunc) error {
	if err := fn(ctx); err != nil {
		s.observe("failed")
		return fmt.Errorf("save %s: %w", key, err)
	}
	s.observe("saved")
	log.Tracef("autosave [%s]: saved", key)
	return nil
}

func (s *Saver) observe(outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterAutosave.WithLabelValues(outcome).Inc()
}
