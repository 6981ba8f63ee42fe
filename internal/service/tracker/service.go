package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/location"
	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/tracking"
	"github.com/cmlabs-hris/attendance-agent-go/internal/pkg/cron"
)

// Defaults for the reporting loop. The production cadence is 30
// minutes; test builds shorten it through Options.
const (
	DefaultInterval   = 30 * time.Minute
	DefaultRetryDelay = 5 * time.Second
	DefaultMaxRetries = 3
)

type Options struct {
	Interval   time.Duration
	RetryDelay time.Duration
	MaxRetries uint64
	Device     tracking.DeviceInfo
}

// Status is a read-only snapshot for diagnostics.
type Status struct {
	Running          bool
	BackgroundActive bool
	LastTick         time.Time
	LastError        string
}

// Service reports raw device position on a fixed cadence, independent
// of the punch flow. It shares the location provider with the punch
// controller as a read-only resource; location reads are idempotent so
// no coordination between the two is needed.
type Service struct {
	provider  location.Provider
	sender    tracking.Sender
	registrar tracking.Registrar
	opts      Options

	mu           sync.Mutex
	running      bool
	scheduler    *cron.Scheduler
	watchStop    func()
	bgRegistered bool

	// Tick stats use their own lock: Stop holds mu while waiting for an
	// in-flight tick to finish.
	statMu   sync.Mutex
	lastTick time.Time
	lastErr  error
}

func NewService(provider location.Provider, sender tracking.Sender, registrar tracking.Registrar, opts Options) *Service {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	return &Service{
		provider:  provider,
		sender:    sender,
		registrar: registrar,
		opts:      opts,
	}
}

// Start begins the foreground interval and continuous-watch regimes.
// Idempotent: a second call while tracking is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	s.scheduler = cron.NewScheduler()
	s.scheduler.AddJob(cron.Job{
		Name:       "report_location",
		Interval:   s.opts.Interval,
		RunOnStart: true,
		Fn:         s.Tick,
	})
	s.scheduler.Start()

	s.startWatchLocked(ctx)
	s.running = true

	slog.Info("Background tracker started",
		"interval", s.opts.Interval,
		"device_id", s.opts.Device.DeviceID)
	return nil
}

// Stop clears the interval loop, the watch subscription, and any
// background registration.
func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}

	s.scheduler.Stop()
	s.scheduler = nil
	s.stopWatchLocked()
	s.unregisterLocked(ctx)
	s.running = false
	slog.Info("Background tracker stopped")
}

// OnAppState swaps between the continuous-watch regime (foreground) and
// the OS background-task regime (background).
func (s *Service) OnAppState(ctx context.Context, state tracking.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}

	switch state {
	case tracking.StateForeground:
		s.unregisterLocked(ctx)
		s.startWatchLocked(ctx)
	case tracking.StateBackground:
		s.stopWatchLocked()
		s.registerLocked(ctx)
	}
}

// Tick performs one report cycle: sample, build payload, send with
// bounded retry. Exported so the OS background callback can invoke the
// same path the interval loop uses.
func (s *Service) Tick(ctx context.Context) error {
	sample, err := s.provider.Current(ctx)
	if err != nil {
		if errors.Is(err, location.ErrNoLocation) {
			slog.Warn("Tracker tick skipped, no location fix")
			s.recordTick(nil)
			return nil
		}
		s.recordTick(err)
		return fmt.Errorf("failed to sample location: %w", err)
	}

	report := tracking.Report{
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
		Accuracy:   sample.Accuracy,
		Timestamp:  sample.Timestamp.UnixMilli(),
		DeviceInfo: s.opts.Device,
	}

	err = s.send(ctx, report)
	s.recordTick(err)
	if err != nil {
		// Give up silently for this tick; the next one starts a fresh
		// retry counter.
		slog.Warn("Tracker report dropped after retries",
			"max_retries", s.opts.MaxRetries,
			"error", err)
	}
	return nil
}

// send delivers one report with a constant delay between attempts,
// capped at MaxRetries retries after the initial attempt.
func (s *Service) send(ctx context.Context, report tracking.Report) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.opts.RetryDelay), s.opts.MaxRetries),
		ctx,
	)
	return backoff.Retry(func() error {
		return s.sender.Send(ctx, report)
	}, policy)
}

// Status returns a diagnostics snapshot.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		Running:          s.running,
		BackgroundActive: s.bgRegistered,
	}

	s.statMu.Lock()
	st.LastTick = s.lastTick
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	s.statMu.Unlock()
	return st
}

func (s *Service) recordTick(err error) {
	s.statMu.Lock()
	defer s.statMu.Unlock()
	s.lastTick = time.Now()
	s.lastErr = err
}

func (s *Service) startWatchLocked(ctx context.Context) {
	if s.watchStop != nil {
		return
	}
	stop, err := s.provider.Watch(ctx, nil)
	if err != nil {
		slog.Warn("Position watch unavailable", "error", err)
		return
	}
	s.watchStop = stop
}

func (s *Service) stopWatchLocked() {
	if s.watchStop == nil {
		return
	}
	s.watchStop()
	s.watchStop = nil
}

func (s *Service) registerLocked(ctx context.Context) {
	if s.registrar == nil || s.bgRegistered {
		return
	}
	if err := s.registrar.Register(ctx, s.opts.Interval); err != nil {
		if errors.Is(err, tracking.ErrBackgroundUnsupported) {
			// Normal on sandboxed runtimes: keep foreground-only tracking.
			slog.Info("Background regime unavailable, staying foreground-only")
			return
		}
		slog.Warn("Background task registration failed", "error", err)
		return
	}
	s.bgRegistered = true
}

func (s *Service) unregisterLocked(ctx context.Context) {
	if s.registrar == nil || !s.bgRegistered {
		return
	}
	if err := s.registrar.Unregister(ctx); err != nil {
		slog.Warn("Background task unregister failed", "error", err)
	}
	s.bgRegistered = false
}
