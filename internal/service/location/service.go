package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/location"
)

// Tier pairs a requested accuracy with the time budget allowed for it.
type Tier struct {
	Accuracy location.Accuracy
	Timeout  time.Duration
}

// DefaultTiers are tried in order, loosening accuracy and widening the
// timeout at each step.
func DefaultTiers() []Tier {
	return []Tier{
		{Accuracy: location.AccuracyHigh, Timeout: 10 * time.Second},
		{Accuracy: location.AccuracyBalanced, Timeout: 15 * time.Second},
		{Accuracy: location.AccuracyLow, Timeout: 20 * time.Second},
	}
}

// DefaultWatchOptions mirror the subscription thresholds the mobile
// clients use.
func DefaultWatchOptions() location.WatchOptions {
	return location.WatchOptions{
		Interval:       10 * time.Second,
		DistanceMeters: 10,
	}
}

type ProviderImpl struct {
	source    location.Source
	tiers     []Tier
	watchOpts location.WatchOptions

	mu        sync.Mutex
	lastKnown *location.Sample
}

var _ location.Provider = (*ProviderImpl)(nil)

func NewProvider(source location.Source, tiers []Tier, watchOpts location.WatchOptions) *ProviderImpl {
	if len(tiers) == 0 {
		tiers = DefaultTiers()
	}
	return &ProviderImpl{
		source:    source,
		tiers:     tiers,
		watchOpts: watchOpts,
	}
}

// EnsureReady implements location.Provider. Permission and services
// failures short-circuit: retrying accuracy tiers cannot succeed without
// them.
func (p *ProviderImpl) EnsureReady(ctx context.Context) error {
	enabled, err := p.source.ServicesEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to query location services: %w", err)
	}
	if !enabled {
		return location.ErrServicesDisabled
	}

	perms, err := p.source.RequestPermissions(ctx)
	if err != nil {
		return fmt.Errorf("failed to request location permissions: %w", err)
	}
	if !perms.Granted() {
		return location.ErrPermissionDenied
	}
	return nil
}

// Current implements location.Provider. Tiers are an explicit ordered
// list iterated with early exit on the first successful fix.
func (p *ProviderImpl) Current(ctx context.Context) (location.Sample, error) {
	for _, tier := range p.tiers {
		sample, err := p.sampleTier(ctx, tier)
		if err == nil {
			p.store(sample)
			return sample, nil
		}

		slog.Warn("Location tier failed, falling through",
			"accuracy", tier.Accuracy,
			"timeout", tier.Timeout,
			"error", err)

		if ctx.Err() != nil {
			break
		}
	}

	if cached, ok := p.LastKnown(); ok {
		slog.Info("All location tiers failed, using last known sample",
			"sampled_at", cached.Timestamp)
		return cached, nil
	}
	return location.Sample{}, location.ErrNoLocation
}

func (p *ProviderImpl) sampleTier(ctx context.Context, tier Tier) (location.Sample, error) {
	tierCtx, cancel := context.WithTimeout(ctx, tier.Timeout)
	defer cancel()

	sample, err := p.source.Sample(tierCtx, tier.Accuracy)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return location.Sample{}, fmt.Errorf("tier %s timed out after %s", tier.Accuracy, tier.Timeout)
		}
		return location.Sample{}, err
	}
	return sample, nil
}

// Watch implements location.Provider.
func (p *ProviderImpl) Watch(ctx context.Context, onUpdate func(location.Sample)) (func(), error) {
	stop, err := p.source.Watch(ctx, p.watchOpts, func(s location.Sample) {
		p.store(s)
		if onUpdate != nil {
			onUpdate(s)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start position watch: %w", err)
	}
	return stop, nil
}

// LastKnown implements location.Provider.
func (p *ProviderImpl) LastKnown() (location.Sample, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastKnown == nil {
		return location.Sample{}, false
	}
	return *p.lastKnown, true
}

// store overwrites the shared last-known sample. Last writer wins,
// whether it came from watch mode or on-demand sampling. The sample
// keeps its original timestamp so consumers can tell how stale it is.
func (p *ProviderImpl) store(s location.Sample) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastKnown = &s
}
