package location

import "context"

// Provider defines best-effort position acquisition on top of a Source.
type Provider interface {
	// EnsureReady verifies location services are on and permissions are
	// granted. Returns ErrServicesDisabled or ErrPermissionDenied.
	EnsureReady(ctx context.Context) error

	// Current returns the freshest obtainable position, degrading through
	// accuracy tiers and finally the cached last-known sample. Returns
	// ErrNoLocation only when no sample has ever been obtained.
	Current(ctx context.Context) (Sample, error)

	// Watch subscribes to continuous updates, refreshing the last-known
	// cache on every callback.
	Watch(ctx context.Context, onUpdate func(Sample)) (stop func(), err error)

	// LastKnown returns the cached sample, if any.
	LastKnown() (Sample, bool)
}
