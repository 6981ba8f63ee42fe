package location

import "context"

// Source abstracts the device location subsystem. Implementations bridge
// to the platform APIs; tests substitute fakes.
type Source interface {
	// ServicesEnabled reports the OS-wide location services toggle.
	ServicesEnabled(ctx context.Context) (bool, error)

	// RequestPermissions prompts for foreground (and, where the platform
	// requires it, background) location permission.
	RequestPermissions(ctx context.Context) (Permissions, error)

	// Sample obtains a single position fix at the requested accuracy.
	// It must respect ctx cancellation and deadlines.
	Sample(ctx context.Context, accuracy Accuracy) (Sample, error)

	// Watch subscribes to continuous position updates. The returned stop
	// function cancels the subscription and is safe to call more than once.
	Watch(ctx context.Context, opts WatchOptions, onUpdate func(Sample)) (stop func(), err error)
}
