package tracking

import (
	"context"
	"errors"
	"time"
)

// ErrBackgroundUnsupported means the runtime cannot schedule OS-level
// background callbacks (a development sandbox, or a platform build
// without the capability). Callers treat it as a normal outcome and
// stay on foreground-only tracking.
var ErrBackgroundUnsupported = errors.New("background task registration not supported")

// Registrar manages the OS-scheduled background callback. The OS may
// throttle or skip invocations; registration is best-effort.
type Registrar interface {
	// Register schedules the background callback at no less than the
	// given interval. Returns ErrBackgroundUnsupported when the runtime
	// cannot provide one.
	Register(ctx context.Context, minInterval time.Duration) error

	// Unregister removes the callback. Safe to call when not registered.
	Unregister(ctx context.Context) error
}

// AppState is the host application's foreground/background state.
type AppState string

const (
	StateForeground AppState = "foreground"
	StateBackground AppState = "background"
)
