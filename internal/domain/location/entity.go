package location

import "time"

// Accuracy selects the sampling quality requested from the device.
type Accuracy string

const (
	AccuracyHigh     Accuracy = "high"
	AccuracyBalanced Accuracy = "balanced"
	AccuracyLow      Accuracy = "low"
)

// Sample is a single device position fix. Samples are ephemeral: the
// provider keeps at most the latest one in memory as a fallback and
// nothing is ever written to disk.
type Sample struct {
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	Timestamp time.Time
}

// Permissions is the result of a permission request.
type Permissions struct {
	Foreground bool
	Background bool
}

// Granted reports whether the mandatory foreground permission was given.
func (p Permissions) Granted() bool {
	return p.Foreground
}

// WatchOptions configures a continuous position subscription.
type WatchOptions struct {
	Interval       time.Duration
	DistanceMeters float64
}
