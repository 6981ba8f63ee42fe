// Package device provides location.Source implementations for the
// hardware the agent runs on.
package device

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/location"
)

// StaticSource is a Source for fixed installs (wall-mounted punch
// terminals): services are always on, permissions always granted, and
// every sample returns the configured coordinates.
type StaticSource struct {
	lat, lon float64
	accuracy float64
}

var _ location.Source = (*StaticSource)(nil)

func NewStaticSource(lat, lon float64) *StaticSource {
	return &StaticSource{lat: lat, lon: lon, accuracy: 5}
}

func (s *StaticSource) ServicesEnabled(ctx context.Context) (bool, error) {
	return true, nil
}

func (s *StaticSource) RequestPermissions(ctx context.Context) (location.Permissions, error) {
	return location.Permissions{Foreground: true, Background: true}, nil
}

func (s *StaticSource) Sample(ctx context.Context, accuracy location.Accuracy) (location.Sample, error) {
	if err := ctx.Err(); err != nil {
		return location.Sample{}, err
	}
	acc := s.accuracy
	return location.Sample{
		Latitude:  s.lat,
		Longitude: s.lon,
		Accuracy:  &acc,
		Timestamp: time.Now(),
	}, nil
}

func (s *StaticSource) Watch(ctx context.Context, opts location.WatchOptions, onUpdate func(location.Sample)) (func(), error) {
	watchCtx, cancel := context.WithCancel(ctx)
	var once sync.Once

	go func() {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-ticker.C:
				sample, err := s.Sample(watchCtx, location.AccuracyHigh)
				if err != nil {
					return
				}
				onUpdate(sample)
			}
		}
	}()

	return func() { once.Do(cancel) }, nil
}
