package location

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/location"
)

type fakeSource struct {
	servicesEnabled bool
	servicesErr     error
	perms           location.Permissions
	permsErr        error

	sampleFn   func(ctx context.Context, acc location.Accuracy) (location.Sample, error)
	sampledAt  []location.Accuracy
	watchErr   error
	watchCalls int
	onUpdate   func(location.Sample)
}

func (f *fakeSource) ServicesEnabled(ctx context.Context) (bool, error) {
	return f.servicesEnabled, f.servicesErr
}

func (f *fakeSource) RequestPermissions(ctx context.Context) (location.Permissions, error) {
	return f.perms, f.permsErr
}

func (f *fakeSource) Sample(ctx context.Context, acc location.Accuracy) (location.Sample, error) {
	f.sampledAt = append(f.sampledAt, acc)
	if f.sampleFn != nil {
		return f.sampleFn(ctx, acc)
	}
	return location.Sample{}, errors.New("no fix")
}

func (f *fakeSource) Watch(ctx context.Context, opts location.WatchOptions, onUpdate func(location.Sample)) (func(), error) {
	f.watchCalls++
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	f.onUpdate = onUpdate
	return func() {}, nil
}

func fastTiers() []Tier {
	return []Tier{
		{Accuracy: location.AccuracyHigh, Timeout: 20 * time.Millisecond},
		{Accuracy: location.AccuracyBalanced, Timeout: 20 * time.Millisecond},
		{Accuracy: location.AccuracyLow, Timeout: 20 * time.Millisecond},
	}
}

func TestEnsureReady_ServicesDisabled(t *testing.T) {
	src := &fakeSource{servicesEnabled: false}
	p := NewProvider(src, fastTiers(), DefaultWatchOptions())

	err := p.EnsureReady(context.Background())
	assert.ErrorIs(t, err, location.ErrServicesDisabled)
}

func TestEnsureReady_PermissionDenied(t *testing.T) {
	src := &fakeSource{
		servicesEnabled: true,
		perms:           location.Permissions{Foreground: false},
	}
	p := NewProvider(src, fastTiers(), DefaultWatchOptions())

	err := p.EnsureReady(context.Background())
	assert.ErrorIs(t, err, location.ErrPermissionDenied)
}

func TestCurrent_FirstTierSuccess(t *testing.T) {
	want := location.Sample{Latitude: 12.9505, Longitude: 80.2060, Timestamp: time.Now()}
	src := &fakeSource{
		sampleFn: func(ctx context.Context, acc location.Accuracy) (location.Sample, error) {
			return want, nil
		},
	}
	p := NewProvider(src, fastTiers(), DefaultWatchOptions())

	got, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []location.Accuracy{location.AccuracyHigh}, src.sampledAt)
}

func TestCurrent_FallsThroughTiersInOrder(t *testing.T) {
	want := location.Sample{Latitude: 1, Longitude: 2, Timestamp: time.Now()}
	src := &fakeSource{
		sampleFn: func(ctx context.Context, acc location.Accuracy) (location.Sample, error) {
			if acc == location.AccuracyLow {
				return want, nil
			}
			return location.Sample{}, errors.New("no fix")
		},
	}
	p := NewProvider(src, fastTiers(), DefaultWatchOptions())

	got, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []location.Accuracy{
		location.AccuracyHigh,
		location.AccuracyBalanced,
		location.AccuracyLow,
	}, src.sampledAt)
}

func TestCurrent_AllTiersFail_NoCache(t *testing.T) {
	src := &fakeSource{}
	p := NewProvider(src, fastTiers(), DefaultWatchOptions())

	done := make(chan struct{})
	var err error
	go func() {
		_, err = p.Current(context.Background())
		close(done)
	}()

	// Terminates without hanging even with every tier failing.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Current did not terminate")
	}
	assert.ErrorIs(t, err, location.ErrNoLocation)
	assert.Len(t, src.sampledAt, 3)
}

func TestCurrent_AllTiersFail_ReturnsLastKnown(t *testing.T) {
	cached := location.Sample{Latitude: 3, Longitude: 4, Timestamp: time.Now().Add(-time.Hour)}
	calls := 0
	src := &fakeSource{
		sampleFn: func(ctx context.Context, acc location.Accuracy) (location.Sample, error) {
			calls++
			if calls == 1 {
				return cached, nil
			}
			return location.Sample{}, errors.New("no fix")
		},
	}
	p := NewProvider(src, fastTiers(), DefaultWatchOptions())

	first, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, first)

	// Every tier now fails; the cached sample is reused with its
	// original timestamp.
	got, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestWatch_UpdatesLastKnown(t *testing.T) {
	src := &fakeSource{}
	p := NewProvider(src, fastTiers(), DefaultWatchOptions())

	var seen []location.Sample
	stop, err := p.Watch(context.Background(), func(s location.Sample) {
		seen = append(seen, s)
	})
	require.NoError(t, err)
	defer stop()

	update := location.Sample{Latitude: 7, Longitude: 8, Timestamp: time.Now()}
	src.onUpdate(update)

	assert.Equal(t, []location.Sample{update}, seen)
	got, ok := p.LastKnown()
	require.True(t, ok)
	assert.Equal(t, update, got)
}
