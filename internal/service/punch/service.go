package punch

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/location"
	"github.com/cmlabs-hris/attendance-agent-go/internal/pkg/geo"
)

// DefaultRadiusMeters is the geofence radius used when the backend
// record carries none.
const DefaultRadiusMeters = 100

type ServiceImpl struct {
	gateway       attendance.Gateway
	provider      location.Provider
	loc           *time.Location
	defaultRadius float64
	now           func() time.Time

	inFlight atomic.Bool
}

var _ attendance.PunchService = (*ServiceImpl)(nil)

func NewService(gateway attendance.Gateway, provider location.Provider, loc *time.Location, defaultRadius float64) *ServiceImpl {
	if loc == nil {
		loc = time.Local
	}
	if defaultRadius <= 0 {
		defaultRadius = DefaultRadiusMeters
	}
	return &ServiceImpl{
		gateway:       gateway,
		provider:      provider,
		loc:           loc,
		defaultRadius: defaultRadius,
		now:           time.Now,
	}
}

// LoadTodayRecord implements attendance.PunchService. An empty result
// set means the employee has no schedule at all; rows that simply don't
// include today yield (nil, nil).
func (s *ServiceImpl) LoadTodayRecord(ctx context.Context, employeeID string) (*attendance.Record, error) {
	records, err := s.gateway.ListRecords(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}
	if len(records) == 0 {
		return nil, attendance.ErrNoScheduleToday
	}

	today := s.now().In(s.loc)
	for i := range records {
		if records[i].OnDate(today) {
			return &records[i], nil
		}
	}
	return nil, nil
}

// Punch implements attendance.PunchService.
func (s *ServiceImpl) Punch(ctx context.Context, employeeID string) (attendance.PunchResult, error) {
	return s.punch(ctx, employeeID, "")
}

// Submit implements attendance.PunchService.
func (s *ServiceImpl) Submit(ctx context.Context, employeeID string, action attendance.PunchAction) (attendance.PunchResult, error) {
	return s.punch(ctx, employeeID, action)
}

// punch drives one transaction: load, resolve, geofence-gate, submit,
// re-fetch. wanted == "" means "whatever the record requires next".
func (s *ServiceImpl) punch(ctx context.Context, employeeID string, wanted attendance.PunchAction) (attendance.PunchResult, error) {
	// A double-tap must not fire two submissions for the same action.
	if !s.inFlight.CompareAndSwap(false, true) {
		return attendance.PunchResult{}, attendance.ErrPunchInFlight
	}
	defer s.inFlight.Store(false)

	rec, err := s.LoadTodayRecord(ctx, employeeID)
	if err != nil {
		return attendance.PunchResult{}, err
	}
	if rec == nil {
		return attendance.PunchResult{}, attendance.ErrNoScheduleToday
	}

	action := attendance.NextAction(rec)
	if action == attendance.ActionCompleted {
		return attendance.PunchResult{}, attendance.ErrAlreadyCompleted
	}
	if wanted != "" && wanted != action {
		return attendance.PunchResult{}, attendance.ErrOutOfOrder
	}

	if err := s.provider.EnsureReady(ctx); err != nil {
		return attendance.PunchResult{}, err
	}
	sample, err := s.provider.Current(ctx)
	if err != nil {
		return attendance.PunchResult{}, err
	}

	radius := rec.RadiusMeters
	if radius <= 0 {
		radius = s.defaultRadius
	}
	if !geo.IsWithinRadius(sample.Latitude, sample.Longitude, rec.Latitude, rec.Longitude, radius) {
		slog.Info("Punch rejected outside geofence",
			"employee_id", employeeID,
			"action", action,
			"distance_m", geo.Distance(sample.Latitude, sample.Longitude, rec.Latitude, rec.Longitude),
			"radius_m", radius)
		return attendance.PunchResult{}, attendance.ErrOutsideRadius
	}

	now := s.now().In(s.loc)
	req := s.buildRequest(employeeID, action, now, sample)
	if err := req.Validate(); err != nil {
		return attendance.PunchResult{}, err
	}

	if err := s.gateway.SubmitPunch(ctx, action, req); err != nil {
		return attendance.PunchResult{}, err
	}

	// The record is re-fetched rather than merged locally: the backend
	// owns the authoritative ordering.
	refreshed, err := s.LoadTodayRecord(ctx, employeeID)
	if err != nil {
		return attendance.PunchResult{}, fmt.Errorf("punch succeeded but reload failed: %w", err)
	}

	result := attendance.PunchResult{
		Performed:  action,
		Record:     refreshed,
		NextAction: attendance.ActionCompleted,
	}
	if refreshed != nil {
		result.NextAction = attendance.NextAction(refreshed)
	}

	slog.Info("Punch submitted",
		"employee_id", employeeID,
		"action", action,
		"next_action", result.NextAction)
	return result, nil
}

func (s *ServiceImpl) buildRequest(employeeID string, action attendance.PunchAction, now time.Time, sample location.Sample) attendance.PunchRequest {
	punchTime := now.Format(attendance.WireTimeFormat)
	req := attendance.PunchRequest{
		EmployeeID: employeeID,
		Date:       now.Format(attendance.WireDateFormat),
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
	}
	switch action {
	case attendance.ActionCheckIn:
		req.CheckInTime = &punchTime
	case attendance.ActionLunchIn:
		req.LunchInTime = &punchTime
	case attendance.ActionCheckOut:
		req.CheckOutTime = &punchTime
	}
	return req
}
