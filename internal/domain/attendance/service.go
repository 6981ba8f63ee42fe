package attendance

import "context"

// PunchService drives one punch transaction end to end: load today's
// record, resolve the next action, gate on the geofence, submit, and
// re-fetch.
type PunchService interface {
	// LoadTodayRecord returns today's record for the employee.
	// ErrNoScheduleToday when the backend holds no rows at all for the
	// employee; (nil, nil) when rows exist but none matches today.
	LoadTodayRecord(ctx context.Context, employeeID string) (*Record, error)

	// Punch performs the next required action for today. The geofence is
	// verified client-side before any network call is made.
	Punch(ctx context.Context, employeeID string) (PunchResult, error)

	// Submit performs a specific action. ErrOutOfOrder when action is not
	// the next one the record requires; ordering is validated before the
	// request is sent, not just reflected in which button is enabled.
	Submit(ctx context.Context, employeeID string, action PunchAction) (PunchResult, error)
}
