package attendance

import "context"

// Gateway defines the remote HRIS backend operations the agent
// consumes. The backend is the source of truth; the agent holds no
// authoritative attendance state of its own.
type Gateway interface {
	// ListRecords fetches every attendance row for the employee. The
	// backend returns the full set; callers filter to the day they need.
	ListRecords(ctx context.Context, employeeID string) ([]Record, error)

	// SubmitPunch posts a single punch to the endpoint matching the
	// action. action must be one of ActionCheckIn, ActionLunchIn,
	// ActionCheckOut.
	SubmitPunch(ctx context.Context, action PunchAction, req PunchRequest) error
}
