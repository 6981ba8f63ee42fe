package attendance

// PunchAction is the single next step the employee may take for the day.
// It is always derived from the Record, never stored.
type PunchAction string

const (
	ActionCheckIn   PunchAction = "check_in"
	ActionLunchIn   PunchAction = "lunch_in"
	ActionCheckOut  PunchAction = "check_out"
	ActionCompleted PunchAction = "completed"
)

// NextAction derives the next required punch from a record. The punch
// flow is a strict linear state machine:
//
//	Scheduled -> CheckedIn -> Lunched -> Completed
//
// Earlier steps are always set before later ones, so missing check-in
// wins over missing lunch-in, which wins over missing check-out. Once
// Completed, no further action is derivable for that date.
//
// A nil record means "no schedule today" and is the caller's
// responsibility to special-case before resolving.
func NextAction(rec *Record) PunchAction {
	switch {
	case rec.CheckInTime == nil:
		return ActionCheckIn
	case rec.LunchInTime == nil:
		return ActionLunchIn
	case rec.CheckOutTime == nil:
		return ActionCheckOut
	default:
		return ActionCompleted
	}
}
