package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrOutsideRadius    = errors.New("you are outside the allowed radius")
	ErrNoScheduleToday  = errors.New("no schedule found for today, please contact your manager")
	ErrAlreadyCompleted = errors.New("attendance for today is already completed")
	ErrOutOfOrder       = errors.New("punch does not match the next required action")
	ErrPunchInFlight    = errors.New("a punch submission is already in progress")
)
