package attendance

import "github.com/cmlabs-hris/attendance-agent-go/internal/pkg/validator"

// PunchRequest is the body POSTed to the checkIn/lunchIn/checkOut
// endpoints. Exactly one of the *Time fields is set, matching the
// action being submitted.
type PunchRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	CheckInTime  *string `json:"check_in_time,omitempty"`
	LunchInTime  *string `json:"lunch_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
}

func (r PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employee ID is required"})
	}
	if _, ok := validator.IsValidWireDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be DD-MM-YYYY"})
	}
	if !validator.IsValidCoordinate(r.Latitude, r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "coordinates are invalid"})
	}
	for field, value := range map[string]*string{
		"check_in_time":  r.CheckInTime,
		"lunch_in_time":  r.LunchInTime,
		"check_out_time": r.CheckOutTime,
	} {
		if value != nil && !validator.IsValidWireTime(*value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "time must be HH:MM:SS"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PunchResult is what the controller hands back after a successful
// punch: the action that was performed, the refreshed record fetched
// from the backend, and the action now required next.
type PunchResult struct {
	Performed  PunchAction
	Record     *Record
	NextAction PunchAction
}
