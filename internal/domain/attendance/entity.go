package attendance

import "time"

// Wire formats used by the HRIS backend.
const (
	// WireDateFormat is DD-MM-YYYY.
	WireDateFormat = "02-01-2006"
	// WireTimeFormat is HH:MM:SS, 24-hour.
	WireTimeFormat = "15:04:05"
)

// Record is a single employee-day attendance row. The backend owns it:
// it is created server-side when a shift is scheduled, mutated by each
// punch call, and re-fetched after every mutation. The agent never
// merges local state into it.
type Record struct {
	EmployeeID string
	Date       time.Time

	CheckInTime  *string
	CheckInFake  bool
	LunchInTime  *string
	LunchInFake  bool
	CheckOutTime *string
	CheckOutFake bool

	// Assigned site coordinates (not the device's) plus the geofence
	// radius accepted around them. RadiusMeters may be zero when the
	// backend omits it; callers fall back to the configured default.
	Latitude     float64
	Longitude    float64
	RadiusMeters float64

	OverallStatus string
}

// Completed reports whether all three punches are set. A completed
// record is immutable for the rest of the day.
func (r Record) Completed() bool {
	return r.CheckInTime != nil && r.LunchInTime != nil && r.CheckOutTime != nil
}

// OnDate reports whether the record belongs to the same calendar day as
// day. Dates are compared by year/month/day, not by the raw wire string.
func (r Record) OnDate(day time.Time) bool {
	y1, m1, d1 := r.Date.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
