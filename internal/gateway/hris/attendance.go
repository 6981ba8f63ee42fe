package hris

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/attendance"
)

var _ attendance.Gateway = (*Client)(nil)

// recordDTO mirrors one row of the getAttendanceDetails response.
type recordDTO struct {
	EmployeeID     string  `json:"employeeId"`
	AttendanceDate string  `json:"attendanceDate"`
	CheckInTime    *string `json:"checkInTime"`
	CheckInFake    bool    `json:"checkInFake"`
	LunchInTime    *string `json:"lunchInTime"`
	LunchInFake    bool    `json:"lunchInFake"`
	CheckOutTime   *string `json:"checkOutTime"`
	CheckOutFake   bool    `json:"checkOutFake"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	RadiusMeters   float64 `json:"radiusMeters"`
	OverallStatus  string  `json:"overallStatus"`
}

type listRecordsResponse struct {
	Data []recordDTO `json:"data"`
}

func (dto recordDTO) toRecord() (attendance.Record, error) {
	date, err := time.Parse(attendance.WireDateFormat, dto.AttendanceDate)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("invalid attendanceDate %q: %w", dto.AttendanceDate, err)
	}
	return attendance.Record{
		EmployeeID:    dto.EmployeeID,
		Date:          date,
		CheckInTime:   dto.CheckInTime,
		CheckInFake:   dto.CheckInFake,
		LunchInTime:   dto.LunchInTime,
		LunchInFake:   dto.LunchInFake,
		CheckOutTime:  dto.CheckOutTime,
		CheckOutFake:  dto.CheckOutFake,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		RadiusMeters:  dto.RadiusMeters,
		OverallStatus: dto.OverallStatus,
	}, nil
}

// ListRecords implements attendance.Gateway.
func (c *Client) ListRecords(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	endpoint := fmt.Sprintf("%s/attendance/getAttendanceDetails?employeeId=%s",
		c.baseURL, url.QueryEscape(employeeID))

	var resp listRecordsResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(resp.Data))
	for _, dto := range resp.Data {
		rec, err := dto.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// punchPaths maps each action to its endpoint.
var punchPaths = map[attendance.PunchAction]string{
	attendance.ActionCheckIn:  "/attendance/checkIn",
	attendance.ActionLunchIn:  "/attendance/lunchIn",
	attendance.ActionCheckOut: "/attendance/checkOut",
}

// SubmitPunch implements attendance.Gateway.
func (c *Client) SubmitPunch(ctx context.Context, action attendance.PunchAction, req attendance.PunchRequest) error {
	path, ok := punchPaths[action]
	if !ok {
		return fmt.Errorf("action %q has no punch endpoint", action)
	}
	return c.doJSON(ctx, http.MethodPost, c.baseURL+path, req, nil)
}
