package punch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/session"
	"github.com/cmlabs-hris/attendance-agent-go/internal/gateway/device"
	"github.com/cmlabs-hris/attendance-agent-go/internal/gateway/hris"
	locationService "github.com/cmlabs-hris/attendance-agent-go/internal/service/location"
)

// fakeBackend is an in-memory HRIS backend serving the attendance
// endpoints the agent consumes.
type fakeBackend struct {
	mu     sync.Mutex
	record map[string]any
}

func newFakeBackend(date string) *fakeBackend {
	return &fakeBackend{record: map[string]any{
		"employeeId":     employeeID,
		"attendanceDate": date,
		"checkInTime":    "09:00:00",
		"latitude":       siteLat,
		"longitude":      siteLon,
		"radiusMeters":   100.0,
		"overallStatus":  "present",
	}}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/attendance/getAttendanceDetails", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{b.record}})
	})
	mux.HandleFunc("/attendance/lunchIn", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		b.record["lunchInTime"] = req["lunch_in_time"]
		b.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func TestPunch_LunchInAgainstHTTPBackend(t *testing.T) {
	today := time.Now().UTC().Format(attendance.WireDateFormat)
	backend := newFakeBackend(today)
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	sess := session.New("integration-token", session.Employee{ID: employeeID})
	client := hris.NewClient(srv.URL, srv.Client(), sess)

	source := device.NewStaticSource(siteLat, siteLon)
	provider := locationService.NewProvider(source, nil, locationService.DefaultWatchOptions())

	svc := NewService(client, provider, time.UTC, 0)
	ctx := context.Background()

	// The record has check-in only, so lunch-in is next.
	rec, err := svc.LoadTodayRecord(ctx, employeeID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.ActionLunchIn, attendance.NextAction(rec))

	result, err := svc.Punch(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, attendance.ActionLunchIn, result.Performed)

	// The reload reflects the backend's mutation, not a local merge.
	require.NotNil(t, result.Record)
	require.NotNil(t, result.Record.LunchInTime)
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, *result.Record.LunchInTime)
	assert.Equal(t, attendance.ActionCheckOut, result.NextAction)
}
