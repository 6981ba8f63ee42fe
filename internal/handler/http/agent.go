package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/location"
	"github.com/cmlabs-hris/attendance-agent-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-agent-go/internal/service/tracker"
)

// AgentHandler exposes the local control/diagnostics surface: what the
// mobile screen used to render (the single allowed action) plus tracker
// health.
type AgentHandler struct {
	punchSvc   attendance.PunchService
	tracker    *tracker.Service
	provider   location.Provider
	employeeID string
}

func NewAgentHandler(punchSvc attendance.PunchService, trackerSvc *tracker.Service, provider location.Provider, employeeID string) *AgentHandler {
	return &AgentHandler{
		punchSvc:   punchSvc,
		tracker:    trackerSvc,
		provider:   provider,
		employeeID: employeeID,
	}
}

type recordView struct {
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time"`
	LunchInTime  *string `json:"lunch_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Status       string  `json:"status"`
}

type trackerView struct {
	Running          bool   `json:"running"`
	BackgroundActive bool   `json:"background_active"`
	LastTick         string `json:"last_tick,omitempty"`
	LastError        string `json:"last_error,omitempty"`
}

type statusView struct {
	EmployeeID      string       `json:"employee_id"`
	NextAction      string       `json:"next_action"`
	Record          *recordView  `json:"record"`
	Tracker         *trackerView `json:"tracker,omitempty"`
	LastKnownAgeSec *int64       `json:"last_known_age_seconds,omitempty"`
}

// Status reports the resolved next action and tracker health.
func (h *AgentHandler) Status(w http.ResponseWriter, r *http.Request) {
	rec, err := h.punchSvc.LoadTodayRecord(r.Context(), h.employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view := statusView{EmployeeID: h.employeeID}
	if rec == nil {
		view.NextAction = "none"
	} else {
		view.NextAction = string(attendance.NextAction(rec))
		view.Record = &recordView{
			Date:         rec.Date.Format(attendance.WireDateFormat),
			CheckInTime:  rec.CheckInTime,
			LunchInTime:  rec.LunchInTime,
			CheckOutTime: rec.CheckOutTime,
			Status:       rec.OverallStatus,
		}
	}

	if h.tracker != nil {
		st := h.tracker.Status()
		tv := trackerView{
			Running:          st.Running,
			BackgroundActive: st.BackgroundActive,
			LastError:        st.LastError,
		}
		if !st.LastTick.IsZero() {
			tv.LastTick = st.LastTick.Format(time.RFC3339)
		}
		view.Tracker = &tv
	}

	if sample, ok := h.provider.LastKnown(); ok {
		age := int64(time.Since(sample.Timestamp).Seconds())
		view.LastKnownAgeSec = &age
	}

	response.Success(w, view)
}

type punchRequest struct {
	Action string `json:"action"`
}

// Punch triggers a punch, replacing the screen's action button. An
// empty body (or empty action) submits whatever the record requires
// next; an explicit action is validated against the required order.
func (h *AgentHandler) Punch(w http.ResponseWriter, r *http.Request) {
	var req punchRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	}

	var result attendance.PunchResult
	var err error
	if req.Action == "" {
		result, err = h.punchSvc.Punch(r.Context(), h.employeeID)
	} else {
		result, err = h.punchSvc.Submit(r.Context(), h.employeeID, attendance.PunchAction(req.Action))
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view := statusView{
		EmployeeID: h.employeeID,
		NextAction: string(result.NextAction),
	}
	if result.Record != nil {
		view.Record = &recordView{
			Date:         result.Record.Date.Format(attendance.WireDateFormat),
			CheckInTime:  result.Record.CheckInTime,
			LunchInTime:  result.Record.LunchInTime,
			CheckOutTime: result.Record.CheckOutTime,
			Status:       result.Record.OverallStatus,
		}
	}
	response.Success(w, view)
}

// Healthz is the liveness probe.
func (h *AgentHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "ok"})
}
