package resttimer

import (
	"encoding/json"
	"net/http"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/identity"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"
	"github.com/samuelassuncao1/fitprogress/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

type timerStatus struct {
	TotalSeconds     int  `json:"totalSeconds"`
	RemainingSeconds int  `json:"remainingSeconds"`
	Running          bool `json:"running"`
}

func (h *Handler) ownerTimer(w http.ResponseWriter, r *http.Request) (*Timer, bool) {
	ownerID, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return h.manager.ForOwner(ownerID), true
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.status")
	defer span.End()

	timer, ok := h.ownerTimer(w, r)
	if !ok {
		return
	}
	writeStatus(w, timer)
}

type startTimerRequest struct {
	Seconds int `json:"seconds"`
}

// HandleStart resumes the countdown. An optional seconds value rearms the
// timer to a new duration first.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.start")
	defer span.End()

	timer, ok := h.ownerTimer(w, r)
	if !ok {
		return
	}

	if r.ContentLength > 0 {
		var req startTimerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warnf("start timer, decode request: %s", err)
			http.Error(w, "malformed request", http.StatusBadRequest)
			return
		}
		if req.Seconds > 0 {
			timer.Rearm(req.Seconds)
		}
	}

	timer.Start()
	writeStatus(w, timer)
}

func (h *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.pause")
	defer span.End()

	timer, ok := h.ownerTimer(w, r)
	if !ok {
		return
	}
	timer.Pause()
	writeStatus(w, timer)
}

func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.reset")
	defer span.End()

	timer, ok := h.ownerTimer(w, r)
	if !ok {
		return
	}
	timer.Reset()
	writeStatus(w, timer)
}

func writeStatus(w http.ResponseWriter, timer *Timer) {
	statusJson, err := json.Marshal(timerStatus{
		TotalSeconds:     timer.Total(),
		RemainingSeconds: timer.Remaining(),
		Running:          timer.Running(),
	})
	if err != nil {
		log.Errorf("timer status, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, http.StatusOK)
}
