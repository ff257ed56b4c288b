package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/identity"
	"github.com/samuelassuncao1/fitprogress/internal/fitness/workouts"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/metrics"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"
	"github.com/samuelassuncao1/fitprogress/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const sessionDateLayout = "2006-01-02"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions

// progressInvalidator drops cached progress reports that a newly recorded
// session makes stale.
type progressInvalidator interface {
	Invalidate(ctx context.Context, ownerID string)
}

type Handler struct {
	recorder *Recorder
	repo     sessionsRepo
	metrics  *metrics.Manager
	progress progressInvalidator
}

// NewHandler wires the recorder with an optional progress cache
// invalidator; progress may be nil when no redis instance is configured.
func NewHandler(recorder *Recorder, repo sessionsRepo, m *metrics.Manager, progress progressInvalidator) *Handler {
	return &Handler{
		recorder: recorder,
		repo:     repo,
		metrics:  m,
		progress: progress,
	}
}

type recordSessionRequest struct {
	WorkoutID string                `json:"workoutId"`
	Date      string                `json:"date"`
	Sets      map[string][]SetEntry `json:"sets"`
}

type sessionResponse struct {
	Session
	Logs []ExerciseLog `json:"logs"`
}

// HandleRecord finalizes a workout run: one session plus one log per set.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.record")
	defer span.End()

	ownerID, ok := identity.FromContext(ctx)
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var req recordSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnf("record session, decode request: %s", err)
		http.Error(w, "malformed request", http.StatusBadRequest)
		return
	}
	if req.WorkoutID == "" {
		http.Error(w, "workout id missing", http.StatusBadRequest)
		return
	}

	date, err := time.ParseInLocation(sessionDateLayout, req.Date, time.Local)
	if err != nil {
		http.Error(w, "malformed date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	session, err := h.recorder.Record(ctx, RecordParams{
		OwnerID:   ownerID,
		WorkoutID: req.WorkoutID,
		Date:      date,
		Sets:      req.Sets,
	})
	if errors.Is(err, workouts.ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("record session for owner [%s]: %s", ownerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterSessionsRecorded.Inc()
	if h.progress != nil {
		h.progress.Invalidate(ctx, ownerID)
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("record session, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

// HandleGet returns one session with its logs, completed or not. Abandoned
// sessions stay reachable by id.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	session, err := h.repo.GetSession(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get session [%s]: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logs, err := h.repo.LogsForSession(ctx, id)
	if err != nil {
		log.Errorf("get session [%s], logs: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []ExerciseLog{}
	}

	respJson, err := json.Marshal(sessionResponse{Session: *session, Logs: logs})
	if err != nil {
		log.Errorf("get session, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleExerciseLogs returns all logs recorded against an exercise id. The
// exercise itself may be long deleted, its history stays retrievable.
func (h *Handler) HandleExerciseLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.exerciselogs")
	defer span.End()

	exerciseID := mux.Vars(r)["id"]
	logs, err := h.repo.LogsForExercise(ctx, exerciseID)
	if err != nil {
		log.Errorf("logs for exercise [%s]: %s", exerciseID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []ExerciseLog{}
	}

	logsJson, err := json.Marshal(logs)
	if err != nil {
		log.Errorf("logs for exercise, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logsJson, http.StatusOK)
}
