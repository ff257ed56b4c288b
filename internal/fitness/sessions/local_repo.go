package sessions

import (
	"context"
	"sort"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/storage"
	"github.com/samuelassuncao1/fitprogress/internal/localstore"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"

	"github.com/google/uuid"
)

var _ sessionsRepo = (*LocalRepo)(nil)

// LocalRepo keeps sessions as a flat JSON list and logs as a mapping from
// exercise id to its log list, mirroring the web client's local storage
// layout. Workout name and slot are stored denormalized on the session.
type LocalRepo struct {
	store *localstore.Store
}

func NewLocalRepo(store *localstore.Store) *LocalRepo {
	return &LocalRepo{store: store}
}

func (r *LocalRepo) readSessions() ([]Session, error) {
	var all []Session
	if _, err := r.store.Read(localstore.KeySessions, &all); err != nil {
		return nil, storage.NewError("localstore.sessions.read", err)
	}
	return all, nil
}

func (r *LocalRepo) writeSessions(all []Session) error {
	if err := r.store.Write(localstore.KeySessions, all); err != nil {
		return storage.NewError("localstore.sessions.write", err)
	}
	return nil
}

func (r *LocalRepo) readLogs() (map[string][]ExerciseLog, error) {
	logs := make(map[string][]ExerciseLog)
	if _, err := r.store.Read(localstore.KeyLogs, &logs); err != nil {
		return nil, storage.NewError("localstore.logs.read", err)
	}
	return logs, nil
}

func (r *LocalRepo) writeLogs(logs map[string][]ExerciseLog) error {
	if err := r.store.Write(localstore.KeyLogs, logs); err != nil {
		return storage.NewError("localstore.logs.write", err)
	}
	return nil
}

func (r *LocalRepo) AddSession(ctx context.Context, session Session) (_ *Session, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readSessions()
	if err != nil {
		return nil, err
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	all = append(all, session)

	if err := r.writeSessions(all); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *LocalRepo) MarkCompleted(ctx context.Context, id string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.sessions.markcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readSessions()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == id {
			all[i].Completed = true
			return r.writeSessions(all)
		}
	}
	return ErrSessionNotFound
}

func (r *LocalRepo) GetSession(ctx context.Context, id string) (_ *Session, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readSessions()
	if err != nil {
		return nil, err
	}

	for _, s := range all {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, ErrSessionNotFound
}

func (r *LocalRepo) ListCompletedForOwner(ctx context.Context, ownerID string) (_ []Session, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.sessions.listcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readSessions()
	if err != nil {
		return nil, err
	}

	var found []Session
	for _, s := range all {
		if s.OwnerID == ownerID && s.Completed {
			found = append(found, s)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].Date.After(found[j].Date)
	})

	return found, nil
}

func (r *LocalRepo) AddLog(ctx context.Context, exerciseLog ExerciseLog) (_ *ExerciseLog, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.logs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := r.readLogs()
	if err != nil {
		return nil, err
	}

	if exerciseLog.ID == "" {
		exerciseLog.ID = uuid.NewString()
	}
	logs[exerciseLog.ExerciseID] = append(logs[exerciseLog.ExerciseID], exerciseLog)

	if err := r.writeLogs(logs); err != nil {
		return nil, err
	}
	return &exerciseLog, nil
}

func (r *LocalRepo) LogsForSession(ctx context.Context, sessionID string) (_ []ExerciseLog, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.logs.forsession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := r.readLogs()
	if err != nil {
		return nil, err
	}

	var found []ExerciseLog
	for _, exerciseLogs := range logs {
		for _, l := range exerciseLogs {
			if l.SessionID == sessionID {
				found = append(found, l)
			}
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].ExerciseID != found[j].ExerciseID {
			return found[i].ExerciseID < found[j].ExerciseID
		}
		return found[i].SetNumber < found[j].SetNumber
	})

	return found, nil
}

func (r *LocalRepo) LogsForExercise(ctx context.Context, exerciseID string) (_ []ExerciseLog, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.logs.forexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := r.readLogs()
	if err != nil {
		return nil, err
	}

	found := append([]ExerciseLog(nil), logs[exerciseID]...)
	sort.Slice(found, func(i, j int) bool {
		if found[i].SessionID != found[j].SessionID {
			return found[i].SessionID < found[j].SessionID
		}
		return found[i].SetNumber < found[j].SetNumber
	})

	return found, nil
}

// LogsForOwner returns the logs of the owner's completed sessions only.
func (r *LocalRepo) LogsForOwner(ctx context.Context, ownerID string) (_ []ExerciseLog, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.logs.forowner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	completed, err := r.ListCompletedForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	completedIDs := make(map[string]struct{}, len(completed))
	for _, s := range completed {
		completedIDs[s.ID] = struct{}{}
	}

	logs, err := r.readLogs()
	if err != nil {
		return nil, err
	}

	var found []ExerciseLog
	for _, exerciseLogs := range logs {
		for _, l := range exerciseLogs {
			if _, ok := completedIDs[l.SessionID]; ok {
				found = append(found, l)
			}
		}
	}

	return found, nil
}
