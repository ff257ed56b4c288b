package sessions

import (
	"context"
	"errors"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/storage"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var _ sessionsRepo = (*Repo)(nil)

// Repo is the postgres backend for sessions and exercise logs. Workout name
// and slot come from a join, they are not stored on the session row.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const sessionSelect = `
	SELECT s.id, s.owner_id, s.workout_id, w.name, w.slot, s.session_date, s.completed
	FROM workout_session s
	JOIN workout w ON w.id = s.workout_id`

func (r *Repo) AddSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO workout_session (id, owner_id, workout_id, session_date, completed)
			VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.OwnerID, session.WorkoutID, session.Date, session.Completed,
	)
	if err != nil {
		return nil, storage.NewError("sessions.add", err)
	}

	return &session, nil
}

func (r *Repo) MarkCompleted(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.markcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	tag, err := r.db.Exec(ctx,
		`UPDATE workout_session SET completed = TRUE WHERE id = $1`,
		id,
	)
	if err != nil {
		return storage.NewError("sessions.markcompleted", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) GetSession(ctx context.Context, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s Session
	err = r.db.QueryRow(ctx, sessionSelect+` WHERE s.id = $1`, id).Scan(
		&s.ID, &s.OwnerID, &s.WorkoutID, &s.WorkoutName, &s.WorkoutSlot,
		&s.Date, &s.Completed,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, storage.NewError("sessions.get", err)
	}
	return &s, nil
}

func (r *Repo) ListCompletedForOwner(ctx context.Context, ownerID string) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	rows, err := r.db.Query(ctx,
		sessionSelect+` WHERE s.owner_id = $1 AND s.completed ORDER BY s.session_date DESC`,
		ownerID,
	)
	if err != nil {
		return nil, storage.NewError("sessions.listcompleted", err)
	}
	defer rows.Close()

	var found []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.WorkoutID, &s.WorkoutName, &s.WorkoutSlot,
			&s.Date, &s.Completed,
		); err != nil {
			return nil, storage.NewError("sessions.listcompleted.scan", err)
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewError("sessions.listcompleted.rows", err)
	}

	return found, nil
}

func (r *Repo) AddLog(ctx context.Context, exerciseLog ExerciseLog) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exerciseLog.ID == "" {
		exerciseLog.ID = uuid.NewString()
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO exercise_log
			(id, session_id, exercise_id, set_number, weight, reps, completed, rest_seconds)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		exerciseLog.ID, exerciseLog.SessionID, exerciseLog.ExerciseID,
		exerciseLog.SetNumber, exerciseLog.Weight, exerciseLog.Reps,
		exerciseLog.Completed, exerciseLog.RestSeconds,
	)
	if err != nil {
		return nil, storage.NewError("logs.add", err)
	}

	return &exerciseLog, nil
}

const logSelect = `
	SELECT id, session_id, exercise_id, set_number, weight, reps, completed, rest_seconds
	FROM exercise_log`

func (r *Repo) LogsForSession(ctx context.Context, sessionID string) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.forsession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		logSelect+` WHERE session_id = $1 ORDER BY exercise_id, set_number`,
		sessionID,
	)
	if err != nil {
		return nil, storage.NewError("logs.forsession", err)
	}
	return scanLogs(rows)
}

func (r *Repo) LogsForExercise(ctx context.Context, exerciseID string) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.forexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		logSelect+` WHERE exercise_id = $1 ORDER BY session_id, set_number`,
		exerciseID,
	)
	if err != nil {
		return nil, storage.NewError("logs.forexercise", err)
	}
	return scanLogs(rows)
}

// LogsForOwner returns the logs of the owner's completed sessions only.
func (r *Repo) LogsForOwner(ctx context.Context, ownerID string) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.forowner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	rows, err := r.db.Query(ctx,
		`SELECT l.id, l.session_id, l.exercise_id, l.set_number, l.weight,
				l.reps, l.completed, l.rest_seconds
			FROM exercise_log l
			JOIN workout_session s ON s.id = l.session_id
			WHERE s.owner_id = $1 AND s.completed
			ORDER BY l.session_id, l.exercise_id, l.set_number`,
		ownerID,
	)
	if err != nil {
		return nil, storage.NewError("logs.forowner", err)
	}
	return scanLogs(rows)
}

func scanLogs(rows pgx.Rows) ([]ExerciseLog, error) {
	defer rows.Close()

	var logs []ExerciseLog
	for rows.Next() {
		var l ExerciseLog
		if err := rows.Scan(
			&l.ID, &l.SessionID, &l.ExerciseID, &l.SetNumber,
			&l.Weight, &l.Reps, &l.Completed, &l.RestSeconds,
		); err != nil {
			return nil, storage.NewError("logs.scan", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewError("logs.rows", err)
	}

	return logs, nil
}
