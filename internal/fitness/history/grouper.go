package history

import (
	"context"
	"fmt"
	"sort"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/sessions"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const monthLayout = "2006-01"

//go:generate mockgen -source=$GOFILE -destination=grouper_mocks_test.go -package=history

type sessionsSource interface {
	ListCompletedForOwner(ctx context.Context, ownerID string) ([]sessions.Session, error)
}

// MonthGroup holds one calendar month's completed sessions, newest first.
type MonthGroup struct {
	Month    string             `json:"month"`
	Sessions []sessions.Session `json:"sessions"`
}

// Grouper produces the month-grouped history view.
type Grouper struct {
	sessions sessionsSource
}

func NewGrouper(sessionsSrc sessionsSource) *Grouper {
	return &Grouper{sessions: sessionsSrc}
}

// GroupedForOwner groups the owner's completed sessions by calendar month,
// groups sorted newest first, sessions within a group sorted newest first.
// No sessions means no groups, not an error.
func (g *Grouper) GroupedForOwner(ctx context.Context, ownerID string) (_ []MonthGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "grouper.history.groupedforowner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	completed, err := g.sessions.ListCompletedForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}

	byMonth := make(map[string][]sessions.Session)
	for _, s := range completed {
		month := s.Date.Format(monthLayout)
		byMonth[month] = append(byMonth[month], s)
	}

	groups := make([]MonthGroup, 0, len(byMonth))
	for month, monthSessions := range byMonth {
		sort.Slice(monthSessions, func(i, j int) bool {
			return monthSessions[i].Date.After(monthSessions[j].Date)
		})
		groups = append(groups, MonthGroup{
			Month:    month,
			Sessions: monthSessions,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Month > groups[j].Month
	})

	return groups, nil
}
