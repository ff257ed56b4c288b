package history

import (
	"encoding/json"
	"net/http"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/identity"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"
	"github.com/samuelassuncao1/fitprogress/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	grouper *Grouper
}

func NewHandler(grouper *Grouper) *Handler {
	return &Handler{grouper: grouper}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	ownerID, ok := identity.FromContext(ctx)
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	groups, err := h.grouper.GroupedForOwner(ctx, ownerID)
	if err != nil {
		log.Errorf("history for owner [%s]: %s", ownerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	groupsJson, err := json.Marshal(groups)
	if err != nil {
		log.Errorf("history, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, groupsJson, http.StatusOK)
}
