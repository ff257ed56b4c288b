package progress

import (
	"encoding/json"
	"net/http"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/identity"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"
	"github.com/samuelassuncao1/fitprogress/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	analyzer *Analyzer
	cache    *Cache
}

// NewHandler wires the analyzer with an optional report cache; cache may be
// nil when no redis instance is configured.
func NewHandler(analyzer *Analyzer, cache *Cache) *Handler {
	return &Handler{
		analyzer: analyzer,
		cache:    cache,
	}
}

func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.report")
	defer span.End()

	ownerID, ok := identity.FromContext(ctx)
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.cache != nil {
		if report, hit := h.cache.Get(ctx, ownerID); hit {
			writeReport(w, report)
			return
		}
	}

	report, err := h.analyzer.ReportForOwner(ctx, ownerID)
	if err != nil {
		log.Errorf("progress report for owner [%s]: %s", ownerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.cache != nil {
		h.cache.Set(ctx, ownerID, report)
	}

	writeReport(w, report)
}

func writeReport(w http.ResponseWriter, report *Report) {
	reportJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("progress report, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, reportJson, http.StatusOK)
}
