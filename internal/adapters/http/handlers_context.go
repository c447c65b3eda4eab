package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"coala/internal/adapters/http/middleware"
	"coala/internal/domain/navigation"
)

// handleContextSelect applies a context panel selection. Board selections are
// remembered in the board cookie; every mapped selection redirects to its
// target. Unmapped selections are logged and answered with 204 so the browser
// stays where it is.
func handleContextSelect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind := navigation.ItemKind(q.Get("kind"))
	value := q.Get("value")

	intent := navigation.ResolveIntent(kind, value)
	if intent.Kind == navigation.IntentNone {
		slog.Info("context_select_unmapped", "kind", string(kind), "value", value)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if intent.Kind == navigation.IntentSelectBoard {
		middleware.SetBoardCookie(w, intent.Board, secureCookies)
	}
	slog.Debug("context_select", "kind", string(kind), "value", value, "intent", intent.Kind.String())
	http.Redirect(w, r, intent.Target(), http.StatusSeeOther)
}

// Perf dashboard defaults.
const (
	defaultPerfWindow = 15 * time.Minute
	defaultPerfTopN   = 10
)

// handlePerf returns aggregated timings. ?window= takes a Go duration and
// ?top= bounds each slowest list.
func handlePerf(w http.ResponseWriter, r *http.Request) {
	if perfCollector == nil {
		http.Error(w, "perf collector disabled", http.StatusNotFound)
		return
	}
	window := defaultPerfWindow
	if v := r.URL.Query().Get("window"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			http.Error(w, "invalid window", http.StatusBadRequest)
			return
		}
		window = d
	}
	topN := defaultPerfTopN
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid top", http.StatusBadRequest)
			return
		}
		topN = n
	}
	writeJSON(w, http.StatusOK, perfCollector.Snapshot(timeNow().Add(-window), topN))
}
