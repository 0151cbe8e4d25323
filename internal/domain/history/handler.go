package history

import (
	"encoding/json"
	"net/http"
	"strings"

	"babylog/internal/domain/events"
	"babylog/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/history", listHistoryHandler(svc))
}

// listHistoryHandler godoc
// @Summary Historial de eventos
// @Description Lista los eventos conocidos, opcionalmente de un solo tipo, ordenados por recorded_at. Los empates conservan el orden del store.
// @Tags history
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param kind query string false "feed, sleep, diaper o all (por defecto all)"
// @Param order query string false "chronological (por defecto) o reverse"
// @Success 200 {array} events.EventResponse
// @Failure 400 {string} string "invalid history filter"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /history [get]
func listHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		kind, err := ParseKindFilter(q.Get("kind"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		order, err := ParseOrder(q.Get("order"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.Query(r.Context(), kind, order)
		if err != nil {
			middleware.LoggerFrom(r.Context()).Error("history query failed", map[string]any{"error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]events.EventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, events.NewEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
