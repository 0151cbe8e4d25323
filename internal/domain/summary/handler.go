package summary

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"babylog/internal/domain/clock"
	"babylog/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /summary. loc es la zona por defecto; cada request
// puede cambiarla con ?tz=.
func RegisterRoutes(r chi.Router, svc *Service, loc *time.Location) {
	r.Route("/summary", func(sr chi.Router) {
		sr.Get("/", dailySummaryHandler(svc, loc))
		sr.Get("/days", daysSummaryHandler(svc, loc))
		sr.Get("/averages", averagesHandler(svc, loc))
	})
}

// summaryResponse son los totales de un día. Las duraciones van en segundos
// y también formateadas HH:MM:SS.
type summaryResponse struct {
	Date string `json:"date"` // YYYY-MM-DD

	SleepDurationSeconds     int    `json:"sleep_duration_seconds"`
	SleepDuration            string `json:"sleep_duration"`
	LeftFeedDurationSeconds  int    `json:"left_feed_duration_seconds"`
	LeftFeedDuration         string `json:"left_feed_duration"`
	RightFeedDurationSeconds int    `json:"right_feed_duration_seconds"`
	RightFeedDuration        string `json:"right_feed_duration"`

	WetCount      int `json:"wet_count"`
	WetDirtyCount int `json:"wet_dirty_count"`

	// En /summary cuentan todos los eventos guardados; en /summary/days
	// solo los registrados ese día.
	Processed    int `json:"processed"`
	Unclassified int `json:"unclassified"`
}

// averagesResponse: sin sueños => no_data true y valores neutros.
type averagesResponse struct {
	NoData bool `json:"no_data"`
	Count  int  `json:"count"`

	AverageSleepStart       string  `json:"average_sleep_start"` // HH:MM:SS
	AverageWakeTime         string  `json:"average_wake_time"`   // HH:MM:SS
	AverageDurationSeconds  float64 `json:"average_duration_seconds"`
	AverageDurationReadable string  `json:"average_duration"`
}

// dailySummaryHandler godoc
// @Summary Resumen diario
// @Description Totales de sueño, tomas por lado y pañales del día indicado (por defecto hoy). Con format=text devuelve el texto para compartir.
// @Tags summary
// @Produce json
// @Produce plain
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param date query string false "Día YYYY-MM-DD"
// @Param tz query string false "Zona IANA (por defecto la configurada)"
// @Param format query string false "json (por defecto) o text"
// @Success 200 {object} summaryResponse
// @Failure 400 {string} string "invalid date / invalid tz"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /summary [get]
func dailySummaryHandler(svc *Service, def *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		loc, err := locationParam(r, def)
		if err != nil {
			http.Error(w, "invalid tz", http.StatusBadRequest)
			return
		}

		day := svc.Today(loc)
		if v := strings.TrimSpace(r.URL.Query().Get("date")); v != "" {
			day, err = clock.ParseDate(v, loc)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
		}

		s, err := svc.Daily(r.Context(), day, loc)
		if err != nil {
			middleware.LoggerFrom(r.Context()).Error("daily summary failed", map[string]any{"error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if s.Unclassified > 0 {
			middleware.LoggerFrom(r.Context()).Warn("unclassified events skipped", map[string]any{
				"count": s.Unclassified,
			})
		}

		if strings.EqualFold(r.URL.Query().Get("format"), "text") {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(s.ShareText()))
			return
		}
		writeJSON(w, http.StatusOK, toSummaryResponse(s))
	}
}

// daysSummaryHandler godoc
// @Summary Resumen por día
// @Description Un resumen por cada día calendario con eventos, del más antiguo al más reciente.
// @Tags summary
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param tz query string false "Zona IANA (por defecto la configurada)"
// @Success 200 {array} summaryResponse
// @Failure 400 {string} string "invalid tz"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /summary/days [get]
func daysSummaryHandler(svc *Service, def *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		loc, err := locationParam(r, def)
		if err != nil {
			http.Error(w, "invalid tz", http.StatusBadRequest)
			return
		}

		days, err := svc.Days(r.Context(), loc)
		if err != nil {
			middleware.LoggerFrom(r.Context()).Error("days summary failed", map[string]any{"error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]summaryResponse, 0, len(days))
		for _, s := range days {
			out = append(out, toSummaryResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// averagesHandler godoc
// @Summary Promedios de sueño
// @Description Hora promedio de dormir y de despertar y duración promedio sobre todos los sueños. Sin sueños devuelve no_data true.
// @Tags summary
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param tz query string false "Zona IANA (por defecto la configurada)"
// @Success 200 {object} averagesResponse
// @Failure 400 {string} string "invalid tz"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /summary/averages [get]
func averagesHandler(svc *Service, def *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		loc, err := locationParam(r, def)
		if err != nil {
			http.Error(w, "invalid tz", http.StatusBadRequest)
			return
		}

		avg, err := svc.Averages(r.Context(), loc)
		if errors.Is(err, ErrNoData) {
			writeJSON(w, http.StatusOK, toAveragesResponse(Averages{}, true))
			return
		}
		if err != nil {
			middleware.LoggerFrom(r.Context()).Error("averages failed", map[string]any{"error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAveragesResponse(avg, false))
	}
}

func toSummaryResponse(s Summary) summaryResponse {
	return summaryResponse{
		Date:                     s.Day.Format("2006-01-02"),
		SleepDurationSeconds:     s.SleepDurationSeconds,
		SleepDuration:            clock.FormatDuration(s.SleepDurationSeconds),
		LeftFeedDurationSeconds:  s.LeftFeedDurationSeconds,
		LeftFeedDuration:         clock.FormatDuration(s.LeftFeedDurationSeconds),
		RightFeedDurationSeconds: s.RightFeedDurationSeconds,
		RightFeedDuration:        clock.FormatDuration(s.RightFeedDurationSeconds),
		WetCount:                 s.WetCount,
		WetDirtyCount:            s.WetDirtyCount,
		Processed:                s.Processed,
		Unclassified:             s.Unclassified,
	}
}

func toAveragesResponse(a Averages, noData bool) averagesResponse {
	return averagesResponse{
		NoData:                  noData,
		Count:                   a.Count,
		AverageSleepStart:       a.Start().String(),
		AverageWakeTime:         a.Wake().String(),
		AverageDurationSeconds:  a.DurationSeconds,
		AverageDurationReadable: clock.FormatDuration(int(a.DurationSeconds)),
	}
}

// locationParam lee ?tz=; vacío => def.
func locationParam(r *http.Request, def *time.Location) (*time.Location, error) {
	tz := strings.TrimSpace(r.URL.Query().Get("tz"))
	if tz == "" {
		return clock.Location(def), nil
	}
	return clock.LoadLocation(tz)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
