package alarm

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"babylog/internal/domain/clock"
	"babylog/internal/domain/summary"
	"babylog/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, loc *time.Location) {
	r.Route("/alarm", func(ar chi.Router) {
		ar.Get("/", getAlarmHandler(svc, loc))
		ar.Put("/wake-time", setWakeTimeHandler(svc, loc))
		ar.Delete("/wake-time", clearWakeTimeHandler(svc, loc))
		ar.Put("/state", setStateHandler(svc, loc))
	})
}

type setWakeTimeRequest struct {
	WakeTime string `json:"wake_time"` // HH:MM o HH:MM:SS
}

type setStateRequest struct {
	Enabled bool `json:"enabled"`
}

// alarmResponse es la pantalla de alarma. Las horas van como HH:MM:SS;
// wake_time vacío = no hay hora posible.
type alarmResponse struct {
	Enabled bool `json:"enabled"`

	WakeTime string `json:"wake_time,omitempty"`
	Source   string `json:"source,omitempty" enums:"override,average"`

	Override string `json:"override,omitempty"`

	NoData                 bool    `json:"no_data"`
	AverageSleepStart      string  `json:"average_sleep_start"`
	AverageWakeTime        string  `json:"average_wake_time"`
	AverageDurationSeconds float64 `json:"average_duration_seconds"`
}

// getAlarmHandler godoc
// @Summary Estado de la alarma
// @Description Hora de despertar efectiva (la elegida por el usuario o, si no hay, el promedio), si está activa y los promedios de sueño.
// @Tags alarm
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param tz query string false "Zona IANA (por defecto la configurada)"
// @Success 200 {object} alarmResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /alarm [get]
func getAlarmHandler(svc *Service, def *time.Location) http.HandlerFunc {
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

		st, err := svc.Status(r.Context(), loc)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toAlarmResponse(st))
	}
}

// setWakeTimeHandler godoc
// @Summary Elegir hora de despertar
// @Description Guarda la hora elegida; si la alarma está activa se re-arma.
// @Tags alarm
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body setWakeTimeRequest true "Hora HH:MM o HH:MM:SS"
// @Success 200 {object} alarmResponse
// @Failure 400 {string} string "invalid json / invalid wake_time"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /alarm/wake-time [put]
func setWakeTimeHandler(svc *Service, def *time.Location) http.HandlerFunc {
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

		var req setWakeTimeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		at, err := clock.ParseTimeOfDay(req.WakeTime)
		if err != nil {
			http.Error(w, "wake_time must be HH:MM or HH:MM:SS", http.StatusBadRequest)
			return
		}

		st, err := svc.SetWakeTime(r.Context(), at, loc)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toAlarmResponse(st))
	}
}

// clearWakeTimeHandler godoc
// @Summary Volver al promedio
// @Description Borra la hora elegida; la alarma vuelve a usar el promedio de despertar.
// @Tags alarm
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} alarmResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /alarm/wake-time [delete]
func clearWakeTimeHandler(svc *Service, def *time.Location) http.HandlerFunc {
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

		st, err := svc.ClearWakeTime(r.Context(), loc)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toAlarmResponse(st))
	}
}

// setStateHandler godoc
// @Summary Prender / apagar la alarma
// @Description Prender arma una notificación diaria a la hora efectiva. Sin hora posible devuelve 409.
// @Tags alarm
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body setStateRequest true "enabled true/false"
// @Success 200 {object} alarmResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "no wake time available"
// @Failure 500 {string} string "internal error"
// @Router /alarm/state [put]
func setStateHandler(svc *Service, def *time.Location) http.HandlerFunc {
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

		var req setStateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.SetEnabled(r.Context(), req.Enabled, loc)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toAlarmResponse(st))
	}
}

func toAlarmResponse(st Status) alarmResponse {
	out := alarmResponse{Enabled: st.Enabled, NoData: st.Averages == nil}
	if st.Decision != nil {
		out.WakeTime = st.Decision.WakeTime.String()
		out.Source = string(st.Decision.Source)
	}
	if st.Override != nil {
		out.Override = st.Override.String()
	}

	avg := st.Averages
	if avg == nil {
		avg = &summary.Averages{}
	}
	out.AverageSleepStart = avg.Start().String()
	out.AverageWakeTime = avg.Wake().String()
	out.AverageDurationSeconds = avg.DurationSeconds
	return out
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNoWakeTime) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	middleware.LoggerFrom(r.Context()).Error("alarm request failed", map[string]any{"error": err})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

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
