package events

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"babylog/internal/domain/events/details"
	"babylog/internal/middleware"
	"babylog/internal/ports/images"

	"github.com/go-chi/chi/v5"
)

const maxImageBytes = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc))
		er.Get("/", listEventsHandler(svc))

		er.Get("/{eventID}", getEventHandler(svc))
		er.Patch("/{eventID}", updateEventHandler(svc))
		er.Delete("/{eventID}", deleteEventHandler(svc))

		// Foto del pañal
		er.Put("/{eventID}/image", putImageHandler(svc))
		er.Get("/{eventID}/image", getImageHandler(svc))
	})
}

// createEventRequest es el cuerpo para registrar un evento. Según kind se
// usan los campos de toma/sueño (start_time, end_time, duration_seconds,
// feed_side) o de pañal (diaper_type, image_ref).
type createEventRequest struct {
	Kind       string `json:"kind" enums:"feed,sleep,diaper"`
	RecordedAt string `json:"recorded_at"` // RFC3339, opcional
	Note       string `json:"note"`

	StartTime       string `json:"start_time"` // RFC3339
	EndTime         string `json:"end_time"`   // RFC3339, opcional si viene duration_seconds
	DurationSeconds int    `json:"duration_seconds"`
	FeedSide        string `json:"feed_side" enums:"breast_left,breast_right,bottle"`

	DiaperType string `json:"diaper_type" enums:"wet,wet_dirty"`
	ImageRef   string `json:"image_ref"`
}

// updateEventRequest: solo se tocan los campos presentes.
type updateEventRequest struct {
	Note       *string `json:"note"`
	FeedSide   *string `json:"feed_side"`
	DiaperType *string `json:"diaper_type"`
}

type FeedResponse struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int       `json:"duration_seconds"`
	Side            string    `json:"feed_side"`
}

type SleepResponse struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int       `json:"duration_seconds"`
}

type DiaperResponse struct {
	Type     string `json:"diaper_type"`
	ImageRef string `json:"image_ref,omitempty"`
}

// EventResponse es un evento devuelto por la API. Lo reutilizan history y summary.
type EventResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	RecordedAt time.Time `json:"recorded_at"`
	Note       string    `json:"note"`

	Feed   *FeedResponse   `json:"feed,omitempty"`
	Sleep  *SleepResponse  `json:"sleep,omitempty"`
	Diaper *DiaperResponse `json:"diaper,omitempty"`

	Unclassified bool `json:"unclassified,omitempty"`
}

func NewEventResponse(e CareEvent) EventResponse {
	out := EventResponse{
		ID:           e.ID,
		Kind:         string(e.Kind),
		Title:        e.Title(),
		RecordedAt:   e.RecordedAt,
		Note:         e.Note,
		Unclassified: e.Classify() != nil,
	}
	if e.Feed != nil {
		out.Feed = &FeedResponse{
			StartTime:       e.Feed.StartTime,
			EndTime:         e.Feed.EndTime,
			DurationSeconds: e.Feed.DurationSeconds,
			Side:            string(e.Feed.Side),
		}
	}
	if e.Sleep != nil {
		out.Sleep = &SleepResponse{
			StartTime:       e.Sleep.StartTime,
			EndTime:         e.Sleep.EndTime,
			DurationSeconds: e.Sleep.DurationSeconds,
		}
	}
	if e.Diaper != nil {
		out.Diaper = &DiaperResponse{
			Type:     string(e.Diaper.Type),
			ImageRef: e.Diaper.ImageRef,
		}
	}
	return out
}

// createEventHandler godoc
// @Summary Registrar evento
// @Description Registra una toma, un sueño o un cambio de pañal. En tomas y sueños, si falta end_time se calcula desde start_time + duration_seconds. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createEventRequest true "Datos del evento; fechas en RFC3339"
// @Success 201 {object} EventResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := req.toEvent()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), e)
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("event created", map[string]any{
			"event_id": created.ID,
			"kind":     string(created.Kind),
			"user_id":  claims.UserID,
		})
		writeJSON(w, http.StatusCreated, NewEventResponse(created))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos
// @Description Devuelve todos los eventos en el orden del store, incluidos los que no se pudieron clasificar (`unclassified: true`).
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} EventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]EventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, NewEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getEventHandler godoc
// @Summary Obtener evento
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} EventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, NewEventResponse(e))
	}
}

// updateEventHandler godoc
// @Summary Editar evento
// @Description Edita la nota y, según el tipo, el lado de la toma o el tipo de pañal. El id y recorded_at no cambian.
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Param payload body updateEventRequest true "Campos a modificar"
// @Success 200 {object} EventResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [patch]
func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "eventID"), UpdateInput{
			Note:       req.Note,
			FeedSide:   req.FeedSide,
			DiaperType: req.DiaperType,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, NewEventResponse(updated))
	}
}

// deleteEventHandler godoc
// @Summary Borrar evento
// @Tags events
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "eventID")
		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("event deleted", map[string]any{
			"event_id": id,
			"user_id":  claims.UserID,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// putImageHandler godoc
// @Summary Subir foto del pañal
// @Description El cuerpo es la imagen tal cual (máx. 10 MB); Content-Type se guarda con ella.
// @Tags events
// @Accept octet-stream
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento (pañal)"
// @Success 200 {object} EventResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Failure 501 {string} string "images not available"
// @Router /events/{eventID}/image [put]
func putImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImageBytes))
		if err != nil {
			http.Error(w, "image too large", http.StatusRequestEntityTooLarge)
			return
		}

		ct := r.Header.Get("Content-Type")
		if ct == "" {
			ct = http.DetectContentType(data)
		}

		updated, err := svc.AttachImage(r.Context(), chi.URLParam(r, "eventID"), data, ct)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, NewEventResponse(updated))
	}
}

// getImageHandler godoc
// @Summary Descargar foto del pañal
// @Tags events
// @Produce octet-stream
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento (pañal)"
// @Success 200 {file} file
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found / image not found"
// @Router /events/{eventID}/image [get]
func getImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		img, err := svc.OpenImage(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		ct := img.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ct)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(img.Data)
	}
}

func (req createEventRequest) toEvent() (CareEvent, error) {
	var (
		e   CareEvent
		err error
	)

	switch ParseKind(req.Kind) {
	case KindFeed, KindSleep:
		start, err := parseTime("start_time", req.StartTime, true)
		if err != nil {
			return CareEvent{}, err
		}
		end, err := parseTime("end_time", req.EndTime, false)
		if err != nil {
			return CareEvent{}, err
		}

		if ParseKind(req.Kind) == KindFeed {
			side := details.ParseFeedSide(req.FeedSide)
			if !side.Known() {
				return CareEvent{}, errors.New("feed_side must be breast_left, breast_right or bottle")
			}
			e, err = NewFeed(FeedInput{
				StartTime:       start,
				EndTime:         end,
				DurationSeconds: req.DurationSeconds,
				Side:            side,
				Note:            req.Note,
			})
		} else {
			e, err = NewSleep(SleepInput{
				StartTime:       start,
				EndTime:         end,
				DurationSeconds: req.DurationSeconds,
				Note:            req.Note,
			})
		}
		if err != nil {
			return CareEvent{}, err
		}
	case KindDiaper:
		typ := details.ParseDiaperType(req.DiaperType)
		if !typ.Known() {
			return CareEvent{}, errors.New("diaper_type must be wet or wet_dirty")
		}
		e, err = NewDiaper(DiaperInput{Type: typ, ImageRef: req.ImageRef, Note: req.Note})
		if err != nil {
			return CareEvent{}, err
		}
	default:
		return CareEvent{}, errors.New("kind must be feed, sleep or diaper")
	}

	if e.RecordedAt, err = parseTime("recorded_at", req.RecordedAt, false); err != nil {
		return CareEvent{}, err
	}
	return e, nil
}

func parseTime(field, v string, required bool) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		if required {
			return time.Time{}, errors.New(field + " is required")
		}
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, errors.New(field + " must be RFC3339")
	}
	return t, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
	case errors.Is(err, images.ErrNotFound):
		http.Error(w, "image not found", http.StatusNotFound)
	case errors.Is(err, ErrImagesUnavailable):
		http.Error(w, "images not available", http.StatusNotImplemented)
	default:
		middleware.LoggerFrom(r.Context()).Error("events request failed", map[string]any{"error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado en handlers de distintos módulos
// para no crear un paquete de helpers compartido demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
