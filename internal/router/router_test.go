package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	notifyadapter "babylog/internal/adapters/notify"
	"babylog/internal/domain/alarm"
	"babylog/internal/middleware"
	"babylog/internal/router"
)

func TestHTTP_EndToEnd_DayOfCare(t *testing.T) {
	rec := notifyadapter.NewRecorder()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Scheduler: rec,
		Location:  time.UTC,
	}))
	defer ts.Close()

	user := "parent-1"

	// 1) Sin hora posible la alarma no se puede prender
	{
		st, body := doReq(t, ts.URL, "PUT", "/alarm/state", user, map[string]any{"enabled": true})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 enabling alarm without data, got %d body=%s", st, string(body))
		}
	}

	// 2) Promedios vacíos => no_data
	{
		st, body := doReq(t, ts.URL, "GET", "/summary/averages", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 averages, got %d body=%s", st, string(body))
		}
		var resp struct {
			NoData bool `json:"no_data"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.NoData {
			t.Fatalf("expected no_data true, body=%s", string(body))
		}
	}

	// 3) Un día: dos tomas, un sueño, dos pañales
	createEvent(t, ts.URL, user, map[string]any{
		"kind":             "feed",
		"recorded_at":      "2024-03-01T08:10:00Z",
		"start_time":       "2024-03-01T08:00:00Z",
		"duration_seconds": 600,
		"feed_side":        "breast_left",
	})
	createEvent(t, ts.URL, user, map[string]any{
		"kind":        "feed",
		"recorded_at": "2024-03-01T11:20:00Z",
		"start_time":  "2024-03-01T11:00:00Z",
		"end_time":    "2024-03-01T11:15:00Z",
		"feed_side":   "Breast Right",
	})
	sleepID := createEvent(t, ts.URL, user, map[string]any{
		"kind":        "sleep",
		"recorded_at": "2024-03-01T14:00:00Z",
		"start_time":  "2024-03-01T12:00:00Z",
		"end_time":    "2024-03-01T14:00:00Z",
	})
	diaperID := createEvent(t, ts.URL, user, map[string]any{
		"kind":        "diaper",
		"recorded_at": "2024-03-01T09:00:00Z",
		"diaper_type": "wet",
	})
	createEvent(t, ts.URL, user, map[string]any{
		"kind":        "diaper",
		"recorded_at": "2024-03-01T15:00:00Z",
		"diaper_type": "wet_dirty",
	})

	// 4) Resumen del día
	{
		st, body := doReq(t, ts.URL, "GET", "/summary?date=2024-03-01", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}
		var resp struct {
			Sleep     int `json:"sleep_duration_seconds"`
			Left      int `json:"left_feed_duration_seconds"`
			Right     int `json:"right_feed_duration_seconds"`
			Wet       int `json:"wet_count"`
			WetDirty  int `json:"wet_dirty_count"`
			Processed int `json:"processed"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Sleep != 7200 || resp.Left != 600 || resp.Right != 900 || resp.Wet != 1 || resp.WetDirty != 1 || resp.Processed != 5 {
			t.Fatalf("unexpected summary %+v", resp)
		}
	}

	// 5) Texto para compartir
	{
		st, body := doReq(t, ts.URL, "GET", "/summary?date=2024-03-01&format=text", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 share text, got %d", st)
		}
		if !strings.Contains(string(body), "Total Sleep Duration: 02:00:00") {
			t.Fatalf("unexpected share text %q", string(body))
		}
	}

	// 6) Historial de pañales, más reciente primero
	{
		st, body := doReq(t, ts.URL, "GET", "/history?kind=diaper&order=reverse", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d body=%s", st, string(body))
		}
		var items []struct {
			ID   string `json:"id"`
			Kind string `json:"kind"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 2 || items[1].ID != diaperID {
			t.Fatalf("unexpected history %s", string(body))
		}
	}

	// 7) Editar el pañal
	{
		st, body := doReq(t, ts.URL, "PATCH", "/events/"+diaperID, user, map[string]any{"diaper_type": "wet_dirty"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "PATCH", "/events/"+sleepID, user, map[string]any{"feed_side": "bottle"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 feed_side on sleep, got %d", st)
		}
	}

	// 8) Prender la alarma usa el promedio de despertar (14:00)
	{
		st, body := doReq(t, ts.URL, "PUT", "/alarm/state", user, map[string]any{"enabled": true})
		if st != http.StatusOK {
			t.Fatalf("expected 200 enabling alarm, got %d body=%s", st, string(body))
		}
		at, ok := rec.Armed(alarm.NotificationID)
		if !ok || at.String() != "14:00:00" {
			t.Fatalf("expected alarm at 14:00:00, got %v ok=%v", at, ok)
		}
	}

	// 9) Hora elegida re-arma
	{
		st, body := doReq(t, ts.URL, "PUT", "/alarm/wake-time", user, map[string]any{"wake_time": "06:30"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 set wake time, got %d body=%s", st, string(body))
		}
		if at, _ := rec.Armed(alarm.NotificationID); at.String() != "06:30:00" {
			t.Fatalf("expected re-armed at 06:30:00, got %v", at)
		}
	}

	// 10) Borrar evento
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/events/"+sleepID, user, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/events/"+sleepID, user, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_DiaperImage(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	user := "parent-1"
	id := createEvent(t, ts.URL, user, map[string]any{
		"kind":        "diaper",
		"diaper_type": "wet",
	})

	req, _ := http.NewRequest("PUT", ts.URL+"/events/"+id+"/image", bytes.NewReader([]byte("fake-png")))
	req.Header.Set(middleware.DebugUserHeader, user)
	req.Header.Set("Content-Type", "image/png")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put image: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 put image, got %d", res.StatusCode)
	}

	req, _ = http.NewRequest("GET", ts.URL+"/events/"+id+"/image", nil)
	req.Header.Set(middleware.DebugUserHeader, user)
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get image: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK || string(body) != "fake-png" || res.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("unexpected image response %d %q %q", res.StatusCode, res.Header.Get("Content-Type"), string(body))
	}
}

func TestHTTP_RequiresAuth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, path := range []string{"/events", "/history", "/summary", "/summary/averages", "/alarm"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %d", path, st)
		}
	}

	st, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func TestHTTP_CreateEvent_Rejects(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []map[string]any{
		{"kind": "bath"},
		{"kind": "feed", "start_time": "2024-03-01T08:00:00Z", "duration_seconds": 60, "feed_side": "middle"},
		{"kind": "feed", "start_time": "2024-03-01T08:00:00Z", "feed_side": "bottle"},
		{"kind": "sleep", "start_time": "2024-03-01T08:00:00Z", "end_time": "2024-03-01T07:00:00Z"},
		{"kind": "diaper", "diaper_type": "dry"},
	}
	for i, c := range cases {
		st, body := doReq(t, ts.URL, "POST", "/events", "u1", c)
		if st != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d body=%s", i, st, string(body))
		}
	}
}

func createEvent(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/events", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create event, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create event: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set(middleware.DebugUserHeader, debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
