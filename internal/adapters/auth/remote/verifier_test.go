package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVerify_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "k1" {
			t.Fatalf("missing api key header")
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["token"] != "tok" {
			t.Fatalf("unexpected token %q", body["token"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":" u1 ","email":"a@b.c","name":"Ana"}`))
	}))
	defer srv.Close()

	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "k1"})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	c, err := v.Verify(context.Background(), "tok")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if c.UserID != "u1" || c.Email != "a@b.c" || c.Name != "Ana" {
		t.Fatalf("unexpected claims %+v", c)
	}
}

func TestVerify_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	v, _ := NewVerifier(Config{BaseURL: srv.URL, APIKey: "k1"})
	_, err := v.Verify(context.Background(), "tok")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerify_MissingUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"email":"a@b.c"}`))
	}))
	defer srv.Close()

	v, _ := NewVerifier(Config{BaseURL: srv.URL, APIKey: "k1"})
	_, err := v.Verify(context.Background(), "tok")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestNewVerifier_NotConfigured(t *testing.T) {
	if _, err := NewVerifier(Config{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
