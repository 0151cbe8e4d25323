package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"babylog/internal/platform/httpclient"
	"babylog/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("auth service not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrUnauthorized  = errors.New("token rejected")
	ErrUpstream      = errors.New("auth service error")
)

const verifyPath = "/v1/tokens/verify"

type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// Verifier implementa auth.AuthVerifier contra el servicio de identidad.
type Verifier struct {
	http *httpclient.Client
}

func NewVerifier(cfg Config) (*Verifier, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	c, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: timeout,
		Headers: map[string]string{h: cfg.APIKey},
	})
	if err != nil {
		return nil, err
	}
	return &Verifier{http: c}, nil
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.http == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var out verifyResponse
	err := v.http.DoJSON(ctx, http.MethodPost, verifyPath, map[string]string{
		"Authorization": "Bearer " + token,
	}, map[string]string{"token": token}, &out)
	if err != nil {
		if httpclient.StatusIs(err, http.StatusUnauthorized, http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	uid := strings.TrimSpace(out.UserID)
	if uid == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}
	return auth.Claims{
		UserID: uid,
		Email:  strings.TrimSpace(out.Email),
		Name:   strings.TrimSpace(out.Name),
	}, nil
}
