package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"babylog/internal/domain/clock"
	"babylog/internal/platform/httpclient"
)

const (
	schedulesPath = "/v1/schedules"

	alarmTitle = "Wake Up"
	alarmBody  = "Time to wake up your baby!!!"
)

var ErrWebhookNotConfigured = errors.New("notification service not configured")

type WebhookConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Webhook delega la entrega al servicio de push: arma una notificación
// diaria (repeats) y la cancela por id.
type Webhook struct {
	http *httpclient.Client
}

func NewWebhook(cfg WebhookConfig) (*Webhook, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrWebhookNotConfigured
	}
	c, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{"X-Api-Key": cfg.APIKey},
	})
	if err != nil {
		return nil, err
	}
	return &Webhook{http: c}, nil
}

type scheduleRequest struct {
	ID      string `json:"id"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Repeats bool   `json:"repeats"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

func (w *Webhook) Arm(ctx context.Context, id string, at clock.TimeOfDay) error {
	err := w.http.DoJSON(ctx, http.MethodPost, schedulesPath, nil, scheduleRequest{
		ID:      id,
		Hour:    at.Hour(),
		Minute:  at.Minute(),
		Repeats: true,
		Title:   alarmTitle,
		Body:    alarmBody,
	}, nil)
	if err != nil {
		return fmt.Errorf("arm notification %q: %w", id, err)
	}
	return nil
}

// Cancel no falla si el servicio ya no la tenía.
func (w *Webhook) Cancel(ctx context.Context, id string) error {
	err := w.http.DoJSON(ctx, http.MethodDelete, schedulesPath+"/"+url.PathEscape(id), nil, nil, nil)
	if httpclient.StatusIs(err, http.StatusNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cancel notification %q: %w", id, err)
	}
	return nil
}
