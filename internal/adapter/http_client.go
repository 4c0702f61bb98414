package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-briefcase-sync/internal/config"
	"github.com/MKhiriev/go-briefcase-sync/internal/logger"
	"github.com/MKhiriev/go-briefcase-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpRemoteAdapter struct {
	client     *resty.Client
	apiVersion string
	logger     *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteAdapter constructs a [RemoteAdapter] speaking HTTP/REST to
// the remote record store described by cfg.
func NewHTTPRemoteAdapter(cfg config.SyncRemote, log *logger.Logger) RemoteAdapter {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Address, "/")).
		SetTimeout(cfg.RequestTimeout)

	a := &httpRemoteAdapter{
		client:     cli,
		apiVersion: cfg.APIVersion,
		logger:     log,
	}
	a.SetToken(cfg.Token)
	return a
}

func (h *httpRemoteAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteAdapter) GetPrimingPage(ctx context.Context, relayToken string) (models.PrimingPage, error) {
	req := h.authedRequest(ctx)
	if relayToken != "" {
		req.SetQueryParam("relayToken", relayToken)
	}

	h.logger.Debug().
		Str("func", "httpRemoteAdapter.GetPrimingPage").
		Bool("continuation", relayToken != "").
		Msg("requesting priming page")

	resp, err := req.Get(fmt.Sprintf("/services/data/v%s/connect/briefcase/priming-records", h.apiVersion))
	if err != nil {
		return models.PrimingPage{}, fmt.Errorf("priming records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PrimingPage{}, err
	}

	var page models.PrimingPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.PrimingPage{}, fmt.Errorf("decode priming page: %w: %v", ErrMalformedResponse, err)
	}

	return page, nil
}

func (h *httpRemoteAdapter) Query(ctx context.Context, query string) ([]models.Record, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("q", query).
		Get(fmt.Sprintf("/services/data/v%s/query", h.apiVersion))
	if err != nil {
		return nil, fmt.Errorf("query request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var qr queryResponse
	if err = json.Unmarshal(resp.Body(), &qr); err != nil {
		return nil, fmt.Errorf("decode query response: %w: %v", ErrMalformedResponse, err)
	}
	if qr.Records == nil {
		return nil, fmt.Errorf("query response without records: %w", ErrMalformedResponse)
	}

	return qr.Records, nil
}

// queryResponse is the bounded query facility's envelope. Done and
// NextRecordsURL are reported by the facility but unused: slice sizing
// guarantees a single response per request.
type queryResponse struct {
	TotalSize      int             `json:"total_size"`
	Done           bool            `json:"done"`
	NextRecordsURL string          `json:"next_records_url,omitempty"`
	Records        []models.Record `json:"records"`
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusTooManyRequests {
		return ErrTooManyRequests
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
