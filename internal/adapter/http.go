package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/utils"
	"github.com/MKhiriev/go-event-planner/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.CredentialsRequest) error {
	return h.send(h.client.R().SetContext(ctx).SetBody(credentials), resty.MethodPost, "/register")
}

// Login keeps the returned token for the following authenticated calls.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.CredentialsRequest) (string, error) {
	var out models.TokenResponse
	req := h.client.R().SetContext(ctx).SetBody(credentials).SetResult(&out)
	if err := h.send(req, resty.MethodPost, "/login"); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("login: empty token in response")
	}

	h.SetToken(out.Token)
	h.logger.Debug().Msg("logged in")
	return out.Token, nil
}

func (h *httpServerAdapter) CreateEvent(ctx context.Context, event models.CreateEventRequest) (models.Event, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Event{}, err
	}

	var out models.EventCreatedResponse
	if err = h.send(req.SetBody(event).SetResult(&out), resty.MethodPost, "/events"); err != nil {
		return models.Event{}, err
	}
	return out.Event, nil
}

// ListEvents sends only the query parameters that are set.
func (h *httpServerAdapter) ListEvents(ctx context.Context, query models.ListEventsQuery) ([]models.Event, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	for name, value := range map[string]string{
		"sortBy":         query.SortBy,
		"filterCategory": query.FilterCategory,
		"reminderStatus": query.ReminderStatus,
	} {
		if value != "" {
			req.SetQueryParam(name, value)
		}
	}

	var events []models.Event
	if err = h.send(req.SetResult(&events), resty.MethodGet, "/events"); err != nil {
		return nil, err
	}
	return events, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var out models.VersionResponse
	if err := h.send(h.client.R().SetContext(ctx).SetResult(&out), resty.MethodGet, "/version"); err != nil {
		return models.VersionResponse{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// send executes req and turns a non-2xx answer into one of the package errors.
func (h *httpServerAdapter) send(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return mapHTTPError(resp)
}
