package notifications

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pharosnotify/internal/config"
	"pharosnotify/internal/logging"
)

const userAgent = "pharos-notify/0.1.0"

// Request headers understood by the Pharos API.
const (
	HeaderAPIUser   = "X-API-USER"
	HeaderAPIKey    = "X-API-KEY"
	HeaderRequestID = "X-Request-ID"
)

// Result is the outcome of one notification request.
type Result struct {
	Option     Option
	Label      string
	URL        string
	StatusCode int
	Body       string
	Elapsed    time.Duration
}

// LogLine formats the result as "<label>: <status> <body>" with the body
// exactly as received.
func (r Result) LogLine() string {
	return fmt.Sprintf("%s: %d %s", r.Label, r.StatusCode, r.Body)
}

// Planned describes a request without sending it.
type Planned struct {
	Option Option `json:"option"`
	Label  string `json:"label"`
	URL    string `json:"url"`
}

// Service issues notification requests against one Pharos host.
type Service struct {
	scheme string
	host   string
	user   string
	key    string
	since  string
	client *http.Client
	logger *slog.Logger
}

// NewService builds a Service from a resolved configuration. The since
// value is resolved once so every request in a run uses the same bound.
func NewService(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	since, err := cfg.SinceParam(time.Now())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		scheme: cfg.API.Scheme,
		host:   cfg.API.Host,
		user:   cfg.API.User,
		key:    cfg.API.Key,
		since:  since,
		client: &http.Client{Timeout: cfg.RequestTimeout()},
		logger: logger,
	}, nil
}

// Plan returns the requests Run would issue for opts.
func (s *Service) Plan(opts []Option) []Planned {
	planned := make([]Planned, 0, len(opts))
	for _, opt := range opts {
		planned = append(planned, Planned{
			Option: opt,
			Label:  opt.Label(),
			URL:    EndpointURL(s.scheme, s.host, opt, s.since),
		})
	}
	return planned
}

// Run triggers each option in order. The first transport error stops the
// run; results gathered so far are returned alongside it.
func (s *Service) Run(ctx context.Context, opts []Option) ([]Result, error) {
	results := make([]Result, 0, len(opts))
	for _, opt := range opts {
		result, err := s.Trigger(ctx, opt)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Trigger sends one notification request and logs the response. Any HTTP
// status is a successful trigger from the caller's point of view.
func (s *Service) Trigger(ctx context.Context, opt Option) (Result, error) {
	if !opt.Valid() {
		return Result{}, fmt.Errorf("invalid notification option %q", opt)
	}
	result := Result{
		Option: opt,
		Label:  opt.Label(),
		URL:    EndpointURL(s.scheme, s.host, opt, s.since),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, result.URL, nil)
	if err != nil {
		return result, fmt.Errorf("build %s request: %w", opt, err)
	}
	// Assigned directly so the names go out exactly as written.
	req.Header[HeaderAPIUser] = []string{s.user}
	req.Header[HeaderAPIKey] = []string{s.key}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(HeaderRequestID, uuid.NewString())

	s.logger.Debug("sending notification request",
		slog.String(logging.FieldOption, opt.String()),
		slog.String(logging.FieldURL, result.URL),
	)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("request %s: %w", result.Label, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("read %s response: %w", result.Label, err)
	}
	result.StatusCode = resp.StatusCode
	result.Body = string(body)
	result.Elapsed = time.Since(start)

	s.logger.Info(result.LogLine(),
		slog.String(logging.FieldOption, opt.String()),
		slog.Int(logging.FieldStatus, result.StatusCode),
		slog.Duration("elapsed", result.Elapsed.Round(time.Millisecond)),
	)
	return result, nil
}
