package testsupport

import (
	"net/url"
	"testing"

	"pharosnotify/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a valid config with placeholder credentials. It applies
// any provided options on top.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.API.Host = "pharos.test"
	cfgVal.API.User = "admin@example.org"
	cfgVal.API.Key = "test-key"

	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithServer points the config at a running test server.
func WithServer(server *FakePharos) ConfigOption {
	return func(b *configBuilder) {
		u, err := url.Parse(server.URL())
		if err != nil {
			b.t.Fatalf("parse server url: %v", err)
		}
		b.cfg.API.Scheme = u.Scheme
		b.cfg.API.Host = u.Host
	}
}

// WithCredentials overrides the API user and key.
func WithCredentials(user, key string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.API.User = user
		b.cfg.API.Key = key
	}
}

// WithOptions sets the requested notification names.
func WithOptions(names ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notify.Options = names
	}
}

// WithSince sets notify.since.
func WithSince(since string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notify.Since = since
	}
}

// WithRequestTimeout sets notify.request_timeout in seconds.
func WithRequestTimeout(seconds int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notify.RequestTimeout = seconds
	}
}
