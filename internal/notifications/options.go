package notifications

import (
	"fmt"
	"net/url"
	"strings"

	"pharosnotify/internal/config"
)

// Option names a notification the Pharos server can be asked to send.
type Option string

const (
	OptionFixity   Option = "fixity"
	OptionRestore  Option = "restore"
	OptionSnapshot Option = "snapshot"
	OptionDeletion Option = "deletion"
)

const apiPrefix = "/api/v2"

var endpointPaths = map[Option]string{
	OptionFixity:   "/notifications/failed_fixity",
	OptionRestore:  "/notifications/successful_restoration",
	OptionSnapshot: "/group_snapshot",
	OptionDeletion: "/notifications/deletion",
}

// AllOptions returns every known option in display order.
func AllOptions() []Option { return toOptions(config.OptionNames) }

// DefaultOptions returns the options used when none are requested.
func DefaultOptions() []Option { return toOptions(config.DefaultOptions) }

func toOptions(names []string) []Option {
	out := make([]Option, len(names))
	for i, name := range names {
		out[i] = Option(name)
	}
	return out
}

func (o Option) String() string { return string(o) }

// Path returns the endpoint suffix below /api/v2.
func (o Option) Path() string { return endpointPaths[o] }

// Label identifies the option's endpoint in log lines.
func (o Option) Label() string { return o.Path() }

// SupportsSince reports whether the endpoint honours the since parameter.
// The server defaults to the last 24 hours when it is absent.
func (o Option) SupportsSince() bool {
	return o == OptionFixity || o == OptionRestore
}

// Valid reports whether o is a known option.
func (o Option) Valid() bool {
	_, ok := endpointPaths[o]
	return ok
}

// ParseOption converts a user-supplied name into an Option.
func ParseOption(value string) (Option, error) {
	opt := Option(strings.ToLower(strings.TrimSpace(value)))
	if !opt.Valid() {
		return "", fmt.Errorf("invalid notification option %q (choose from %s)", value, optionList())
	}
	return opt, nil
}

// ParseOptions parses names in order, splitting comma-separated entries.
// Duplicates are kept. An empty input yields DefaultOptions.
func ParseOptions(values []string) ([]Option, error) {
	var out []Option
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			opt, err := ParseOption(part)
			if err != nil {
				return nil, err
			}
			out = append(out, opt)
		}
	}
	if len(out) == 0 {
		return DefaultOptions(), nil
	}
	return out, nil
}

// EndpointURL builds the request URL for opt. since is forwarded only to
// endpoints that support it.
func EndpointURL(scheme, host string, opt Option, since string) string {
	u := url.URL{
		Scheme: scheme,
		Host:   host,
		Path:   apiPrefix + opt.Path(),
	}
	if since != "" && opt.SupportsSince() {
		u.RawQuery = url.Values{"since": []string{since}}.Encode()
	}
	return u.String()
}

func optionList() string {
	return strings.Join(config.OptionNames, ", ")
}
