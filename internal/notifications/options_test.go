package notifications_test

import (
	"reflect"
	"strings"
	"testing"

	"pharosnotify/internal/notifications"
)

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		opt   notifications.Option
		since string
		want  string
	}{
		{opt: notifications.OptionFixity, want: "https://example.org/api/v2/notifications/failed_fixity"},
		{opt: notifications.OptionRestore, want: "https://example.org/api/v2/notifications/successful_restoration"},
		{opt: notifications.OptionSnapshot, want: "https://example.org/api/v2/group_snapshot"},
		{opt: notifications.OptionDeletion, want: "https://example.org/api/v2/notifications/deletion"},
		{opt: notifications.OptionFixity, since: "2024-03-08T12:00:00Z", want: "https://example.org/api/v2/notifications/failed_fixity?since=2024-03-08T12%3A00%3A00Z"},
		{opt: notifications.OptionSnapshot, since: "2024-03-08T12:00:00Z", want: "https://example.org/api/v2/group_snapshot"},
	}
	for _, tc := range tests {
		got := notifications.EndpointURL("https", "example.org", tc.opt, tc.since)
		if got != tc.want {
			t.Errorf("EndpointURL(%s, %q) = %q, want %q", tc.opt, tc.since, got, tc.want)
		}
	}
}

func TestParseOptionsKeepsOrderAndDuplicates(t *testing.T) {
	got, err := notifications.ParseOptions([]string{"snapshot", "Fixity,deletion", " fixity "})
	if err != nil {
		t.Fatalf("ParseOptions returned error: %v", err)
	}
	want := []notifications.Option{
		notifications.OptionSnapshot,
		notifications.OptionFixity,
		notifications.OptionDeletion,
		notifications.OptionFixity,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseOptions = %v, want %v", got, want)
	}
}

func TestParseOptionsDefaults(t *testing.T) {
	got, err := notifications.ParseOptions(nil)
	if err != nil {
		t.Fatalf("ParseOptions returned error: %v", err)
	}
	want := []notifications.Option{notifications.OptionFixity, notifications.OptionRestore}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("default options = %v, want %v", got, want)
	}
}

func TestParseOptionRejectsUnknown(t *testing.T) {
	_, err := notifications.ParseOptions([]string{"fixity", "ingest"})
	if err == nil {
		t.Fatal("expected error for unknown option")
	}
	if !strings.Contains(err.Error(), `"ingest"`) || !strings.Contains(err.Error(), "fixity, restore, snapshot, deletion") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOptionSupportsSince(t *testing.T) {
	for _, opt := range notifications.AllOptions() {
		want := opt == notifications.OptionFixity || opt == notifications.OptionRestore
		if opt.SupportsSince() != want {
			t.Errorf("%s SupportsSince = %v, want %v", opt, opt.SupportsSince(), want)
		}
		if !opt.Valid() || opt.Path() == "" {
			t.Errorf("%s expected to be valid with a path", opt)
		}
	}
}
