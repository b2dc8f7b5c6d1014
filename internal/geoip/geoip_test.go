package geoip

import (
	"path/filepath"
	"testing"
)

func TestInitEmptyPathDisablesLookups(t *testing.T) {
	g := NewLookup()
	if err := g.Init(""); err != nil {
		t.Fatalf("empty path should not error, got %v", err)
	}
	if g.Enabled() {
		t.Fatal("lookup should stay disabled without a database")
	}
	if got := g.Locate("8.8.8.8"); got != "" {
		t.Fatalf("disabled lookup should return empty label, got %q", got)
	}
}

func TestInitMissingDatabaseReportsError(t *testing.T) {
	g := NewLookup()
	missing := filepath.Join(t.TempDir(), "no-such.mmdb")
	if err := g.Init(missing); err == nil {
		t.Fatal("expected error for missing database file")
	}
	if g.Enabled() {
		t.Fatal("lookup must remain disabled after a failed Init")
	}
}

func TestLocateSkipsNonRoutableAddresses(t *testing.T) {
	g := NewLookup()

	cases := []string{
		"",
		"not-an-ip",
		"127.0.0.1",
		"::1",
		"10.0.0.5",
		"192.168.1.20",
		"fe80::1",
	}
	for _, ip := range cases {
		if got := g.Locate(ip); got != "" {
			t.Fatalf("Locate(%q) = %q, expected empty label", ip, got)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	g := NewLookup()
	if err := g.Close(); err != nil {
		t.Fatalf("closing an unopened lookup should not error, got %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("second close should not error, got %v", err)
	}
}
