package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT",
		"LISTEN_ADDR",
		"DATABASE_PATH",
		"SESSION_SECRET",
		"GIN_MODE",
		"SITE_BASE_URL",
		"GEOIP_DB_PATH",
		"SUPER_ROOT_USER_NAME",
		"SUPER_ROOT_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "qrpage.db" {
		t.Fatalf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("expected release mode, got %q", cfg.GinMode)
	}
	if cfg.SiteBaseURL != "http://localhost:8080" {
		t.Fatalf("expected base url to follow port, got %q", cfg.SiteBaseURL)
	}
	if cfg.GeoIPDBPath != "" {
		t.Fatalf("geoip path should default to empty, got %q", cfg.GeoIPDBPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("DATABASE_PATH", "/tmp/custom.db")
	t.Setenv("SITE_BASE_URL", "https://qr.example.com/")
	t.Setenv("GEOIP_DB_PATH", "/opt/geoip/GeoLite2-City.mmdb")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Fatalf("expected explicit listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "/tmp/custom.db" {
		t.Fatalf("expected overridden database path, got %q", cfg.DatabasePath)
	}
	if cfg.SiteBaseURL != "https://qr.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.SiteBaseURL)
	}
	if cfg.GeoIPDBPath != "/opt/geoip/GeoLite2-City.mmdb" {
		t.Fatalf("unexpected geoip path %q", cfg.GeoIPDBPath)
	}
}

func TestLoadListenAddrFollowsPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")

	cfg := Load()

	if cfg.ListenAddr != ":3000" {
		t.Fatalf("expected listen addr :3000, got %q", cfg.ListenAddr)
	}
	if cfg.SiteBaseURL != "http://localhost:3000" {
		t.Fatalf("expected base url to follow port, got %q", cfg.SiteBaseURL)
	}
}
