// Package geoip resolves client IPs to a human-readable location label using
// a MaxMind GeoLite2 database (City or Country). Lookups degrade gracefully:
// without a configured database every lookup yields an empty label.
package geoip

import (
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/oschwald/maxminddb-golang"
)

// Lookup wraps a MaxMind reader behind a lock so the database can be swapped
// at runtime without disturbing in-flight lookups.
type Lookup struct {
	db      *maxminddb.Reader
	dbPath  string
	enabled bool
	mu      sync.RWMutex
}

// geoRecord matches the fields shared by GeoLite2-City and GeoLite2-Country.
type geoRecord struct {
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

// NewLookup creates a new, disabled lookup instance.
func NewLookup() *Lookup {
	return &Lookup{}
}

// Init opens the database at dbPath. An empty path disables lookups without
// error; a missing or unreadable database reports an error and leaves the
// lookup disabled.
func (g *Lookup) Init(dbPath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.dbPath = strings.TrimSpace(dbPath)
	if g.dbPath == "" {
		g.enabled = false
		return nil
	}

	db, err := maxminddb.Open(g.dbPath)
	if err != nil {
		g.enabled = false
		return fmt.Errorf("open geoip database: %w", err)
	}

	if g.db != nil {
		_ = g.db.Close()
	}
	g.db = db
	g.enabled = true
	return nil
}

// Enabled reports whether a database is loaded.
func (g *Lookup) Enabled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.enabled
}

// Locate returns a location label for the given IP, "City, CC" when the city
// is known, the bare country code otherwise. Private, loopback and
// unresolvable addresses yield an empty label.
func (g *Lookup) Locate(ip string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsLinkLocalUnicast() {
		return ""
	}

	if !g.enabled || g.db == nil {
		return ""
	}

	var record geoRecord
	if err := g.db.Lookup(parsed, &record); err != nil {
		return ""
	}

	city := record.City.Names["en"]
	country := record.Country.ISOCode
	switch {
	case city != "" && country != "":
		return fmt.Sprintf("%s, %s", city, country)
	case country != "":
		return country
	default:
		return ""
	}
}

// Close releases the underlying reader.
func (g *Lookup) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.enabled = false
	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	return err
}
