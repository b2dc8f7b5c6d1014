package service

import (
	"math"
	"sort"
	"time"

	"github.com/qrpage/internal/db"
)

const topLocationLimit = 5

// LocationCount is one row of the top-locations ranking.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// ScanSummary aggregates a scan event stream for the dashboard.
type ScanSummary struct {
	Total             int             `json:"total"`
	ByLocation        map[string]int  `json:"byLocation"`
	ByDay             map[string]int  `json:"byDay"`
	AverageDailyScans int             `json:"averageDailyScans"`
	TopLocations      []LocationCount `json:"topLocations"`
}

// AggregateScans reduces a scan event stream to summary statistics. It is a
// pure function of its input, recomputed on demand, and correct for any event
// count from zero upward. Events without a location count toward the total
// and the daily buckets but are omitted from the location breakdown. Days are
// keyed by calendar date in loc (nil means time.Local). AverageDailyScans is
// total over distinct days, rounded half-up, zero when there are no days.
// TopLocations is sorted by descending count, ties kept in first-seen order,
// truncated to five entries.
func AggregateScans(events []db.ScanEvent, loc *time.Location) ScanSummary {
	if loc == nil {
		loc = time.Local
	}

	summary := ScanSummary{
		Total:      len(events),
		ByLocation: make(map[string]int),
		ByDay:      make(map[string]int),
	}

	var locationOrder []string
	for _, event := range events {
		if event.Location != "" {
			if _, seen := summary.ByLocation[event.Location]; !seen {
				locationOrder = append(locationOrder, event.Location)
			}
			summary.ByLocation[event.Location]++
		}

		day := event.Timestamp.In(loc).Format("2006-01-02")
		summary.ByDay[day]++
	}

	if days := len(summary.ByDay); days > 0 {
		summary.AverageDailyScans = int(math.Floor(float64(summary.Total)/float64(days) + 0.5))
	}

	ranking := make([]LocationCount, 0, len(locationOrder))
	for _, location := range locationOrder {
		ranking = append(ranking, LocationCount{Location: location, Count: summary.ByLocation[location]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	if len(ranking) > topLocationLimit {
		ranking = ranking[:topLocationLimit]
	}
	summary.TopLocations = ranking

	return summary
}
