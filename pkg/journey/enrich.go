package journey

import (
	"time"
)

// Advisory note text. These are deliberately static: the core only points at
// conditions to check, the live weather collaborator supplies real values.
const (
	weatherNote       = "Check the NEA 2-hour forecast for current conditions before travelling"
	accessibilityInfo = "Most MRT stations and public buses are wheelchair accessible"
	safetyNoteNight   = "Well-lit area recommended for night travel"
	safetyNoteDay     = "Safe area for travel"
)

// region is one named Singapore area with its bounding rectangle and an
// optional landmark phrase.
type region struct {
	name           string
	minLat, maxLat float64
	minLon, maxLon float64
	landmark       string
}

// regions is a deliberate simplification: fixed rectangles instead of real
// reverse geocoding. AreaName isolates the lookup so the table can later be
// replaced by a geocoding collaborator.
var regions = []region{
	{"Punggol/Sengkang", 1.37, 1.42, 103.87, 103.92, "Near Waterway Point"},
	{"Novena/Toa Payoh", 1.31, 1.345, 103.83, 103.86, "Near Novena Square"},
	{"Chinatown/CBD", 1.27, 1.29, 103.83, 103.86, "Near Maxwell Food Centre"},
	{"Jurong", 1.32, 1.36, 103.70, 103.76, "Near Jurong East interchange"},
	{"Orchard/Somerset", 1.295, 1.31, 103.82, 103.845, "Near ION Orchard"},
}

// AreaName returns the named region containing the coordinate, or
// "Singapore" when no rectangle matches.
func AreaName(lat, lon float64) string {
	for _, r := range regions {
		if lat >= r.minLat && lat <= r.maxLat && lon >= r.minLon && lon <= r.maxLon {
			return r.name
		}
	}
	return "Singapore"
}

// landmarkFor returns the landmark phrase for a region name, empty when the
// region has none.
func landmarkFor(area string) string {
	for _, r := range regions {
		if r.name == area {
			return r.landmark
		}
	}
	return ""
}

// Enricher attaches advisory context to instructions. The clock is
// injectable so time-of-day classification is deterministic in tests; the
// zero value uses the wall clock.
type Enricher struct {
	Now func() time.Time
}

// now returns the current time from the injected clock or time.Now.
func (e *Enricher) now() time.Time {
	if e != nil && e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Enrich attaches an EstimatedContext to every instruction in place. The
// operation is idempotent and side-effect-free: re-running it with the same
// clock produces identical annotations.
func (e *Enricher) Enrich(instructions []ParsedInstruction) {
	hour := e.now().Hour()
	tod := timeOfDay(hour)

	for i := range instructions {
		ins := &instructions[i]

		if ins.Coordinates == nil {
			// Degraded context: no location to derive area or safety from.
			ins.EstimatedContext = &Context{
				Area:        "Unknown",
				TimeOfDay:   tod,
				WeatherNote: weatherNote,
			}
			continue
		}

		area := AreaName(ins.Coordinates.Latitude, ins.Coordinates.Longitude)
		ins.EstimatedContext = &Context{
			Area:              area,
			TimeOfDay:         tod,
			WeatherNote:       weatherNote,
			Landmark:          landmarkFor(area),
			SafetyNote:        safetyNote(hour),
			AccessibilityInfo: accessibilityInfo,
		}
	}
}

// timeOfDay buckets an hour of day into a peak classification.
func timeOfDay(hour int) string {
	switch {
	case hour >= 7 && hour <= 9:
		return "Morning Peak"
	case hour >= 17 && hour <= 19:
		return "Evening Peak"
	case hour >= 23 || hour <= 5:
		return "Late Night"
	default:
		return "Off Peak"
	}
}

// safetyNote picks the advisory for the current hour. Night runs from 22:00
// through 06:59.
func safetyNote(hour int) string {
	if hour >= 22 || hour <= 6 {
		return safetyNoteNight
	}
	return safetyNoteDay
}
