package journey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sgtransitlab/sgmcp/pkg/geo"
	"github.com/sgtransitlab/sgmcp/pkg/onemap"
)

// Normalize converts a classified raw response into the canonical ordered
// instruction sequence. Step numbers are 1-based, contiguous and gapless
// regardless of how many sub-steps a single leg expands into. Missing
// distances and durations default to zero; the function never fails.
func Normalize(raw *onemap.RouteResponse, rt ResponseType) []ParsedInstruction {
	switch rt {
	case ResponseTransit:
		return normalizeTransit(raw.Plan.Itineraries[0])
	case ResponseDirect:
		return normalizeDirect(raw.RouteInstructions)
	default:
		return []ParsedInstruction{}
	}
}

// normalizeDirect maps walk/drive instruction tuples one-to-one.
func normalizeDirect(tuples []onemap.RouteInstruction) []ParsedInstruction {
	instructions := make([]ParsedInstruction, 0, len(tuples))

	for i, t := range tuples {
		mode := ModeWalk
		switch strings.ToLower(t.Mode) {
		case "driving":
			mode = ModeTaxi
		case "walking":
			mode = ModeWalk
		}

		text := t.Text
		if text == "" {
			text = synthesizeDirectText(t)
		}

		instructions = append(instructions, ParsedInstruction{
			Step:        i + 1,
			Type:        TypeDirect,
			Mode:        mode,
			Distance:    t.Distance,
			Duration:    t.Duration,
			Coordinates: parseLatLng(t.Coordinate),
			Instruction: text,
		})
	}

	return instructions
}

// synthesizeDirectText builds a fallback phrase for tuples whose free-text
// instruction field is empty.
func synthesizeDirectText(t onemap.RouteInstruction) string {
	direction := t.Direction
	if direction == "" {
		direction = "Continue"
	}
	dist := t.FormattedDistance
	if dist == "" {
		dist = fmt.Sprintf("%.0fm", t.Distance)
	}
	if t.StreetName != "" {
		return fmt.Sprintf("%s on %s for %s", direction, t.StreetName, dist)
	}
	return fmt.Sprintf("%s for %s", direction, dist)
}

// normalizeTransit flattens the legs of the first itinerary, expanding
// walking legs that carry turn-by-turn sub-steps. The step counter runs
// across legs, not per leg.
func normalizeTransit(it onemap.Itinerary) []ParsedInstruction {
	instructions := make([]ParsedInstruction, 0, len(it.Legs))
	step := 1

	for _, leg := range it.Legs {
		if strings.EqualFold(leg.Mode, "WALK") {
			if len(leg.Steps) > 0 {
				for _, ws := range leg.Steps {
					instructions = append(instructions, walkStepInstruction(step, ws))
					step++
				}
			} else {
				instructions = append(instructions, walkLegInstruction(step, leg))
				step++
			}
			continue
		}

		instructions = append(instructions, transitLegInstruction(step, leg))
		step++
	}

	return instructions
}

func walkStepInstruction(step int, ws onemap.WalkStep) ParsedInstruction {
	direction := ws.RelativeDirection
	if direction == "" {
		direction = "Continue"
	}

	var text string
	if ws.StreetName != "" {
		text = fmt.Sprintf("%s on %s for %.0fm", direction, ws.StreetName, ws.Distance)
	} else {
		text = fmt.Sprintf("%s for %.0fm", direction, ws.Distance)
	}

	var coords *geo.Location
	if ws.Lat != 0 || ws.Lon != 0 {
		coords = &geo.Location{Latitude: ws.Lat, Longitude: ws.Lon}
	}

	return ParsedInstruction{
		Step:        step,
		Type:        TypeTransitWalk,
		Mode:        ModeWalk,
		Distance:    ws.Distance,
		Coordinates: coords,
		Instruction: text,
	}
}

func walkLegInstruction(step int, leg onemap.Leg) ParsedInstruction {
	return ParsedInstruction{
		Step:        step,
		Type:        TypeTransitWalk,
		Mode:        ModeWalk,
		Distance:    leg.Distance,
		Duration:    leg.Duration,
		Coordinates: stopCoordinates(leg.From),
		Instruction: fmt.Sprintf("Walk %.0fm to %s", leg.Distance, stopName(leg.To, "destination")),
		From:        mapStop(leg.From),
		To:          mapStop(leg.To),
	}
}

func transitLegInstruction(step int, leg onemap.Leg) ParsedInstruction {
	service := leg.RouteShortName
	if service == "" {
		service = leg.Route
	}

	pi := ParsedInstruction{
		Step:        step,
		Type:        TypeTransit,
		Mode:        transitMode(leg.Mode),
		Distance:    leg.Distance,
		Duration:    leg.Duration,
		Coordinates: stopCoordinates(leg.From),
		Instruction: fmt.Sprintf("Take %s from %s to %s",
			service, stopName(leg.From, "origin"), stopName(leg.To, "destination")),
		Service:  service,
		Operator: leg.AgencyName,
		From:     mapStop(leg.From),
		To:       mapStop(leg.To),
	}

	// Preserve an explicitly supplied empty stop list; omit the field when
	// the source omitted it.
	if leg.IntermediateStops != nil {
		stops := make([]Stop, 0, len(leg.IntermediateStops))
		for i := range leg.IntermediateStops {
			stops = append(stops, *mapStop(&leg.IntermediateStops[i]))
		}
		pi.IntermediateStops = stops
	}

	return pi
}

// transitMode maps an upstream leg mode string to the canonical mode. RAIL
// and SUBWAY both map to TRAIN; the mapping is uniform across all callers.
func transitMode(mode string) Mode {
	switch strings.ToUpper(mode) {
	case "BUS":
		return ModeBus
	default:
		return ModeTrain
	}
}

func mapStop(sp *onemap.StopPoint) *Stop {
	if sp == nil {
		return nil
	}
	return &Stop{
		Name:        sp.Name,
		StopCode:    sp.StopCode,
		Coordinates: stopCoordinates(sp),
	}
}

func stopCoordinates(sp *onemap.StopPoint) *geo.Location {
	if sp == nil || (sp.Lat == 0 && sp.Lon == 0) {
		return nil
	}
	return &geo.Location{Latitude: sp.Lat, Longitude: sp.Lon}
}

func stopName(sp *onemap.StopPoint, fallback string) string {
	if sp == nil || sp.Name == "" {
		return fallback
	}
	return sp.Name
}

// parseLatLng parses a "lat,lng" string, returning nil when the string is
// absent or malformed.
func parseLatLng(s string) *geo.Location {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil
	}
	return &geo.Location{Latitude: lat, Longitude: lng}
}
