// Package journey normalizes heterogeneous OneMap routing responses into a
// canonical instruction model and derives summaries, formatted directions and
// map visualization data from it.
//
// The pipeline is: Classify tags the raw response shape, Normalize produces
// ParsedInstruction values, Enricher attaches advisory context, BuildSummary
// aggregates journey statistics, FormatInstructions renders text and
// BuildVisualization emits map geometry. BuildResult runs all of it.
package journey

import (
	"github.com/sgtransitlab/sgmcp/pkg/geo"
)

// ResponseType tags the shape of a raw routing response.
type ResponseType int

const (
	// ResponseInvalid marks a nil or empty response: no route was found.
	ResponseInvalid ResponseType = iota
	// ResponseTransit marks a public-transport itinerary response.
	ResponseTransit
	// ResponseDirect marks a turn-by-turn walk/drive response.
	ResponseDirect
)

// String returns the summary label for the response type.
func (rt ResponseType) String() string {
	switch rt {
	case ResponseTransit:
		return "PUBLIC_TRANSPORT"
	case ResponseDirect:
		return "DIRECT_ROUTING"
	default:
		return "ERROR"
	}
}

// InstructionType distinguishes how an instruction was derived.
type InstructionType string

const (
	TypeDirect      InstructionType = "direct"
	TypeTransit     InstructionType = "transit"
	TypeTransitWalk InstructionType = "transit_walk"
)

// Mode is the canonical travel mode of an instruction.
type Mode string

const (
	ModeWalk   Mode = "WALK"
	ModeBus    Mode = "BUS"
	ModeTrain  Mode = "TRAIN"
	ModeSubway Mode = "SUBWAY"
	ModeTaxi   Mode = "TAXI"
)

// Stop is the canonical stop descriptor carried on transit instructions.
type Stop struct {
	Name        string        `json:"name"`
	StopCode    string        `json:"stopCode,omitempty"`
	Coordinates *geo.Location `json:"coordinates,omitempty"`
}

// Context is advisory, non-authoritative annotation attached to an
// instruction for user convenience.
type Context struct {
	Area              string `json:"area"`
	TimeOfDay         string `json:"timeOfDay"`
	WeatherNote       string `json:"weatherNote"`
	Landmark          string `json:"landmark,omitempty"`
	SafetyNote        string `json:"safetyNote,omitempty"`
	AccessibilityInfo string `json:"accessibilityInfo,omitempty"`
}

// ParsedInstruction is the canonical, provider-agnostic representation of one
// step of a journey. Instances are created once by Normalize, optionally
// annotated by Enricher, and immutable afterwards.
type ParsedInstruction struct {
	Step        int             `json:"step"`
	Type        InstructionType `json:"type"`
	Mode        Mode            `json:"mode"`
	Distance    float64         `json:"distance"`           // meters
	Duration    float64         `json:"duration,omitempty"` // seconds
	Coordinates *geo.Location   `json:"coordinates"`        // nil only when the source supplies none
	Instruction string          `json:"instruction"`

	// Transit-only fields
	Service           string `json:"service,omitempty"`
	Operator          string `json:"operator,omitempty"`
	From              *Stop  `json:"from,omitempty"`
	To                *Stop  `json:"to,omitempty"`
	IntermediateStops []Stop `json:"intermediateStops,omitempty"`

	EstimatedContext *Context `json:"estimatedContext,omitempty"`
}

// Summary aggregates journey statistics. It is recomputed per request and
// never persisted.
type Summary struct {
	ResponseType     string  `json:"responseType"`
	TotalTime        float64 `json:"totalTime,omitempty"`     // seconds
	TotalDistance    float64 `json:"totalDistance,omitempty"` // meters
	TotalCost        float64 `json:"totalCost"`
	WalkDistance     float64 `json:"walkDistance,omitempty"` // meters
	Transfers        int     `json:"transfers,omitempty"`
	Fare             string  `json:"fare,omitempty"`
	InstructionCount int     `json:"instructionCount"`
	PolylineCount    int     `json:"polylineCount"`
}

// Result is the full journey payload handed back to tool handlers.
type Result struct {
	Summary               Summary                `json:"summary"`
	Instructions          []ParsedInstruction    `json:"instructions"`
	FormattedInstructions []string               `json:"formattedInstructions"`
	Polylines             []*geo.DecodedPolyline `json:"polylines"`
	Visualization         Visualization          `json:"visualization"`
}
