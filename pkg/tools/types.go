// Package tools provides the Singapore transport MCP tools implementations.
package tools

import (
	"github.com/sgtransitlab/sgmcp/pkg/geo"
)

// Place represents a named Singapore location returned by geocoding tools.
type Place struct {
	Name     string       `json:"name"`
	Address  string       `json:"address,omitempty"`
	Block    string       `json:"block,omitempty"`
	Road     string       `json:"road,omitempty"`
	Postal   string       `json:"postal,omitempty"`
	Location geo.Location `json:"location"`
	Score    float64      `json:"score,omitempty"` // fuzzy match score, search tools only
}
