package tools

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sgtransitlab/sgmcp/pkg/datamall"
	"github.com/sgtransitlab/sgmcp/pkg/nea"
	"github.com/sgtransitlab/sgmcp/pkg/onemap"
	"github.com/sgtransitlab/sgmcp/pkg/testutil"
)

// newToolRequest builds a tool call request the way the MCP server would.
func newToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: struct {
			Name      string         `json:"name"`
			Arguments map[string]any `json:"arguments,omitempty"`
			Meta      *struct {
				ProgressToken mcp.ProgressToken `json:"progressToken,omitempty"`
			} `json:"_meta,omitempty"`
		}{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultText extracts the text payload of a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("nil tool result")
	}
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			return text.Text
		}
	}
	t.Fatal("tool result carried no text content")
	return ""
}

// testRegistry wires a registry against httptest-backed upstream servers.
// Pass nil for any handler to leave that upstream failing with 503.
func testRegistry(t *testing.T, onemapHandler, datamallHandler, neaHandler http.HandlerFunc) *Registry {
	t.Helper()

	unavailable := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if onemapHandler == nil {
		onemapHandler = unavailable
	}
	if datamallHandler == nil {
		datamallHandler = unavailable
	}
	if neaHandler == nil {
		neaHandler = unavailable
	}

	onemapSrv := httptest.NewServer(onemapHandler)
	t.Cleanup(onemapSrv.Close)
	datamallSrv := httptest.NewServer(datamallHandler)
	t.Cleanup(datamallSrv.Close)
	neaSrv := httptest.NewServer(neaHandler)
	t.Cleanup(neaSrv.Close)

	logger := testutil.DiscardLogger()

	om := onemap.NewClient("test-token", logger)
	om.SetBaseURL(onemapSrv.URL)
	dm := datamall.NewClient("test-key", logger)
	dm.SetBaseURL(datamallSrv.URL)
	ne := nea.NewClient(logger)
	ne.SetBaseURL(neaSrv.URL)

	return NewRegistry(logger, Clients{OneMap: om, DataMall: dm, NEA: ne})
}
