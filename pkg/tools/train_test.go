package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trainNormalBody = `{"value": {"Status": 1, "AffectedSegments": [], "Message": []}}`

const trainDisruptedBody = `{
	"value": {
		"Status": 2,
		"AffectedSegments": [{
			"Line": "NSL",
			"Direction": "Both",
			"Stations": "NS1,NS2,NS3",
			"FreePublicBus": "NS1,NS2,NS3",
			"FreeMRTShuttle": "NS1,NS2,NS3",
			"MRTShuttleDirection": "Both"
		}],
		"Message": [{
			"Content": "NSL: No train service between Jurong East and Bukit Gombak towards Woodlands.",
			"CreatedDate": "2024-03-11 08:00:00"
		}]
	}
}`

func TestHandleTrainAlertsNormal(t *testing.T) {
	r := testRegistry(t, nil,
		func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(trainNormalBody))
		},
		nil,
	)

	result, err := r.handleTrainAlerts(context.Background(), newToolRequest("train_alerts", nil))
	require.NoError(t, err)

	var out struct {
		Status      string            `json:"status"`
		Disruptions []trainDisruption `json:"disruptions"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "NORMAL", out.Status)
	assert.Empty(t, out.Disruptions)
}

func TestHandleTrainAlertsDisrupted(t *testing.T) {
	r := testRegistry(t, nil,
		func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(trainDisruptedBody))
		},
		nil,
	)

	result, err := r.handleTrainAlerts(context.Background(), newToolRequest("train_alerts", nil))
	require.NoError(t, err)

	var out struct {
		Status      string            `json:"status"`
		Disruptions []trainDisruption `json:"disruptions"`
		Messages    []string          `json:"messages"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))

	assert.Equal(t, "DISRUPTED", out.Status)
	require.Len(t, out.Disruptions, 1)
	assert.Equal(t, "NSL", out.Disruptions[0].Line)
	assert.Equal(t, "NS1,NS2,NS3", out.Disruptions[0].Stations)
	require.Len(t, out.Messages, 1)
	assert.Contains(t, out.Messages[0], "No train service")
}

func TestHandleTrainAlertsUpstreamFailure(t *testing.T) {
	r := testRegistry(t, nil, nil, nil)

	result, err := r.handleTrainAlerts(context.Background(), newToolRequest("train_alerts", nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Failed to fetch train service alerts")
}
