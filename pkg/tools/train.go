package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// trainStatusNormal is DataMall's status code for normal operation.
const trainStatusNormal = 1

// TrainAlertsTool returns a tool definition for MRT/LRT service status
func TrainAlertsTool() mcp.Tool {
	return mcp.NewTool("train_alerts",
		mcp.WithDescription("Get current MRT/LRT service status and disruption alerts"),
	)
}

// trainDisruption is one affected stretch of line in the tool output.
type trainDisruption struct {
	Line           string `json:"line"`
	Direction      string `json:"direction,omitempty"`
	Stations       string `json:"stations,omitempty"`
	FreePublicBus  string `json:"freePublicBus,omitempty"`
	FreeMRTShuttle string `json:"freeMrtShuttle,omitempty"`
}

// handleTrainAlerts implements train service status lookups against DataMall.
func (r *Registry) handleTrainAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "train_alerts")

	alerts, err := r.clients.DataMall.TrainServiceAlerts(ctx)
	if err != nil {
		logger.Error("train alerts lookup failed", "error", err)
		return ErrorWithGuidance(NewAPIError("DataMall", 0, "Failed to fetch train service alerts", GuidanceDataMallGeneral)), nil
	}

	status := "NORMAL"
	if alerts.Status != trainStatusNormal {
		status = "DISRUPTED"
	}

	disruptions := make([]trainDisruption, 0, len(alerts.AffectedSegments))
	for _, seg := range alerts.AffectedSegments {
		disruptions = append(disruptions, trainDisruption{
			Line:           seg.Line,
			Direction:      seg.Direction,
			Stations:       seg.Stations,
			FreePublicBus:  seg.FreePublicBus,
			FreeMRTShuttle: seg.FreeMRTShuttle,
		})
	}

	messages := make([]string, 0, len(alerts.Message))
	for _, m := range alerts.Message {
		if m.Content != "" {
			messages = append(messages, m.Content)
		}
	}

	output := struct {
		Status      string            `json:"status"`
		Disruptions []trainDisruption `json:"disruptions"`
		Messages    []string          `json:"messages,omitempty"`
	}{
		Status:      status,
		Disruptions: disruptions,
		Messages:    messages,
	}

	resultBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}
