// Package tools provides the Singapore transport MCP tools implementations.
package tools

import (
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
)

// APIError represents an error that occurred while communicating with
// an external API service, with information to help users recover.
type APIError struct {
	Service     string // The API service name (e.g., "OneMap", "DataMall")
	StatusCode  int    // HTTP status code
	Message     string // Error message
	Recoverable bool   // Whether the error can be recovered from
	Guidance    string // Guidance for users on how to recover
}

// Error implements the error interface and provides a formatted error message.
func (e *APIError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s API error (%d): %s. %s", e.Service, e.StatusCode, e.Message, e.Guidance)
	}
	return fmt.Sprintf("%s API error (%d): %s", e.Service, e.StatusCode, e.Message)
}

// Common error guidance messages
const (
	// OneMap guidance
	GuidanceOneMapNoResults = "Try a more specific query, such as adding the road name or postal code."
	GuidanceOneMapNoRoute   = "No route could be found between the specified points. Check that both points are within Singapore and reachable."
	GuidanceOneMapRateLimit = "The OneMap API is rate limited. Please try again in a few seconds."
	GuidanceOneMapAuth      = "The OneMap token is missing or expired. Set ONEMAP_TOKEN and restart."
	GuidanceOneMapGeneral   = "Check your query parameters and try again."

	// DataMall guidance
	GuidanceDataMallAuth     = "The DataMall account key is missing or invalid. Set DATAMALL_ACCOUNT_KEY and restart."
	GuidanceDataMallStopCode = "Bus stop codes are 5-digit numbers printed on every bus stop pole."
	GuidanceDataMallGeneral  = "The LTA DataMall service may be briefly unavailable. Please try again."

	// NEA guidance
	GuidanceNEAGeneral = "The weather service may be briefly unavailable. Journey planning still works without it."

	// Generic guidance
	GuidanceGeneral      = "Please try again later or modify your request parameters."
	GuidanceNetworkError = "Check your internet connection and try again."
	GuidanceDataError    = "The data received was incomplete or malformed. Try different search parameters."
)

// NewAPIError creates a new APIError with appropriate guidance based on status code.
func NewAPIError(service string, statusCode int, message, guidance string) *APIError {
	// Use provided guidance if available, otherwise infer based on status code
	if guidance == "" {
		switch statusCode {
		case http.StatusTooManyRequests:
			guidance = "Rate limit exceeded. Please try again in a few moments."
		case http.StatusUnauthorized, http.StatusForbidden:
			guidance = "The API credentials were rejected. Check the configured token or account key."
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			guidance = "The request timed out. Please try again."
		case http.StatusBadRequest:
			guidance = "The request was invalid. Check your parameters and try again."
		case http.StatusInternalServerError:
			guidance = "The server encountered an error. This is likely temporary, please try again later."
		case http.StatusServiceUnavailable:
			guidance = "The service is temporarily unavailable. Please try again later."
		default:
			guidance = GuidanceGeneral
		}
	}

	return &APIError{
		Service:     service,
		StatusCode:  statusCode,
		Message:     message,
		Recoverable: statusCode != http.StatusBadRequest, // Most errors except bad requests are recoverable
		Guidance:    guidance,
	}
}

// ErrorWithGuidance returns a properly formatted error response with user guidance.
func ErrorWithGuidance(err *APIError) *mcp.CallToolResult {
	errorText := fmt.Sprintf("Error: %s\n\nGuidance: %s", err.Message, err.Guidance)
	return mcp.NewToolResultError(errorText)
}

// ErrorResponse is used for consistent error reporting
func ErrorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}
