// Package server provides the MCP server implementation for the Singapore
// transport integration.
package server

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/sgtransitlab/sgmcp/pkg/datamall"
	"github.com/sgtransitlab/sgmcp/pkg/nea"
	"github.com/sgtransitlab/sgmcp/pkg/onemap"
	"github.com/sgtransitlab/sgmcp/pkg/tools"
	"github.com/sgtransitlab/sgmcp/pkg/tools/prompts"
)

const (
	// ServerName is the name of the MCP server
	ServerName = "sg-transport-mcp-server"

	// ServerVersion is the version of the MCP server
	ServerVersion = "0.1.0"
)

// Environment variables holding upstream API credentials.
const (
	EnvOneMapToken        = "ONEMAP_TOKEN"
	EnvDataMallAccountKey = "DATAMALL_ACCOUNT_KEY"
)

// Server encapsulates the MCP server with Singapore transport tools.
type Server struct {
	srv *server.MCPServer
}

// NewServer creates a Singapore transport MCP server with all tools and
// prompts registered, building upstream clients from environment credentials.
func NewServer() (*Server, error) {
	logger := slog.Default()

	accountKey := os.Getenv(EnvDataMallAccountKey)
	if accountKey == "" {
		return nil, fmt.Errorf("%s is not set; bus, train and taxi tools need a DataMall account key", EnvDataMallAccountKey)
	}
	// OneMap search and routing work unauthenticated at reduced rate limits.
	token := os.Getenv(EnvOneMapToken)
	if token == "" {
		logger.Warn("ONEMAP_TOKEN not set, using unauthenticated OneMap access")
	}

	clients := tools.Clients{
		OneMap:   onemap.NewClient(token, logger),
		DataMall: datamall.NewClient(accountKey, logger),
		NEA:      nea.NewClient(logger),
	}
	return NewServerWithClients(logger, clients)
}

// NewServerWithClients creates a server around pre-built upstream clients.
// Used by tests and embedders that manage credentials themselves.
func NewServerWithClients(logger *slog.Logger, clients tools.Clients) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("initializing Singapore transport MCP server",
		"name", ServerName,
		"version", ServerVersion)

	srv := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	registry := tools.NewRegistry(logger, clients)
	registry.RegisterTools(srv)
	prompts.RegisterJourneyPrompts(srv)

	return &Server{srv: srv}, nil
}

// Run starts the MCP server using stdin/stdout for communication.
func (s *Server) Run() error {
	return server.ServeStdio(s.srv)
}
