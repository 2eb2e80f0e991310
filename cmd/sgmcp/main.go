package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sgtransitlab/sgmcp/pkg/server"
	"github.com/sgtransitlab/sgmcp/pkg/version"
)

var (
	showVersionFlag bool
	debug           bool
	generateConfig  string
)

func init() {
	flag.BoolVar(&showVersionFlag, "version", false, "Display version information")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&generateConfig, "generate-config", "", "Generate a Claude Desktop Client config file at the specified path")
}

func main() {
	flag.Parse()

	// Configure logging
	var logLevel slog.Level
	if debug {
		logLevel = slog.LevelDebug
	} else {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Show version and exit if requested
	if showVersionFlag {
		fmt.Println(version.String())
		return
	}

	// Generate Claude Desktop config if requested
	if generateConfig != "" {
		if err := generateClientConfig(generateConfig); err != nil {
			logger.Error("failed to generate config", "error", err)
			os.Exit(1)
		}
		logger.Info("successfully generated Claude Desktop Client config", "path", generateConfig)
		return
	}

	// Credentials may come from a local .env during development
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded environment from .env")
	}

	logger.Info("starting Singapore transport MCP server",
		"version", version.BuildVersion,
		"log_level", logLevel.String())

	// Create and run the MCP server
	srv, err := server.NewServer()
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	logger.Info("server initialized, waiting for requests")
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// generateClientConfig creates or updates a Claude Desktop Client config file
func generateClientConfig(outputPath string) error {
	logger := slog.Default()

	// Get absolute path to executable
	execPath, err := os.Executable()
	if err != nil {
		execPath = os.Args[0] // Fallback to args if cannot get executable path
	}
	absExecPath, err := filepath.Abs(execPath)
	if err != nil {
		absExecPath = execPath // Use as is if cannot resolve absolute path
	}

	// Prepare our server config
	sgConfig := map[string]interface{}{
		"command": absExecPath,
		"args":    []string{},
		"env": map[string]string{
			server.EnvDataMallAccountKey: "",
			server.EnvOneMapToken:        "",
		},
	}

	// Define the config structure
	var config map[string]interface{}

	// Check if file exists already
	if _, err := os.Stat(outputPath); err == nil {
		// File exists, read it
		data, err := os.ReadFile(outputPath)
		if err != nil {
			return fmt.Errorf("failed to read existing config: %w", err)
		}

		// Parse existing JSON
		if err := json.Unmarshal(data, &config); err != nil {
			logger.Warn("existing config is not valid JSON, will create new", "error", err)
			config = make(map[string]interface{})
		}
	} else {
		// File doesn't exist, create new config
		config = make(map[string]interface{})
	}

	// Check if mcpServers exists, create it if not
	mcpServers, ok := config["mcpServers"].(map[string]interface{})
	if !ok {
		mcpServers = make(map[string]interface{})
		config["mcpServers"] = mcpServers
	}

	// Add or update our server
	mcpServers["SGTransport"] = sgConfig

	// Marshal to JSON with pretty printing
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Validate the JSON by attempting to unmarshal it
	var validation interface{}
	if err := json.Unmarshal(data, &validation); err != nil {
		return fmt.Errorf("generated invalid JSON: %w", err)
	}

	// Add a newline at the end for better formatting
	data = append(data, '\n')

	// Make sure parent directory exists
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to the output file
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
