package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateClientConfig(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("new config", func(t *testing.T) {
		path := filepath.Join(tmpDir, "config.json")
		if err := generateClientConfig(path); err != nil {
			t.Fatalf("generateClientConfig() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read config file: %v", err)
		}

		var config map[string]interface{}
		if err := json.Unmarshal(data, &config); err != nil {
			t.Fatalf("Failed to parse config JSON: %v", err)
		}

		mcpServers, ok := config["mcpServers"].(map[string]interface{})
		if !ok {
			t.Fatal("Config missing 'mcpServers' section")
		}
		entry, ok := mcpServers["SGTransport"].(map[string]interface{})
		if !ok {
			t.Fatal("Config missing 'SGTransport' server entry")
		}
		if cmd, _ := entry["command"].(string); cmd == "" {
			t.Error("Server entry missing command")
		}
		env, ok := entry["env"].(map[string]interface{})
		if !ok {
			t.Fatal("Server entry missing env section")
		}
		if _, ok := env["DATAMALL_ACCOUNT_KEY"]; !ok {
			t.Error("env section missing DATAMALL_ACCOUNT_KEY placeholder")
		}
	})

	t.Run("merge with existing", func(t *testing.T) {
		path := filepath.Join(tmpDir, "merge.json")
		existing := map[string]interface{}{
			"existing_key": "existing_value",
			"mcpServers": map[string]interface{}{
				"Other": map[string]interface{}{"command": "/usr/bin/other"},
			},
		}
		data, err := json.Marshal(existing)
		if err != nil {
			t.Fatalf("Failed to marshal existing config: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("Failed to write existing config: %v", err)
		}

		if err := generateClientConfig(path); err != nil {
			t.Fatalf("generateClientConfig() error = %v", err)
		}

		merged, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read merged config: %v", err)
		}
		var config map[string]interface{}
		if err := json.Unmarshal(merged, &config); err != nil {
			t.Fatalf("Failed to parse merged config JSON: %v", err)
		}

		if val, ok := config["existing_key"]; !ok || val != "existing_value" {
			t.Error("Merge failed to preserve existing content")
		}
		mcpServers, _ := config["mcpServers"].(map[string]interface{})
		if _, ok := mcpServers["Other"]; !ok {
			t.Error("Merge failed to preserve existing server entry")
		}
		if _, ok := mcpServers["SGTransport"]; !ok {
			t.Error("Merge failed to add SGTransport server entry")
		}
	})

	t.Run("invalid existing json replaced", func(t *testing.T) {
		path := filepath.Join(tmpDir, "broken.json")
		if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
			t.Fatalf("Failed to write broken config: %v", err)
		}
		if err := generateClientConfig(path); err != nil {
			t.Fatalf("generateClientConfig() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read config file: %v", err)
		}
		var config map[string]interface{}
		if err := json.Unmarshal(data, &config); err != nil {
			t.Fatalf("Rewritten config is not valid JSON: %v", err)
		}
	})
}
