package config

import (
	"strings"
	"testing"
)

func TestValidateConfig_Defaults(t *testing.T) {
	if err := Default().ValidateConfig(); err != nil {
		t.Errorf("Expected default config to be valid, got: %v", err)
	}
}

func TestValidateConfig_MissingGeneral(t *testing.T) {
	cfg := &Config{}

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected validation error for missing general section")
	}
	if !strings.Contains(err.Error(), "general") {
		t.Errorf("Expected error to mention 'general', got: %v", err)
	}
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected string
	}{
		{
			name:     "negative chunk size",
			mutate:   func(c *Config) { c.General.ChunkSize = -1 },
			expected: "chunk_size",
		},
		{
			name:     "zero fetch timeout",
			mutate:   func(c *Config) { c.General.FetchTimeoutSec = -5 },
			expected: "fetch_timeout_sec",
		},
		{
			name:     "template without index placeholder",
			mutate:   func(c *Config) { c.General.ChunkFileTemplate = "{{provider}}.txt" },
			expected: "chunk_file_template",
		},
		{
			name:     "bad api listen address",
			mutate:   func(c *Config) { c.API.ListenAddr = "not-a-hostport" },
			expected: "listen_addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.ValidateConfig()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("Expected error to mention %q, got: %v", tt.expected, err)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	ve := ValidationErrors{
		{FieldPath: "general.chunk_size", Message: "must be >= 1"},
		{FieldPath: "api.listen_addr", Message: "must be in format 'host:port' or empty"},
	}

	msg := ve.Error()
	if !strings.Contains(msg, "2 error(s)") {
		t.Errorf("Expected error count in message, got: %s", msg)
	}
	if !strings.Contains(msg, "general.chunk_size") {
		t.Errorf("Expected field path in message, got: %s", msg)
	}
}

func TestValidationErrors_Empty(t *testing.T) {
	var ve ValidationErrors
	if ve.Error() != "no validation errors" {
		t.Errorf("Unexpected message for empty errors: %s", ve.Error())
	}
}
