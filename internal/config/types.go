package config

import (
	"path/filepath"

	"github.com/rangekit/rangefetch/internal/utils"
)

const (
	// DefaultChunkSize is the maximum number of CIDR entries per chunk file.
	DefaultChunkSize = 2000

	// DefaultFetchTimeoutSec bounds every provider fetch.
	DefaultFetchTimeoutSec = 30

	// DefaultUserAgent identifies rangefetch to provider endpoints.
	DefaultUserAgent = "rangefetch/1.0"

	// DefaultChunkFileTemplate names chunk files. Available variables:
	// {{provider}} and {{index}} (zero-padded, width 3).
	DefaultChunkFileTemplate = "{{provider}}-part-{{index}}.txt"
)

type Config struct {
	// General holds the pipeline settings.
	General *GeneralConfig `toml:"general"`
	// API holds settings for the read-only HTTP API ("serve" command).
	API *APIConfig `toml:"api,omitempty"`

	_absConfigFileDir string
}

type GeneralConfig struct {
	// ProvidersOutputDir is the directory for canonical per-provider lists.
	ProvidersOutputDir string `toml:"providers_output_dir" json:"providers_output_dir" validate:"required"`
	// ChunksOutputDir is the base directory for chunk files. Each provider
	// gets its own subdirectory underneath it.
	ChunksOutputDir string `toml:"chunks_output_dir" json:"chunks_output_dir" validate:"required"`
	// ChunkSize is the maximum number of CIDRs per chunk file.
	ChunkSize int `toml:"chunk_size" json:"chunk_size" validate:"required,gte=1"`
	// FetchTimeoutSec is the HTTP timeout for provider fetches, in seconds.
	FetchTimeoutSec int `toml:"fetch_timeout_sec" json:"fetch_timeout_sec" validate:"required,gte=1"`
	// UserAgent is sent with every provider fetch.
	UserAgent string `toml:"user_agent" json:"user_agent" validate:"required"`
	// ChunkFileTemplate is the chunk file name pattern. It must contain
	// {{index}}; {{provider}} is optional because chunks already live in a
	// per-provider directory.
	ChunkFileTemplate string `toml:"chunk_file_template" json:"chunk_file_template" validate:"required,chunk_template"`
}

type APIConfig struct {
	// ListenAddr is the bind address for the HTTP API (default: 127.0.0.1:8080).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"hostport_or_empty"`
}

// Default returns the built-in configuration, used when no config file exists.
func Default() *Config {
	return &Config{
		General: &GeneralConfig{
			ProvidersOutputDir: filepath.Join("lists", "providers"),
			ChunksOutputDir:    filepath.Join("lists", "chunks"),
			ChunkSize:          DefaultChunkSize,
			FetchTimeoutSec:    DefaultFetchTimeoutSec,
			UserAgent:          DefaultUserAgent,
			ChunkFileTemplate:  DefaultChunkFileTemplate,
		},
		API: &APIConfig{
			ListenAddr: "127.0.0.1:8080",
		},
	}
}

// applyDefaults fills zero-valued fields so that a partial config file works.
func (c *Config) applyDefaults() {
	def := Default()

	if c.General == nil {
		c.General = def.General
	} else {
		if c.General.ProvidersOutputDir == "" {
			c.General.ProvidersOutputDir = def.General.ProvidersOutputDir
		}
		if c.General.ChunksOutputDir == "" {
			c.General.ChunksOutputDir = def.General.ChunksOutputDir
		}
		if c.General.ChunkSize == 0 {
			c.General.ChunkSize = def.General.ChunkSize
		}
		if c.General.FetchTimeoutSec == 0 {
			c.General.FetchTimeoutSec = def.General.FetchTimeoutSec
		}
		if c.General.UserAgent == "" {
			c.General.UserAgent = def.General.UserAgent
		}
		if c.General.ChunkFileTemplate == "" {
			c.General.ChunkFileTemplate = def.General.ChunkFileTemplate
		}
	}

	if c.API == nil {
		c.API = def.API
	} else if c.API.ListenAddr == "" {
		c.API.ListenAddr = def.API.ListenAddr
	}
}

// GetAbsProvidersDir returns the canonical lists directory, resolved against
// the config file location when the config was loaded from disk.
func (c *Config) GetAbsProvidersDir() string {
	return utils.GetAbsolutePath(c.General.ProvidersOutputDir, c._absConfigFileDir)
}

// GetAbsChunksDir returns the chunks base directory, resolved against the
// config file location when the config was loaded from disk.
func (c *Config) GetAbsChunksDir() string {
	return utils.GetAbsolutePath(c.General.ChunksOutputDir, c._absConfigFileDir)
}
