// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// configSchema is the JSON Schema used to validate JSON configuration files
// before unmarshaling. YAML files skip schema validation and rely on the
// range checks in loadConfig instead.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "defaults": {
      "type": "object",
      "properties": {
        "charset": {"type": "string", "minLength": 1},
        "chunkSize": {"type": "integer", "minimum": 0},
        "maxInputBytes": {"type": "integer", "minimum": 0}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

// Config represents the MCP server configuration structure.
// It contains default settings for decode operations.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// MCP_BYTEBUF_CONFIG_FILE environment variable, with defaults applied for any
// missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for decode operations
	Defaults struct {
		// Charset: Charset assumed when a tool call omits one
		Charset string `json:"charset" yaml:"charset"`
		// ChunkSize: Fragment size in bytes for the composite decode path (0 disables splitting)
		ChunkSize int `json:"chunkSize" yaml:"chunkSize"`
		// MaxInputBytes: Upper bound on accepted payload size (0 means unlimited)
		MaxInputBytes int `json:"maxInputBytes" yaml:"maxInputBytes"`
	} `json:"defaults" yaml:"defaults"`
}

// detectConfigFormat determines the configuration file format based on file
// extension. It uses case-insensitive extension matching for cross-platform
// compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
// JSON data is validated against the configuration schema before unmarshaling;
// schema violations are reported with the failing fields.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		result, err := gojsonschema.Validate(
			gojsonschema.NewStringLoader(configSchema),
			gojsonschema.NewBytesLoader(data),
		)
		if err != nil {
			return fmt.Errorf("failed to validate JSON config file: %w", err)
		}
		if !result.Valid() {
			var details []string
			for _, desc := range result.Errors() {
				details = append(details, desc.String())
			}
			return fmt.Errorf("invalid JSON config file: %s", strings.Join(details, "; "))
		}
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or
// applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_BYTEBUF_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//
// The file format is detected from the extension (.json, .yaml, .yml). Values
// outside their valid range are replaced by the defaults.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Defaults.Charset = "utf-8"
	config.Defaults.ChunkSize = 0
	config.Defaults.MaxInputBytes = 0

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv("MCP_BYTEBUF_CONFIG_FILE")
	}

	// Try to load from file if path is provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Detect format and unmarshal accordingly
		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Defaults.Charset == "" {
			config.Defaults.Charset = "utf-8"
		}
		if config.Defaults.ChunkSize < 0 {
			config.Defaults.ChunkSize = 0
		}
		if config.Defaults.MaxInputBytes < 0 {
			config.Defaults.MaxInputBytes = 0
		}
	}

	return config, nil
}
