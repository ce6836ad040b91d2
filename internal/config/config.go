// Package config loads contentgate configuration from config files,
// environment variables, and flags via viper, and converts the raw values
// into the typed weight, standards, and policy records the engine consumes.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dotcommander/contentgate/internal/dimension"
	"github.com/dotcommander/contentgate/internal/gate"
	"github.com/dotcommander/contentgate/internal/score"
)

// Config represents the contentgate configuration.
type Config struct {
	Root        string             `mapstructure:"root"`
	Exclude     []string           `mapstructure:"exclude"`
	Keyword     string             `mapstructure:"keyword"`
	Format      string             `mapstructure:"format"`
	Output      string             `mapstructure:"output"`
	FailOn      string             `mapstructure:"failOn"`
	Quiet       bool               `mapstructure:"quiet"`
	Verbose     bool               `mapstructure:"verbose"`
	Concurrency int                `mapstructure:"concurrency"`
	Weights     map[string]float64 `mapstructure:"weights"`
	Standards   StandardsConfig    `mapstructure:"standards"`
	Policy      PolicyConfig       `mapstructure:"policy"`
	Schemas     SchemaConfig       `mapstructure:"schemas"`
}

// StandardsConfig mirrors gate.QualityStandards with string dimension keys so
// it can round-trip through config files.
type StandardsConfig struct {
	Minimums            map[string]int `mapstructure:"minimums"`
	MinOverallScore     int            `mapstructure:"minOverallScore"`
	RequireAllGatesPass bool           `mapstructure:"requireAllGatesPass"`
}

// PolicyConfig mirrors gate.DecisionPolicy.
type PolicyConfig struct {
	CriticalWeight  float64 `mapstructure:"criticalWeight"`
	MaxGateFailures int     `mapstructure:"maxGateFailures"`
	ApproveScore    int     `mapstructure:"approveScore"`
}

// SchemaConfig controls frontmatter schema validation.
type SchemaConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig loads configuration: defaults, then the first readable
// .contentgaterc file, then CONTENTGATE_* environment variables. An explicit
// rootPath overrides whatever the file provided.
func LoadConfig(rootPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	configPaths := []string{".contentgaterc.json", ".contentgaterc.yaml", ".contentgaterc.yml"}
	for _, path := range configPaths {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err == nil {
			break
		}
	}

	v.SetEnvPrefix("CONTENTGATE")
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("format", "console")
	v.SetDefault("failOn", "rejected")
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)
	v.SetDefault("concurrency", 4)
	v.SetDefault("schemas.enabled", true)

	defaults := score.DefaultWeights()
	weights := make(map[string]float64, len(defaults))
	for d, w := range defaults {
		weights[d.String()] = w
	}
	v.SetDefault("weights", weights)

	standards := gate.DefaultStandards()
	minimums := make(map[string]int, len(standards.Minimums))
	for d, m := range standards.Minimums {
		minimums[d.String()] = m
	}
	v.SetDefault("standards.minimums", minimums)
	v.SetDefault("standards.minOverallScore", standards.MinOverallScore)
	v.SetDefault("standards.requireAllGatesPass", standards.RequireAllGatesPass)

	policy := gate.DefaultPolicy()
	v.SetDefault("policy.criticalWeight", policy.CriticalWeight)
	v.SetDefault("policy.maxGateFailures", policy.MaxGateFailures)
	v.SetDefault("policy.approveScore", policy.ApproveScore)
}

// validateConfig checks settings the engine cannot check itself: output
// plumbing and verdict names. Weight and standards values are validated by
// the typed conversions below.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	switch config.FailOn {
	case "rejected", "needs_revision", "never":
	default:
		return fmt.Errorf("invalid fail-on level: %s. Must be 'rejected', 'needs_revision', or 'never'", config.FailOn)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	for name := range config.Weights {
		if !dimension.Known(dimension.Dimension(name)) {
			return fmt.Errorf("unknown dimension in weights: %s", name)
		}
	}
	for name := range config.Standards.Minimums {
		if !dimension.Known(dimension.Dimension(name)) {
			return fmt.Errorf("unknown dimension in standards.minimums: %s", name)
		}
	}

	return nil
}

// EngineWeights converts the raw weight table to typed dimension keys.
// Missing dimensions fall back to their default weight so a config file can
// adjust one dimension without restating all six.
func (c *Config) EngineWeights() map[dimension.Dimension]float64 {
	weights := score.DefaultWeights()
	for name, w := range c.Weights {
		weights[dimension.Dimension(name)] = w
	}
	return weights
}

// EngineStandards converts the raw standards to a typed record, with the
// same partial-override semantics as EngineWeights.
func (c *Config) EngineStandards() gate.QualityStandards {
	standards := gate.DefaultStandards()
	for name, m := range c.Standards.Minimums {
		standards.Minimums[dimension.Dimension(name)] = m
	}
	if c.Standards.MinOverallScore != 0 {
		standards.MinOverallScore = c.Standards.MinOverallScore
	}
	standards.RequireAllGatesPass = c.Standards.RequireAllGatesPass
	return standards
}

// EnginePolicy converts the raw policy to a typed record.
func (c *Config) EnginePolicy() gate.DecisionPolicy {
	policy := gate.DefaultPolicy()
	if c.Policy.CriticalWeight != 0 {
		policy.CriticalWeight = c.Policy.CriticalWeight
	}
	if c.Policy.MaxGateFailures != 0 {
		policy.MaxGateFailures = c.Policy.MaxGateFailures
	}
	if c.Policy.ApproveScore != 0 {
		policy.ApproveScore = c.Policy.ApproveScore
	}
	return policy
}

// SaveConfig writes the configuration to a JSON file, creating parent
// directories as needed.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
