// Package config loads run settings and assumption files for the CLI and API
// binaries. Assumption files may be YAML or HJSON (picked by extension), so
// hand-maintained configs can carry comments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"dcf_valuation/pkg/core/assumption"
	"dcf_valuation/pkg/core/valuation"
)

// Settings holds the directory and persistence options shared by the binaries.
// Values come from the environment, with working-directory defaults.
type Settings struct {
	DataDir   string
	OutputDir string
	PersistDB bool
}

// FromEnv builds Settings from DATA_DIR, OUTPUT_DIR and PERSIST_DB. The
// binaries call godotenv.Load first so a .env file feeds the same variables.
func FromEnv() Settings {
	s := Settings{
		DataDir:   os.Getenv("DATA_DIR"),
		OutputDir: os.Getenv("OUTPUT_DIR"),
	}
	if s.DataDir == "" {
		s.DataDir = "./data"
	}
	if s.OutputDir == "" {
		s.OutputDir = "./artifacts"
	}
	s.PersistDB = os.Getenv("PERSIST_DB") == "true"
	return s
}

// EnsureDirs creates the configured directories if missing.
func (s Settings) EnsureDirs() error {
	for _, dir := range []string{s.DataDir, s.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// RunConfig is the on-disk shape of a valuation request. The optional CAPM
// block derives the WACC from market parameters when the assumptions leave it
// unset; an explicit wacc always wins.
type RunConfig struct {
	Assumptions assumption.Assumptions `json:"assumptions" yaml:"assumptions"`
	CAPM        *valuation.CAPMInput   `json:"capm,omitempty" yaml:"capm"`

	// HistoricalCSV optionally points at a revenue series, relative to the
	// data directory unless absolute.
	HistoricalCSV string `json:"historical_csv,omitempty" yaml:"historical_csv"`
}

// LoadRunConfig reads and decodes a run configuration file. Supported
// extensions: .yaml/.yml and .hjson/.json.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg RunConfig
	cfg.Assumptions = assumption.Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return RunConfig{}, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case ".hjson", ".json":
		if err := hjson.Unmarshal(data, &cfg); err != nil {
			return RunConfig{}, fmt.Errorf("failed to parse HJSON config %s: %w", path, err)
		}
	default:
		return RunConfig{}, fmt.Errorf("unsupported config extension %q (want .yaml, .yml, .hjson or .json)", ext)
	}

	if cfg.Assumptions.WACC == 0 && cfg.CAPM != nil {
		cfg.Assumptions.WACC = valuation.DeriveWACC(*cfg.CAPM)
	}
	return cfg, nil
}
