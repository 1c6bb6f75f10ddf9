// Package cfg loads settings for the command-line tools from a YAML file or
// the environment.
package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	roc "github.com/jamesainslie/go-roc"
	"github.com/jamesainslie/go-roc/dataset"
)

// ConfigFileEnv names the environment variable pointing at a YAML config file.
const ConfigFileEnv = "ROC_CONFIG_FILE"

// Settings is the resolved configuration shared by roc-cli and roc-bench.
type Settings struct {
	Dataset         string
	Prevalence      *int // nil selects the dataset's own default
	Threshold       float64
	Curve           roc.CurveKind
	CatalogPath     string
	SamplesDir      string
	Jitter          bool
	Seed            uint64
	PrecisionWeight float64
	RecallWeight    float64
	LogLevel        slog.Level
}

// ConfigFile is the YAML layout of the file named by ROC_CONFIG_FILE.
type ConfigFile struct {
	View struct {
		Dataset    string   `yaml:"dataset"`
		Prevalence *int     `yaml:"prevalence"`
		Threshold  *float64 `yaml:"threshold"`
		Curve      string   `yaml:"curve"`
	} `yaml:"view"`

	Data struct {
		Catalog    string `yaml:"catalog"`
		SamplesDir string `yaml:"samplesDir"`
		Jitter     bool   `yaml:"jitter"`
		Seed       uint64 `yaml:"seed"`
	} `yaml:"data"`

	Bench struct {
		PrecisionWeight *float64 `yaml:"precisionWeight"`
		RecallWeight    *float64 `yaml:"recallWeight"`
	} `yaml:"bench"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Dataset:         dataset.Separated,
		Threshold:       50,
		Curve:           roc.CurveROC,
		Seed:            1,
		PrecisionWeight: 1,
		RecallWeight:    1,
		LogLevel:        slog.LevelInfo,
	}
}

// Load reads an optional .env file, then settings from the YAML file named by
// ROC_CONFIG_FILE, falling back to environment variables alone.
// Environment variables override file values.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load .env: %w", err)
	}

	if configPath := os.Getenv(ConfigFileEnv); configPath != "" {
		return loadFromYAML(configPath)
	}

	return loadFromEnv(Defaults())
}

func loadFromYAML(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	s := Defaults()
	if config.View.Dataset != "" {
		s.Dataset = config.View.Dataset
	}
	s.Prevalence = config.View.Prevalence
	if config.View.Threshold != nil {
		s.Threshold = *config.View.Threshold
	}
	if config.View.Curve != "" {
		s.Curve = roc.CurveKind(config.View.Curve)
	}
	s.CatalogPath = config.Data.Catalog
	s.SamplesDir = config.Data.SamplesDir
	s.Jitter = config.Data.Jitter
	if config.Data.Seed != 0 {
		s.Seed = config.Data.Seed
	}
	if config.Bench.PrecisionWeight != nil {
		s.PrecisionWeight = *config.Bench.PrecisionWeight
	}
	if config.Bench.RecallWeight != nil {
		s.RecallWeight = *config.Bench.RecallWeight
	}
	if config.Log.Level != "" {
		if err := s.LogLevel.UnmarshalText([]byte(config.Log.Level)); err != nil {
			return Settings{}, fmt.Errorf("invalid log level %q: %w", config.Log.Level, err)
		}
	}

	return loadFromEnv(s)
}

func loadFromEnv(s Settings) (Settings, error) {
	s.Dataset = getEnvOrDefault("ROC_DATASET", s.Dataset)
	if v, ok := os.LookupEnv("ROC_PREVALENCE"); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid ROC_PREVALENCE %q: %w", v, err)
		}
		s.Prevalence = &p
	}
	s.Threshold = getFloatOrDefault("ROC_THRESHOLD", s.Threshold)
	s.Curve = roc.CurveKind(strings.ToLower(getEnvOrDefault("ROC_CURVE", string(s.Curve))))
	s.CatalogPath = getEnvOrDefault("ROC_CATALOG", s.CatalogPath)
	s.SamplesDir = getEnvOrDefault("ROC_SAMPLES_DIR", s.SamplesDir)
	s.Jitter = getBoolOrDefault("ROC_JITTER", s.Jitter)
	s.Seed = getUintOrDefault("ROC_SEED", s.Seed)
	s.PrecisionWeight = getFloatOrDefault("ROC_PRECISION_WEIGHT", s.PrecisionWeight)
	s.RecallWeight = getFloatOrDefault("ROC_RECALL_WEIGHT", s.RecallWeight)
	if v := os.Getenv("ROC_LOG_LEVEL"); v != "" {
		if err := s.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Settings{}, fmt.Errorf("invalid ROC_LOG_LEVEL %q: %w", v, err)
		}
	}

	if err := Validate(&s); err != nil {
		return Settings{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return s, nil
}

// Validate reports every invalid field at once.
func Validate(s *Settings) error {
	var errs []error

	if s.Dataset == "" {
		errs = append(errs, errors.New("dataset cannot be empty"))
	}
	if s.Prevalence != nil && (*s.Prevalence < 0 || *s.Prevalence > 100) {
		errs = append(errs, fmt.Errorf("%w: must be between 0 and 100, got %d", dataset.ErrPrevalenceRange, *s.Prevalence))
	}
	if math.IsNaN(s.Threshold) || math.IsInf(s.Threshold, 0) {
		errs = append(errs, fmt.Errorf("threshold must be finite, got %v", s.Threshold))
	}
	if _, err := roc.ParseCurveKind(string(s.Curve)); err != nil {
		errs = append(errs, err)
	}
	if s.CatalogPath != "" && s.SamplesDir != "" {
		errs = append(errs, errors.New("catalog and samples dir are mutually exclusive"))
	}
	if s.PrecisionWeight < 0 || s.RecallWeight < 0 {
		errs = append(errs, fmt.Errorf("weights must be non-negative, got %v/%v", s.PrecisionWeight, s.RecallWeight))
	}
	if s.PrecisionWeight+s.RecallWeight == 0 {
		errs = append(errs, errors.New("at least one weight must be positive"))
	}

	return errors.Join(errs...)
}

// PrevalenceOr returns the configured prevalence or def when unset.
func (s *Settings) PrevalenceOr(def int) int {
	if s.Prevalence != nil {
		return *s.Prevalence
	}
	return def
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getUintOrDefault(key string, defaultValue uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
