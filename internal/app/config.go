package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yungbote/neuroadapt-backend/internal/platform/huggingface"
)

// ConfigFileEnv names an optional YAML file layered under the environment.
const ConfigFileEnv = "NEUROADAPT_CONFIG"

// Config is built once at startup and passed by value.
type Config struct {
	LogMode     string `koanf:"log_mode"`
	Environment string `koanf:"app_env"`
	Version     string `koanf:"app_version"`
	Port        int    `koanf:"port"`

	DatabaseURL string `koanf:"database_url"`

	SupabaseURL            string `koanf:"supabase_url"`
	SupabaseKey            string `koanf:"supabase_key"`
	SupabaseTimeoutSeconds int    `koanf:"supabase_timeout_seconds"`

	HuggingFaceAPIKey         string `koanf:"huggingface_api_key"`
	HuggingFaceBaseURL        string `koanf:"huggingface_base_url"`
	HuggingFaceSimplifyModel  string `koanf:"huggingface_simplify_model"`
	HuggingFaceTTSModel       string `koanf:"huggingface_tts_model"`
	HuggingFaceTimeoutSeconds int    `koanf:"huggingface_timeout_seconds"`

	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`

	MetricsEnabled bool   `koanf:"metrics_enabled"`
	MetricsAddr    string `koanf:"metrics_addr"`

	OtelEnabled     bool    `koanf:"otel_enabled"`
	OtelEndpoint    string  `koanf:"otel_exporter_otlp_endpoint"`
	OtelHeaders     string  `koanf:"otel_exporter_otlp_headers"`
	OtelInsecure    bool    `koanf:"otel_exporter_otlp_insecure"`
	OtelSampleRatio float64 `koanf:"otel_sampler_ratio"`
}

func defaultConfig() Config {
	return Config{
		LogMode:                  "development",
		Environment:              "development",
		Version:                  "dev",
		Port:                     8080,
		HuggingFaceBaseURL:       huggingface.DefaultBaseURL,
		HuggingFaceSimplifyModel: huggingface.DefaultSimplifyModel,
		HuggingFaceTTSModel:      huggingface.DefaultTTSModel,
		MetricsEnabled:           true,
		OtelSampleRatio:          0.1,
	}
}

// LoadConfig layers defaults, the optional YAML file, .env and the process
// environment (lowest to highest). Missing credentials are not an error.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if path := strings.TrimSpace(os.Getenv(ConfigFileEnv)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	// Blank variables are skipped so they do not clobber defaults.
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := defaultConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}
	if cfg.SupabaseTimeoutSeconds < 0 || cfg.HuggingFaceTimeoutSeconds < 0 {
		return Config{}, errors.New("timeouts must not be negative")
	}
	return cfg, nil
}

func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

// Zero means no timeout.
func (c Config) SupabaseTimeout() time.Duration {
	return time.Duration(c.SupabaseTimeoutSeconds) * time.Second
}

func (c Config) HuggingFaceTimeout() time.Duration {
	return time.Duration(c.HuggingFaceTimeoutSeconds) * time.Second
}

func (c Config) AllowOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
