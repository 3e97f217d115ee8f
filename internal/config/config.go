package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/i474232898/weatherline/internal/weather"
)

// EnvPrefix scopes environment overrides, e.g. WEATHERLINE_SHOW_WIND.
const EnvPrefix = "WEATHERLINE_"

// AppConfig is the full configuration. Keys match the command-line flag names.
type AppConfig struct {
	Location     string `koanf:"location"`
	Units        string `koanf:"units" validate:"oneof=metric imperial"`
	Provider     string `koanf:"provider" validate:"oneof=open-meteo wttr"`
	Template     string `koanf:"template"`
	ShowWind     bool   `koanf:"show-wind"`
	ShowHumidity bool   `koanf:"show-humidity"`
	EscapeQuotes bool   `koanf:"escape-quotes"`

	// HTTPTimeout bounds outbound provider calls; zero leaves the transport default.
	HTTPTimeout time.Duration `koanf:"http-timeout" validate:"gte=0"`

	Debug bool `koanf:"debug"`
}

// Default returns the configuration used when nothing else is set.
func Default() AppConfig {
	d := weather.DefaultSettings()
	return AppConfig{
		Location:     d.Location,
		Units:        string(d.Units),
		Provider:     string(d.Provider),
		Template:     d.Template,
		ShowWind:     d.ShowWind,
		ShowHumidity: d.ShowHumidity,
		EscapeQuotes: d.EscapeQuotes,
	}
}

var validate = validator.New()

// Load layers configuration: defaults, then the config file (if any), then
// .env and WEATHERLINE_* environment variables, then changed flags.
func Load(flags *pflag.FlagSet, configFile string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	k := koanf.New(".")

	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// WEATHERLINE_SHOW_WIND -> show-wind
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Units = strings.ToLower(strings.TrimSpace(cfg.Units))
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Settings converts the configuration into the per-call view the weather
// service consumes.
func (c AppConfig) Settings() weather.Settings {
	return weather.Settings{
		Location:     c.Location,
		Units:        weather.Units(c.Units),
		Provider:     weather.ProviderKind(c.Provider),
		Template:     c.Template,
		ShowWind:     c.ShowWind,
		ShowHumidity: c.ShowHumidity,
		EscapeQuotes: c.EscapeQuotes,
	}
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", ext)
	}
}
