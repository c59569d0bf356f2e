// Package config loads gelaxy settings.
//
// Values are layered with viper: built-in defaults, then the YAML config file,
// then a .env file, then GELAXY_* environment variables, then command line
// flags bound by the caller.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gelaxyai/gelaxy/internal/catalog"
	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/locale"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

// EnvPrefix is the prefix for environment overrides (GELAXY_BACKEND, ...).
const EnvPrefix = "GELAXY"

// Backend names a code generation backend.
type Backend string

const (
	BackendEndpoint  Backend = "endpoint"
	BackendOpenAI    Backend = "openai"
	BackendAnthropic Backend = "anthropic"
	BackendDemo      Backend = "demo"
)

// Backends lists the accepted backend names.
func Backends() []Backend {
	return []Backend{BackendEndpoint, BackendOpenAI, BackendAnthropic, BackendDemo}
}

// Config keys.
const (
	KeyBackend       = "backend"
	KeyEndpoint      = "endpoint"
	KeyLanguage      = "language"
	KeyLocale        = "locale"
	KeyTheme         = "theme"
	KeyTimeout       = "timeout"
	KeyNotifications = "notifications"
	KeySidebar       = "sidebar"
	KeyDemoDelay     = "demo_delay"
	KeyMaxTokens     = "max_tokens"
	KeyTemperature   = "temperature"

	KeyOpenAIAPIKey     = "openai.api_key"
	KeyOpenAIModel      = "openai.model"
	KeyOpenAIBaseURL    = "openai.base_url"
	KeyAnthropicAPIKey  = "anthropic.api_key"
	KeyAnthropicModel   = "anthropic.model"
	KeyAnthropicBaseURL = "anthropic.base_url"
)

// Defaults.
const (
	DefaultEndpoint    = "http://localhost:8080/api/generate"
	DefaultTimeout     = 2 * time.Minute
	DefaultDemoDelay   = 800 * time.Millisecond
	DefaultMaxTokens   = 2000
	DefaultTemperature = 0.7
	DefaultOpenAIModel = "gpt-4"
	DefaultTheme       = "dark-purple"
)

// Provider holds credentials and model selection for a hosted model API.
type Provider struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Sampling holds generation parameters shared by the model backends.
type Sampling struct {
	Temperature float32
	MaxTokens   int
}

// Config is the resolved configuration.
type Config struct {
	Backend       Backend
	Endpoint      string
	Language      string
	Locale        string
	Theme         string
	Timeout       time.Duration
	Notifications bool
	SidebarOpen   bool
	DemoDelay     time.Duration

	OpenAI    Provider
	Anthropic Provider
	Sampling  Sampling

	// File is the config file that was read, empty when none was found.
	File string
}

// LoadOptions controls where Load looks for files.
type LoadOptions struct {
	ConfigFile string // Explicit config file; must exist when set
	EnvFile    string // .env file; missing is not an error
}

// NewViper returns a viper instance with defaults and environment binding
// applied. Callers bind flags onto it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider keys also honour the variables the vendor SDKs use.
	_ = v.BindEnv(KeyOpenAIAPIKey, EnvPrefix+"_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv(KeyAnthropicAPIKey, EnvPrefix+"_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, string(BackendEndpoint))
	v.SetDefault(KeyEndpoint, DefaultEndpoint)
	v.SetDefault(KeyLanguage, catalog.Default().ID)
	v.SetDefault(KeyLocale, locale.Default)
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyNotifications, false)
	v.SetDefault(KeySidebar, true)
	v.SetDefault(KeyDemoDelay, DefaultDemoDelay)
	v.SetDefault(KeyMaxTokens, DefaultMaxTokens)
	v.SetDefault(KeyTemperature, DefaultTemperature)
	v.SetDefault(KeyOpenAIModel, DefaultOpenAIModel)
}

// DefaultPath returns $XDG_CONFIG_HOME/gelaxy/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "gelaxy", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gelaxy", "config.yaml"), nil
}

// Load reads the files named in opts into v and returns the resolved config.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper, opts LoadOptions) (*Config, error) {
	log := logger.WithComponent("config")

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.ConfigLoadFailed(envFile, err)
		}
	} else {
		log.Debug("loaded env file", "path", envFile)
	}

	path := opts.ConfigFile
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			log.Warn("could not resolve config directory", "error", err)
		}
		path = p
	}

	var used string
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := stderrors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist)
			if explicit || !missing {
				return nil, errors.ConfigLoadFailed(path, err)
			}
			log.Debug("no config file", "path", path)
		} else {
			used = path
			log.Debug("loaded config file", "path", path)
		}
	}

	cfg := fromViper(v)
	cfg.File = used
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Backend:       Backend(strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend)))),
		Endpoint:      strings.TrimSpace(v.GetString(KeyEndpoint)),
		Language:      strings.TrimSpace(v.GetString(KeyLanguage)),
		Locale:        strings.TrimSpace(v.GetString(KeyLocale)),
		Theme:         strings.TrimSpace(v.GetString(KeyTheme)),
		Timeout:       v.GetDuration(KeyTimeout),
		Notifications: v.GetBool(KeyNotifications),
		SidebarOpen:   v.GetBool(KeySidebar),
		DemoDelay:     v.GetDuration(KeyDemoDelay),
		OpenAI: Provider{
			APIKey:  v.GetString(KeyOpenAIAPIKey),
			Model:   v.GetString(KeyOpenAIModel),
			BaseURL: v.GetString(KeyOpenAIBaseURL),
		},
		Anthropic: Provider{
			APIKey:  v.GetString(KeyAnthropicAPIKey),
			Model:   v.GetString(KeyAnthropicModel),
			BaseURL: v.GetString(KeyAnthropicBaseURL),
		},
		Sampling: Sampling{
			Temperature: float32(v.GetFloat64(KeyTemperature)),
			MaxTokens:   v.GetInt(KeyMaxTokens),
		},
	}
}

// Default returns the configuration with only built-in defaults applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

// Validate reports the first problem found in the configuration.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendEndpoint:
		if c.Endpoint == "" {
			return errors.ConfigInvalid("endpoint is required for the endpoint backend")
		}
		u, err := url.Parse(c.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.ConfigInvalid(fmt.Sprintf("endpoint %q is not an http(s) URL", c.Endpoint))
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return errors.ConfigInvalid("openai.api_key is required for the openai backend")
		}
	case BackendAnthropic:
		if c.Anthropic.APIKey == "" {
			return errors.ConfigInvalid("anthropic.api_key is required for the anthropic backend")
		}
	case BackendDemo:
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown backend %q", c.Backend))
	}

	if _, ok := catalog.Lookup(c.Language); !ok {
		return errors.ConfigInvalid(fmt.Sprintf("unknown language %q", c.Language))
	}
	if !locale.Supported(c.Locale) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown locale %q", c.Locale))
	}
	if c.Timeout < 0 {
		return errors.ConfigInvalid("timeout must not be negative")
	}
	if c.Sampling.MaxTokens <= 0 {
		return errors.ConfigInvalid("max_tokens must be positive")
	}
	if c.Sampling.Temperature < 0 || c.Sampling.Temperature > 2 {
		return errors.ConfigInvalid("temperature must be between 0 and 2")
	}
	return nil
}
