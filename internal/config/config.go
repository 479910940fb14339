// Package config loads the service configuration from defaults, an optional
// YAML file, the environment and command-line flags, in that order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// EnvServerless disables self-binding; the platform invokes the handler.
const EnvServerless = "serverless"

type Config struct {
	Env        string     `koanf:"env" validate:"required"`
	Port       int        `koanf:"port" validate:"min=1,max=65535"`
	LogFormat  string     `koanf:"log_format" validate:"oneof=json text"`
	Database   Database   `koanf:"database"`
	Auth       Auth       `koanf:"auth"`
	Cloudinary Cloudinary `koanf:"cloudinary"`
	Redis      Redis      `koanf:"redis"`
	CORS       CORS       `koanf:"cors"`
	Metrics    Metrics    `koanf:"metrics"`
}

type Database struct {
	URL      string `koanf:"url" validate:"required"`
	MaxConns int32  `koanf:"max_conns" validate:"min=1"`
}

type Auth struct {
	JWTSecret string        `koanf:"jwt_secret" validate:"required,min=16"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"min=1m"`
}

// Cloudinary credentials are all set or all empty.
type Cloudinary struct {
	CloudName      string `koanf:"cloud_name" validate:"required_with=APIKey APISecret"`
	APIKey         string `koanf:"api_key" validate:"required_with=CloudName APISecret"`
	APISecret      string `koanf:"api_secret" validate:"required_with=CloudName APIKey"`
	Folder         string `koanf:"folder"`
	Transformation string `koanf:"transformation"`
}

type Redis struct {
	URL string `koanf:"url"`
}

type CORS struct {
	AllowedOrigins []string `koanf:"allowed_origins" validate:"min=1"`
}

type Metrics struct {
	Enabled bool `koanf:"enabled"`
}

func (c Config) Serverless() bool {
	return c.Env == EnvServerless
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Cloudinary) Enabled() bool {
	return c.CloudName != ""
}

var defaults = map[string]any{
	"env":                       "development",
	"port":                      5000,
	"log_format":                "json",
	"database.max_conns":        10,
	"auth.token_ttl":            "24h",
	"cloudinary.folder":         "academy",
	"cloudinary.transformation": "c_limit,w_800,h_800",
	"cors.allowed_origins":      []string{"*"},
	"metrics.enabled":           true,
}

var envKeys = map[string]string{
	"APP_ENV":                   "env",
	"PORT":                      "port",
	"LOG_FORMAT":                "log_format",
	"DATABASE_URL":              "database.url",
	"DATABASE_MAX_CONNS":        "database.max_conns",
	"JWT_SECRET":                "auth.jwt_secret",
	"TOKEN_TTL":                 "auth.token_ttl",
	"CLOUDINARY_CLOUD_NAME":     "cloudinary.cloud_name",
	"CLOUDINARY_API_KEY":        "cloudinary.api_key",
	"CLOUDINARY_API_SECRET":     "cloudinary.api_secret",
	"CLOUDINARY_FOLDER":         "cloudinary.folder",
	"CLOUDINARY_TRANSFORMATION": "cloudinary.transformation",
	"REDIS_URL":                 "redis.url",
	"CORS_ALLOWED_ORIGINS":      "cors.allowed_origins",
	"METRICS_ENABLED":           "metrics.enabled",
}

var flagKeys = map[string]string{
	"port":         "port",
	"log-format":   "log_format",
	"database-url": "database.url",
}

// Flags registers the flags that override configuration keys.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.Int("port", 5000, "HTTP listen port")
	fs.String("log-format", "json", "log format: json or text")
	fs.String("database-url", "", "Postgres connection URL")
}

// Load builds the configuration. path may be empty; fs may be nil.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, oops.Code("CONFIG_LOAD_FAILED").With("source", "defaults").Wrap(err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").With("source", "file").With("path", path).Wrap(err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", fromEnv), nil); err != nil {
		return Config{}, oops.Code("CONFIG_LOAD_FAILED").With("source", "env").Wrap(err)
	}

	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, fromFlag(fs)), nil); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").With("source", "flags").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("CONFIG_INVALID").Wrap(err)
	}
	return cfg, nil
}

func fromEnv(name, value string) (string, any) {
	key, ok := envKeys[name]
	if !ok {
		return "", nil
	}
	if key == "cors.allowed_origins" {
		return key, splitList(value)
	}
	return key, value
}

func fromFlag(fs *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first missing or malformed setting.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace())
			}
		}
		return oops.Code("CONFIG_INVALID").With("fields", fields).Wrap(err)
	}
	return nil
}

// LoadEnv loads and validates from defaults and the environment only, for
// the serverless entry point where there are no flags or files.
func LoadEnv() (Config, error) {
	cfg, err := Load("", nil)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}
