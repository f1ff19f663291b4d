package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables and the viper store.
const (
	KeyAddr          = "addr"
	KeyModel         = "model"
	KeyVariant       = "variant"
	KeyPredictor     = "predictor"
	KeyRemoteURL     = "remote-url"
	KeyRemoteModel   = "remote-model"
	KeyRemoteTimeout = "remote-timeout"
	KeyLogMode       = "log-mode"
)

// EnvPrefix prefixes every environment variable, e.g. CARPRICE_REMOTE_URL.
const EnvPrefix = "CARPRICE"

type Config struct {
	Addr          string
	ModelPath     string
	Variant       string
	Predictor     string
	RemoteURL     string
	RemoteModel   string
	RemoteTimeout time.Duration
	LogMode       string
}

// SetDefaults registers default values and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyModel, "model.yaml")
	v.SetDefault(KeyVariant, "table")
	v.SetDefault(KeyPredictor, "dense")
	v.SetDefault(KeyRemoteURL, "")
	v.SetDefault(KeyRemoteModel, "")
	v.SetDefault(KeyRemoteTimeout, 5*time.Second)
	v.SetDefault(KeyLogMode, "development")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// LoadDotEnv loads .env from the working directory if there is one.
// Variables already set in the environment win.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads the configuration out of v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Addr:          v.GetString(KeyAddr),
		ModelPath:     v.GetString(KeyModel),
		Variant:       strings.ToLower(strings.TrimSpace(v.GetString(KeyVariant))),
		Predictor:     strings.ToLower(strings.TrimSpace(v.GetString(KeyPredictor))),
		RemoteURL:     v.GetString(KeyRemoteURL),
		RemoteModel:   v.GetString(KeyRemoteModel),
		RemoteTimeout: v.GetDuration(KeyRemoteTimeout),
		LogMode:       v.GetString(KeyLogMode),
	}
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("config: %s is required", KeyModel)
	}
	if cfg.RemoteTimeout < 0 {
		return nil, fmt.Errorf("config: %s must not be negative", KeyRemoteTimeout)
	}
	return cfg, nil
}
