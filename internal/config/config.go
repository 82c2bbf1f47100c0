package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// Load reads the YAML config at path. Values of the form ${ENV_NAME}
// are substituted from the process environment, so secrets stay out
// of the file itself.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	for _, key := range viper.AllKeys() {
		value := viper.GetString(key)
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			viper.Set(key, os.Getenv(strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}")))
		}
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, reloading", zap.String("file", e.Name))
		if err := viper.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})
	viper.WatchConfig()

	return conf, nil
}
