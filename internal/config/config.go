package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Connection struct {
	Name string `mapstructure:"name"`
	DSN  string `mapstructure:"dsn"`
}

type Config struct {
	AppName string `mapstructure:"app_name"`

	Store struct {
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"store"`

	Connections []Connection `mapstructure:"connections"`

	Journal struct {
		Enabled     bool   `mapstructure:"enabled"`
		Dir         string `mapstructure:"dir"`
		AuthorName  string `mapstructure:"author_name"`
		AuthorEmail string `mapstructure:"author_email"`
	} `mapstructure:"journal"`

	Export struct {
		S3 struct {
			Region    string `mapstructure:"region"`
			Endpoint  string `mapstructure:"endpoint"`
			AccessKey string `mapstructure:"access_key"`
			SecretKey string `mapstructure:"secret_key"`
		} `mapstructure:"s3"`
	} `mapstructure:"export"`

	Log struct {
		Level  string `mapstructure:"level"`
		SeqURL string `mapstructure:"seq_url"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "sqlexplorer")
	v.SetDefault("store.driver", "duckdb")
	v.SetDefault("store.dsn", "")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.dir", "")
	v.SetDefault("journal.author_name", "SQLExplorer")
	v.SetDefault("journal.author_email", "sqlexplorer@localhost")
	v.SetDefault("export.s3.region", "")
	v.SetDefault("export.s3.endpoint", "")
	v.SetDefault("export.s3.access_key", "")
	v.SetDefault("export.s3.secret_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.seq_url", "")
}

// LoadConfig reads a YAML config file. An empty path or a missing file
// yields the defaults. SQLEXPLORER_* environment variables override both,
// e.g. SQLEXPLORER_STORE_DSN.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("sqlexplorer")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			// An explicit path that does not exist surfaces as a plain fs error
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Connection returns the named connection's DSN. The name "default" maps to
// the store section.
func (cfg *Config) Connection(name string) (string, bool) {
	if name == "" || name == "default" {
		return cfg.Store.DSN, true
	}
	for _, conn := range cfg.Connections {
		if conn.Name == name {
			return conn.DSN, true
		}
	}
	return "", false
}
