package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"consentadmin/internal/consent/secret"

	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	MongoURI       string
	Port           string
	DBName         string
	StoreDriver    string
	ListLimit      int64
	LogLevel       string
	CredentialsKey string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// LoadConfig reads defaults, then the optional YAML file, then the
// environment. Later sources win.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("port", "8080")
	v.SetDefault("db_name", "consent_db")
	v.SetDefault("store_driver", DriverMongo)
	v.SetDefault("list_limit", 100)
	v.SetDefault("log_level", "info")
	v.SetDefault("credentials_key", "")
	v.SetDefault("server_read_timeout", "10")
	v.SetDefault("server_write_timeout", "10")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		MongoURI:       v.GetString("mongo_uri"),
		Port:           v.GetString("port"),
		DBName:         v.GetString("db_name"),
		StoreDriver:    strings.ToLower(v.GetString("store_driver")),
		ListLimit:      v.GetInt64("list_limit"),
		LogLevel:       v.GetString("log_level"),
		CredentialsKey: v.GetString("credentials_key"),
		ReadTimeout:    getDuration(v, "server_read_timeout", 10*time.Second),
		WriteTimeout:   getDuration(v, "server_write_timeout", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
		if c.CredentialsKey == "" {
			return fmt.Errorf("CREDENTIALS_KEY is required with the %s driver", DriverMongo)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.ListLimit <= 0 {
		return fmt.Errorf("LIST_LIMIT must be positive, got %d", c.ListLimit)
	}
	if c.CredentialsKey != "" {
		if _, err := secret.ParseKey(c.CredentialsKey); err != nil {
			return fmt.Errorf("CREDENTIALS_KEY: %w", err)
		}
	}
	return nil
}

// CipherKey returns the configured key. The memory driver may run without
// one and gets a random key, since nothing it stores outlives the process.
func (c *Config) CipherKey() (key [secret.KeySize]byte, ephemeral bool, err error) {
	if c.CredentialsKey == "" {
		if c.StoreDriver != DriverMemory {
			return key, false, fmt.Errorf("CREDENTIALS_KEY is required with the %s driver", c.StoreDriver)
		}
		key, err = secret.GenerateKey()
		return key, true, err
	}
	key, err = secret.ParseKey(c.CredentialsKey)
	return key, false, err
}

// getDuration accepts whole seconds ("15") or a duration string ("1m").
func getDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	valStr := v.GetString(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
