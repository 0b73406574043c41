package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	User     UserConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// DatabaseConfig selects the persistence backend. Driver is "sqlite3" or
// "postgres"; sqlite uses Path, postgres uses DSN.
type DatabaseConfig struct {
	Driver  string
	Path    string
	DSN     string
	Timeout time.Duration
}

// UserConfig holds the remembered login. An empty name starts in guest mode.
type UserConfig struct {
	Name string
}

type LogConfig struct {
	Path  string
	Level string
}

// MetricsConfig enables a prometheus listener when Listen is set.
type MetricsConfig struct {
	Listen string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "pantrypal")
}

// Path returns the config file location, honoring PANTRYPAL_CONFIG.
func Path() string {
	if p := os.Getenv("PANTRYPAL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "pantrypal", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix PANTRYPAL_.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path falls back to
// Path(). A missing file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.path", filepath.Join(dataDir(), "pantrypal.db"))
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.timeout", 5*time.Second)
	v.SetDefault("user.name", "")
	v.SetDefault("log.path", filepath.Join(dataDir(), "pantrypal.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.listen", "")

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("PANTRYPAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case "sqlite3", "postgres":
	case "sqlite":
		c.Database.Driver = "sqlite3"
	default:
		return Config{}, fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Driver == "postgres" && c.Database.DSN == "" {
		return Config{}, fmt.Errorf("database.dsn is required for postgres")
	}
	return c, nil
}

// SaveUser records name as the remembered login. Other keys keep the values
// stored in the file; env overrides and defaults are not written.
func SaveUser(path, name string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}
	v.Set("user.name", name)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
