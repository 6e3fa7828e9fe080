package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	viper "github.com/spf13/viper"
	"golang.org/x/mod/semver"
)

var ErrInvalidVersionCode = errors.New("version code is not a valid semantic version")

func loadEnv(v *viper.Viper) error {
	err := v.BindEnv("ula_path", "ULA_PATH")
	if err != nil {
		return err
	}
	v.SetDefault("ula_path", "$HOME/.ula")

	for key, env := range map[string]string{
		"log_level":    "ULA_LOG_LEVEL",
		"arch":         "ULA_ARCH",
		"version_code": "ULA_VERSION_CODE",
	} {
		err = v.BindEnv(key, env)
		if err != nil {
			return err
		}
	}
	v.SetDefault("log_level", "info")
	v.SetDefault("version_code", "v0.0.0")
	return nil
}

func loadConfig(v *viper.Viper) (*AppsConfig, error) {
	v.AddConfigPath("$HOME/.ula")
	v.AddConfigPath(os.ExpandEnv(v.GetString("ula_path")))

	v.SetConfigType("yml")
	v.SetConfigName("ula")

	// the config file is optional, everything has a default or an environment variable
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &AppsConfig{viper: v}

	if !semver.IsValid(config.VersionCode()) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersionCode, config.VersionCode())
	}
	if _, err := zerolog.ParseLevel(v.GetString("log_level")); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return config, nil
}

func NewAppsConfig() (*AppsConfig, error) {
	v := viper.New()
	err := loadEnv(v)
	if err != nil {
		return nil, err
	}
	return loadConfig(v)
}

type AppsConfig struct {
	viper *viper.Viper
}

func (c *AppsConfig) UlaPath() string {
	return os.ExpandEnv(c.viper.GetString("ula_path"))
}

func (c *AppsConfig) DBPath() string {
	return filepath.Join(c.UlaPath(), "ula.db")
}

func (c *AppsConfig) AppsPath() string {
	return filepath.Join(c.UlaPath(), "apps")
}

func (c *AppsConfig) CatalogPath() string {
	return filepath.Join(c.AppsPath(), "apps.json")
}

func (c *AppsConfig) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.viper.GetString("log_level"))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// ArchOverride replaces the detected architecture when set.
func (c *AppsConfig) ArchOverride() string {
	return c.viper.GetString("arch")
}

// VersionCode is stamped onto every apps filesystem created.
func (c *AppsConfig) VersionCode() string {
	return c.viper.GetString("version_code")
}
