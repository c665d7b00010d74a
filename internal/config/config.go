package config

import (
	"errors"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"pkg.mon.icu/guildly/internal/config/hook"
	"pkg.mon.icu/guildly/internal/links"
	"pkg.mon.icu/guildly/internal/storage"
	"pkg.mon.icu/guildly/internal/storage/model"
)

type Config struct {
	Discord struct {
		Auth  string
		Guild model.Snowflake
	}

	Storage struct {
		Driver string
		DSN    string
	}

	Logging struct {
		Level zapcore.Level
	}

	Api struct {
		Port uint16
	}

	Links struct {
		Hosts []string
	}
}

// Read loads configuration from the environment and an optional config file.
// An empty file searches ./config.yaml and tolerates its absence.
func Read(file string) (*Config, error) {
	return ReadFrom(viper.New(), file)
}

// ReadFrom is Read on a caller-supplied viper instance, so command line flags
// can be bound before reading.
func ReadFrom(v *viper.Viper, file string) (*Config, error) {
	configureDefaults(v)
	configureEnv(v)
	configureLocation(v, file)
	return readUnmarshalConfig(v, file != "")
}

func configureDefaults(v *viper.Viper) {
	v.SetDefault("discord.auth", "")
	v.SetDefault("discord.guild", 0)
	v.SetDefault("storage.driver", storage.DriverSQLite)
	v.SetDefault("storage.dsn", "guildly.db")
	v.SetDefault("logging.level", "info")
	v.SetDefault("api.port", 0)
	v.SetDefault("links.hosts", links.DefaultHosts)
}

func configureEnv(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvPrefix("conf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func configureLocation(v *viper.Viper, file string) {
	if file != "" {
		v.SetConfigFile(file)
		return
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
}

func readUnmarshalConfig(v *viper.Viper, explicit bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, err
		}
	}
	c := &Config{}
	if err := v.Unmarshal(c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		hook.Level(), hook.Snowflake(), mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, err
	}
	return c, nil
}
