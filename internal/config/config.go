package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name   string `mapstructure:"NAME"`
		State  string `mapstructure:"STATE"`
		Locale string `mapstructure:"LOCALE"`
	}

	DATASTORE struct {
		Driver string `mapstructure:"DRIVER"` // sqlite | redis
		SQLite struct {
			Path string `mapstructure:"PATH"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	UI struct {
		OwnedPropertyColor string `mapstructure:"OWNED_PROPERTY_COLOR"`
	}
}

// LoadConfig reads application.yaml from the working directory. A missing
// file is not an error: this is a single-user tool and must boot with
// defaults alone.
func LoadConfig() *AppConfig {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	var config AppConfig
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Error().Err(err).Msg("failed to read configuration file")
			return nil
		}
		log.Info().Msg("no configuration file found, using defaults")
	} else if err := viper.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal configuration")
		return nil
	}

	if config.APP.Name == "" {
		config.APP.Name = "estate-portal"
	}
	if config.APP.Locale == "" {
		config.APP.Locale = "ja"
	}
	if config.DATASTORE.Driver == "" {
		config.DATASTORE.Driver = "sqlite"
	}
	if config.DATASTORE.Redis.Addr == "" {
		config.DATASTORE.Redis.Addr = "localhost:6379"
	}
	if config.UI.OwnedPropertyColor == "" {
		config.UI.OwnedPropertyColor = "#fed7aa"
	}

	log.Info().Str("driver", config.DATASTORE.Driver).Msg("configuration loaded")
	return &config
}
