package config

import (
	"Chirp/internal/pkg/consts"
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg is the globally accessible configuration instance.
var Cfg *Config

// LoadConfig reads ./configs/config.yaml and fills Cfg.
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("feed.scope", consts.FeedScopeGlobal)
	viper.SetDefault("storage.backend", consts.StorageBackendDisk)
	viper.SetDefault("storage.dir", "./uploads")

	if err := viper.ReadInConfig(); err != nil {
		// a missing file runs on defaults; a broken one does not
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Feed.Scope != consts.FeedScopeGlobal && cfg.Feed.Scope != consts.FeedScopeFollowing {
		return fmt.Errorf("invalid feed scope %q", cfg.Feed.Scope)
	}

	Cfg = &cfg

	return nil
}
