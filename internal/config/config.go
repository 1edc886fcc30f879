// Package config resolves the game settings from defaults, the
// guessing-game.yaml file, GUESSING_GAME_* environment variables and
// command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"guessing-game/internal/models"
)

const (
	fileName  = "guessing-game"
	envPrefix = "guessing_game"
)

type Config struct {
	// Mode is empty when neither file, env nor flag chose one; the
	// application then falls back to the remembered preference.
	Mode     string    `mapstructure:"mode"`
	Language string    `mapstructure:"language"`
	Log      LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Defaults are applied before any file, env or flag
func Defaults() map[string]any {
	return map[string]any{
		"mode":      "",
		"language":  "en",
		"log.level": "info",
		"log.json":  false,
	}
}

// flagKeys maps command line flag names onto config keys
var flagKeys = map[string]string{
	"mode":      "mode",
	"language":  "language",
	"log-level": "log.level",
	"log-json":  "log.json",
}

// RegisterFlags adds the config flags to cmd
func RegisterFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("mode", "", "difficulty to start with (normal|hard)")
	flags.String("language", "", "UI language tag, e.g. en or de")
	flags.String("log-level", "", "log level (debug|info|warn|error|off)")
	flags.Bool("log-json", false, "write logs as JSON lines")
}

// configDirs lists the directories searched for guessing-game.yaml
func configDirs() []string {
	dirs := make([]string, 0, 3)
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, fileName))
	}
	switch runtime.GOOS {
	case "windows":
		dirs = append(dirs, filepath.Join(os.Getenv("ProgramData"), fileName))
	default:
		dirs = append(dirs, filepath.Join("/etc", fileName))
	}
	return append(dirs, ".")
}

// Load builds the configuration. configFile, when non-empty, replaces the
// search path and must exist.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range flagKeys {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return c, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Mode != "" {
		if _, err := models.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("config mode: %w", err)
		}
	}
	return nil
}
