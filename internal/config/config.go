// Package config loads faraway settings.
//
// Sources, lowest to highest precedence: built-in defaults, the YAML config
// file ($FARAWAY_CONFIG or ~/.config/faraway/config.yaml), FARAWAY_* env vars.
// Root flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/idilsaglam/faraway/internal/form"
	"github.com/idilsaglam/faraway/internal/model"
)

// Config holds application configuration.
type Config struct {
	Theme       string         // classic, neon, mono
	Sort        model.SortMode // initial sort mode
	MaxQuantity int            // upper bound the add surfaces clamp to
	Seed        string         // optional JSON/YAML initial list
	Starter     bool           // open with the starter items when no seed is given
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:       "classic",
		Sort:        model.SortInput,
		MaxQuantity: form.DefaultMaxQuantity,
		Starter:     true,
	}
}

// Load reads configuration from file and env.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	def := Default()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("sort", string(def.Sort))
	v.SetDefault("quantity.max", def.MaxQuantity)
	v.SetDefault("seed", "")
	v.SetDefault("starter", def.Starter)

	v.SetConfigType("yaml")
	if p := os.Getenv("FARAWAY_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "faraway"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FARAWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	mode, err := model.ParseSortMode(v.GetString("sort"))
	if err != nil {
		return Config{}, fmt.Errorf("config sort: %w", err)
	}
	cfg := Config{
		Theme:       v.GetString("theme"),
		Sort:        mode,
		MaxQuantity: v.GetInt("quantity.max"),
		Seed:        v.GetString("seed"),
		Starter:     v.GetBool("starter"),
	}
	if cfg.MaxQuantity < 1 {
		return Config{}, fmt.Errorf("config quantity.max must be at least 1, got %d", cfg.MaxQuantity)
	}
	return cfg, nil
}
