package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

const envPrefix = "SHELFSORT"

/*
	Resolves the game shape from, lowest to highest precedence: defaults,
	the config file, SHELFSORT_* environment variables, then flags that were
	set on the command line.
*/
func loadConfig(path string, flags *pflag.FlagSet) (shelves.Config, error) {
	v := viper.New()
	v.SetDefault("colors", shelves.DefaultConfig.Colors)
	v.SetDefault("height", shelves.DefaultConfig.Height)
	v.SetDefault("quantity", shelves.DefaultConfig.Quantity)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("game")
		v.SetConfigType("yaml")
		v.AddConfigPath("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return shelves.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for _, name := range []string{"colors", "height", "quantity"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return shelves.Config{}, err
				}
			}
		}
	}

	var cfg shelves.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return shelves.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return shelves.Config{}, err
	}
	return cfg, nil
}

func addShapeFlags(flags *pflag.FlagSet) {
	flags.Int("colors", shelves.DefaultConfig.Colors, "number of colors")
	flags.Int("height", shelves.DefaultConfig.Height, "books per shelf")
	flags.Int("quantity", shelves.DefaultConfig.Quantity, "number of shelves")
}
