// Package config loads toolkit settings files with Viper and turns them
// into core.Settings for integration setup.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/murkotick/storefront-connect/pkg/core"
)

const (
	configFileName = "storefront"
	configFileType = "yaml"
)

// Load reads a settings file into core.Settings. path may point at an exact
// file; when empty, a "storefront.yaml" in dir is used. A missing file is
// not an error; integrations then run on their factory defaults.
func Load(path, dir string) (core.Settings, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		if dir == "" {
			dir = "."
		}
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return core.Settings{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Settings keys are flat dotted strings; AllKeys already yields them in
	// that form regardless of how the file nests.
	settings := make(core.Settings)
	for _, key := range v.AllKeys() {
		settings[key] = v.Get(key)
	}
	return settings, nil
}

// LoadMerged loads the settings file and merges overrides on top, shallow,
// later-write-wins, the same merge policy integration setup applies.
func LoadMerged(path, dir string, overrides core.Settings) (core.Settings, error) {
	base, err := Load(path, dir)
	if err != nil {
		return nil, err
	}
	return core.MergeSettings(base, overrides), nil
}
