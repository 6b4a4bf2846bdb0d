// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"code.hybscloud.com/hkt/laws"
)

const (
	configFileName = "hktlaws"
	configFileType = "yaml"
	envPrefix      = "HKTLAWS"

	cfgKeySeed     = "seed"
	cfgKeySamples  = "samples"
	cfgKeyAdapters = "adapters"
)

// loadConfig sets defaults and reads the config file into v.
// A missing config file is not an error unless it was named explicitly.
func loadConfig(v *viper.Viper, file string) error {
	def := laws.DefaultConfig()
	v.SetDefault(cfgKeySeed, def.Seed)
	v.SetDefault(cfgKeySamples, def.Samples)
	v.SetDefault(cfgKeyAdapters, []string{})

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// lawsConfig extracts the law-checking settings from v.
func lawsConfig(v *viper.Viper) (laws.Config, error) {
	var c laws.Config
	if err := v.Unmarshal(&c); err != nil {
		return laws.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.Samples < 0 {
		return laws.Config{}, fmt.Errorf("samples must not be negative, got %d", c.Samples)
	}
	return c, nil
}
