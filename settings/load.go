// SPDX-License-Identifier: MIT

package settings

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. DUPGUARD_DECIMALS.
	EnvPrefix = "DUPGUARD_"
	// EnvConfig names the YAML file to Load. It is not a Config field.
	EnvConfig = EnvPrefix + "CONFIG"
)

// Load layers the defaults, the YAML file at path and DUPGUARD_* environment
// variables, in that order. An empty path skips the file. Unknown environment
// variables under the prefix are ignored.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "mapstructure"), nil); err != nil {
		return Config{}, fmt.Errorf("settings: defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("settings: read %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("settings: environment: %w", err)
	}

	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "mapstructure",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "mapstructure",
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return validated(cfg)
}

// envKey maps DUPGUARD_LOG_LEVEL to log_level. An empty result makes koanf
// skip the variable.
func envKey(name string) string {
	if name == EnvConfig {
		return ""
	}

	return strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
}
