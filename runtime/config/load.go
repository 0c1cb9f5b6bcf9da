/*
   Copyright 2025 The kvx Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads a kvxconfig.Specification from an optional YAML
// file, overlaid with KVX_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"kvx.dev/kvx/apis/kvxconfig"
	"kvx.dev/kvx/apis/kvxerrors"
)

// Load reads the YAML file at path (if path is non-empty) and overlays it
// with KVX_-prefixed environment variables, e.g. KVX_RUNTIME_SINK_PARALLELISM
// overrides runtime.sink_parallelism. The overlay covers only keys that the
// file sets: Unmarshal does not read an environment variable for a key the
// file leaves out. With an empty path no key is set, so source.kind is
// empty and Load returns a ConfigError from validation.
func Load(path string) (*kvxconfig.Specification, error) {
	v := viper.New()
	v.SetEnvPrefix("KVX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, kvxerrors.ConfigError("read configuration file", err)
		}
	}

	var spec kvxconfig.Specification
	decodeTrack := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&spec, decodeTrack); err != nil {
		return nil, kvxerrors.ConfigError("decode configuration", err)
	}

	resolved := spec.WithDefaults()
	if err := validate(resolved); err != nil {
		return nil, err
	}
	return &resolved, nil
}

func validate(spec kvxconfig.Specification) error {
	if spec.Source.Kind == "" {
		return kvxerrors.ConfigError("source.kind is required", nil)
	}
	if spec.Sink.Kind == "" {
		return kvxerrors.ConfigError("sink.kind is required", nil)
	}
	return nil
}
