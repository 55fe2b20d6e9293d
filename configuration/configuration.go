// Package configuration loads typed configuration from process environment
// variables and an optional .env file, validating the result.
package configuration

import (
	"os"
	"strings"

	"github.com/thanhminhmr/go-notifier/internal"

	"github.com/go-viper/mapstructure/v2"
)

var globalDefaults = make(map[string]string)
var globalEnvironments = make(map[string]string)

func init() {
	// .env file have higher priority than defaults
	content, err := os.ReadFile(".env")
	if err == nil {
		saveEnvironments(strings.Split(string(content), "\n"))
	}

	// os.Environ() have the highest priority
	saveEnvironments(os.Environ())
}

func saveEnvironments(lines []string) {
	for _, line := range lines {
		split := strings.SplitN(line, "=", 2)
		if len(split) == 2 {
			globalEnvironments[strings.TrimSpace(split[0])] = strings.TrimSpace(split[1])
		}
	}
}

// SetDefault registers a fallback value used when the environment does not
// carry the key. Packages call this from init.
func SetDefault(key string, value string) {
	globalDefaults[key] = value
}

// Set overrides an environment value in-process. Intended for tests.
func Set(key string, value string) {
	globalEnvironments[key] = value
}

// Load fills config from the environment, matching fields by their env tag
// (optionally stripped of the joined prefixes), then validates the result.
func Load[T any](config *T, prefixes ...string) error {
	prefix := ""
	if len(prefixes) > 0 {
		prefix = strings.Join(prefixes, "_") + "_"
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "env",
		DecodeHook:       internal.EnvDecodeHookFunc,
		ZeroFields:       true,
		WeaklyTypedInput: true,
		Result:           config,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(environmentWithPrefix(prefix)); err != nil {
		return err
	}
	return internal.Validator.Struct(config)
}

// Loader wraps Load for use as a dependency-injection constructor.
func Loader[T any](config *T, prefixes ...string) func() (*T, error) {
	return func() (*T, error) {
		err := Load(config, prefixes...)
		return config, err
	}
}

func environmentWithPrefix(prefix string) map[string]string {
	environments := make(map[string]string)
	for key, value := range globalDefaults {
		if fixedKey, hasPrefix := strings.CutPrefix(key, prefix); hasPrefix {
			environments[fixedKey] = value
		}
	}
	for key, value := range globalEnvironments {
		if fixedKey, hasPrefix := strings.CutPrefix(key, prefix); hasPrefix {
			environments[fixedKey] = value
		}
	}
	return environments
}
