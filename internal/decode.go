package internal

import (
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// EnvDecodeHookFunc converts raw environment strings into the field types
// configuration structs use.
var EnvDecodeHookFunc = mapstructure.ComposeDecodeHookFunc(
	mapstructure.TextUnmarshallerHookFunc(),
	mapstructure.StringToBasicTypeHookFunc(),
	mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
	mapstructure.StringToURLHookFunc(),
)
