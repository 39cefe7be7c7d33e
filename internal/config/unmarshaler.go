package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/smykla-labs/piklish/pkg/lint"
)

// CustomDecoderConfig returns a mapstructure decoder config with a custom
// type hook for severity names. The caller sets Result.
func CustomDecoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToSeverityHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           nil, // Set by caller
	}
}

// stringToSeverityHookFunc returns a decode hook for converting strings to lint.Severity.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToSeverityHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[lint.Severity]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return lint.ParseSeverity(v)

		case int:
			return lint.Severity(v), nil

		case int64:
			return lint.Severity(v), nil

		default:
			return data, nil
		}
	}
}
