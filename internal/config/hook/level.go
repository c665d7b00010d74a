package hook

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap/zapcore"
)

var (
	levelType = reflect.TypeOf(zapcore.InfoLevel)
)

// Level decodes level names such as "debug" or "WARN"; an empty name is info.
func Level() mapstructure.DecodeHookFuncType {
	return func(in reflect.Type, out reflect.Type, val interface{}) (interface{}, error) {
		if in.Kind() != reflect.String || out != levelType {
			return val, nil
		}
		l := zapcore.InfoLevel
		if s := val.(string); s != "" {
			if err := l.UnmarshalText([]byte(s)); err != nil {
				return nil, err
			}
		}
		return l, nil
	}
}
