package hook

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"pkg.mon.icu/guildly/internal/util"
)

var (
	snowflakeType = reflect.TypeOf(uint64(0))
)

// Snowflake decodes string IDs, as they come from the environment, strictly.
func Snowflake() mapstructure.DecodeHookFuncType {
	return func(in reflect.Type, out reflect.Type, val interface{}) (interface{}, error) {
		if in.Kind() == reflect.String && out == snowflakeType {
			s := val.(string)
			if s == "" {
				return uint64(0), nil
			}
			return util.ParseSnowflake(s)
		}
		return val, nil
	}
}
