package util

import (
	"fmt"
	"strconv"
)

// ParseSnowflake parses a decimal Discord ID string.
func ParseSnowflake(s string) (uint64, error) {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse Snowflake ID string: %w", err)
	}
	return val, nil
}

func FormatSnowflake(s uint64) string {
	return strconv.FormatUint(s, 10)
}
