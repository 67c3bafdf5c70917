package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envString returns the trimmed value of key, or def when unset or blank.
func envString(key, def string) string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return def
	}
	return strings.TrimSpace(val)
}

func envInt(key string, def int) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	val, err := strconv.Atoi(strings.TrimSpace(valStr))
	if err != nil {
		return def
	}
	return val
}

func envDuration(key string, def time.Duration) time.Duration {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	val, err := time.ParseDuration(strings.TrimSpace(valStr))
	if err != nil || val <= 0 {
		return def
	}
	return val
}
