package envutil

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

func String(key, defaultVal string, log *logger.Logger) string {
	val, ok := lookup(key)
	if !ok {
		logDefault(log, key, defaultVal)
		return defaultVal
	}
	if log != nil {
		log.Debug("Environment variable found, using environment", "env_var", key, "environment", val)
	}
	return val
}

func Int(key string, defaultVal int, log *logger.Logger) int {
	raw, ok := lookup(key)
	if !ok {
		logDefault(log, key, defaultVal)
		return defaultVal
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		if log != nil {
			log.Warn("Invalid integer environment variable, using default", "env_var", key, "value", raw, "default", defaultVal)
		}
		return defaultVal
	}
	return i
}

func Bool(key string, defaultVal bool, log *logger.Logger) bool {
	raw, ok := lookup(key)
	if !ok {
		logDefault(log, key, defaultVal)
		return defaultVal
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	if log != nil {
		log.Warn("Invalid boolean environment variable, using default", "env_var", key, "value", raw, "default", defaultVal)
	}
	return defaultVal
}

func Float(key string, defaultVal float64, log *logger.Logger) float64 {
	raw, ok := lookup(key)
	if !ok {
		logDefault(log, key, defaultVal)
		return defaultVal
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if log != nil {
			log.Warn("Invalid float environment variable, using default", "env_var", key, "value", raw, "default", defaultVal)
		}
		return defaultVal
	}
	return f
}

// Seconds reads an integer number of seconds.
func Seconds(key string, defaultVal time.Duration, log *logger.Logger) time.Duration {
	return time.Duration(Int(key, int(defaultVal/time.Second), log)) * time.Second
}

// List splits a comma separated variable, dropping blanks.
func List(key string, defaultVal []string, log *logger.Logger) []string {
	raw, ok := lookup(key)
	if !ok {
		logDefault(log, key, defaultVal)
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func lookup(key string) (string, bool) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	return val, val != ""
}

func logDefault(log *logger.Logger, key string, defaultVal interface{}) {
	if log != nil {
		log.Debug("Environment variable not found, using default", "env_var", key, "default", defaultVal)
	}
}
