package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	log.Debugw("config", "env", env, "default", def)
	return def
}
