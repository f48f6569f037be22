package env

import (
	"go.uber.org/zap"
	"strings"
)

// ListDefault return the comma separated values of an env var, blank items are dropped
func ListDefault(log *zap.SugaredLogger, env, def string) []string {
	var values []string
	for _, v := range strings.Split(OrDefault(log, env, def), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
