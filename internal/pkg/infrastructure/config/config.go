package config

import (
	"context"
	"os"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// GetVariableOrDefault looks up name in the environment, falling back
// to reading the contents of the file named by <name>_FILE, then to
// the provided default. The _FILE indirection is uniform across all
// services so secrets can be mounted instead of passed inline.
func GetVariableOrDefault(ctx context.Context, name, defaultValue string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}

	if path, ok := os.LookupEnv(name + "_FILE"); ok {
		b, err := os.ReadFile(path)
		if err == nil {
			return strings.TrimSpace(string(b))
		}

		log := logging.GetFromContext(ctx)
		log.Error("could not read variable from file", "name", name, "path", path, "err", err.Error())
	}

	return defaultValue
}
