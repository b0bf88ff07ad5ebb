package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddress    = "HTTP_ADDRESS"
	EnvDatabaseDSN    = "DATABASE_DSN"
	EnvSecretKey      = "JWT_SECRET"
	EnvTokenTTL       = "TOKEN_TTL"
	EnvAllowedOrigins = "ALLOWED_ORIGINS"
	EnvLogLevel       = "LOG_LEVEL"
	EnvRunMigrations  = "RUN_MIGRATIONS"
)

// parseEnv overlays values found through lookup (os.LookupEnv in
// production). Empty variables are ignored.
func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvHTTPAddress); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := get(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := get(EnvSecretKey); ok {
		config.SecretKey = v
	}
	if v, ok := get(EnvTokenTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTokenTTL, err)
		}
		config.TokenValidityDuration = d
	}
	if v, ok := get(EnvAllowedOrigins); ok {
		config.AllowedOrigins = splitOrigins(v)
	}
	if v, ok := get(EnvLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := get(EnvRunMigrations); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRunMigrations, err)
		}
		config.RunMigrations = b
	}
	return nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
