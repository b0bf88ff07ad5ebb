package config

import (
	"flag"
	"strings"

	"github.com/dmitrijs2005/usersapi/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g. ":8080")
//	-d string     PostgreSQL DSN
//	-s string     token HMAC secret key
//	-t duration   token validity (e.g. "24h")
//	-o string     comma-separated CORS origins
//	-l string     log level
//	-m            apply migrations on startup
//
// Only these flags are considered; everything else in args is ignored.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, "-a", "-d", "-s", "-t", "-o", "-l", "-m")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")
	origins := fs.String("o", strings.Join(config.AllowedOrigins, ","), "allowed CORS origins, comma separated")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.RunMigrations, "m", config.RunMigrations, "apply migrations on startup")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.AllowedOrigins = splitOrigins(*origins)
	return nil
}
