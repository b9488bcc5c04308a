package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/iptdemo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags listed here are considered; everything else in args
// (for example -c) is filtered out with flagx.FilterArgs. A malformed
// value panics.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-f", "-d", "-r", "-k", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (memory, sqlite, postgres, redis, s3)")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "sqlite database file")
	fs.StringVar(&cfg.PostgresDSN, "d", cfg.PostgresDSN, "postgres DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.DocumentKey, "k", cfg.DocumentKey, "storage key of the durable document")
	ttl := fs.Int("t", int(cfg.SessionTTL.Hours()), "remembered session lifetime (in hours, 0 = no expiry)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t is applied only when given, so a sub-hour TTL from JSON survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionTTL = time.Duration(*ttl) * time.Hour
		}
	})
}
