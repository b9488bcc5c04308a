// Package config loads runtime configuration for the IPT demo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage backend: memory, sqlite, postgres, redis, s3
//	-f string   SQLite database file
//	-d string   PostgreSQL DSN
//	-r string   Redis address (host:port)
//	-k string   key of the durable document
//	-t int      remembered session lifetime (hours, 0 = no expiry)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "24h" or
// integer nanoseconds:
//
//	{
//	  "storage_backend": "sqlite",
//	  "sqlite_path": "ipt.db",
//	  "document_key": "ipt_demo_v1",
//	  "session_ttl": "24h",
//	  "log_backend": "zap"
//	}
//
// Fields missing from the JSON file keep their previous value.
package config
