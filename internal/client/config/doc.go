// Package config loads runtime configuration for the BookHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the BookHub API
//	-s string   credential store backend: sqlite, redis or memory
//	-d string   data directory for the SQLite store
//	-r string   Redis URL for the redis backend
//	-t int      request timeout in seconds (0 disables it)
//	-l string   log level: debug, info, warn or error
//
// # File schema
//
// Intervals use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://bookhubb-jnsr.onrender.com",
//	  "store_backend": "sqlite",
//	  "data_dir": "data",
//	  "redis_url": "redis://127.0.0.1:6379/0",
//	  "credential_key": "user",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
//
// Keys left out of the file keep their earlier value.
package config
