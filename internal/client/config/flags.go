package config

import (
	"flag"
	"os"
	"time"

	"github.com/bookhubb/bookhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only the flags listed below are taken from os.Args (see flagx.FilterArgs),
// so -c/-config and unknown arguments pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-r", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the BookHub API")
	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "credential store backend (sqlite|redis|memory)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for the sqlite store")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "redis URL for the redis store")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t replaces a sub-second timeout from the file.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
