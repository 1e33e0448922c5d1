package config

import (
	"flag"
	"os"
	"time"

	"github.com/lockboxapp/lockbox/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line
// flags:
//
//	-s string   server base URL (e.g. "http://localhost:8080")
//	-t int      request timeout, seconds
//
// Args are filtered first so flags owned by other components (like the
// -c/-config pair handled in parseJson) do not trip the flag set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "s", config.ServerBaseURL, "server base URL")
	timeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*timeout) * time.Second
}
