package config

import (
	"flag"
	"os"

	"github.com/ymatsuzawa/foodkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line
// flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//
// os.Args is first filtered to only the flags handled here using
// flagx.FilterArgs, avoiding collisions with the -c/-config flags owned by
// the JSON layer.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
