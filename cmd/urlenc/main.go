// Command urlenc parses, escapes and resolves URLs from the command line.
//
// Results go to stdout as text, JSON or YAML (-format, or URLENC_FORMAT).
// Logs go to stderr at the level set by -log-level or URLENC_LOG_LEVEL.
package main

import (
	"fmt"
	"os"

	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/tomasbasham/urlenc/internal/config"
	"github.com/tomasbasham/urlenc/internal/logger"
)

// application creates the application and configures its subcommands.
func application(cfg *config.Config) *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "urlenc",
		Title: "Parses, escapes and resolves URLs.",
		Commands: []*subcommands.Command{
			cmdParse(cfg),
			cmdResolve(cfg),
			cmdJoin(cfg),
			cmdRedact(cfg),
			cmdQuery(cfg),

			{}, // a separator
			cmdEscape(cfg),
			cmdUnescape(cfg),

			{}, // a separator
			subcommands.CmdHelp,
		},
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "urlenc: %v\n", err)
		return exitUsage
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "urlenc: invalid URLENC_LOG_LEVEL: %v\n", err)
		return exitUsage
	}
	defer func() { _ = logger.Log.Sync() }()

	// Arguments may hold credentials, so only the subcommand is logged.
	var cmd string
	if len(args) > 0 {
		cmd = args[0]
	}
	logger.Log.Debug("starting", zap.String("command", cmd), zap.String("format", cfg.Format))
	return subcommands.Run(application(cfg), args)
}
