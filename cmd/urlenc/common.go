package main

import (
	"fmt"

	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/tomasbasham/urlenc/internal/config"
	"github.com/tomasbasham/urlenc/internal/logger"
	"github.com/tomasbasham/urlenc/internal/render"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// commandRun carries the flags every subcommand shares.
type commandRun struct {
	subcommands.CommandRunBase

	cfg    config.Config
	format render.Format
}

// init copies the environment configuration and registers -format and
// -log-level on top of it.
func (c *commandRun) init(cfg *config.Config) {
	c.cfg = *cfg
	c.cfg.RegisterFlags(&c.Flags)
}

// prepare validates the shared flags once they have been parsed. It returns
// a non-zero exit code when the command must not continue.
func (c *commandRun) prepare(a subcommands.Application) int {
	format, err := render.ParseFormat(c.cfg.Format)
	if err != nil {
		return c.argErr(a, "%v", err)
	}
	c.format = format

	if err := logger.Initialize(c.cfg.LogLevel); err != nil {
		return c.argErr(a, "invalid -log-level: %v", err)
	}
	return exitOK
}

// argErr reports misuse of the command line.
func (c *commandRun) argErr(a subcommands.Application, format string, args ...interface{}) int {
	fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), fmt.Sprintf(format, args...))
	return exitUsage
}

// done reports err, if any, and returns the matching exit code.
func (c *commandRun) done(a subcommands.Application, err error) int {
	if err == nil {
		return exitOK
	}
	logger.Log.Debug("command failed", zap.Error(err))
	fmt.Fprintf(a.GetErr(), "%s: %v\n", a.GetName(), err)
	return exitFailure
}

// output writes v to stdout in the selected format.
func (c *commandRun) output(a subcommands.Application, v interface{}) int {
	return c.done(a, render.Write(a.GetOut(), c.format, v))
}
