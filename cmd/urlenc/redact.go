package main

import (
	"errors"

	"github.com/maruel/subcommands"

	"github.com/tomasbasham/urlenc"
	"github.com/tomasbasham/urlenc/internal/config"
	"github.com/tomasbasham/urlenc/internal/render"
)

func cmdRedact(cfg *config.Config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "redact <url>",
		ShortDesc: "prints a URL with its password replaced",
		LongDesc:  `Prints a URL with any password replaced by "xxxxx".`,
		CommandRun: func() subcommands.CommandRun {
			r := &redactRun{}
			r.init(cfg)
			return r
		},
	}
}

// errInvalidURL replaces parse errors from redact, which may quote the
// password.
var errInvalidURL = errors.New("invalid URL")

type redactRun struct {
	commandRun
}

func (r *redactRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		return r.argErr(a, "redact takes exactly one URL")
	}
	if rc := r.prepare(a); rc != exitOK {
		return rc
	}

	u, err := urlenc.Parse(args[0])
	if err != nil {
		return r.done(a, errInvalidURL)
	}
	// The input is left out of the result since it holds the password.
	return r.output(a, render.Result{Output: u.Redacted()})
}
