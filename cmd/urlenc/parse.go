package main

import (
	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/tomasbasham/urlenc"
	"github.com/tomasbasham/urlenc/internal/config"
	"github.com/tomasbasham/urlenc/internal/logger"
	"github.com/tomasbasham/urlenc/internal/render"
)

func cmdParse(cfg *config.Config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "parse [-request] <url>",
		ShortDesc: "breaks a URL down into its components",
		LongDesc: `Breaks a URL down into its components.

With -request the input must be an absolute URI or an absolute path, as sent
in an HTTP request line, and a '#' is not treated as a fragment marker.
Passwords are never printed.`,
		CommandRun: func() subcommands.CommandRun {
			r := &parseRun{}
			r.init(cfg)
			r.Flags.BoolVar(&r.request, "request", false, "parse as an HTTP request target")
			return r
		},
	}
}

type parseRun struct {
	commandRun

	request bool
}

func (r *parseRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		return r.argErr(a, "parse takes exactly one URL")
	}
	if rc := r.prepare(a); rc != exitOK {
		return rc
	}

	parse := urlenc.Parse
	if r.request {
		parse = urlenc.ParseRequestURI
	}
	u, err := parse(args[0])
	if err != nil {
		return r.done(a, err)
	}

	logger.Log.Debug("parsed url",
		zap.String("url", u.Redacted()),
		zap.Bool("request", r.request),
		zap.Bool("absolute", u.IsAbs()))
	return r.output(a, render.NewComponents(u))
}
