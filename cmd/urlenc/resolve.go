package main

import (
	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/tomasbasham/urlenc"
	"github.com/tomasbasham/urlenc/internal/config"
	"github.com/tomasbasham/urlenc/internal/logger"
	"github.com/tomasbasham/urlenc/internal/render"
)

func cmdResolve(cfg *config.Config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "resolve <base> <reference>",
		ShortDesc: "resolves a URL reference against a base URL",
		LongDesc: `Resolves a URL reference against a base URL as described in RFC 3986
section 5.2, removing "." and ".." segments from the result.`,
		CommandRun: func() subcommands.CommandRun {
			r := &resolveRun{}
			r.init(cfg)
			return r
		},
	}
}

type resolveRun struct {
	commandRun
}

func (r *resolveRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 2 {
		return r.argErr(a, "resolve takes a base URL and a reference")
	}
	if rc := r.prepare(a); rc != exitOK {
		return rc
	}

	base, err := urlenc.Parse(args[0])
	if err != nil {
		return r.done(a, err)
	}
	resolved, err := base.Parse(args[1])
	if err != nil {
		return r.done(a, err)
	}

	logger.Log.Debug("resolved reference",
		zap.String("base", base.Redacted()),
		zap.String("result", resolved.Redacted()))
	return r.output(a, render.Result{Input: args[1], Output: resolved.String()})
}
