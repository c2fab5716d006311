package main

import (
	"github.com/maruel/subcommands"

	"github.com/tomasbasham/urlenc"
	"github.com/tomasbasham/urlenc/internal/config"
	"github.com/tomasbasham/urlenc/internal/render"
)

const (
	modeQuery = "query"
	modePath  = "path"
)

func cmdEscape(cfg *config.Config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "escape [-mode query|path] <string>",
		ShortDesc: "percent-encodes a string",
		LongDesc: `Percent-encodes a string.

In query mode (the default) spaces become '+' and every reserved character is
escaped, so the result can be used as a query key or value. In path mode the
result is safe to use as a single path segment.`,
		CommandRun: func() subcommands.CommandRun {
			r := &escapeRun{}
			r.init(cfg)
			r.Flags.StringVar(&r.mode, "mode", modeQuery, "escaping rules: query or path")
			return r
		},
	}
}

func cmdUnescape(cfg *config.Config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "unescape [-mode query|path] <string>",
		ShortDesc: "decodes a percent-encoded string",
		LongDesc: `Decodes a percent-encoded string.

In query mode (the default) '+' decodes to a space. In path mode it is kept.`,
		CommandRun: func() subcommands.CommandRun {
			r := &escapeRun{unescape: true}
			r.init(cfg)
			r.Flags.StringVar(&r.mode, "mode", modeQuery, "escaping rules: query or path")
			return r
		},
	}
}

type escapeRun struct {
	commandRun

	mode     string
	unescape bool
}

func (r *escapeRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		return r.argErr(a, "expected exactly one string")
	}
	if rc := r.prepare(a); rc != exitOK {
		return rc
	}

	var (
		out string
		err error
	)
	switch in := args[0]; {
	case r.mode == modeQuery && r.unescape:
		out, err = urlenc.QueryUnescape(in)
	case r.mode == modeQuery:
		out = urlenc.QueryEscape(in)
	case r.mode == modePath && r.unescape:
		out, err = urlenc.PathUnescape(in)
	case r.mode == modePath:
		out = urlenc.PathEscape(in)
	default:
		return r.argErr(a, "unknown -mode %q, want %s or %s", r.mode, modeQuery, modePath)
	}
	if err != nil {
		return r.done(a, err)
	}
	return r.output(a, render.Result{Input: args[0], Output: out})
}
