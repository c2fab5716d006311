package main

import (
	"github.com/maruel/subcommands"

	"github.com/tomasbasham/urlenc"
	"github.com/tomasbasham/urlenc/internal/config"
	"github.com/tomasbasham/urlenc/internal/render"
)

func cmdJoin(cfg *config.Config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "join <base> [element]...",
		ShortDesc: "appends path elements to a URL",
		LongDesc: `Appends path elements to the path of a base URL, cleaning "." and ".."
segments from the result.`,
		CommandRun: func() subcommands.CommandRun {
			r := &joinRun{}
			r.init(cfg)
			return r
		},
	}
}

type joinRun struct {
	commandRun
}

func (r *joinRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) == 0 {
		return r.argErr(a, "join needs a base URL")
	}
	if rc := r.prepare(a); rc != exitOK {
		return rc
	}

	joined, err := urlenc.JoinPath(args[0], args[1:]...)
	if err != nil {
		return r.done(a, err)
	}
	return r.output(a, render.Result{Input: args[0], Output: joined})
}
