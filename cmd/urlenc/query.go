package main

import (
	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/tomasbasham/urlenc"
	"github.com/tomasbasham/urlenc/internal/config"
	"github.com/tomasbasham/urlenc/internal/logger"
)

func cmdQuery(cfg *config.Config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "query [-url] <query>",
		ShortDesc: "decodes a query string into key/value pairs",
		LongDesc: `Decodes a query string into key/value pairs.

Pairs may be separated by '&' or ';'. With -url the argument is a whole URL
and its query component is decoded. Malformed pairs are reported and skipped;
the remaining pairs are still printed.`,
		CommandRun: func() subcommands.CommandRun {
			r := &queryRun{}
			r.init(cfg)
			r.Flags.BoolVar(&r.fromURL, "url", false, "take the query from a URL")
			return r
		},
	}
}

type queryRun struct {
	commandRun

	fromURL bool
}

func (r *queryRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		return r.argErr(a, "query takes exactly one argument")
	}
	if rc := r.prepare(a); rc != exitOK {
		return rc
	}

	raw := args[0]
	if r.fromURL {
		u, err := urlenc.Parse(raw)
		if err != nil {
			return r.done(a, err)
		}
		raw = u.RawQuery
	}

	values, parseErr := urlenc.ParseQuery(raw)
	logger.Log.Debug("parsed query", zap.Int("keys", len(values)), zap.NamedError("first_error", parseErr))
	if rc := r.output(a, values); rc != exitOK {
		return rc
	}
	return r.done(a, parseErr)
}
