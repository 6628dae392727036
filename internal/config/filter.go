package config

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rehearse/internal/catalog"
	"github.com/ayoisaiah/rehearse/internal/timeutil"
)

// Filter builds a history filter from the --search, --type and --since flags.
func Filter(ctx *cli.Context) (catalog.Filter, error) {
	f := catalog.Filter{
		Search: strings.TrimSpace(ctx.String("search")),
		Type:   strings.TrimSpace(ctx.String("type")),
	}

	if f.Type != "" && f.Type != catalog.TypeAll && !catalog.Default().HasType(f.Type) {
		return f, errUnknownType.Fmt(f.Type)
	}

	if since := strings.TrimSpace(ctx.String("since")); since != "" {
		t, err := timeutil.FromStr(since)
		if err != nil {
			return f, errInvalidSince.Fmt(since).Wrap(err)
		}

		f.Since = t
	}

	return f, nil
}
