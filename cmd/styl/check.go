package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"styl/css"
	"styl/state"
)

func runCheck(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	paths := cmd.Args().Slice()
	if len(paths) == 0 && len(env.Cfg.Engine.StylesheetPath) > 0 {
		paths = []string{env.Cfg.Engine.StylesheetPath}
	}
	if len(paths) == 0 {
		return errors.New("no stylesheet to check, provide a path or set engine.stylesheet_path")
	}

	p := css.NewParser(env.Log)

	var errs error
	for _, fname := range paths {
		data, err := os.ReadFile(fname)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to read stylesheet '%s': %w", fname, err))
			continue
		}
		sheet, err := p.Parse(string(data))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", fname, err))
			continue
		}
		env.Log.Info("Stylesheet is valid",
			zap.String("file", fname),
			zap.Int("rules", sheet.Len()),
			zap.Int("variables", len(sheet.Variables)))
	}
	return errs
}
