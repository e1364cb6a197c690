package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"styl/config"
	"styl/css"
	"styl/css/values"
	"styl/state"
)

// queryFile is the YAML shape of an element query.
type queryFile struct {
	Type     string                 `yaml:"type"`
	ID       string                 `yaml:"id"`
	Classes  []string               `yaml:"classes"`
	Viewport *config.ViewportConfig `yaml:"viewport"`
}

// resolveOutput is the YAML shape printed by the resolve command.
type resolveOutput struct {
	Properties map[string]string `yaml:"properties"`
	Border     *borderOutput     `yaml:"border,omitempty"`
}

// borderOutput reports how the resolved border is to be stroked. Patterns
// carries the per-side dash intervals when the border is not uniform.
type borderOutput struct {
	Uniform  bool                 `yaml:"uniform"`
	Patterns map[string][]float64 `yaml:"patterns,omitempty"`
}

var edgeNames = [4]string{
	values.EdgeTop:    "top",
	values.EdgeRight:  "right",
	values.EdgeBottom: "bottom",
	values.EdgeLeft:   "left",
}

// borderSection assembles the border stroke report, nil when no side is
// painted. The dash argument comes from engine.dash_pattern.
func borderSection(block *css.PropertyBlock, dash []float64) (*borderOutput, error) {
	border, err := block.Border()
	if err != nil {
		return nil, err
	}
	stroked := false
	for _, s := range border.Sides {
		if s.Style != values.BorderNone && s.Style != values.BorderHidden {
			stroked = true
			break
		}
	}
	if !stroked {
		return nil, nil
	}
	out := &borderOutput{Uniform: border.Uniform()}
	if !out.Uniform {
		pats := border.Patterns(dash)
		out.Patterns = make(map[string][]float64, len(pats))
		for edge, p := range pats {
			out.Patterns[edgeNames[edge]] = p
		}
	}
	return out, nil
}

func runResolve(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		fname = env.Cfg.Engine.StylesheetPath
	}
	if len(fname) == 0 {
		return errors.New("no stylesheet to resolve against, provide a path or set engine.stylesheet_path")
	}

	var qf queryFile
	if qname := cmd.String("query"); len(qname) > 0 {
		data, err := os.ReadFile(qname)
		if err != nil {
			return fmt.Errorf("unable to read query file '%s': %w", qname, err)
		}
		if err := yaml.Unmarshal(data, &qf); err != nil {
			return fmt.Errorf("unable to parse query file '%s': %w", qname, err)
		}
	}
	// command line overrides query file fields
	if t := cmd.String("type"); t != "*" || qf.Type == "" {
		qf.Type = t
	}
	if id := cmd.String("id"); len(id) > 0 {
		qf.ID = id
	}
	if classes := cmd.StringSlice("class"); len(classes) > 0 {
		qf.Classes = classes
	}

	media := env.Cfg.Engine.Viewport.MediaContext()
	if qf.Viewport != nil {
		media = qf.Viewport.MediaContext()
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet '%s': %w", fname, err)
	}
	sheet, err := css.NewParser(env.Log).Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	q := css.Query{Type: qf.Type, ID: qf.ID, Classes: qf.Classes, Media: media}
	block := css.NewResolver(env.Log).Resolve(sheet, q)

	env.Log.Info("Resolved query",
		zap.String("file", fname),
		zap.String("type", q.Type),
		zap.String("id", q.ID),
		zap.Strings("classes", q.Classes),
		zap.Int("declarations", block.Len()))

	resolved := make(map[string]string, block.Len())
	for _, name := range block.Names() {
		v, ok, err := block.Get(name)
		if err != nil {
			return fmt.Errorf("unable to resolve '%s': %w", name, err)
		}
		if !ok {
			continue
		}
		resolved[name] = v
	}

	border, err := borderSection(block, env.Cfg.Engine.DashPattern)
	if err != nil {
		return fmt.Errorf("unable to resolve border: %w", err)
	}

	out, err := yaml.Marshal(resolveOutput{Properties: resolved, Border: border})
	if err != nil {
		return fmt.Errorf("unable to marshal resolved properties: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
