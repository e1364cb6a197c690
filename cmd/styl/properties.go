package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	yaml "gopkg.in/yaml.v3"

	"styl/css"
)

type propertyInfo struct {
	Name      string `yaml:"name"`
	Initial   string `yaml:"initial,omitempty"`
	Inherited bool   `yaml:"inherited"`
}

func runProperties(_ context.Context, _ *cli.Command) error {

	props := css.Properties()
	out := make([]propertyInfo, 0, len(props))
	for _, p := range props {
		out = append(out, propertyInfo{
			Name:      p.String(),
			Initial:   p.Initial(),
			Inherited: p.Inherited(),
		})
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("unable to marshal property registry: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
