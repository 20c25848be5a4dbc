package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/katalvlaran/pqkit/median"
)

// MedianCommand prints the running median of a stream of numbers.
type MedianCommand struct {
	Final  bool
	Values []string

	out    io.Writer
	logCfg *LoggerConfig
}

// Register adds the median command to app.
func (c *MedianCommand) Register(app *kingpin.Application, logCfg *LoggerConfig) {
	c.logCfg = logCfg
	cmd := app.Command("median", "Print the median after each value.").Action(c.run)
	cmd.Flag("final", "Print only the median of all values.").BoolVar(&c.Final)
	cmd.Arg("values", "Numbers, space or comma separated.").Required().StringsVar(&c.Values)
}

func (c *MedianCommand) run(*kingpin.ParseContext) error {
	logger := c.logCfg.Logger()

	vals, err := parseFloats(c.Values)
	if err != nil {
		return err
	}

	if !c.Final {
		fmt.Fprintln(c.out, joinValues(median.Running(vals)))
		return nil
	}

	tr := median.New[float64]()
	for _, v := range vals {
		tr.Add(v)
	}
	m, err := tr.Median()
	if err != nil {
		level.Error(logger).Log("msg", "no median", "err", err)
		return err
	}

	level.Debug(logger).Log("msg", "median computed", "inputs", tr.Len())
	fmt.Fprintln(c.out, m)

	return nil
}
