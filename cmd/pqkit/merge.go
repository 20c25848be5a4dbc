package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/katalvlaran/pqkit/coverrange"
	"github.com/katalvlaran/pqkit/kmerge"
)

// MergeCommand merges sorted integer sources into one sorted sequence.
type MergeCommand struct {
	Strategy string
	Sources  []string

	out    io.Writer
	logCfg *LoggerConfig
}

// Register adds the merge command to app.
func (c *MergeCommand) Register(app *kingpin.Application, logCfg *LoggerConfig) {
	c.logCfg = logCfg
	cmd := app.Command("merge", "Merge sorted sources; each argument is one comma-separated source.").Action(c.run)
	cmd.Flag("strategy", "Merge strategy: heap or pairwise.").
		Default(string(kmerge.StrategyHeap)).
		Envar(envPrefix + "MERGE_STRATEGY").
		StringVar(&c.Strategy)
	cmd.Arg("sources", "Sorted sources such as 1,4,5.").StringsVar(&c.Sources)
}

func (c *MergeCommand) run(*kingpin.ParseContext) error {
	logger := c.logCfg.Logger()

	sources, err := parseSources(c.Sources)
	if err != nil {
		return err
	}

	merged, err := kmerge.Compute(sources, func(a, b int) bool { return a < b },
		kmerge.WithStrategy(kmerge.Strategy(c.Strategy)))
	if err != nil {
		level.Error(logger).Log("msg", "merge failed", "strategy", c.Strategy, "err", err)
		return err
	}

	level.Debug(logger).Log("msg", "merged", "strategy", c.Strategy, "sources", len(sources), "values", len(merged))
	fmt.Fprintln(c.out, joinValues(merged))

	return nil
}

// RangeCommand prints the smallest range covering one value of every source.
type RangeCommand struct {
	Sources []string

	out    io.Writer
	logCfg *LoggerConfig
}

// Register adds the range command to app.
func (c *RangeCommand) Register(app *kingpin.Application, logCfg *LoggerConfig) {
	c.logCfg = logCfg
	cmd := app.Command("range", "Print the smallest range containing a value from every sorted source.").Action(c.run)
	cmd.Arg("sources", "Sorted sources such as 4,10,15.").StringsVar(&c.Sources)
}

func (c *RangeCommand) run(*kingpin.ParseContext) error {
	logger := c.logCfg.Logger()

	sources, err := parseSources(c.Sources)
	if err != nil {
		return err
	}

	r, err := coverrange.Smallest(sources)
	if err != nil {
		level.Error(logger).Log("msg", "no covering range", "sources", len(sources), "err", err)
		return err
	}

	level.Debug(logger).Log("msg", "covering range found", "sources", len(sources), "width", r.Width())
	fmt.Fprintln(c.out, r)

	return nil
}
