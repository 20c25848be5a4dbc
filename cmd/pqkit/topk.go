package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/katalvlaran/pqkit/topk"
)

// TopKCommand selects the k largest (or smallest) of the given integers.
type TopKCommand struct {
	K        int
	Smallest bool
	Running  bool
	Values   []string

	out    io.Writer
	logCfg *LoggerConfig
}

// Register adds the topk command to app.
func (c *TopKCommand) Register(app *kingpin.Application, logCfg *LoggerConfig) {
	c.logCfg = logCfg
	cmd := app.Command("topk", "Print the k largest values, best first.").Action(c.run)
	cmd.Flag("k", "Number of values to keep.").Short('k').Required().Envar(envPrefix + "K").IntVar(&c.K)
	cmd.Flag("smallest", "Keep the k smallest values instead.").BoolVar(&c.Smallest)
	cmd.Flag("running", "Print the k-th best value after every input; '-' while fewer than k were seen.").BoolVar(&c.Running)
	cmd.Arg("values", "Integers, space or comma separated.").Required().StringsVar(&c.Values)
}

func (c *TopKCommand) run(*kingpin.ParseContext) error {
	logger := c.logCfg.Logger()

	vals, err := parseInts(c.Values)
	if err != nil {
		return err
	}

	var sel *topk.Selector[int]
	if c.Smallest {
		sel, err = topk.NewSmallest[int](c.K)
	} else {
		sel, err = topk.NewLargest[int](c.K)
	}
	if err != nil {
		level.Error(logger).Log("msg", "invalid selector", "k", c.K, "err", err)
		return err
	}

	for _, v := range vals {
		root, ok := sel.Offer(v)
		if !c.Running {
			continue
		}
		if ok {
			fmt.Fprintln(c.out, root)
		} else {
			fmt.Fprintln(c.out, "-")
		}
	}

	level.Debug(logger).Log("msg", "selected", "k", c.K, "inputs", len(vals), "kept", sel.Len())
	fmt.Fprintln(c.out, joinValues(sel.ExtractSorted()))

	return nil
}

// FrequentCommand prints the k most frequent words.
type FrequentCommand struct {
	K     int
	Words []string

	out    io.Writer
	logCfg *LoggerConfig
}

// Register adds the frequent command to app.
func (c *FrequentCommand) Register(app *kingpin.Application, logCfg *LoggerConfig) {
	c.logCfg = logCfg
	cmd := app.Command("frequent", "Print the k most frequent words; ties go to the lexicographically smaller word.").Action(c.run)
	cmd.Flag("k", "Number of words to print.").Short('k').Required().Envar(envPrefix + "K").IntVar(&c.K)
	cmd.Arg("words", "Words to count.").Required().StringsVar(&c.Words)
}

func (c *FrequentCommand) run(*kingpin.ParseContext) error {
	logger := c.logCfg.Logger()

	words, err := topk.TopKFrequentWords(c.Words, c.K)
	if err != nil {
		level.Error(logger).Log("msg", "top-k frequent words failed", "k", c.K, "err", err)
		return err
	}

	level.Debug(logger).Log("msg", "counted words", "inputs", len(c.Words), "k", c.K)
	fmt.Fprintln(c.out, joinValues(words))

	return nil
}
