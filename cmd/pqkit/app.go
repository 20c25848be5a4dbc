package main

import (
	"io"

	"github.com/alecthomas/kingpin/v2"
)

// envPrefix prefixes the environment variable of every flag.
const envPrefix = "PQKIT_"

// newApp wires the logger and every command into one kingpin application.
func newApp(stdout, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("pqkit", "Priority-queue algorithms: top-k, running median, k-way merge, smallest covering range.")
	app.Writer(stdout)
	app.ErrorWriter(stderr)

	// Register logger first so its PreAction runs before the command actions.
	logCfg := &LoggerConfig{out: stderr}
	logCfg.Register(app)

	(&TopKCommand{out: stdout}).Register(app, logCfg)
	(&FrequentCommand{out: stdout}).Register(app, logCfg)
	(&MedianCommand{out: stdout}).Register(app, logCfg)
	(&MergeCommand{out: stdout}).Register(app, logCfg)
	(&RangeCommand{out: stdout}).Register(app, logCfg)

	return app
}
