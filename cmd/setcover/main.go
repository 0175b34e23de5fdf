// Command setcover reads a subset file and prints every minimum set cover.
//
// Usage:
//
//	setcover [flags] INPUTFILE
//
// Each input line is one subset of non-negative integer element IDs. Old
// files that start with two single-number header lines (largest element ID
// and subset count) are detected; the header is removed unless --new-file
// is given. Solutions are printed 1-based, one per line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/lvcover/loader"
	"github.com/katalvlaran/lvcover/render"
	"github.com/katalvlaran/lvcover/setcover"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "setcover:", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	input      string
	newFile    bool
	maxElement int
	workers    int
	timeout    time.Duration
	logLevel   string
	color      bool
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config

	app := kingpin.New("setcover", "Lists every smallest combination of subsets that covers all elements.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.HelpFlag.Short('h')

	app.Arg("input", "subset file, one subset per line").Required().StringVar(&cfg.input)
	app.Flag("new-file", "read a file whose first two lines hold one value each as ordinary subsets").
		BoolVar(&cfg.newFile)
	app.Flag("max-element", "largest valid element ID; overrides an old-format header (-1: none)").
		Default("-1").IntVar(&cfg.maxElement)
	app.Flag("workers", "goroutines used to enumerate the minimum covers").
		Default("1").IntVar(&cfg.workers)
	app.Flag("timeout", "abort the search after this duration (0: never)").
		Default("0s").DurationVar(&cfg.timeout)
	app.Flag("log-level", "log verbosity").
		Default("info").EnumVar(&cfg.logLevel, "debug", "info", "warn", "error")
	app.Flag("color", "highlight the output header").BoolVar(&cfg.color)

	if _, err := app.Parse(args); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	lvl, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	var lopts []loader.Option
	if cfg.newFile {
		lopts = append(lopts, loader.WithForceNewFormat())
	}
	log.WithField("path", cfg.input).Info("loading file")
	inst, err := loader.LoadFile(cfg.input, lopts...)
	if err != nil {
		return err
	}
	reportFormat(log, inst, cfg.newFile)

	maxElement := cfg.maxElement
	if maxElement < 0 && inst.MaxElement >= 0 {
		maxElement = inst.MaxElement
	}

	sv, err := setcover.New(inst.Subsets,
		setcover.WithContext(ctx),
		setcover.WithMaxElement(maxElement),
		setcover.WithWorkers(cfg.workers),
		setcover.WithOnEvent(eventLogger(log)),
	)
	if err != nil {
		return err
	}
	if err = sv.Solve(); err != nil {
		return err
	}

	return render.WriteSolutions(stdout, sv.Solutions(), render.WithColor(cfg.color))
}

// reportFormat logs what the loader found out about the file layout.
func reportFormat(log logrus.FieldLogger, inst *loader.Instance, forced bool) {
	if inst.Legacy && !forced {
		log.Warn("Old file format detected. Please check the input file. " +
			"If you want single element subsets on the first two lines, run with --new-file.")
	}
	if !inst.HeaderStripped {
		return
	}
	log.WithFields(logrus.Fields{
		"max_element": inst.MaxElement,
		"subsets":     inst.DeclaredSets,
	}).Info("removed header lines from old format file")
	if inst.DeclaredSets != len(inst.Subsets) {
		log.WithFields(logrus.Fields{
			"declared": inst.DeclaredSets,
			"read":     len(inst.Subsets),
		}).Warn("subset count differs from the header")
	}
}
