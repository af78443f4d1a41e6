package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"rockfall/internal/core"
	"rockfall/internal/render"
	"rockfall/internal/sims/rockfall"
)

const (
	modeDirect      = "direct"
	modeExtrapolate = "extrapolate"
	modeCycle       = "cycle"
	modeAll         = "all"
)

type options struct {
	cfg      rockfall.Config
	rocks    int64
	mode     string
	print    int
	logLevel string
	group    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "rockfall:", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	opts := options{cfg: rockfall.DefaultConfig()}
	fs := flag.NewFlagSet("rockfall", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.cfg.Input, "input", "", "file holding the jet pattern")
	fs.StringVar(&opts.cfg.Jets, "jets", "", "literal jet pattern (overrides -input)")
	fs.Int64Var(&opts.rocks, "rocks", 2022, "number of rocks to drop")
	fs.StringVar(&opts.mode, "mode", modeAll, "direct, extrapolate, cycle or all")
	fs.IntVar(&opts.cfg.SearchBound, "search-bound", 0, "rocks searched for a cycle (0 = automatic)")
	fs.Int64Var(&opts.cfg.DirectLimit, "direct-limit", opts.cfg.DirectLimit, "largest rock count simulated directly when no cycle is found")
	fs.IntVar(&opts.print, "print", 0, "print the top N rows of the well after a direct run")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	fs.BoolVar(&opts.group, "group", false, "group digits in printed heights")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.cfg.Jets == "" && opts.cfg.Input == "" {
		return opts, errors.New("one of -input or -jets is required")
	}
	switch opts.mode {
	case modeDirect, modeExtrapolate, modeCycle, modeAll:
	default:
		return opts, fmt.Errorf("unknown mode %q", opts.mode)
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(stderr, log.Options{Level: level, Prefix: "rockfall"})

	jets, err := opts.cfg.LoadJets()
	if err != nil {
		return err
	}
	sim, err := rockfall.NewSimulator(jets, opts.cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("loaded jets", "count", len(jets))

	printf := func(format string, a ...any) { fmt.Fprintf(stdout, format, a...) }
	if opts.group {
		p := message.NewPrinter(language.English)
		printf = func(format string, a ...any) { p.Fprintf(stdout, format, a...) }
	}

	if opts.mode == modeCycle || opts.mode == modeAll {
		c, err := sim.DetectCycle()
		switch {
		case err == nil:
			printf("cycle: start %d length %d height +%d\n", c.Start, c.Length, c.HeightDelta)
		case errors.Is(err, rockfall.ErrNoCycle) && opts.mode == modeAll:
			logger.Warn("cycle detection failed", "err", err)
		default:
			return err
		}
	}
	if opts.mode == modeDirect || opts.mode == modeAll {
		if opts.rocks > opts.cfg.DirectLimit && opts.mode == modeAll {
			logger.Warn("skipping direct simulation", "rocks", opts.rocks, "direct_limit", opts.cfg.DirectLimit)
		} else {
			h, err := sim.Simulate(opts.rocks)
			if err != nil {
				return err
			}
			printf("direct: %d rocks -> height %d\n", opts.rocks, h)
		}
	}
	if opts.mode == modeExtrapolate || opts.mode == modeAll {
		h, err := sim.SimulateExtrapolated(opts.rocks)
		if err != nil {
			return err
		}
		printf("extrapolated: %d rocks -> height %d\n", opts.rocks, h)
	}
	if opts.print > 0 {
		return printWell(stdout, jets, opts)
	}
	return nil
}

func printWell(w io.Writer, jets rockfall.Jets, opts options) error {
	rocks := min(opts.rocks, opts.cfg.DirectLimit)
	e := rockfall.NewEngine(jets, rockfall.RowsHint(int(rocks)))
	e.Run(int(rocks))
	g := core.NewByteGrid(rockfall.Width, opts.print)
	e.Project(g, false)
	return render.WriteText(w, g, e.Height() <= opts.print)
}
