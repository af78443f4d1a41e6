package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"rockfall/internal/core"
	"rockfall/internal/sims/rockfall"
)

type surveyConfig struct {
	sequences int
	minLen    int
	maxLen    int
	seed      int64
	workers   int
	probe     int64
	top       int
}

type job struct {
	id   int
	jets rockfall.Jets
}

type surveyResult struct {
	id       int
	jets     int
	cycle    rockfall.Cycle
	err      error
	direct   int64
	extrap   int64
	verified bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "cycle-survey:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg surveyConfig
	var logLevel string
	fs := flag.NewFlagSet("cycle-survey", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.sequences, "sequences", 64, "number of random jet patterns to survey")
	fs.IntVar(&cfg.minLen, "min-len", 10, "shortest jet pattern")
	fs.IntVar(&cfg.maxLen, "max-len", 400, "longest jet pattern")
	fs.Int64Var(&cfg.seed, "seed", 1337, "seed for pattern generation")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	fs.Int64Var(&cfg.probe, "probe", 2022, "rock count where extrapolation is checked against direct simulation")
	fs.IntVar(&cfg.top, "top", 5, "longest cycles to list")
	fs.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(stderr, log.Options{Level: level, Prefix: "survey"})

	results := survey(cfg, logger)
	return report(stdout, cfg, results)
}

// survey generates the jet patterns up front so the outcome does not depend
// on worker scheduling, then fans them out to workers.
func survey(cfg surveyConfig, logger *log.Logger) []surveyResult {
	rng := core.NewRNG(cfg.seed)
	jobs := make(chan job)
	results := make(chan surveyResult)
	patterns := make([]rockfall.Jets, cfg.sequences)
	for i := range patterns {
		patterns[i] = rockfall.RandomJets(rng, rng.IntRange(cfg.minLen, cfg.maxLen))
	}

	logger.Info("surveying jet patterns", "sequences", cfg.sequences, "workers", cfg.workers, "probe", cfg.probe)

	var wg sync.WaitGroup
	for i := 0; i < max(cfg.workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- evaluate(j, cfg.probe)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i, jets := range patterns {
			jobs <- job{id: i, jets: jets}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []surveyResult
	for res := range results {
		if res.err != nil {
			logger.Warn("pattern failed", "id", res.id, "jets", res.jets, "err", res.err)
		} else if !res.verified {
			logger.Error("extrapolation mismatch", "id", res.id, "direct", res.direct, "extrapolated", res.extrap)
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].id < all[j].id })
	logger.Info("survey finished", "elapsed", time.Since(start).Round(time.Millisecond))
	return all
}

func evaluate(j job, probe int64) surveyResult {
	res := surveyResult{id: j.id, jets: len(j.jets)}
	sim, err := rockfall.NewSimulator(j.jets, rockfall.DefaultConfig(), nil)
	if err != nil {
		res.err = err
		return res
	}
	if res.cycle, res.err = sim.DetectCycle(); res.err != nil {
		return res
	}
	if res.direct, res.err = sim.Simulate(probe); res.err != nil {
		return res
	}
	if res.extrap, res.err = sim.SimulateExtrapolated(probe); res.err != nil {
		return res
	}
	res.verified = res.direct == res.extrap
	return res
}

func report(w io.Writer, cfg surveyConfig, all []surveyResult) error {
	p := message.NewPrinter(language.English)
	var found, verified []surveyResult
	for _, res := range all {
		if res.err == nil {
			found = append(found, res)
			if res.verified {
				verified = append(verified, res)
			}
		}
	}
	p.Fprintf(w, "Surveyed %d patterns: %d cycles found, %d verified at %d rocks\n",
		len(all), len(found), len(verified), cfg.probe)

	sort.SliceStable(found, func(i, j int) bool { return found[i].cycle.Length > found[j].cycle.Length })
	if len(found) > 0 {
		fmt.Fprintf(w, "\nLongest cycles:\n")
	}
	for i := 0; i < len(found) && i < cfg.top; i++ {
		res := found[i]
		p.Fprintf(w, "%2d) pattern %d (%d jets): start=%d length=%d height=+%d\n",
			i+1, res.id, res.jets, res.cycle.Start, res.cycle.Length, res.cycle.HeightDelta)
	}
	if len(verified) != len(found) {
		return fmt.Errorf("%d patterns disagree with direct simulation", len(found)-len(verified))
	}
	return nil
}
