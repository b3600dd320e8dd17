// Command pwl-transform reads a PWL waveform file, applies amplitude and
// time-range transformations, and writes the result back out.
//
// Usage:
//
//	pwl-transform -scale 0.5 input.pwl output.pwl
//	pwl-transform -stoptime 10u -delay 1u input.pwl output.pwl
//	pwl-transform -extend -stoptime 100n -clip-start 20n input.pwl output.pwl
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tphakala/go-pwl"
	"github.com/tphakala/go-pwl/pwlio"
)

const minRequiredArgs = 2

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	scale := flag.Float64("scale", 1, "Multiply every value by this factor")
	stopTime := flag.String("stoptime", "", "Re-time the waveform onto [0, stoptime] (unit suffixes allowed)")
	delay := flag.String("delay", "", "Shift the waveform forward by this delay")
	delayValue := flag.String("delay-value", "", "Level held during the delay (default: first value)")
	stopValue := flag.String("stop-value", "", "Level appended at the stop time (default: last value)")
	extend := flag.Bool("extend", false, "Fill [0, stoptime] by tiling the (clipped) waveform instead of plain re-timing")
	clipStart := flag.String("clip-start", "", "Clip window start for -extend (default: begin time)")
	clipEnd := flag.String("clip-end", "", "Clip window end for -extend (default: end time)")
	dropHead := flag.Bool("drop-head", false, "Discard samples before the clip window instead of keeping them as a lead-in")
	gap := flag.String("gap", "", "Tiling gap (default: derived from the first two samples)")
	skip := flag.Int("skip", 0, "Skip this many lines at the start of the input")
	dropTail := flag.Int("drop-tail", 0, "Ignore this many lines at the end of the input")
	suffix := flag.Bool("suffix", false, "Parse unit-scale suffixes in the input columns")
	timeScale := flag.Float64("tscale", 1, "Multiply the input time column by this unit scale")
	valueScale := flag.Float64("vscale", 1, "Multiply the input value column by this unit scale")
	headline := flag.String("headline", "", "Output header line (default \"# s A\")")
	pwlDef := flag.String("def", "", "Output PWL definition line (e.g. a source card)")
	footline := flag.String("foot", "", "Output closing token")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.pwl output.pwl\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	inputPath := args[0]
	outputPath := args[1]

	wf, err := pwlio.ReadFile(inputPath, pwlio.ReadOptions{
		SkipStartLines:  *skip,
		IgnoreEndLines:  *dropTail,
		ParseUnitSuffix: *suffix,
		TimeScale:       *timeScale,
		ValueScale:      *valueScale,
	})
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Input: %s (%d samples, %.3e .. %.3e s)",
			inputPath, wf.Len(), wf.BeginTime(), wf.EndTime())
	}

	if *scale != 1 {
		wf = wf.ScaleAmp(*scale)
		if *verbose {
			log.Printf("Scaled values by %g", *scale)
		}
	}

	stop, err := optFloat(*stopTime)
	if err != nil {
		return fmt.Errorf("-stoptime: %w", err)
	}
	bounds, err := parseBounds(*delay, *delayValue, *stopValue)
	if err != nil {
		return err
	}

	switch {
	case *extend:
		if stop == nil {
			return fmt.Errorf("-extend requires -stoptime")
		}
		start, err := optFloat(*clipStart)
		if err != nil {
			return fmt.Errorf("-clip-start: %w", err)
		}
		end, err := optFloat(*clipEnd)
		if err != nil {
			return fmt.Errorf("-clip-end: %w", err)
		}
		g, err := optFloat(*gap)
		if err != nil {
			return fmt.Errorf("-gap: %w", err)
		}
		wf, err = wf.ExtendByRepeating(*stop, pwl.ExtensionConfig{
			Clip:   pwl.ClipConfig{Start: start, End: end},
			Repeat: pwl.RepeatConfig{DropHead: *dropHead, Gap: g},
			Bounds: bounds,
		})
		if err != nil {
			return err
		}
	case stop != nil:
		wf, err = wf.ModTime(*stop, bounds)
		if err != nil {
			return err
		}
	}

	if err := pwlio.WriteFile(outputPath, wf, pwlio.WriteOptions{
		Headline: *headline,
		PWLDef:   *pwlDef,
		Footline: *footline,
	}); err != nil {
		return err
	}
	if *verbose {
		log.Printf("Output: %s (%d samples, %.3e .. %.3e s)",
			outputPath, wf.Len(), wf.BeginTime(), wf.EndTime())
	}

	fmt.Printf("Wrote %d samples to %s\n", wf.Len(), outputPath)
	return nil
}

// optFloat parses an optional flag value with unit-scale suffixes; an empty
// string means unset.
func optFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := pwlio.ParseValue(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseBounds assembles the boundary config from the delay flags.
func parseBounds(delay, delayValue, stopValue string) (pwl.BoundaryConfig, error) {
	var cfg pwl.BoundaryConfig
	d, err := optFloat(delay)
	if err != nil {
		return cfg, fmt.Errorf("-delay: %w", err)
	}
	if d != nil {
		cfg.Delay = *d
	}
	if cfg.DelayValue, err = optFloat(delayValue); err != nil {
		return cfg, fmt.Errorf("-delay-value: %w", err)
	}
	if cfg.StopValue, err = optFloat(stopValue); err != nil {
		return cfg, fmt.Errorf("-stop-value: %w", err)
	}
	return cfg, nil
}
