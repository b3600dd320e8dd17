// Command pwl-wav renders a PWL waveform file to a 16-bit mono WAV file by
// sampling it on a uniform time grid. Useful for auditioning stimulus
// profiles or feeding them to audio analysis tools.
//
// Usage:
//
//	pwl-wav -rate 48000 input.pwl output.wav
//	pwl-wav -rate 44100 -normalize input.pwl output.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-pwl"
	"github.com/tphakala/go-pwl/pwlio"
)

const (
	defaultRate     = 48000
	minRequiredArgs = 2

	bitDepth16    = 16
	monoChannels  = 1
	wavFormatPCM  = 1
	maxInt16Value = 32767.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultRate, "Output sample rate in Hz")
	gain := flag.Float64("gain", 1, "Amplitude gain applied before PCM conversion")
	normalize := flag.Bool("normalize", false, "Scale the peak amplitude to full scale before applying gain")
	suffix := flag.Bool("suffix", true, "Parse unit-scale suffixes in the input columns")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.pwl output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	inputPath := args[0]
	outputPath := args[1]

	wf, err := pwlio.ReadFile(inputPath, pwlio.ReadOptions{ParseUnitSuffix: *suffix})
	if err != nil {
		return err
	}
	if wf.Duration() <= 0 {
		return fmt.Errorf("waveform in %s has no positive duration to render", inputPath)
	}

	// Re-anchor to t=0 so the grid starts at the first sample.
	wf, err = wf.ModTime(wf.Duration(), pwl.BoundaryConfig{})
	if err != nil {
		return err
	}

	grid := uniformGrid(wf.Duration(), *rate)
	sampled, err := wf.Interpolate(grid, nil, nil)
	if err != nil {
		return err
	}
	data := toPCM16(sampled.Values, *gain, *normalize)

	if *verbose {
		log.Printf("Input: %s (%d PWL points, %.6e s)", inputPath, wf.Len(), wf.Duration())
		log.Printf("Output: %s (%d samples at %d Hz)", outputPath, len(data), *rate)
	}

	if err := writeWAV(outputPath, data, *rate); err != nil {
		return err
	}
	fmt.Printf("Rendered %s -> %s (%d samples at %d Hz)\n", inputPath, outputPath, len(data), *rate)
	return nil
}

func writeWAV(path string, data []int, rate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, rate, bitDepth16, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}
