// Command waveform-curve renders a WAV file's waveform as a smoothed
// curve in CSV form, suitable for plotting.
//
// Usage:
//
//	waveform-curve -in input.wav -out curve.csv
//	waveform-curve -in input.wav -points 48 -algorithm catmull-rom -tension 0.3
//	waveform-curve -in input.wav -algorithm linear -subdivisions 2 -v
//
// The tool decodes the file, mixes it to mono, normalizes the samples to
// [-1, 1], reduces them to a shape-preserving envelope, and interpolates
// the envelope with the selected algorithm.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	charts "github.com/signal-slot/embedded-charts"
	"github.com/signal-slot/embedded-charts/internal/vecops"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// CLI defaults
	defaultPoints       = 64
	defaultSubdivisions = 8
	defaultTension      = 0.5

	// Moving-average window used for the verbose level report
	defaultWindow = 8

	// Output formatting
	csvHeader = "x,y"

	// I/O buffer size for CSV output
	csvWriterBufferSize = 64 * 1024
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	inPath := flag.String("in", "", "Input WAV file (required)")
	outPath := flag.String("out", "", "Output CSV file (default: stdout)")
	points := flag.Int("points", defaultPoints, "Envelope points extracted from the waveform")
	algorithm := flag.String("algorithm", "catmull-rom", "Curve algorithm: linear, cubic-spline, catmull-rom, bezier")
	subdivisions := flag.Int("subdivisions", defaultSubdivisions, "Curve points generated per envelope segment")
	tension := flag.Float64("tension", defaultTension, "Curve tension, 0 (loose) to 1 (tight)")
	window := flag.Int("window", defaultWindow, "Moving-average window for the verbose level report")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -in input.wav [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("missing -in file")
	}
	if *points < 3 || *points > charts.MaxInputPoints {
		return fmt.Errorf("points must be in [3, %d], got %d", charts.MaxInputPoints, *points)
	}

	alg, err := parseAlgorithm(*algorithm)
	if err != nil {
		return err
	}
	cfg := charts.InterpolationConfig{
		Algorithm:    alg,
		Subdivisions: *subdivisions,
		Tension:      *tension,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	samples, rate, err := decodeMono(*inPath, *verbose)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("input too short: %d samples", len(samples))
	}
	if *verbose {
		log.Printf("Decoded %d samples at %d Hz", len(samples), rate)
	}

	curve, envelope, err := buildCurve(samples, *points, cfg)
	if err != nil {
		return err
	}
	if *verbose {
		reportStats(envelope, *window)
	}

	if err := writeCSV(*outPath, curve); err != nil {
		return err
	}
	if *verbose {
		log.Printf("Wrote %d curve points (%d envelope points, %s)", len(curve), len(envelope), alg)
	}
	return nil
}

func parseAlgorithm(name string) (charts.Algorithm, error) {
	for _, a := range []charts.Algorithm{charts.Linear, charts.CubicSpline, charts.CatmullRom, charts.Bezier} {
		if name == a.String() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

// decodeMono reads the whole file, mixes all channels down to one, and
// normalizes the samples to [-1, 1].
func decodeMono(path string, verbose bool) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}
	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode PCM data: %w", err)
	}
	return mixToMono(buf, bitDepth), format.SampleRate, nil
}

// mixToMono averages the buffer's channels frame by frame and scales the
// int PCM samples to [-1, 1] in one vector pass.
func mixToMono(buf *audio.IntBuffer, bitDepth int) []float64 {
	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0
		for c := 0; c < channels; c++ {
			sum += buf.Data[i*channels+c]
		}
		mono[i] = float64(sum) / float64(channels)
	}

	fullScale := float64(int64(1) << (bitDepth - 1))
	vecops.For[float64]().Scale(mono, mono, 1/fullScale)
	return mono
}

// buildCurve reduces the raw samples to a shape-preserving envelope and
// interpolates it, returning both.
func buildCurve(samples []float64, points int, cfg charts.InterpolationConfig) (curve, envelope []charts.Point[float64], err error) {
	pts := make([]charts.Point[float64], len(samples))
	for i, v := range samples {
		pts[i] = charts.Pt(float64(i), v)
	}

	envelope = make([]charts.Point[float64], min(len(pts), points))
	n, err := charts.DownsampleLTTB(pts, points, envelope)
	if err != nil {
		return nil, nil, err
	}
	envelope = envelope[:n]

	curve = make([]charts.Point[float64], charts.OutputLen(len(envelope), cfg))
	m, err := charts.Interpolate(envelope, cfg, curve)
	if err != nil {
		return nil, nil, err
	}
	return curve[:m], envelope, nil
}

// reportStats logs the envelope's bounds and trailing level through a
// small ring buffer, the same components a live plot would use.
func reportStats(envelope []charts.Point[float64], window int) {
	buf, err := charts.NewRingBuffer[float64](len(envelope), charts.RingBufferConfig{Policy: charts.Overwrite})
	if err != nil {
		log.Printf("stats unavailable: %v", err)
		return
	}
	for _, p := range envelope {
		if _, err := buf.Push(p); err != nil {
			log.Printf("stats unavailable: %v", err)
			return
		}
	}
	if b, ok := buf.Bounds(); ok {
		log.Printf("Envelope bounds: x [%g, %g], y [%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
	}
	if avg, err := buf.MovingAverage(window); err == nil {
		log.Printf("Trailing level (last %d points): %g", window, avg)
	}
}

func writeCSV(path string, curve []charts.Point[float64]) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	w := bufio.NewWriterSize(out, csvWriterBufferSize)
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}
	for _, p := range curve {
		if _, err := fmt.Fprintf(w, "%g,%g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return w.Flush()
}
