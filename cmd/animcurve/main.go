// Command animcurve builds an animation curve node from configuration and
// evaluates it.
//
// Usage:
//
//	animcurve -config shot.yaml -eval 0,0.5,1              # evaluate inputs
//	animcurve -config shot.yaml -table                     # dump the baked table
//	animcurve -config shot.yaml -wav env.wav -duration 2   # render the curve as an envelope
//	animcurve -config shot.yaml -eval 3 -metrics           # print node metrics
//
// Settings can also be given as ANIMCURVE_* environment variables, e.g.
// ANIMCURVE_CURVE__POSITIONS=0,10 and ANIMCURVE_OPTIONS__FRAME=5.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	animcurve "github.com/tphakala/go-animcurve"
	"github.com/tphakala/go-animcurve/internal/config"
	"github.com/tphakala/go-animcurve/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file (default $"+config.EnvConfigPath+")")
	evalList := flag.String("eval", "", "Comma separated inputs to evaluate")
	shutter := flag.Float64("time", 0, "Normalized shutter time in [0, 1] for evaluation")
	dumpTable := flag.Bool("table", false, "Print the baked sample table")
	wavPath := flag.String("wav", "", "Render the curve domain to a mono WAV file")
	sampleRate := flag.Int("rate", defaultSampleRate, "WAV sample rate in Hz")
	bitDepth := flag.Int("bits", defaultBitDepth, "WAV bit depth: 16 or 24")
	duration := flag.Float64("duration", defaultDuration, "WAV duration in seconds")
	gain := flag.Float64("gain", defaultGain, "Scale applied to curve values before WAV quantization")
	showMetrics := flag.Bool("metrics", false, "Print node metrics after running")
	verbose := flag.Bool("v", false, "Verbose output (debug logging)")
	flag.Parse()

	cfg, err := config.Load(context.Background(), *configPath)
	if err != nil {
		return err
	}

	level := cfg.SlogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	animcurve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	registry := prometheus.NewRegistry()
	recorder := metrics.NewManager(metrics.WithPrometheusRegistry(registry))

	node := animcurve.NewNode(animcurve.WithRecorder(recorder))
	defer node.Close()

	if err := node.Update(cfg.NodeParams(), cfg.RenderOptions()); err != nil {
		return fmt.Errorf("build curve: %w", err)
	}

	inputs, err := parseFloatList(*evalList)
	if err != nil {
		return err
	}
	for _, x := range inputs {
		fmt.Printf("%g\t%g\n", x, node.Evaluate(x, *shutter, 0))
	}

	if *dumpTable {
		if err := printTable(node.Table()); err != nil {
			return err
		}
	}

	if *wavPath != "" {
		n := int(*duration * float64(*sampleRate))
		pcm, err := quantize(renderEnvelope(node.Curve(), n, *gain), *bitDepth)
		if err != nil {
			return err
		}
		if err := writeEnvelopeWAV(*wavPath, pcm, *sampleRate, *bitDepth); err != nil {
			return err
		}
		fmt.Printf("Wrote %d samples at %d Hz to %s\n", len(pcm), *sampleRate, *wavPath)
	}

	if *showMetrics {
		return printMetrics(registry)
	}
	return nil
}

func printTable(table *animcurve.SampleTable) error {
	if table == nil {
		return fmt.Errorf("no sample table: baking needs a frame option and an unlinked frame-offset input")
	}
	w := table.Window()
	fmt.Printf("# window [%g, %g], %d samples, offset %g\n", w.Start, w.End, table.Len(), table.Offset())
	for i, v := range table.Samples() {
		fmt.Printf("%d\t%g\n", i, v)
	}
	return nil
}

func printMetrics(registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(os.Stdout, mf); err != nil {
			return err
		}
	}
	return nil
}
