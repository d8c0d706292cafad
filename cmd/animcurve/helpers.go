package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"

	animcurve "github.com/tphakala/go-animcurve"
	"github.com/tphakala/go-animcurve/internal/mathutil"
)

var errUnsupportedBitDepth = errors.New("unsupported bit depth")

// parseFloatList parses a comma separated list of numbers.
func parseFloatList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, listSeparator)
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// getMaxValue returns the full-scale integer value for a PCM bit depth.
func getMaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	default:
		return 0, fmt.Errorf("%w: %d", errUnsupportedBitDepth, bitDepth)
	}
}

// renderEnvelope sweeps the curve's keyframe domain over n samples and
// returns the values scaled by gain.
func renderEnvelope(c *animcurve.Curve, n int, gain float64) []float64 {
	n = max(n, minRenderSamples)
	if !c.Valid() {
		return make([]float64, n)
	}

	lo, hi := c.Domain()
	positions := make([]float64, n)
	floats.Span(positions, lo, hi)

	var scratch animcurve.PolynomialPair
	out := make([]float64, n)
	for i, x := range positions {
		out[i] = c.Eval(x, &scratch)
	}
	floats.Scale(gain, out)
	return out
}

// quantize converts samples in [-1, 1] to PCM integers, clipping anything
// outside full scale.
func quantize(samples []float64, bitDepth int) ([]int, error) {
	maxVal, err := getMaxValue(bitDepth)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(samples))
	for i, v := range samples {
		out[i] = int(math.Round(mathutil.Clamp(v, -1, 1) * maxVal))
	}
	return out, nil
}

// writeEnvelopeWAV writes mono PCM samples to path.
func writeEnvelopeWAV(path string, pcm []int, sampleRate, bitDepth int) error {
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(outputFile, sampleRate, bitDepth, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data:           pcm,
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return outputFile.Close()
}
