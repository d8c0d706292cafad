package main

// Default command-line flag values
const (
	defaultSampleRate = 48000 // envelope WAV sample rate in Hz
	defaultBitDepth   = 16
	defaultDuration   = 1.0 // seconds
	defaultGain       = 1.0
)

// WAV format constants
const (
	monoChannels    = 1
	wavFormatPCM    = 1
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	maxInt16        = 32767.0
	maxInt24        = 8388607.0
)

// Output formatting
const (
	minRenderSamples = 2
	listSeparator    = ","
)
