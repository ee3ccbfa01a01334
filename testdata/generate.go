//go:build ignore

// This script generates reference vectors for encoder conformance
// testing. Run with: go run testdata/generate.go
//
// For each deterministic tone it writes the 16-bit PCM WAVE input and
// its ADTS encoding under:
//
//	testdata/generated/
//	├── tone_44100_mono.wav / tone_44100_mono.aac
//	├── tone_44100_stereo.wav / tone_44100_stereo.aac
//	├── tone_48000_stereo.wav / tone_48000_stereo.aac
//	└── sweep_44100_stereo.wav / sweep_44100_stereo.aac
//
// The .aac files are byte-for-byte references produced by the linked
// libfdk-aac build; the reference vector test re-encodes each .wav and
// compares against them, skipping when the files are absent.
// Regenerate after upgrading libfdk-aac.

package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	fdkaac "github.com/llehouerou/go-fdkaac"
	"github.com/llehouerou/go-fdkaac/wave"
)

const (
	duration = 2 // seconds
	peak     = 12000
	bitrate  = 128000
)

type toneSpec struct {
	name       string
	sampleRate int
	channels   int
	sweep      bool // linear 200 Hz - 8 kHz sweep instead of a 440 Hz tone
}

var tones = []toneSpec{
	{"tone_44100_mono", 44100, 1, false},
	{"tone_44100_stereo", 44100, 2, false},
	{"tone_48000_stereo", 48000, 2, false},
	{"sweep_44100_stereo", 44100, 2, true},
}

func main() {
	outDir := filepath.Join("testdata", "generated")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, spec := range tones {
		if err := generate(outDir, spec); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", spec.name, err)
			os.Exit(1)
		}
	}
}

func generate(outDir string, spec toneSpec) error {
	n := spec.sampleRate * duration
	samples := make([]int16, n*spec.channels)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(spec.sampleRate)
		freq := 440.0
		if spec.sweep {
			freq = 200 + (8000-200)*t/duration
		}
		v := int16(peak * math.Sin(2*math.Pi*freq*t))
		for ch := 0; ch < spec.channels; ch++ {
			samples[i*spec.channels+ch] = v
		}
	}

	var wav bytes.Buffer
	format := wave.Format{SampleRate: spec.sampleRate, Channels: spec.channels}
	if err := wave.Encode(&wav, format, samples); err != nil {
		return err
	}
	wavPath := filepath.Join(outDir, spec.name+".wav")
	if err := os.WriteFile(wavPath, wav.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Println("wrote", wavPath)

	var aac bytes.Buffer
	if _, err := fdkaac.EncodeWAV(bytes.NewReader(wav.Bytes()), &aac, fdkaac.EncoderConfig{
		Bitrate:   bitrate,
		Transport: fdkaac.TransportADTS,
	}); err != nil {
		return err
	}
	aacPath := filepath.Join(outDir, spec.name+".aac")
	if err := os.WriteFile(aacPath, aac.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Println("wrote", aacPath)
	return nil
}
