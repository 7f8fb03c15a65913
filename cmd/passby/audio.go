package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// loadAudio decodes a wav, mp3, or ogg file into mono samples in [-1, 1]
// and returns the sample rate. Stereo sources are averaged down to mono.
func loadAudio(path string) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		return nil, 0, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}

	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var mono []float64

	buf := make([][2]float64, 4096)

	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			mono = append(mono, (buf[i][0]+buf[i][1])/2)
		}

		if !ok {
			break
		}
	}

	if len(mono) == 0 {
		return nil, 0, fmt.Errorf("no samples in %s", path)
	}

	return mono, float64(format.SampleRate), nil
}
