// internal/audio/cues.go
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go-radar-scope/pkg/utils"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by synthesis and playback.
const SampleRate beep.SampleRate = 44100

// Cue names a short sound the scope can play.
type Cue int

const (
	CueDetection Cue = iota
	CueExplosion
	CueSelection
	CueRuleChanged
	CueScoreChanged
)

// Cues lists every cue, in declaration order.
var Cues = []Cue{CueDetection, CueExplosion, CueSelection, CueRuleChanged, CueScoreChanged}

func (c Cue) String() string {
	switch c {
	case CueDetection:
		return "detection"
	case CueExplosion:
		return "explosion"
	case CueSelection:
		return "selection"
	case CueRuleChanged:
		return "ruleChanged"
	case CueScoreChanged:
		return "scoreChanged"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// Streamer builds the synthesized sound of cue at the given volume in [0, 1].
func Streamer(cue Cue, volume float64) (beep.Streamer, error) {
	var s beep.Streamer
	var err error
	switch cue {
	case CueDetection:
		s, err = tones(60*time.Millisecond, 880, 1320)
	case CueExplosion:
		s = fadeOut(beep.Take(SampleRate.N(400*time.Millisecond), noise(rand.New(rand.NewSource(1)))), SampleRate.N(400*time.Millisecond))
	case CueSelection:
		s, err = tones(40*time.Millisecond, 660)
	case CueRuleChanged:
		s, err = tones(80*time.Millisecond, 440, 550, 660)
	case CueScoreChanged:
		s, err = tones(30*time.Millisecond, 1000)
	default:
		return nil, fmt.Errorf("unknown cue %v", cue)
	}
	if err != nil {
		return nil, fmt.Errorf("synthesizing %v: %w", cue, err)
	}
	return withVolume(s, volume), nil
}

// Render synthesizes cue into signed 16-bit little-endian stereo PCM.
func Render(cue Cue, volume float64) ([]byte, error) {
	s, err := Streamer(cue, volume)
	if err != nil {
		return nil, err
	}

	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("rendering %v: %w", cue, err)
	}
	return out, nil
}

// tones plays each frequency for d, one after another.
func tones(d time.Duration, freqs ...float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(SampleRate, f)
		if err != nil {
			return nil, err
		}
		parts = append(parts, fadeOut(beep.Take(SampleRate.N(d), sine), SampleRate.N(d)))
	}
	return beep.Seq(parts...), nil
}

func noise(rng *rand.Rand) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}

// fadeOut scales s linearly from full gain down to silence over total samples.
func fadeOut(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := 1 - float64(pos)/float64(total)
			if gain < 0 {
				gain = 0
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	})
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func toInt16(v float64) int16 {
	return int16(utils.Clamp(v, -1, 1) * math.MaxInt16)
}
