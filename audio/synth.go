package audio

import (
	"encoding/binary"
	"math"
)

// SampleRate is the rate every player in the game runs at.
const SampleRate = 44100

const bytesPerFrame = 4 // 16-bit stereo

// Partial is one sine component of a rendered cue.
type Partial struct {
	Freq   float64
	Start  float64 // seconds
	Length float64 // seconds
	Gain   float64
}

// Render mixes the partials into 16-bit little-endian stereo PCM, the format
// ebiten's audio players take. Each partial gets a short attack and a linear
// release so the cue does not click.
func Render(partials []Partial, sampleRate int) []byte {
	var end float64
	for _, p := range partials {
		end = max(end, p.Start+p.Length)
	}
	frames := int(end * float64(sampleRate))
	mix := make([]float64, frames)

	for _, p := range partials {
		first := int(p.Start * float64(sampleRate))
		count := int(p.Length * float64(sampleRate))
		attack := max(count/20, 1)
		for i := 0; i < count && first+i < frames; i++ {
			var env float64
			if i < attack {
				env = float64(i) / float64(attack)
			} else {
				env = 1 - float64(i-attack)/float64(count-attack)
			}
			t := float64(i) / float64(sampleRate)
			mix[first+i] += p.Gain * env * math.Sin(2*math.Pi*p.Freq*t)
		}
	}

	out := make([]byte, frames*bytesPerFrame)
	for i, v := range mix {
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

// Cues are the named one-shots the round plays.
var Cues = map[string][]Partial{
	"wave_beat": {
		{Freq: 523.25, Start: 0, Length: 0.12, Gain: 0.4},
		{Freq: 659.25, Start: 0.1, Length: 0.18, Gain: 0.4},
	},
	"level_beat": {
		{Freq: 261.63, Start: 0, Length: 0.6, Gain: 0.3},
		{Freq: 329.63, Start: 0, Length: 0.6, Gain: 0.3},
		{Freq: 392.00, Start: 0, Length: 0.6, Gain: 0.3},
	},
	"game_finish": {
		{Freq: 523.25, Start: 0, Length: 0.2, Gain: 0.35},
		{Freq: 659.25, Start: 0.15, Length: 0.2, Gain: 0.35},
		{Freq: 783.99, Start: 0.3, Length: 0.2, Gain: 0.35},
		{Freq: 1046.5, Start: 0.45, Length: 0.5, Gain: 0.35},
	},
	"pop": {
		{Freq: 1318.5, Start: 0, Length: 0.06, Gain: 0.35},
		{Freq: 1760, Start: 0.03, Length: 0.06, Gain: 0.25},
	},
	"hurt": {
		{Freq: 110, Start: 0, Length: 0.25, Gain: 0.5},
		{Freq: 116.5, Start: 0, Length: 0.25, Gain: 0.5},
	},
}
