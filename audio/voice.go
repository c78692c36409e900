package audio

import (
	"encoding/binary"
	"log"
	"math"
	"sync"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const voiceBuffer = 60 * time.Millisecond

// sineStream is an endless sine wave. Read runs on ebiten's audio goroutine
// while the game goroutine retunes it.
type sineStream struct {
	mu         sync.Mutex
	freq       float64
	phase      float64
	gain       float64
	sampleRate int
}

func (s *sineStream) setFreq(freq float64) {
	s.mu.Lock()
	s.freq = freq
	s.mu.Unlock()
}

func (s *sineStream) Read(buf []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(buf) / bytesPerFrame * bytesPerFrame
	step := 2 * math.Pi * s.freq / float64(s.sampleRate)
	for i := 0; i < n; i += bytesPerFrame {
		v := int16(s.gain * math.Sin(s.phase) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i+2:], uint16(v))
		s.phase += step
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
	}
	return n, nil
}

// Voice is the single hover tone. Only one bubble sounds at a time.
type Voice struct {
	stream *sineStream
	player *ebaudio.Player
	tone   string
}

func NewVoice(ctx *ebaudio.Context, gain float64) (*Voice, error) {
	stream := &sineStream{gain: gain, sampleRate: ctx.SampleRate()}
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	player.SetBufferSize(voiceBuffer)
	return &Voice{stream: stream, player: player}, nil
}

// Start retunes the voice to tone and makes it audible.
func (v *Voice) Start(tone string) {
	if v == nil {
		return
	}
	freq, err := Frequency(tone)
	if err != nil {
		log.Printf("audio: voice: %v", err)
		return
	}
	v.tone = tone
	v.stream.setFreq(freq)
	v.player.Play()
}

// Release silences the voice.
func (v *Voice) Release() {
	if v == nil {
		return
	}
	v.tone = ""
	v.player.Pause()
}

// Tone is the tone currently sounding, or "".
func (v *Voice) Tone() string {
	if v == nil {
		return ""
	}
	return v.tone
}
