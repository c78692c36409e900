package audio

import ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

// Sound bundles the cue bank and hover voice behind the round's Sound
// interface.
type Sound struct {
	Bank  *Bank
	Voice *Voice
}

// NewSound builds the bank and voice on the current audio context, creating
// it if needed.
func NewSound(volume float64) (*Sound, error) {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(SampleRate)
	}
	voice, err := NewVoice(ctx, volume*0.5)
	if err != nil {
		return nil, err
	}
	return &Sound{Bank: NewBank(ctx, volume), Voice: voice}, nil
}

func (s *Sound) Play(name string) {
	if s == nil {
		return
	}
	s.Bank.Play(name)
}

func (s *Sound) ReleaseVoice() {
	if s == nil {
		return
	}
	s.Voice.Release()
}
