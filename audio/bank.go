package audio

import (
	"log"
	"sort"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Bank holds one pre-rendered player per cue.
type Bank struct {
	players map[string]*ebaudio.Player
	volume  float64
	missing map[string]bool
}

// NewBank renders every entry of Cues into a player on ctx.
func NewBank(ctx *ebaudio.Context, volume float64) *Bank {
	b := &Bank{
		players: make(map[string]*ebaudio.Player, len(Cues)),
		volume:  volume,
		missing: map[string]bool{},
	}
	for name, partials := range Cues {
		b.players[name] = ctx.NewPlayerFromBytes(Render(partials, ctx.SampleRate()))
	}
	return b
}

// Names lists the cues the bank can play.
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.players))
	for name := range b.players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Play restarts the named cue. Unknown names are logged once.
func (b *Bank) Play(name string) {
	if b == nil {
		return
	}
	player, ok := b.players[name]
	if !ok {
		if !b.missing[name] {
			b.missing[name] = true
			log.Printf("audio: no cue %q", name)
		}
		return
	}
	player.SetVolume(b.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", name, err)
		return
	}
	player.Play()
}
