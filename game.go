package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/tonebubbles/audio"
	"github.com/milk9111/tonebubbles/common"
	"github.com/milk9111/tonebubbles/obj"
	"github.com/milk9111/tonebubbles/prefabs"
	"github.com/milk9111/tonebubbles/round"
	"golang.org/x/image/colornames"
)

type Game struct {
	frames int
	debug  bool

	roundName string
	spec      *prefabs.RoundSpec
	reload    bool

	rng   *rand.Rand
	input *obj.Input
	touch *obj.TouchWorld
	sound *audio.Sound
	round *round.Manager

	paused    bool
	pauseUI   *ebitenui.UI
	results   bool
	resultsUI *ebitenui.UI
	quit      bool

	watcher *prefabs.Watcher
}

func NewGame(roundName string, seed int64, volume float64, debug bool) (*Game, error) {
	spec, err := prefabs.LoadRoundSpec(roundName)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:     debug,
		roundName: roundName,
		spec:      spec,
		rng:       common.NewRand(seed),
		input:     obj.NewInput(),
	}

	if sound, err := audio.NewSound(volume); err != nil {
		log.Printf("audio: disabled: %v", err)
	} else {
		g.sound = sound
	}

	if debug {
		w, err := prefabs.NewWatcher(filepath.Join("prefabs", "rounds"), filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	if err := g.startRound(); err != nil {
		return nil, err
	}
	return g, nil
}

// startRound builds a fresh manager, reloading the preset first if it
// changed on disk.
func (g *Game) startRound() error {
	if g.reload {
		spec, err := prefabs.LoadRoundSpec(g.roundName)
		if err != nil {
			log.Printf("prefabs: reload %s: %v; keeping previous preset", g.roundName, err)
		} else {
			g.spec = spec
		}
		g.reload = false
	}

	ramp, err := g.spec.LoadRamp()
	if err != nil {
		log.Printf("prefabs: %v; using the preset's bubble range", err)
		ramp = nil
	}

	g.touch = obj.NewTouchWorld(g.input)
	timing := g.spec.Timing()
	opts := round.Options{
		Rand:   g.rng,
		Keys:   g.input,
		Touch:  g.touch,
		Ramp:   ramp,
		Timing: &timing,
		Debug:  g.debug,
	}
	if g.sound != nil {
		opts.Sound = g.sound
		opts.Voice = g.sound.Voice
	}

	m, err := round.New(g.spec.Config(), opts)
	if err != nil {
		return fmt.Errorf("round %s: %w", g.roundName, err)
	}
	g.round = m
	g.paused = false
	g.results = false
	g.resultsUI = nil
	return nil
}

func (g *Game) restart() {
	if g.sound != nil {
		g.sound.ReleaseVoice()
	}
	if err := g.startRound(); err != nil {
		log.Printf("restart: %v", err)
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Drain() {
		name := strings.TrimSuffix(filepath.Base(c.Path), filepath.Ext(c.Path))
		if c.Script || name == g.roundName {
			log.Printf("prefabs: %s changed, reloading next round", c.Path)
			g.reload = true
		}
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefabs: watch: %v", err)
	default:
	}
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	g.pollWatcher()

	if g.quit {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return ebiten.Termination
	}

	if g.results {
		g.resultsUI.Update()
		return nil
	}

	if g.input.PausePressed {
		g.paused = !g.paused
		if g.paused && g.sound != nil {
			g.sound.ReleaseVoice()
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.round.Update()
	g.touch.Update()

	if !g.round.Ongoing() {
		if g.sound != nil {
			g.sound.ReleaseVoice()
		}
		g.results = true
		g.resultsUI = NewResultsUI(g, g.round.Outcome(), g.round.Level(), g.round.Wave())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	g.round.Draw(screen)

	if g.debug {
		g.touch.DebugDraw(screen)
		under := "-"
		if b, ok := g.touch.Under(g.input.Cursor()).(*obj.NaturalBubble); ok {
			under = b.Tone()
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Frames: %d    FPS: %.2f\nphase=%s level=%d wave=%d selected=%s under=%s skipped=%d",
			g.frames, ebiten.ActualFPS(),
			g.round.Phase(), g.round.Level(), g.round.Wave(), g.round.Selected(), under, g.round.SkippedSpawns(),
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.results && g.resultsUI != nil {
		g.resultsUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
