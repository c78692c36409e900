package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tonebubbles/prefabs"
)

func main() {
	names, _ := prefabs.RoundNames()

	roundName := flag.String("round", "easy", fmt.Sprintf("round preset in prefabs/rounds (%s)", strings.Join(names, ", ")))
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	volume := flag.Float64("volume", 0.5, "master volume, 0 to 1")
	debug := flag.Bool("debug", false, "enable debug mode and preset hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowTitle("tonebubbles")

	game, err := NewGame(*roundName, *seed, *volume, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
