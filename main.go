package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sanity/prefs"
)

func main() {
	debug := flag.Bool("debug", false, "draw ground probes, attack boxes and combat events")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "level.yaml", "level prefab in prefabs/")
	prefsPath := flag.String("prefs", "sanity_prefs.yaml", "where persisted values such as sanity are kept")
	watch := flag.Bool("watch", true, "reload prefabs and scripts when they change on disk")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	store, err := prefs.OpenFile(*prefsPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("sanity")

	game, err := NewGame(Options{
		Level: *levelName,
		Store: store,
		Debug: *debug,
		Watch: *watch,
		Mute:  *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
