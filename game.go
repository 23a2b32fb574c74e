package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/sanity/actor"
	"github.com/milk9111/sanity/assets"
	"github.com/milk9111/sanity/common"
	core "github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/system"
	"github.com/milk9111/sanity/prefabs"
	"golang.org/x/image/font/basicfont"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	hubLevel      = "hub.yaml"
	lowSanity     = 25
	maxLogLines   = 8
	pixelsPerUnit = 40
)

type Options struct {
	Level string
	Store core.Persister
	Input system.InputSource
	Debug bool
	Watch bool
	Mute  bool
}

type Game struct {
	opts Options

	scene       *scene
	returnLevel string
	hub         actor.HubRules

	sanity      *core.ThresholdWatch
	lowSanity   bool
	unsubscribe func()

	sounds  *assets.Sounds
	watcher *prefabs.Watcher

	paused bool
	debug  bool
	lines  []string
	face   text.Face
}

func NewGame(opts Options) (*Game, error) {
	if opts.Level == "" {
		opts.Level = "level.yaml"
	}
	if opts.Input == nil {
		opts.Input = system.KeyboardSource{}
	}

	g := &Game{
		opts:   opts,
		hub:    actor.DefaultHubRules(opts.Store),
		sounds: assets.NewSounds(),
		debug:  opts.Debug,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
	g.sounds.Muted = opts.Mute
	g.sounds.Volumes = clipVolumes()
	g.sounds.OnPlay = func(clip string, _ common.Vec2) {
		if g.debug {
			g.note("sfx " + clip)
		}
	}

	if err := g.enter(opts.Level); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("game: prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if saver, ok := g.opts.Store.(interface{ Save() error }); ok {
		if err := saver.Save(); err != nil {
			log.Printf("game: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.handleKeys()
	return g.step()
}

// step advances one simulation step and reacts to what happened in it.
func (g *Game) step() error {
	g.pollWatcher()
	g.scene.scheduler.Update(g.scene.world)
	return g.handleEvents()
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.toggleHub()
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.scene.clock.Paused = paused
}

// enter replaces the running scene with level and applies hub rules.
func (g *Game) enter(level string) error {
	if g.scene != nil && g.scene.hub() {
		g.hub.Leave(g.scene.player)
	}

	sc, err := loadScene(level, g.opts.Store, g.opts.Input, g.sounds)
	if err != nil {
		return err
	}
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
	g.scene = sc
	sc.clock.Paused = g.paused

	if sc.hub() {
		g.hub.Enter(sc.player)
	}

	g.sanity = &core.ThresholdWatch{
		Threshold: lowSanity,
		OnChange: func(active bool) {
			g.lowSanity = active
			if active {
				g.note("sanity is slipping")
			}
		},
	}
	g.unsubscribe = sc.player.Subscribe(g.sanity.Observe)
	g.sanity.Observe(sc.player.CurrentResource(), sc.player.MaxResource())

	g.note(fmt.Sprintf("entered %s", sc.spec.Name))
	return nil
}

func (g *Game) reload() {
	if err := g.enter(g.scene.name); err != nil {
		g.note(fmt.Sprintf("reload failed: %v", err))
	}
}

// toggleHub goes to the hub, or back to the level the hub was entered from.
func (g *Game) toggleHub() {
	target := hubLevel
	if g.scene.hub() {
		target = g.returnLevel
		if target == "" {
			target = g.opts.Level
		}
	} else {
		g.returnLevel = g.scene.name
	}
	if err := g.enter(target); err != nil {
		g.note(fmt.Sprintf("load %s failed: %v", target, err))
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.note("changed " + change.Name)
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watch: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) handleEvents() error {
	queue := g.scene.world.Events()
	toHub := queue.Count(ecs.EventDepleted) > 0 && !g.scene.hub()
	for _, evt := range queue.Drain() {
		switch evt.Type {
		case ecs.EventDepleted:
			g.note("sanity depleted")
		case ecs.EventDespawn:
			if d, ok := evt.Data.(system.Despawned); ok {
				g.note(d.Name + " defeated")
			}
		case ecs.EventCombat:
			if c, ok := evt.Data.(core.CombatEvent); ok && g.debug {
				g.note(fmt.Sprintf("%s %d", c.Type, c.Damage))
			}
		}
	}
	if toHub {
		g.returnLevel = g.scene.name
		return g.enter(hubLevel)
	}
	return nil
}

func (g *Game) note(line string) {
	log.Printf("game: %s", line)
	g.lines = append(g.lines, line)
	if len(g.lines) > maxLogLines {
		g.lines = g.lines[len(g.lines)-maxLogLines:]
	}
}

// clipVolumes collects per-clip volumes from every prefab's audio list.
func clipVolumes() map[string]float64 {
	out := map[string]float64{}
	for _, name := range prefabs.Names() {
		spec, err := prefabs.LoadSpec[prefabs.ActorSpec](name)
		if err != nil {
			continue
		}
		for _, a := range spec.Audio {
			if a.File != "" && a.Volume > 0 {
				out[a.File] = a.Volume
			}
		}
	}
	return out
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
