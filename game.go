package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/gunhands/common"
	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
	"github.com/milk9111/gunhands/ecs/entity"
	"github.com/milk9111/gunhands/ecs/system"
	"github.com/milk9111/gunhands/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	loadout   *system.LoadoutSystem
	watcher   *prefabs.Watcher

	ui     *ebitenui.UI
	paused bool
	debug  bool
}

func NewGame(debug bool) *Game {
	w := ecs.NewWorld()

	weaponsFile, err := prefabs.LoadWeaponSpecs()
	if err != nil {
		log.Printf("load weapons: %v", err)
	}
	loadoutSpec, err := prefabs.LoadLoadoutSpec()
	if err != nil {
		log.Printf("load loadout: %v", err)
	}

	specs := make(map[string]prefabs.WeaponSpec, len(weaponsFile.Weapons))
	clips := make([]string, 0, len(weaponsFile.Weapons))
	for _, spec := range weaponsFile.Weapons {
		specs[spec.Name] = spec
		if spec.Clip != "" {
			clips = append(clips, spec.Clip)
		}
	}

	entity.BuildPlayer(w)
	entity.BuildMarkers(w, loadoutSpec)
	for _, side := range component.Sides {
		entity.BuildHandRig(w, side)
		entity.BuildWeaponView(w, side, clips)
	}

	physics := system.NewPhysicsSystem()
	animators := system.HandAnimators{}
	patterns := system.NewPatternRuntime()
	spawner := system.NewWorldSpawner()

	fire := system.NewFireControlSystem(common.RealClock{}, spawner, animators)
	fire.SetPatterns(patterns)

	loadout := system.NewLoadoutSystem(animators, animators, fire, physics)
	loadout.BuildInitial(func() {
		buildSide(w, loadout, specs, component.SideLeft, loadoutSpec.Left)
		buildSide(w, loadout, specs, component.SideRight, loadoutSpec.Right)
	})

	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		log.Printf("prefab watcher unavailable: %v", err)
		watcher = nil
	}

	scheduler := ecs.NewScheduler(
		system.NewInputSystem(),
		loadout,
		system.NewHandRigSystem(),
		fire,
		physics,
		system.NewProjectileSystem(baseWidth, baseHeight),
		system.NewAnimationSystem(),
		system.NewAudioSystem(),
		system.NewReloadSystem(watcher, patterns),
		system.NewTTLSystem(),
	)

	g := &Game{
		world:     w,
		scheduler: scheduler,
		render:    system.NewRenderSystem(),
		loadout:   loadout,
		watcher:   watcher,
		debug:     debug,
	}
	g.ui = NewPauseUI(g)
	return g
}

// buildSide creates and equips a side's initial items. loadout.yaml
// lists the queue front first; AddItem pushes to the front, so insert
// in reverse to preserve the listed order.
func buildSide(w *ecs.World, loadout *system.LoadoutSystem, specs map[string]prefabs.WeaponSpec, side component.Side, names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		spec, ok := specs[names[i]]
		if !ok {
			log.Printf("loadout: unknown weapon %q", names[i])
			continue
		}
		item := entity.BuildItem(w, spec, side, 0, 0)
		loadout.AddItem(w, item)
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.ui.Update()
		return nil
	}

	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		if evt.Type == ecs.EventWeaponChanged && g.debug {
			if change, ok := evt.Data.(ecs.WeaponChanged); ok {
				log.Printf("weapon changed: %s", change.Side)
			}
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	ebitenutil.DebugPrint(screen, g.hudText())

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) hudText() string {
	text := ""
	for _, side := range component.Sides {
		item, ok := g.loadout.Current(side)
		if !ok {
			text += fmt.Sprintf("%s: empty\n", side)
			continue
		}
		stats, ok := ecs.Get(g.world, item, component.WeaponStatsComponent)
		if !ok {
			continue
		}
		status := ""
		if stats.Overheated {
			status = " OVERHEATED"
		}
		text += fmt.Sprintf("%s: %s ammo=%d heat=%.1f%s\n", side, stats.Name, stats.Ammo, stats.Heat, status)
	}
	return text
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
