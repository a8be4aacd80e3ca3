// Package entity builds the arena's starting entities from prefab specs.
package entity

import (
	"log"

	"github.com/milk9111/gunhands/assets"
	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
	"github.com/milk9111/gunhands/prefabs"
)

const (
	playerStartX = 640.0
	playerStartY = 400.0

	itemSize = 24.0
	itemMass = 2.0

	viewLayer = 10
)

// BuildPlayer creates the player entity with its input sink.
func BuildPlayer(w *ecs.World) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
	_ = ecs.Add(w, e, component.InputComponent, &component.Input{})
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: playerStartX, Y: playerStartY, ScaleX: 1, ScaleY: 1})
	return e
}

// BuildMarkers creates the pooled holding transform and the drop spawn
// point from the loadout spec.
func BuildMarkers(w *ecs.World, spec prefabs.LoadoutSpec) {
	pool := w.CreateEntity()
	_ = ecs.Add(w, pool, component.PoolTagComponent, &component.PoolTag{})
	_ = ecs.Add(w, pool, component.TransformComponent, &component.Transform{X: spec.PoolX, Y: spec.PoolY, ScaleX: 1, ScaleY: 1})

	drop := w.CreateEntity()
	_ = ecs.Add(w, drop, component.DropPointTagComponent, &component.DropPointTag{})
	_ = ecs.Add(w, drop, component.TransformComponent, &component.Transform{X: spec.DropX, Y: spec.DropY, ScaleX: 1, ScaleY: 1})
}

// BuildHandRig creates a side's arm animator entity, starting ready.
func BuildHandRig(w *ecs.World, side component.Side) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.HandRigComponent, &component.HandRig{Side: side})
	_ = ecs.Add(w, e, component.AnimationComponent, &component.Animation{
		Current: component.HandStateReady,
		Defs:    map[string]component.AnimationDef{},
	})
	return e
}

// BuildWeaponView creates a side's weapon view entity: the sprite slots
// that receive the active item's material plus the fire audio players.
func BuildWeaponView(w *ecs.World, side component.Side, clips []string) ecs.Entity {
	e := w.CreateEntity()

	offset := 20.0
	if side == component.SideLeft {
		offset = -offset
	}
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: playerStartX + offset, Y: playerStartY, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Disabled: true})
	_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: viewLayer})

	audioComp := &component.Audio{}
	for _, clip := range clips {
		player, err := assets.LoadAudioPlayer(clip + ".wav")
		if err != nil {
			log.Printf("weapon view %s: clip %q unavailable: %v", side, clip, err)
			continue
		}
		audioComp.Names = append(audioComp.Names, clip)
		audioComp.Players = append(audioComp.Players, player)
		audioComp.Volume = append(audioComp.Volume, 1)
		audioComp.Play = append(audioComp.Play, false)
		audioComp.Stop = append(audioComp.Stop, false)
	}
	_ = ecs.Add(w, e, component.AudioComponent, audioComp)

	_ = ecs.Add(w, e, component.WeaponViewComponent, &component.WeaponView{
		Side:    side,
		SlotIDs: []uint64{uint64(e)},
	})
	return e
}

// BuildItem creates an equippable item entity from a weapon spec. The
// item starts loose in the world; the loadout system equips it.
func BuildItem(w *ecs.World, spec prefabs.WeaponSpec, side component.Side, x, y float64) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.HandComponent, &component.Hand{Side: side, Kind: spec.Kind})
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Tint: spec.Material.TintColor()})
	_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: viewLayer - 1})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:    itemSize,
		Height:   itemSize,
		Mass:     itemMass,
		Friction: 0.6,
		Group:    uint(uint32(e)),
	})

	stats := StatsFromSpec(spec)
	_ = ecs.Add(w, e, component.WeaponStatsComponent, &stats)
	return e
}

// StatsFromSpec converts a prefab weapon spec into a live stats record.
func StatsFromSpec(spec prefabs.WeaponSpec) component.WeaponStats {
	return component.WeaponStats{
		Name:              spec.Name,
		Ammo:              spec.Ammo,
		ShotCooldown:      spec.ShotCooldown(),
		CoolingRate:       spec.CoolingRate,
		HeatPerShot:       spec.HeatPerShot,
		OverheatThreshold: spec.OverheatThreshold,
		OverheatCooldown:  spec.OverheatCooldown(),
		Mode:              component.ParseFireMode(spec.FireMode),
		PelletsPerShot:    spec.PelletsPerShot,
		SpreadAngle:       spec.SpreadAngle,
		ShotForce:         spec.ShotForce,
		BarrelLength:      spec.BarrelLength,
		Material: component.Material{
			ImageKey: spec.Material.Image,
			Tint:     spec.Material.TintColor(),
		},
		ClipName:         spec.Clip,
		Pattern:          spec.Pattern,
		HandMounted:      spec.HandMounted,
		PlayerControlled: true,
	}
}
