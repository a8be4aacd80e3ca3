package system

import (
	"log"

	"github.com/milk9111/gunhands/assets"
	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

// bindViewStats points a weapon view at new stats (or clears it with
// nil). The view's audio slot is cached lazily on first bind; a missing
// audio output is reported once and play degrades to silent.
func bindViewStats(w *ecs.World, viewEnt ecs.Entity, view *component.WeaponView, stats *component.WeaponStats) {
	if view == nil {
		return
	}
	view.Stats = stats

	audioComp, hasAudio := ecs.Get(w, viewEnt, component.AudioComponent)
	if stats == nil {
		return
	}
	if !hasAudio || len(audioComp.Players) == 0 {
		log.Printf("weapon view %s: no audio output for clip %q", view.Side, stats.ClipName)
		return
	}
	if !view.ClipCached {
		view.ClipCached = true
	}
}

// applyViewMaterial applies the material to every sprite slot of the view.
func applyViewMaterial(w *ecs.World, view *component.WeaponView, mat component.Material) {
	if view == nil {
		return
	}
	img, err := assets.LoadImage(mat.ImageKey)
	if err != nil {
		img = nil
	}
	for _, id := range view.SlotIDs {
		sprite, ok := ecs.Get(w, ecs.Entity(id), component.SpriteComponent)
		if !ok {
			continue
		}
		sprite.Image = img
		sprite.Tint = mat.Tint
	}
}

// viewEntity finds the weapon view entity for a side.
func viewEntity(w *ecs.World, side component.Side) (ecs.Entity, *component.WeaponView, bool) {
	var (
		found ecs.Entity
		view  *component.WeaponView
	)
	ecs.ForEach(w, component.WeaponViewComponent, func(e ecs.Entity, v *component.WeaponView) {
		if v.Side == side && view == nil {
			found = e
			view = v
		}
	})
	if view == nil {
		return 0, nil, false
	}
	return found, view, true
}
