package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent, func(_ ecs.Entity, anim *component.Animation) {
		if !anim.Playing {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		// Advance frame every N ticks based on FPS and 60 TPS
		ticksPerFrame := int(60.0 / def.FPS)
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}

		anim.FrameTimer++
		if anim.FrameTimer >= ticksPerFrame {
			anim.FrameTimer = 0
			anim.Frame++
			if anim.Frame >= def.FrameCount {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = def.FrameCount - 1
					anim.Playing = false
				}
			}
		}
	})

	// Project the current frame into the entity's sprite, if it has one.
	ecs.ForEach2(w, component.AnimationComponent, component.SpriteComponent, func(_ ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if anim.Sheet == nil {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}
		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.Image = anim.Sheet.SubImage(rect).(*ebiten.Image)
	})
}
