package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Update is a no-op; RenderSystem draws from the game's Draw callback.
func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		sprite, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || sprite.Disabled || sprite.Image == nil {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-sprite.OriginX, -sprite.OriginY)
		if sprite.FacingLeft {
			bounds := sprite.Image.Bounds()
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(bounds.Dx()), 0)
		}
		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		if sprite.Tint.A != 0 {
			op.ColorScale.ScaleWithColor(sprite.Tint)
		}
		screen.DrawImage(sprite.Image, op)
	}
}
