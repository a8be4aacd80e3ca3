package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	Image      *ebiten.Image
	Tint       color.NRGBA
	OriginX    float64
	OriginY    float64
	FacingLeft bool
	Disabled   bool
}

var SpriteComponent = NewComponent[Sprite]()

type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
