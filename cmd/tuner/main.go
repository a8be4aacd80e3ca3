// Command tuner is a weapon balance tool. It loads prefabs/weapons.yaml,
// lets you step the tunable fields of each weapon, and writes the result
// back to disk or to the clipboard. Run it next to the game binary while
// the game is running and the prefab watcher picks the saved values up live.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/gunhands/prefabs"
)

const (
	screenWidth  = 640
	screenHeight = 720

	weaponsPath = "prefabs/weapons.yaml"
)

// field describes one tunable of a WeaponSpec: how to read it, how to
// step it, and the step size for the +/- buttons.
type field struct {
	name string
	step float64
	get  func(*prefabs.WeaponSpec) float64
	set  func(*prefabs.WeaponSpec, float64)
}

var fields = []field{
	{"ammo", 1, func(s *prefabs.WeaponSpec) float64 { return float64(s.Ammo) }, func(s *prefabs.WeaponSpec, v float64) { s.Ammo = int(v) }},
	{"shot_cooldown_ms", 10, func(s *prefabs.WeaponSpec) float64 { return float64(s.ShotCooldownMS) }, func(s *prefabs.WeaponSpec, v float64) { s.ShotCooldownMS = int(v) }},
	{"cooling_rate", 0.5, func(s *prefabs.WeaponSpec) float64 { return s.CoolingRate }, func(s *prefabs.WeaponSpec, v float64) { s.CoolingRate = v }},
	{"heat_per_shot", 0.5, func(s *prefabs.WeaponSpec) float64 { return s.HeatPerShot }, func(s *prefabs.WeaponSpec, v float64) { s.HeatPerShot = v }},
	{"overheat_threshold", 1, func(s *prefabs.WeaponSpec) float64 { return s.OverheatThreshold }, func(s *prefabs.WeaponSpec, v float64) { s.OverheatThreshold = v }},
	{"overheat_cooldown_ms", 50, func(s *prefabs.WeaponSpec) float64 { return float64(s.OverheatCooldownMS) }, func(s *prefabs.WeaponSpec, v float64) { s.OverheatCooldownMS = int(v) }},
	{"pellets_per_shot", 1, func(s *prefabs.WeaponSpec) float64 { return float64(s.PelletsPerShot) }, func(s *prefabs.WeaponSpec, v float64) { s.PelletsPerShot = int(v) }},
	{"spread_angle", 0.01, func(s *prefabs.WeaponSpec) float64 { return s.SpreadAngle }, func(s *prefabs.WeaponSpec, v float64) { s.SpreadAngle = v }},
	{"shot_force", 10, func(s *prefabs.WeaponSpec) float64 { return s.ShotForce }, func(s *prefabs.WeaponSpec, v float64) { s.ShotForce = v }},
	{"barrel_length", 1, func(s *prefabs.WeaponSpec) float64 { return s.BarrelLength }, func(s *prefabs.WeaponSpec, v float64) { s.BarrelLength = v }},
}

type tuner struct {
	file     prefabs.WeaponsFile
	selected int
	status   string

	ui        *ebitenui.UI
	labels    []*widget.Text
	nameLabel *widget.Text
	clipOK    bool
}

func (t *tuner) current() *prefabs.WeaponSpec {
	if len(t.file.Weapons) == 0 {
		return nil
	}
	return &t.file.Weapons[t.selected]
}

func (t *tuner) refresh() {
	spec := t.current()
	if spec == nil {
		t.nameLabel.Label = "no weapons loaded"
		return
	}
	t.nameLabel.Label = fmt.Sprintf("%s (%s, %s)", spec.Name, spec.Kind, spec.FireMode)
	for i, f := range fields {
		t.labels[i].Label = fmt.Sprintf("%-20s %.3g", f.name, f.get(spec))
	}
}

func (t *tuner) save() {
	data, err := yaml.Marshal(t.file)
	if err != nil {
		t.status = fmt.Sprintf("marshal: %v", err)
		return
	}
	if err := os.WriteFile(weaponsPath, data, 0o644); err != nil {
		t.status = fmt.Sprintf("write: %v", err)
		return
	}
	t.status = "saved " + weaponsPath
}

func (t *tuner) copy() {
	if !t.clipOK {
		t.status = "clipboard unavailable"
		return
	}
	data, err := yaml.Marshal(t.file)
	if err != nil {
		t.status = fmt.Sprintf("marshal: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	t.status = "copied yaml to clipboard"
}

func (t *tuner) buildUI() {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) { onClick() }),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
		)),
	)

	// weapon selector row
	selector := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(widget.RowLayoutOpts.Spacing(8))),
	)
	selector.AddChild(button("< prev", func() {
		if len(t.file.Weapons) == 0 {
			return
		}
		t.selected = (t.selected + len(t.file.Weapons) - 1) % len(t.file.Weapons)
		t.refresh()
	}))
	t.nameLabel = widget.NewText(widget.TextOpts.Text("", &face, white))
	selector.AddChild(t.nameLabel)
	selector.AddChild(button("next >", func() {
		if len(t.file.Weapons) == 0 {
			return
		}
		t.selected = (t.selected + 1) % len(t.file.Weapons)
		t.refresh()
	}))
	panel.AddChild(selector)

	for i := range fields {
		f := fields[i]
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(widget.RowLayoutOpts.Spacing(8))),
		)
		row.AddChild(button("-", func() {
			if spec := t.current(); spec != nil {
				f.set(spec, f.get(spec)-f.step)
				t.refresh()
			}
		}))
		row.AddChild(button("+", func() {
			if spec := t.current(); spec != nil {
				f.set(spec, f.get(spec)+f.step)
				t.refresh()
			}
		}))
		label := widget.NewText(widget.TextOpts.Text("", &face, white))
		row.AddChild(label)
		t.labels = append(t.labels, label)
		panel.AddChild(row)
	}

	actions := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(widget.RowLayoutOpts.Spacing(8))),
	)
	actions.AddChild(button("Save", t.save))
	actions.AddChild(button("Copy YAML", t.copy))
	panel.AddChild(actions)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	t.ui = &ebitenui.UI{Container: root}
	t.refresh()
}

func (t *tuner) Update() error {
	t.ui.Update()
	return nil
}

func (t *tuner) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	t.ui.Draw(screen)
	if t.status != "" {
		ebitenutil.DebugPrintAt(screen, t.status, 8, screenHeight-20)
	}
}

func (t *tuner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	file, err := prefabs.LoadWeaponSpecs()
	if err != nil {
		log.Fatalf("load %s: %v", weaponsPath, err)
	}

	t := &tuner{file: file}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		t.clipOK = true
	}
	t.buildUI()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Weapon Tuner")
	if err := ebiten.RunGame(t); err != nil {
		log.Fatal(err)
	}
}
