package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type MaterialSpec struct {
	Image string `yaml:"image"`
	Tint  string `yaml:"tint"` // "#rrggbb" or "#rrggbbaa"
}

// TintColor parses the tint string. An empty or malformed tint yields
// opaque white.
func (m MaterialSpec) TintColor() color.NRGBA {
	s := strings.TrimPrefix(strings.TrimSpace(m.Tint), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// WeaponSpec is the tunable record for one weapon kind.
type WeaponSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	Ammo               int     `yaml:"ammo"`
	FireMode           string  `yaml:"fire_mode"`
	ShotCooldownMS     int     `yaml:"shot_cooldown_ms"`
	CoolingRate        float64 `yaml:"cooling_rate"`
	HeatPerShot        float64 `yaml:"heat_per_shot"`
	OverheatThreshold  float64 `yaml:"overheat_threshold"`
	OverheatCooldownMS int     `yaml:"overheat_cooldown_ms"`

	PelletsPerShot int     `yaml:"pellets_per_shot"`
	SpreadAngle    float64 `yaml:"spread_angle"` // radians
	ShotForce      float64 `yaml:"shot_force"`
	BarrelLength   float64 `yaml:"barrel_length"`

	HandMounted bool   `yaml:"hand_mounted"`
	Pattern     string `yaml:"pattern"`
	Clip        string `yaml:"clip"`

	Material MaterialSpec `yaml:"material"`
}

// ShotCooldown returns the cooldown as a duration.
func (s WeaponSpec) ShotCooldown() time.Duration {
	return time.Duration(s.ShotCooldownMS) * time.Millisecond
}

// OverheatCooldown returns the overheat recovery window as a duration.
func (s WeaponSpec) OverheatCooldown() time.Duration {
	return time.Duration(s.OverheatCooldownMS) * time.Millisecond
}

// WeaponsFile is the top-level weapons.yaml document.
type WeaponsFile struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

// LoadWeaponSpecs reads weapons.yaml.
func LoadWeaponSpecs() (WeaponsFile, error) {
	return LoadSpec[WeaponsFile]("weapons.yaml")
}

// LoadoutSpec names the initial weapon queue per side, front first.
type LoadoutSpec struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`

	PoolX float64 `yaml:"pool_x"`
	PoolY float64 `yaml:"pool_y"`
	DropX float64 `yaml:"drop_x"`
	DropY float64 `yaml:"drop_y"`
}

// LoadLoadoutSpec reads loadout.yaml.
func LoadLoadoutSpec() (LoadoutSpec, error) {
	return LoadSpec[LoadoutSpec]("loadout.yaml")
}
