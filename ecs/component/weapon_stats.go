package component

import (
	"image/color"
	"time"
)

// FireMode controls how the trigger gates repeated shots.
type FireMode int

const (
	FireModeManual FireMode = iota
	FireModeBurstManual
	FireModeBurstAutomatic
	FireModeFullyAutomatic
)

// ParseFireMode maps a spec string to a FireMode. Unknown strings map to
// -1, which never passes the readiness check.
func ParseFireMode(s string) FireMode {
	switch s {
	case "manual":
		return FireModeManual
	case "burst_manual":
		return FireModeBurstManual
	case "burst_automatic":
		return FireModeBurstAutomatic
	case "fully_automatic":
		return FireModeFullyAutomatic
	default:
		return FireMode(-1)
	}
}

func (m FireMode) String() string {
	switch m {
	case FireModeManual:
		return "manual"
	case FireModeBurstManual:
		return "burst_manual"
	case FireModeBurstAutomatic:
		return "burst_automatic"
	case FireModeFullyAutomatic:
		return "fully_automatic"
	default:
		return "unknown"
	}
}

// Material is the visual applied to a weapon view's sprite slots when an
// item becomes active.
type Material struct {
	ImageKey string
	Tint     color.NRGBA
}

// WeaponStats is the mutable fire-control record for one equipped item
// type. The loadout system swaps the active item's stats into the side's
// weapon view; the fire-control system mutates it from there.
type WeaponStats struct {
	Name string

	Ammo         int
	Heat         float64
	Overheated   bool
	LastShot     time.Time
	LastOverheat time.Time
	TriggerHeld  bool

	ShotCooldown      time.Duration
	CoolingRate       float64 // heat per second
	HeatPerShot       float64
	OverheatThreshold float64
	OverheatCooldown  time.Duration

	Mode           FireMode
	PelletsPerShot int
	SpreadAngle    float64 // radians
	ShotForce      float64
	BarrelLength   float64

	Material Material
	ClipName string
	Pattern  string // optional pellet pattern script name

	HandMounted      bool
	PlayerControlled bool
}

var WeaponStatsComponent = NewComponent[WeaponStats]()
