package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/milk9111/gunhands/common"
	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

// PelletPatterns resolves scripted pellet angle offsets for a named
// pattern. A false return falls back to random spread.
type PelletPatterns interface {
	Offsets(name string, pellets int, spread float64) ([]float64, bool)
}

// FireControlSystem drives the per-weapon state machine: heat decay and
// overheat recovery every fixed tick, trigger gating by fire mode, and
// pellet emission through the projectile spawner.
type FireControlSystem struct {
	clock    common.Clock
	dt       float64
	rng      *rand.Rand
	spawner  ProjectileSpawner
	anim     AnimatorQuery
	patterns PelletPatterns
}

func NewFireControlSystem(clock common.Clock, spawner ProjectileSpawner, anim AnimatorQuery) *FireControlSystem {
	return &FireControlSystem{
		clock:   clock,
		dt:      common.FixedTimeStep,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		spawner: spawner,
		anim:    anim,
	}
}

// SetTimeStep overrides the fixed tick length (seconds).
func (s *FireControlSystem) SetTimeStep(dt float64) {
	if dt > 0 {
		s.dt = dt
	}
}

// SetRand overrides the spread sampler.
func (s *FireControlSystem) SetRand(rng *rand.Rand) {
	if rng != nil {
		s.rng = rng
	}
}

// SetPatterns attaches the scripted pellet pattern runtime.
func (s *FireControlSystem) SetPatterns(p PelletPatterns) {
	s.patterns = p
}

func (s *FireControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var input *component.Input
	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		input, _ = ecs.Get(w, player, component.InputComponent)
	}

	ecs.ForEach(w, component.WeaponViewComponent, func(viewEnt ecs.Entity, view *component.WeaponView) {
		stats := view.Stats
		if stats == nil {
			return
		}

		s.tickHeat(stats)

		if input == nil {
			return
		}
		if !input.FireHeld(view.Side) {
			stats.TriggerHeld = false
			return
		}
		if s.ReadyToShoot(w, view, stats.TriggerHeld) {
			s.Shoot(w, viewEnt, view)
		}
	})
}

// tickHeat applies one fixed step of heat decay, or clears an expired
// overheat. Heat never goes negative.
func (s *FireControlSystem) tickHeat(stats *component.WeaponStats) {
	if !stats.Overheated {
		dec := stats.CoolingRate * s.dt
		if dec > stats.Heat {
			dec = stats.Heat
		}
		stats.Heat -= dec
		return
	}
	if s.clock.Now().Sub(stats.LastOverheat) > stats.OverheatCooldown {
		stats.Overheated = false
		stats.Heat = 0
	}
}

// ReadyToShoot reports whether the view's weapon may fire right now.
// triggerHeld is the latch set by Shoot and cleared on trigger release;
// modes that require a release between shots check it.
func (s *FireControlSystem) ReadyToShoot(w *ecs.World, view *component.WeaponView, triggerHeld bool) bool {
	stats := view.Stats
	if stats == nil {
		return false
	}
	if stats.HandMounted && s.anim != nil && !s.anim.InState(w, view.Side, HandStateReady) {
		return false
	}
	if stats.Ammo <= 0 {
		return false
	}
	if s.clock.Now().Sub(stats.LastShot) < stats.ShotCooldown {
		return false
	}

	switch stats.Mode {
	case component.FireModeManual:
		return !triggerHeld
	case component.FireModeBurstManual:
		return !stats.Overheated && !triggerHeld
	case component.FireModeBurstAutomatic:
		return !stats.Overheated
	case component.FireModeFullyAutomatic:
		return true
	default:
		return false
	}
}

// Shoot fires one shot through the view: queues the fire sound, spends
// ammo on player weapons, emits PelletsPerShot pellets inside the spread
// cone, accumulates heat, and latches the trigger. Hand-mounted weapons
// fire one weapon-change notification per call.
func (s *FireControlSystem) Shoot(w *ecs.World, viewEnt ecs.Entity, view *component.WeaponView) {
	stats := view.Stats
	if stats == nil {
		return
	}
	now := s.clock.Now()

	if audioComp, ok := ecs.Get(w, viewEnt, component.AudioComponent); ok {
		audioComp.QueuePlay(stats.ClipName)
	}

	if stats.PlayerControlled {
		stats.Ammo--
	}

	barrelAngle := 0.0
	bx, by := 0.0, 0.0
	if t, ok := ecs.Get(w, viewEnt, component.TransformComponent); ok {
		barrelAngle = t.Rotation
		bx = t.X + math.Cos(barrelAngle)*stats.BarrelLength
		by = t.Y + math.Sin(barrelAngle)*stats.BarrelLength
	}

	var offsets []float64
	if s.patterns != nil && stats.Pattern != "" {
		if offs, ok := s.patterns.Offsets(stats.Pattern, stats.PelletsPerShot, stats.SpreadAngle); ok {
			offsets = offs
		}
	}

	for i := 0; i < stats.PelletsPerShot; i++ {
		angle := s.pelletAngle(barrelAngle, stats.SpreadAngle, offsets, i)
		if s.spawner != nil {
			p := s.spawner.Spawn(w, ecs.Entity(view.Owner), bx, by, angle, stats.Name)
			if p.Valid() {
				s.spawner.Launch(w, p, stats.ShotForce)
			}
		}
	}

	stats.TriggerHeld = true
	stats.LastShot = now
	stats.Heat += stats.HeatPerShot
	if stats.Heat > stats.OverheatThreshold {
		stats.Overheated = true
		stats.LastOverheat = now
	}

	if stats.HandMounted {
		w.Events().Push(ecs.Event{Type: ecs.EventWeaponChanged, Data: ecs.WeaponChanged{Side: view.Side}})
	}
}

// pelletAngle rotates the barrel orientation toward an independently
// sampled random orientation, clamped by the spread angle. Scripted
// patterns supply explicit offsets instead.
func (s *FireControlSystem) pelletAngle(barrel, spread float64, offsets []float64, i int) float64 {
	if i < len(offsets) {
		return common.WrapAngle(barrel + common.Clamp(offsets[i], -spread, spread))
	}
	target := s.rng.Float64()*2*math.Pi - math.Pi
	return common.RotateToward(barrel, target, spread)
}

// ResetShooting clears the side's trigger latch. Used when a hand is
// forced back to Idle.
func (s *FireControlSystem) ResetShooting(w *ecs.World, side component.Side) {
	_, view, ok := viewEntity(w, side)
	if !ok || view.Stats == nil {
		return
	}
	view.Stats.TriggerHeld = false
}
