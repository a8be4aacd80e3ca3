package system

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
	"github.com/milk9111/gunhands/prefabs"
)

// ReloadSystem applies prefab hot-reload events: weapon yaml edits patch
// the tuning constants of live WeaponStats in place (ammo and heat are
// runtime state and stay untouched), and script edits invalidate the
// compiled pattern cache.
type ReloadSystem struct {
	watcher  *prefabs.Watcher
	patterns *PatternRuntime
}

func NewReloadSystem(watcher *prefabs.Watcher, patterns *PatternRuntime) *ReloadSystem {
	return &ReloadSystem{watcher: watcher, patterns: patterns}
}

func (s *ReloadSystem) Update(w *ecs.World) {
	if s == nil || s.watcher == nil || w == nil {
		return
	}

	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.apply(w, path)
		case err, ok := <-s.watcher.Errors:
			if ok && err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (s *ReloadSystem) apply(w *ecs.World, path string) {
	ext := strings.ToLower(filepath.Ext(path))
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if ext == ".tengo" {
		if s.patterns != nil {
			s.patterns.Invalidate(base)
			log.Printf("prefab reload: pattern %q invalidated", base)
		}
		return
	}

	file, err := prefabs.LoadWeaponSpecs()
	if err != nil {
		log.Printf("prefab reload: %v", err)
		return
	}
	specs := make(map[string]prefabs.WeaponSpec, len(file.Weapons))
	for _, spec := range file.Weapons {
		specs[spec.Name] = spec
	}

	patched := 0
	ecs.ForEach(w, component.WeaponStatsComponent, func(_ ecs.Entity, stats *component.WeaponStats) {
		spec, ok := specs[stats.Name]
		if !ok {
			return
		}
		stats.ShotCooldown = spec.ShotCooldown()
		stats.CoolingRate = spec.CoolingRate
		stats.HeatPerShot = spec.HeatPerShot
		stats.OverheatThreshold = spec.OverheatThreshold
		stats.OverheatCooldown = spec.OverheatCooldown()
		stats.Mode = component.ParseFireMode(spec.FireMode)
		stats.PelletsPerShot = spec.PelletsPerShot
		stats.SpreadAngle = spec.SpreadAngle
		stats.ShotForce = spec.ShotForce
		stats.BarrelLength = spec.BarrelLength
		stats.Pattern = spec.Pattern
		patched++
	})
	if patched > 0 {
		log.Printf("prefab reload: %s patched %d weapon(s)", filepath.Base(path), patched)
	}
}
