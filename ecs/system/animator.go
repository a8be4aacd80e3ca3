package system

import (
	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

// HandAnimators addresses the per-side arm animators through the HandRig
// tag. It backs both the fire-readiness gate and the forced-Idle trigger.
type HandAnimators struct{}

func (HandAnimators) rig(w *ecs.World, side component.Side) (*component.Animation, bool) {
	var anim *component.Animation
	ecs.ForEach2(w, component.HandRigComponent, component.AnimationComponent, func(_ ecs.Entity, rig *component.HandRig, a *component.Animation) {
		if rig.Side == side && anim == nil {
			anim = a
		}
	})
	return anim, anim != nil
}

func (h HandAnimators) InState(w *ecs.World, side component.Side, state string) bool {
	anim, ok := h.rig(w, side)
	if !ok {
		return false
	}
	return anim.Current == state
}

func (h HandAnimators) SetTrigger(w *ecs.World, side component.Side, state string) {
	anim, ok := h.rig(w, side)
	if !ok {
		return
	}
	if anim.Current == state && anim.Playing {
		return
	}
	anim.Current = state
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = true
}

// HandRigSystem promotes a hand rig from idle to ready once its idle
// animation has finished, so the fire gate opens.
type HandRigSystem struct {
	animators HandAnimators
}

func NewHandRigSystem() *HandRigSystem {
	return &HandRigSystem{}
}

func (s *HandRigSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.HandRigComponent, component.AnimationComponent, func(_ ecs.Entity, rig *component.HandRig, anim *component.Animation) {
		if anim.Current == HandStateIdle && !anim.Playing {
			s.animators.SetTrigger(w, rig.Side, HandStateReady)
		}
	})
}
