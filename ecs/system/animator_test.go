package system

import (
	"testing"

	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

func newRigWorld(t *testing.T, side component.Side, state string, playing bool) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mustAdd(t, ecs.Add(w, e, component.HandRigComponent, &component.HandRig{Side: side}))
	mustAdd(t, ecs.Add(w, e, component.AnimationComponent, &component.Animation{Current: state, Playing: playing}))
	return w
}

func TestHandAnimators(t *testing.T) {
	var animators HandAnimators

	t.Run("in_state", func(t *testing.T) {
		w := newRigWorld(t, component.SideLeft, HandStateReady, false)
		if !animators.InState(w, component.SideLeft, HandStateReady) {
			t.Fatalf("expected left rig in ready state")
		}
		if animators.InState(w, component.SideLeft, HandStateIdle) {
			t.Fatalf("left rig should not report idle")
		}
		if animators.InState(w, component.SideRight, HandStateReady) {
			t.Fatalf("missing rig should never match")
		}
	})

	t.Run("set_trigger_restarts", func(t *testing.T) {
		w := newRigWorld(t, component.SideLeft, HandStateReady, false)
		animators.SetTrigger(w, component.SideLeft, HandStateIdle)

		rig, _ := ecs.First(w, component.HandRigComponent)
		anim, _ := ecs.Get(w, rig, component.AnimationComponent)
		if anim.Current != HandStateIdle {
			t.Fatalf("expected idle, got %q", anim.Current)
		}
		if anim.Frame != 0 || anim.FrameTimer != 0 || !anim.Playing {
			t.Fatalf("trigger should restart the animation")
		}
	})

	t.Run("set_trigger_while_playing_same_state_is_noop", func(t *testing.T) {
		w := newRigWorld(t, component.SideLeft, HandStateIdle, true)
		rig, _ := ecs.First(w, component.HandRigComponent)
		anim, _ := ecs.Get(w, rig, component.AnimationComponent)
		anim.Frame = 3

		animators.SetTrigger(w, component.SideLeft, HandStateIdle)
		if anim.Frame != 3 {
			t.Fatalf("re-triggering a playing state should not restart it")
		}
	})
}

func TestHandRigSystem(t *testing.T) {
	t.Run("idle_finished_promotes_to_ready", func(t *testing.T) {
		w := newRigWorld(t, component.SideRight, HandStateIdle, false)
		NewHandRigSystem().Update(w)

		rig, _ := ecs.First(w, component.HandRigComponent)
		anim, _ := ecs.Get(w, rig, component.AnimationComponent)
		if anim.Current != HandStateReady {
			t.Fatalf("finished idle should promote to ready, got %q", anim.Current)
		}
	})

	t.Run("idle_still_playing_stays", func(t *testing.T) {
		w := newRigWorld(t, component.SideRight, HandStateIdle, true)
		NewHandRigSystem().Update(w)

		rig, _ := ecs.First(w, component.HandRigComponent)
		anim, _ := ecs.Get(w, rig, component.AnimationComponent)
		if anim.Current != HandStateIdle {
			t.Fatalf("idle should keep playing until finished, got %q", anim.Current)
		}
	})
}
