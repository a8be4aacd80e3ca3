package ecs

import (
	"testing"

	"github.com/milk9111/gunhands/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func TestEntityGenerationReuse(t *testing.T) {
	w := NewWorld()
	stale := CreateEntity(w)
	if !DestroyEntity(w, stale) {
		t.Fatalf("destroy failed")
	}

	fresh := CreateEntity(w)
	if fresh == stale {
		t.Fatalf("reused id should carry a new generation")
	}
	if IsAlive(w, stale) {
		t.Fatalf("stale handle should stay dead after id reuse")
	}
	if !IsAlive(w, fresh) {
		t.Fatalf("fresh handle should be alive")
	}

	h := component.NewComponent[int]()
	if err := Add(w, stale, h, intPtr(1)); err == nil {
		t.Fatalf("adding to a stale handle should fail")
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1, intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get(w, e1, h1)
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove(w, e1, h1) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2, stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2, stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has(w, e1, h2) || !Has(w, e2, h2) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove(w, e1, h2) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3, float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get(w, e1, h3); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove(w, e1, h3) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

func TestGetReturnsStoragePointer(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	v, ok := Get(w, e, h)
	if !ok {
		t.Fatalf("expected component present")
	}
	*v = 42

	again, _ := Get(w, e, h)
	if *again != 42 {
		t.Fatalf("mutation through Get pointer should persist, got %d", *again)
	}
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h, intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h, intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h, func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()

				if err := Add(w, e1, ha, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ha, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, hb, intPtr(3)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, hc, intPtr(5)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, hb, intPtr(4)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e4, hc, intPtr(6)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()

				if err := Add(w, e, ha, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, hb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, hc, intPtr(3)); err != nil {
					t.Fatal(err)
				}

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()

				if err := Add(w, e, ha, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventWeaponChanged, Data: WeaponChanged{Side: component.SideLeft}})
	w.Events().Push(Event{Type: EventWeaponChanged, Data: WeaponChanged{Side: component.SideRight}})

	evts := w.Events().Drain()
	if len(evts) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evts))
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("drain should clear the queue, got %d", len(evts))
	}
}
