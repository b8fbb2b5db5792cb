package ecs

import (
	"errors"
	"slices"
	"testing"

	"github.com/milk9111/dungeon/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

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
			for range c.create {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			dead := ents[c.destroyIndex]
			if !DestroyEntity(w, dead) {
				t.Fatal("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, dead) {
				t.Fatal("entity should not be alive after destruction")
			}
			if DestroyEntity(w, dead) {
				t.Fatal("destroying twice should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected id reuse, got %v and %v", old, reused)
	}
	if reused == old {
		t.Fatal("reused handle must differ by generation")
	}
	if Has(w, reused, kind) {
		t.Fatal("new entity inherited a component of the destroyed one")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("adding to a stale handle: err = %v", err)
	}
	if Has(w, old, kind) {
		t.Fatal("stale handle should not see components")
	}
}

func TestComponentAccess(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()
	e := CreateEntity(w)

	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{
			name: "add_and_get",
			check: func(t *testing.T) {
				if err := Add(w, e, ints.Kind(), intPtr(10)); err != nil {
					t.Fatal(err)
				}
				v, ok := Get(w, e, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "add_replaces",
			check: func(t *testing.T) {
				if err := Add(w, e, ints.Kind(), intPtr(11)); err != nil {
					t.Fatal(err)
				}
				if v, _ := Get(w, e, ints.Kind()); *v != 11 {
					t.Fatalf("expected 11, got %d", *v)
				}
			},
		},
		{
			name: "kinds_are_independent",
			check: func(t *testing.T) {
				if Has(w, e, strs.Kind()) {
					t.Fatal("string component should be absent")
				}
			},
		},
		{
			name: "nil_value_rejected",
			check: func(t *testing.T) {
				if err := Add[string](w, e, strs.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
					t.Fatalf("err = %v, want ErrNilComponent", err)
				}
			},
		},
		{
			name: "invalid_kind_rejected",
			check: func(t *testing.T) {
				var zero component.ComponentKind[int]
				if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
					t.Fatalf("err = %v, want ErrInvalidComponentKind", err)
				}
			},
		},
		{
			name: "remove",
			check: func(t *testing.T) {
				if !Remove(w, e, ints.Kind()) {
					t.Fatal("remove should report true")
				}
				if Remove(w, e, ints.Kind()) {
					t.Fatal("second remove should report false")
				}
			},
		},
		{
			name: "destroy_clears_components",
			check: func(t *testing.T) {
				other := CreateEntity(w)
				if err := Add(w, other, strs.Kind(), new(string)); err != nil {
					t.Fatal(err)
				}
				DestroyEntity(w, other)
				if _, ok := First(w, strs.Kind()); ok {
					t.Fatal("destroyed entity still listed in its store")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.check)
	}
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	// all has every kind; the others miss one each.
	all := CreateEntity(w)
	noB := CreateEntity(w)
	noD := CreateEntity(w)
	dead := CreateEntity(w)
	for e, kinds := range map[Entity][]component.ComponentKind[int]{
		all:  {ka, kb, kc, kd},
		noB:  {ka, kc, kd},
		noD:  {ka, kb, kc},
		dead: {ka, kb, kc, kd},
	} {
		for _, k := range kinds {
			if err := Add(w, e, k, intPtr(1)); err != nil {
				t.Fatal(err)
			}
		}
	}
	DestroyEntity(w, dead)

	collect := func(fn func(add func(Entity))) []Entity {
		var out []Entity
		fn(func(e Entity) { out = append(out, e) })
		slices.Sort(out)
		return out
	}

	tests := []struct {
		name string
		got  []Entity
		want []Entity
	}{
		{
			name: "for_each",
			got:  collect(func(add func(Entity)) { ForEach(w, ka, func(e Entity, _ *int) { add(e) }) }),
			want: []Entity{all, noB, noD},
		},
		{
			name: "for_each2",
			got:  collect(func(add func(Entity)) { ForEach2(w, ka, kb, func(e Entity, _, _ *int) { add(e) }) }),
			want: []Entity{all, noD},
		},
		{
			name: "for_each3",
			got:  collect(func(add func(Entity)) { ForEach3(w, ka, kc, kd, func(e Entity, _, _, _ *int) { add(e) }) }),
			want: []Entity{all, noB},
		},
		{
			name: "for_each4",
			got:  collect(func(add func(Entity)) { ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { add(e) }) }),
			want: []Entity{all},
		},
		{
			name: "query",
			got:  collect(func(add func(Entity)) {
				for _, e := range Query(w, kb, kd) {
					add(e)
				}
			}),
			want: []Entity{all},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := slices.Clone(tc.want)
			slices.Sort(want)
			if !slices.Equal(tc.got, want) {
				t.Fatalf("got %v, want %v", tc.got, want)
			}
		})
	}
}

func TestForEachMissingStore(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	e := CreateEntity(w)
	if err := Add(w, e, ka, intPtr(1)); err != nil {
		t.Fatal(err)
	}

	called := false
	ForEach2(w, ka, kb, func(Entity, *int, *int) { called = true })
	if called {
		t.Fatal("ForEach2 visited an entity without the second kind")
	}
	if got := Query(w, ka, kb); len(got) != 0 {
		t.Fatalf("Query = %v, want none", got)
	}
}

func TestForEachAllowsRemoval(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	for i := range 5 {
		if err := Add(w, CreateEntity(w), kind, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, kind, func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 5 {
		t.Fatalf("visited %d entities, want 5", visited)
	}
	if len(Entities(w)) != 0 {
		t.Fatalf("expected empty world, got %v", Entities(w))
	}
}

type pingEvent struct{ n int }

func TestEventsAreClearedAtEndFrame(t *testing.T) {
	w := NewWorld()
	if got := Events[pingEvent](w); got != nil {
		t.Fatalf("expected no events before any emit, got %v", got)
	}

	Emit(w, pingEvent{1})
	Emit(w, pingEvent{2})
	Emit(w, LogMessage{Text: "hello"})

	got := Events[pingEvent](w)
	if len(got) != 2 || got[0].n != 1 || got[1].n != 2 {
		t.Fatalf("events = %v, want [1 2] in order", got)
	}
	if logs := Events[LogMessage](w); len(logs) != 1 {
		t.Fatalf("event types leaked into each other: %v", logs)
	}

	EndFrame(w)
	if n := len(Events[pingEvent](w)); n != 0 {
		t.Fatalf("expected no events after EndFrame, got %d", n)
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	Emit(w, pingEvent{len(*s.log)})
}

func TestSchedulerRunsInOrderThenEndsFrame(t *testing.T) {
	w := NewWorld()
	var order []string
	var seen int
	s := NewScheduler(
		recordSystem{name: "a", log: &order},
		nil,
		recordSystem{name: "b", log: &order},
	)
	s.Add(systemFunc(func(w *World) { seen = len(Events[pingEvent](w)) }))

	s.Update(w)

	if !slices.Equal(order, []string{"a", "b"}) {
		t.Fatalf("order = %v", order)
	}
	if seen != 2 {
		t.Fatalf("later system saw %d events, want 2", seen)
	}
	if n := len(Events[pingEvent](w)); n != 0 {
		t.Fatalf("events survived the frame: %d", n)
	}
	if n := len(s.Systems()); n != 3 {
		t.Fatalf("systems = %d, want 3", n)
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }

func TestHierarchy(t *testing.T) {
	w := NewWorld()
	parent := CreateEntity(w)
	a := CreateEntity(w)
	b := CreateEntity(w)
	grandchild := CreateEntity(w)

	for _, pair := range [][2]Entity{{parent, a}, {parent, b}, {a, grandchild}, {parent, a}} {
		if err := AddChild(w, pair[0], pair[1]); err != nil {
			t.Fatal(err)
		}
	}
	if got := ChildrenOf(w, parent); !slices.Equal(got, []Entity{a, b}) {
		t.Fatalf("children = %v, want [a b] without duplicates", got)
	}
	if p, ok := Get(w, grandchild, ParentComponent.Kind()); !ok || p.Entity != a {
		t.Fatalf("grandchild parent = %v", p)
	}

	if !RemoveChild(w, parent, b) {
		t.Fatal("RemoveChild should report true")
	}
	if Has(w, b, ParentComponent.Kind()) {
		t.Fatal("detached child kept its parent")
	}
	if !IsAlive(w, b) {
		t.Fatal("RemoveChild must not destroy the child")
	}

	// Re-parenting detaches from the old parent.
	if err := AddChild(w, b, grandchild); err != nil {
		t.Fatal(err)
	}
	if got := ChildrenOf(w, a); len(got) != 0 {
		t.Fatalf("old parent still lists %v", got)
	}

	if !DestroyRecursive(w, parent) {
		t.Fatal("DestroyRecursive should report true")
	}
	if IsAlive(w, parent) || IsAlive(w, a) {
		t.Fatal("parent subtree should be gone")
	}
	if !IsAlive(w, b) || !IsAlive(w, grandchild) {
		t.Fatal("detached subtree should survive")
	}

	if err := AddChild(w, parent, b); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("AddChild to a dead parent: err = %v", err)
	}
}
