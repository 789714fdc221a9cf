package vokram

import (
	"reflect"
	"testing"
)

func TestPrune(t *testing.T) {
	// a -> [x, x, y], x -> [a, a]
	m := mustBuild(t, "a x a x a y", 1)

	pruned := m.Prune(2)

	if got, want := pruned.Successors(Prefix{"a"}), []string{"x", "x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Successors(a) = %v, want %v", got, want)
	}
	if got, want := pruned.Successors(Prefix{"x"}), []string{"a", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Successors(x) = %v, want %v", got, want)
	}
}

func TestPruneDropsEmptyPrefixes(t *testing.T) {
	m := mustBuild(t, "a x a x a y", 1)

	// No transition was observed three times, so nothing survives.
	if got := m.Prune(3).Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestPruneDoesNotMutateReceiver(t *testing.T) {
	m := mustBuild(t, "a x a x a y", 1)

	_ = m.Prune(2)

	if got, want := m.Successors(Prefix{"a"}), []string{"x", "x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("receiver changed by Prune: Successors(a) = %v, want %v", got, want)
	}
}

func TestPrunePreservesOrderAndOrderField(t *testing.T) {
	m := mustBuild(t, "a x a x a y b x b x", 1)

	pruned := m.Prune(2)
	if pruned.Order() != m.Order() {
		t.Errorf("Order() = %d, want %d", pruned.Order(), m.Order())
	}

	orig := m.Prefixes()
	var wantOrder []Prefix
	for _, p := range orig {
		if pruned.Contains(p) {
			wantOrder = append(wantOrder, p)
		}
	}
	if got := pruned.Prefixes(); !reflect.DeepEqual(got, wantOrder) {
		t.Errorf("Prefixes() = %v, want original encounter order %v", got, wantOrder)
	}
}
