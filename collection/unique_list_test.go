package collection

import (
	"errors"
	"testing"
)

// entry is the same item as another entry with the same key.
type entry struct {
	key, val string
}

func (e entry) IsSame(o entry) bool { return e.key == o.key }
func (e entry) Equal(o entry) bool  { return e == o }

func keys(l *UniqueList[entry]) []string {
	var out []string
	for _, it := range l.Items() {
		out = append(out, it.key+"="+it.val)
	}
	return out
}

func assertKeys(t *testing.T, l *UniqueList[entry], want ...string) {
	t.Helper()
	got := keys(l)
	if len(got) != len(want) {
		t.Fatalf("items: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("items: got %v, want %v", got, want)
		}
	}
}

func TestAddRejectsSameItem(t *testing.T) {
	l := NewUniqueList[entry]()
	if err := l.Add(entry{"a", "1"}); err != nil {
		t.Fatal(err)
	}
	if err := l.Add(entry{"b", "1"}); err != nil {
		t.Fatal(err)
	}

	err := l.Add(entry{"a", "2"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	assertKeys(t, l, "a=1", "b=1")
}

func TestSetKeepsPosition(t *testing.T) {
	l := NewUniqueList[entry]()
	_ = l.SetAll([]entry{{"a", "1"}, {"b", "1"}, {"c", "1"}})

	if err := l.Set(entry{"b", "1"}, entry{"b", "2"}); err != nil {
		t.Fatalf("editing an item into itself should succeed: %v", err)
	}
	assertKeys(t, l, "a=1", "b=2", "c=1")

	if err := l.Set(entry{"b", "2"}, entry{"d", "1"}); err != nil {
		t.Fatal(err)
	}
	assertKeys(t, l, "a=1", "d=1", "c=1")
}

func TestSetRejectsCollisionWithOther(t *testing.T) {
	l := NewUniqueList[entry]()
	_ = l.SetAll([]entry{{"a", "1"}, {"b", "1"}})

	if err := l.Set(entry{"b", "1"}, entry{"a", "9"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := l.Set(entry{"z", "1"}, entry{"y", "1"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	assertKeys(t, l, "a=1", "b=1")
}

func TestRemove(t *testing.T) {
	l := NewUniqueList[entry]()
	_ = l.SetAll([]entry{{"a", "1"}, {"b", "1"}, {"c", "1"}})

	if err := l.Remove(entry{"b", "1"}); err != nil {
		t.Fatal(err)
	}
	assertKeys(t, l, "a=1", "c=1")

	if err := l.Remove(entry{"a", "other"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove matches by full equality, expected ErrNotFound, got %v", err)
	}
}

func TestSetAllRejectsInternalDuplicates(t *testing.T) {
	l := NewUniqueList[entry]()
	_ = l.Add(entry{"x", "1"})

	err := l.SetAll([]entry{{"a", "1"}, {"a", "2"}})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	assertKeys(t, l, "x=1")
}

func TestItemsIsACopy(t *testing.T) {
	l := NewUniqueList[entry]()
	_ = l.Add(entry{"a", "1"})

	items := l.Items()
	items[0] = entry{"mutated", "!"}

	assertKeys(t, l, "a=1")
}

func TestSortIsStable(t *testing.T) {
	l := NewUniqueList[entry]()
	_ = l.SetAll([]entry{{"c", "1"}, {"a", "2"}, {"b", "1"}})

	l.Sort(func(x, y entry) bool { return x.val < y.val })
	assertKeys(t, l, "c=1", "b=1", "a=2")
}

func TestUniquenessHoldsUnderMixedOperations(t *testing.T) {
	l := NewUniqueList[entry]()
	ops := []func(){
		func() { _ = l.Add(entry{"a", "1"}) },
		func() { _ = l.Add(entry{"b", "1"}) },
		func() { _ = l.Add(entry{"a", "dup"}) },
		func() { _ = l.Set(entry{"b", "1"}, entry{"a", "clash"}) },
		func() { _ = l.Set(entry{"b", "1"}, entry{"c", "1"}) },
		func() { _ = l.Add(entry{"b", "2"}) },
		func() { _ = l.Set(entry{"c", "1"}, entry{"b", "3"}) },
	}
	for i, op := range ops {
		op()
		items := l.Items()
		for x := range items {
			for y := x + 1; y < len(items); y++ {
				if items[x].IsSame(items[y]) {
					t.Fatalf("after op %d: %v and %v are the same item", i, items[x], items[y])
				}
			}
		}
	}
	assertKeys(t, l, "a=1", "c=1", "b=2")
}
