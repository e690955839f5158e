// Package collection provides an ordered list that rejects logical duplicates.
package collection

import (
	"errors"
	"sort"
)

var (
	// ErrDuplicate is returned when a value is the same item as an existing element.
	ErrDuplicate = errors.New("collection: duplicate item")
	// ErrNotFound is returned when the target element is not in the list.
	ErrNotFound = errors.New("collection: item not found")
)

// Item can report whether two values are the same item (weak identity)
// separately from full equality.
type Item[T any] interface {
	IsSame(other T) bool
	Equal(other T) bool
}

// UniqueList keeps elements in insertion order. No two elements are ever
// the same item. Failed operations leave the list untouched.
type UniqueList[T Item[T]] struct {
	items []T
}

func NewUniqueList[T Item[T]]() *UniqueList[T] {
	return &UniqueList[T]{}
}

// Contains reports whether some element is the same item as x.
func (l *UniqueList[T]) Contains(x T) bool {
	for _, it := range l.items {
		if it.IsSame(x) {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the element equal to x, or -1.
func (l *UniqueList[T]) IndexOf(x T) int {
	for i, it := range l.items {
		if it.Equal(x) {
			return i
		}
	}
	return -1
}

func (l *UniqueList[T]) Add(x T) error {
	if l.Contains(x) {
		return ErrDuplicate
	}
	l.items = append(l.items, x)
	return nil
}

// Set replaces target with edited at the same position. edited may be the
// same item as target, but not as any other element.
func (l *UniqueList[T]) Set(target, edited T) error {
	idx := l.IndexOf(target)
	if idx < 0 {
		return ErrNotFound
	}
	for i, it := range l.items {
		if i != idx && it.IsSame(edited) {
			return ErrDuplicate
		}
	}
	l.items[idx] = edited
	return nil
}

func (l *UniqueList[T]) Remove(x T) error {
	idx := l.IndexOf(x)
	if idx < 0 {
		return ErrNotFound
	}
	l.items = append(l.items[:idx:idx], l.items[idx+1:]...)
	return nil
}

// SetAll replaces the contents. xs must not contain two same items.
func (l *UniqueList[T]) SetAll(xs []T) error {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].IsSame(xs[j]) {
				return ErrDuplicate
			}
		}
	}
	l.items = append([]T(nil), xs...)
	return nil
}

// Sort orders the elements stably by less.
func (l *UniqueList[T]) Sort(less func(a, b T) bool) {
	sort.SliceStable(l.items, func(i, j int) bool { return less(l.items[i], l.items[j]) })
}

func (l *UniqueList[T]) Get(i int) T { return l.items[i] }

func (l *UniqueList[T]) Len() int { return len(l.items) }

// Items returns a copy of the elements in order. Never nil.
func (l *UniqueList[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
