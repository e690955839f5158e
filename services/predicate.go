package services

import (
	"strings"

	"golang.org/x/text/cases"

	"property-matcher/models"
)

// Named is anything with a display name.
type Named interface {
	Name() models.Name
}

// Tagged is anything carrying a tag set.
type Tagged interface {
	Tags() models.TagSet
}

// Predicate decides whether an entity stays in a filtered view.
type Predicate[T any] func(T) bool

// All keeps every entity.
func All[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// And keeps an entity only when every predicate does. No predicates keeps everything.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(x T) bool {
		for _, p := range preds {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// NameContainsKeywords matches when any whitespace-separated word of the
// name equals any keyword, ignoring case. No keywords matches nothing.
func NameContainsKeywords[T Named](keywords []string) Predicate[T] {
	folder := cases.Fold()
	wanted := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		wanted[folder.String(k)] = struct{}{}
	}
	return func(x T) bool {
		if len(wanted) == 0 {
			return false
		}
		// Casers carry state, so each call gets its own.
		f := cases.Fold()
		for _, word := range strings.Fields(string(x.Name())) {
			if _, ok := wanted[f.String(word)]; ok {
				return true
			}
		}
		return false
	}
}

// ContainsTags matches when the entity shares at least one tag with tags.
// An empty tag set matches everything.
func ContainsTags[T Tagged](tags models.TagSet) Predicate[T] {
	return func(x T) bool {
		if tags.IsEmpty() {
			return true
		}
		return !x.Tags().Intersect(tags).IsEmpty()
	}
}

// Filter returns the elements of xs kept by pred, in order.
func Filter[T any](xs []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}
