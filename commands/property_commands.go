package commands

import (
	"errors"
	"fmt"

	"property-matcher/book"
	"property-matcher/collection"
	"property-matcher/models"
	"property-matcher/services"
)

// AddPropertyCommand adds a new property.
type AddPropertyCommand struct {
	Property models.Property
}

func (c AddPropertyCommand) Kind() Kind          { return KindAdd }
func (c AddPropertyCommand) Actor() models.Actor { return models.ActorProperty }

func (c AddPropertyCommand) Execute(m *book.Manager) (CommandResult, error) {
	if err := m.AddProperty(c.Property); err != nil {
		if errors.Is(err, collection.ErrDuplicate) {
			return CommandResult{}, &DuplicateEntityError{Actor: models.ActorProperty}
		}
		return CommandResult{}, err
	}
	return NewResult(fmt.Sprintf("New property added: %s", c.Property)), nil
}

// DeletePropertyCommand removes the property at a 1-based index of the displayed list.
type DeletePropertyCommand struct {
	Index int
}

func (c DeletePropertyCommand) Kind() Kind          { return KindDelete }
func (c DeletePropertyCommand) Actor() models.Actor { return models.ActorProperty }

func (c DeletePropertyCommand) Execute(m *book.Manager) (CommandResult, error) {
	shown := m.FilteredProperties()
	i, err := resolveIndex(models.ActorProperty, c.Index, len(shown))
	if err != nil {
		return CommandResult{}, err
	}
	target := shown[i]
	if err := m.DeleteProperty(target); err != nil {
		return CommandResult{}, err
	}
	return NewResult(fmt.Sprintf("Deleted property: %s", target)), nil
}

// EditPropertyCommand replaces the property at Index with the overrides applied.
type EditPropertyCommand struct {
	Index int
	Edit  models.PropertyEdit
}

func (c EditPropertyCommand) Kind() Kind          { return KindEdit }
func (c EditPropertyCommand) Actor() models.Actor { return models.ActorProperty }

func (c EditPropertyCommand) Execute(m *book.Manager) (CommandResult, error) {
	shown := m.FilteredProperties()
	i, err := resolveIndex(models.ActorProperty, c.Index, len(shown))
	if err != nil {
		return CommandResult{}, err
	}
	target := shown[i]
	edited := c.Edit.Apply(target)
	if err := m.SetProperty(target, edited); err != nil {
		if errors.Is(err, collection.ErrDuplicate) {
			return CommandResult{}, &DuplicateEntityError{Actor: models.ActorProperty}
		}
		return CommandResult{}, err
	}
	return NewResult(fmt.Sprintf("Edited property: %s", edited)), nil
}

// FindPropertyCommand narrows the displayed properties. Either filter may be
// absent; when both are present a property must pass both.
type FindPropertyCommand struct {
	Keywords []string
	Tags     models.TagSet
}

func (c FindPropertyCommand) Kind() Kind          { return KindFind }
func (c FindPropertyCommand) Actor() models.Actor { return models.ActorProperty }

func (c FindPropertyCommand) Execute(m *book.Manager) (CommandResult, error) {
	m.UpdatePropertyFilter(findPredicate[models.Property](c.Keywords, c.Tags))
	n := len(m.FilteredProperties())
	return NewResult(fmt.Sprintf("%d %s listed!", n, pluralise(n, models.ActorProperty))), nil
}

// ListPropertyCommand removes any active property filter.
type ListPropertyCommand struct{}

func (ListPropertyCommand) Kind() Kind          { return KindList }
func (ListPropertyCommand) Actor() models.Actor { return models.ActorProperty }

func (ListPropertyCommand) Execute(m *book.Manager) (CommandResult, error) {
	m.UpdatePropertyFilter(services.All[models.Property]())
	return NewResult("Listed all properties"), nil
}

// SortPropertyCommand reorders the stored property list.
type SortPropertyCommand struct {
	Key        services.SortKey
	Descending bool
}

func (c SortPropertyCommand) Kind() Kind          { return KindSort }
func (c SortPropertyCommand) Actor() models.Actor { return models.ActorProperty }

func (c SortPropertyCommand) Execute(m *book.Manager) (CommandResult, error) {
	m.SortProperties(services.PropertyLess(c.Key, c.Descending))
	return NewResult(fmt.Sprintf("Sorted properties by %s (%s)", c.Key, direction(c.Descending))), nil
}

type keywordTagged interface {
	services.Named
	services.Tagged
}

func findPredicate[T keywordTagged](keywords []string, tags models.TagSet) services.Predicate[T] {
	var preds []services.Predicate[T]
	if len(keywords) > 0 {
		preds = append(preds, services.NameContainsKeywords[T](keywords))
	}
	if !tags.IsEmpty() {
		preds = append(preds, services.ContainsTags[T](tags))
	}
	return services.And(preds...)
}

func pluralise(n int, actor models.Actor) string {
	if n == 1 {
		return actor.String()
	}
	return actor.Plural()
}

func direction(descending bool) string {
	if descending {
		return "descending"
	}
	return "ascending"
}
