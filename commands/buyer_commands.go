package commands

import (
	"errors"
	"fmt"

	"property-matcher/book"
	"property-matcher/collection"
	"property-matcher/models"
	"property-matcher/services"
)

type AddBuyerCommand struct {
	Buyer models.Buyer
}

func (c AddBuyerCommand) Kind() Kind          { return KindAdd }
func (c AddBuyerCommand) Actor() models.Actor { return models.ActorBuyer }

func (c AddBuyerCommand) Execute(m *book.Manager) (CommandResult, error) {
	if err := m.AddBuyer(c.Buyer); err != nil {
		if errors.Is(err, collection.ErrDuplicate) {
			return CommandResult{}, &DuplicateEntityError{Actor: models.ActorBuyer}
		}
		return CommandResult{}, err
	}
	return NewResult(fmt.Sprintf("New buyer added: %s", c.Buyer)), nil
}

type DeleteBuyerCommand struct {
	Index int
}

func (c DeleteBuyerCommand) Kind() Kind          { return KindDelete }
func (c DeleteBuyerCommand) Actor() models.Actor { return models.ActorBuyer }

func (c DeleteBuyerCommand) Execute(m *book.Manager) (CommandResult, error) {
	shown := m.FilteredBuyers()
	i, err := resolveIndex(models.ActorBuyer, c.Index, len(shown))
	if err != nil {
		return CommandResult{}, err
	}
	target := shown[i]
	if err := m.DeleteBuyer(target); err != nil {
		return CommandResult{}, err
	}
	return NewResult(fmt.Sprintf("Deleted buyer: %s", target)), nil
}

type EditBuyerCommand struct {
	Index int
	Edit  models.BuyerEdit
}

func (c EditBuyerCommand) Kind() Kind          { return KindEdit }
func (c EditBuyerCommand) Actor() models.Actor { return models.ActorBuyer }

func (c EditBuyerCommand) Execute(m *book.Manager) (CommandResult, error) {
	shown := m.FilteredBuyers()
	i, err := resolveIndex(models.ActorBuyer, c.Index, len(shown))
	if err != nil {
		return CommandResult{}, err
	}
	target := shown[i]
	edited := c.Edit.Apply(target)
	if err := m.SetBuyer(target, edited); err != nil {
		if errors.Is(err, collection.ErrDuplicate) {
			return CommandResult{}, &DuplicateEntityError{Actor: models.ActorBuyer}
		}
		return CommandResult{}, err
	}
	return NewResult(fmt.Sprintf("Edited buyer: %s", edited)), nil
}

type FindBuyerCommand struct {
	Keywords []string
	Tags     models.TagSet
}

func (c FindBuyerCommand) Kind() Kind          { return KindFind }
func (c FindBuyerCommand) Actor() models.Actor { return models.ActorBuyer }

func (c FindBuyerCommand) Execute(m *book.Manager) (CommandResult, error) {
	m.UpdateBuyerFilter(findPredicate[models.Buyer](c.Keywords, c.Tags))
	n := len(m.FilteredBuyers())
	return NewResult(fmt.Sprintf("%d %s listed!", n, pluralise(n, models.ActorBuyer))), nil
}

type ListBuyerCommand struct{}

func (ListBuyerCommand) Kind() Kind          { return KindList }
func (ListBuyerCommand) Actor() models.Actor { return models.ActorBuyer }

func (ListBuyerCommand) Execute(m *book.Manager) (CommandResult, error) {
	m.UpdateBuyerFilter(services.All[models.Buyer]())
	return NewResult("Listed all buyers"), nil
}

type SortBuyerCommand struct {
	Key        services.SortKey
	Descending bool
}

func (c SortBuyerCommand) Kind() Kind          { return KindSort }
func (c SortBuyerCommand) Actor() models.Actor { return models.ActorBuyer }

func (c SortBuyerCommand) Execute(m *book.Manager) (CommandResult, error) {
	m.SortBuyers(services.BuyerLess(c.Key, c.Descending))
	return NewResult(fmt.Sprintf("Sorted buyers by %s (%s)", c.Key, direction(c.Descending))), nil
}
