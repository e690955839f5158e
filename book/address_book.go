// Package book holds the property and buyer collections and the views the
// commands operate on.
package book

import (
	"fmt"

	"property-matcher/collection"
	"property-matcher/models"
)

// AddressBook is the persisted state: every property and buyer in order.
type AddressBook struct {
	properties *collection.UniqueList[models.Property]
	buyers     *collection.UniqueList[models.Buyer]
}

func NewAddressBook() *AddressBook {
	return &AddressBook{
		properties: collection.NewUniqueList[models.Property](),
		buyers:     collection.NewUniqueList[models.Buyer](),
	}
}

// FromEntities builds a book, rejecting duplicates in either list.
func FromEntities(properties []models.Property, buyers []models.Buyer) (*AddressBook, error) {
	ab := NewAddressBook()
	if err := ab.properties.SetAll(properties); err != nil {
		return nil, fmt.Errorf("book: properties: %w", err)
	}
	if err := ab.buyers.SetAll(buyers); err != nil {
		return nil, fmt.Errorf("book: buyers: %w", err)
	}
	return ab, nil
}

// Copy returns an independent book with the same contents.
func (ab *AddressBook) Copy() *AddressBook {
	out := NewAddressBook()
	_ = out.properties.SetAll(ab.properties.Items())
	_ = out.buyers.SetAll(ab.buyers.Items())
	return out
}

func (ab *AddressBook) Properties() []models.Property { return ab.properties.Items() }
func (ab *AddressBook) Buyers() []models.Buyer         { return ab.buyers.Items() }

func (ab *AddressBook) HasProperty(p models.Property) bool { return ab.properties.Contains(p) }
func (ab *AddressBook) HasBuyer(b models.Buyer) bool       { return ab.buyers.Contains(b) }

func (ab *AddressBook) AddProperty(p models.Property) error { return ab.properties.Add(p) }
func (ab *AddressBook) AddBuyer(b models.Buyer) error       { return ab.buyers.Add(b) }

func (ab *AddressBook) SetProperty(target, edited models.Property) error {
	return ab.properties.Set(target, edited)
}

func (ab *AddressBook) SetBuyer(target, edited models.Buyer) error {
	return ab.buyers.Set(target, edited)
}

func (ab *AddressBook) RemoveProperty(p models.Property) error { return ab.properties.Remove(p) }
func (ab *AddressBook) RemoveBuyer(b models.Buyer) error       { return ab.buyers.Remove(b) }

func (ab *AddressBook) SortProperties(less func(a, b models.Property) bool) {
	ab.properties.Sort(less)
}

func (ab *AddressBook) SortBuyers(less func(a, b models.Buyer) bool) {
	ab.buyers.Sort(less)
}

// Equal compares both lists element by element, in order.
func (ab *AddressBook) Equal(other *AddressBook) bool {
	ps, ops := ab.Properties(), other.Properties()
	bs, obs := ab.Buyers(), other.Buyers()
	if len(ps) != len(ops) || len(bs) != len(obs) {
		return false
	}
	for i := range ps {
		if !ps[i].Equal(ops[i]) {
			return false
		}
	}
	for i := range bs {
		if !bs[i].Equal(obs[i]) {
			return false
		}
	}
	return true
}
