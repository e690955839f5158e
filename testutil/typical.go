// Package testutil holds fixture entities shared by package tests.
package testutil

import (
	"property-matcher/models"
)

// PropertyFixture describes a property with raw strings; Build validates it.
type PropertyFixture struct {
	Name, Address, Seller, Phone, Email, Price string
	Tags                                       []string
}

// Build panics on invalid input, which is acceptable for fixtures.
func (s PropertyFixture) Build() models.Property {
	return must(models.ParseNewProperty(s.Name, s.Address, s.Seller, s.Phone, s.Email, s.Price, s.Tags))
}

// BuyerFixture describes a buyer with raw strings.
type BuyerFixture struct {
	Name, Phone, Email, Budget string
	Tags                       []string
}

func (s BuyerFixture) Build() models.Buyer {
	return must(models.ParseNewBuyer(s.Name, s.Phone, s.Email, s.Budget, s.Tags))
}

var (
	JurongWest = PropertyFixture{Name: "Jurong West", Address: "123, Jurong West Ave 6, #08-111",
		Seller: "Alice Pauline", Phone: "94351253", Email: "alice@example.com", Price: "654321",
		Tags: []string{"HDB", "condo"}}
	Mayflower = PropertyFixture{Name: "Mayflower", Address: "311, Clementi Ave 2, #02-25",
		Seller: "Benson Meier", Phone: "98765432", Email: "johnd@example.com", Price: "654321",
		Tags: []string{"condo"}}
	CarlKurz = PropertyFixture{Name: "Carl Kurz", Address: "wall street",
		Seller: "Carl Kurz", Phone: "95352563", Email: "heinz@example.com", Price: "123456"}
	DanielMeier = PropertyFixture{Name: "Daniel Meier", Address: "10th street",
		Seller: "Daniel Meier", Phone: "87652533", Email: "cornelia@example.com", Price: "234561",
		Tags: []string{"friends"}}

	Alice = BuyerFixture{Name: "Alice", Phone: "94351253", Email: "alice@example.com",
		Budget: "700000", Tags: []string{"condo", "pet"}}
	Benson = BuyerFixture{Name: "Benson Meier", Phone: "98765432", Email: "johnd@example.com",
		Budget: "200000", Tags: []string{"HDB"}}
	Carl = BuyerFixture{Name: "Carl Kurz", Phone: "95352563", Email: "heinz@example.com",
		Budget: "100000"}
)

// TypicalProperties returns fresh fixture properties in insertion order.
func TypicalProperties() []models.Property {
	return []models.Property{JurongWest.Build(), Mayflower.Build(), CarlKurz.Build(), DanielMeier.Build()}
}

// TypicalBuyers returns fresh fixture buyers in insertion order.
func TypicalBuyers() []models.Buyer {
	return []models.Buyer{Alice.Build(), Benson.Build(), Carl.Build()}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
