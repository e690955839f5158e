package models

import "fmt"

// PriceBonusPoints is added to a match score when the buyer can afford the property.
const PriceBonusPoints = 2

// Match pairs a property with a buyer. It is derived on demand and never stored.
type Match struct {
	property Property
	buyer    Buyer
}

func NewMatch(property Property, buyer Buyer) Match {
	return Match{property: property, buyer: buyer}
}

func (m Match) Property() Property { return m.property }
func (m Match) Buyer() Buyer       { return m.buyer }

// SharedTagCount is the size of the intersection of both tag sets.
func SharedTagCount(b Buyer, p Property) int {
	return b.tags.Intersect(p.tags).Len()
}

// PriceBonus returns PriceBonusPoints when the buyer's budget covers the price.
func PriceBonus(b Buyer, p Property) int {
	if b.maxPrice.GreaterThanOrEqual(p.price) {
		return PriceBonusPoints
	}
	return 0
}

// MatchScore rates how compatible a buyer is with a property.
func MatchScore(b Buyer, p Property) int {
	return SharedTagCount(b, p) + PriceBonus(b, p)
}

// Score is recomputed from the current members on every call.
func (m Match) Score() int {
	return MatchScore(m.buyer, m.property)
}

// IsSame reports whether both matches pair the same property with the same buyer.
func (m Match) IsSame(other Match) bool {
	return m.property.IsSame(other.property) && m.buyer.IsSame(other.buyer)
}

func (m Match) Equal(other Match) bool {
	return m.property.Equal(other.property) && m.buyer.Equal(other.buyer)
}

func (m Match) String() string {
	return fmt.Sprintf("%s <-> %s (score %d)", m.property.name, m.buyer.name, m.Score())
}
