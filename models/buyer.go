package models

import (
	"fmt"
	"strings"
)

// Buyer is a prospective purchaser with a budget and a set of wants.
type Buyer struct {
	name     Name
	phone    Phone
	email    Email
	maxPrice Price
	tags     TagSet
}

func NewBuyer(name Name, phone Phone, email Email, maxPrice Price, tags TagSet) Buyer {
	return Buyer{name: name, phone: phone, email: email, maxPrice: maxPrice, tags: tags}
}

func (b Buyer) Name() Name      { return b.name }
func (b Buyer) Phone() Phone    { return b.phone }
func (b Buyer) Email() Email    { return b.email }
func (b Buyer) MaxPrice() Price { return b.maxPrice }
func (b Buyer) Tags() TagSet    { return b.tags }

// IsSame reports whether both values have the same name.
func (b Buyer) IsSame(other Buyer) bool {
	return b.name == other.name
}

// Equal compares every field.
func (b Buyer) Equal(other Buyer) bool {
	return b.name == other.name &&
		b.phone == other.phone &&
		b.email == other.email &&
		b.maxPrice == other.maxPrice &&
		b.tags.Equal(other.tags)
}

func (b Buyer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s; Phone: %s; Email: %s; Budget: %s", b.name, b.phone, b.email, b.maxPrice)
	writeTags(&sb, b.tags)
	return sb.String()
}

// BuyerEdit holds sparse overrides; nil fields keep the original value.
type BuyerEdit struct {
	Name     *Name
	Phone    *Phone
	Email    *Email
	MaxPrice *Price
	Tags     *TagSet
}

func (e BuyerEdit) IsEmpty() bool {
	return e.Name == nil && e.Phone == nil && e.Email == nil && e.MaxPrice == nil && e.Tags == nil
}

func (e BuyerEdit) Apply(b Buyer) Buyer {
	out := b
	if e.Name != nil {
		out.name = *e.Name
	}
	if e.Phone != nil {
		out.phone = *e.Phone
	}
	if e.Email != nil {
		out.email = *e.Email
	}
	if e.MaxPrice != nil {
		out.maxPrice = *e.MaxPrice
	}
	if e.Tags != nil {
		out.tags = *e.Tags
	}
	return out
}

// ParseNewBuyer validates raw field text and builds a Buyer.
func ParseNewBuyer(name, phone, email, budget string, tags []string) (Buyer, error) {
	n, err := ParseName(name)
	if err != nil {
		return Buyer{}, err
	}
	p, err := ParsePhone(phone)
	if err != nil {
		return Buyer{}, err
	}
	e, err := ParseEmail(email)
	if err != nil {
		return Buyer{}, err
	}
	b, err := ParsePrice(budget)
	if err != nil {
		return Buyer{}, err
	}
	ts, err := ParseTagSet(tags)
	if err != nil {
		return Buyer{}, err
	}
	return NewBuyer(n, p, e, b, ts), nil
}
