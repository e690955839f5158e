package models

import (
	"fmt"
	"strings"
)

// Property is a listing offered by a seller. Values are immutable; an edit
// produces a new Property.
type Property struct {
	name    Name
	address Address
	seller  Person
	price   Price
	tags    TagSet
}

func NewProperty(name Name, address Address, seller Person, price Price, tags TagSet) Property {
	return Property{name: name, address: address, seller: seller, price: price, tags: tags}
}

func (p Property) Name() Name       { return p.name }
func (p Property) Address() Address { return p.address }
func (p Property) Seller() Person   { return p.seller }
func (p Property) Price() Price     { return p.price }
func (p Property) Tags() TagSet     { return p.tags }

// IsSame reports whether both values describe the same listing: the same
// name at the same address. Other fields may differ.
func (p Property) IsSame(other Property) bool {
	return p.name == other.name && p.address == other.address
}

// Equal compares every field.
func (p Property) Equal(other Property) bool {
	return p.name == other.name &&
		p.address == other.address &&
		p.seller == other.seller &&
		p.price == other.price &&
		p.tags.Equal(other.tags)
}

func (p Property) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Address: %s; Seller: %s; Phone: %s; Email: %s; Price: %s",
		p.name, p.address, p.seller.name, p.seller.phone, p.seller.email, p.price)
	writeTags(&b, p.tags)
	return b.String()
}

// PropertyEdit holds sparse overrides; nil fields keep the original value.
type PropertyEdit struct {
	Name        *Name
	Address     *Address
	SellerName  *Name
	SellerPhone *Phone
	SellerEmail *Email
	Price       *Price
	Tags        *TagSet
}

// IsEmpty reports whether no field is overridden.
func (e PropertyEdit) IsEmpty() bool {
	return e.Name == nil && e.Address == nil && e.SellerName == nil &&
		e.SellerPhone == nil && e.SellerEmail == nil && e.Price == nil && e.Tags == nil
}

// Apply returns a copy of p with the overrides applied.
func (e PropertyEdit) Apply(p Property) Property {
	out := p
	if e.Name != nil {
		out.name = *e.Name
	}
	if e.Address != nil {
		out.address = *e.Address
	}
	if e.SellerName != nil {
		out.seller.name = *e.SellerName
	}
	if e.SellerPhone != nil {
		out.seller.phone = *e.SellerPhone
	}
	if e.SellerEmail != nil {
		out.seller.email = *e.SellerEmail
	}
	if e.Price != nil {
		out.price = *e.Price
	}
	if e.Tags != nil {
		out.tags = *e.Tags
	}
	return out
}

func writeTags(b *strings.Builder, tags TagSet) {
	b.WriteString("; Tags: ")
	for _, t := range tags.tags {
		b.WriteString("[")
		b.WriteString(string(t))
		b.WriteString("]")
	}
}

// ParseNewProperty validates raw field text and builds a Property.
func ParseNewProperty(name, address, sellerName, sellerPhone, sellerEmail, price string, tags []string) (Property, error) {
	n, err := ParseName(name)
	if err != nil {
		return Property{}, err
	}
	a, err := ParseAddress(address)
	if err != nil {
		return Property{}, err
	}
	sn, err := ParseName(sellerName)
	if err != nil {
		return Property{}, err
	}
	sp, err := ParsePhone(sellerPhone)
	if err != nil {
		return Property{}, err
	}
	se, err := ParseEmail(sellerEmail)
	if err != nil {
		return Property{}, err
	}
	pr, err := ParsePrice(price)
	if err != nil {
		return Property{}, err
	}
	ts, err := ParseTagSet(tags)
	if err != nil {
		return Property{}, err
	}
	return NewProperty(n, a, NewPerson(sn, sp, se), pr, ts), nil
}
