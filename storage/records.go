package storage

import (
	"strings"

	"property-matcher/models"
)

// propertyRecord is the flat, string-typed form shared by every backend.
type propertyRecord struct {
	Name        string
	Address     string
	SellerName  string
	SellerPhone string
	SellerEmail string
	Price       string
	Tags        []string
}

type buyerRecord struct {
	Name   string
	Phone  string
	Email  string
	Budget string
	Tags   []string
}

func propertyToRecord(p models.Property) propertyRecord {
	return propertyRecord{
		Name:        p.Name().String(),
		Address:     p.Address().String(),
		SellerName:  p.Seller().Name().String(),
		SellerPhone: p.Seller().Phone().String(),
		SellerEmail: p.Seller().Email().String(),
		Price:       p.Price().String(),
		Tags:        p.Tags().Strings(),
	}
}

// toProperty runs every field through its validating constructor.
func (r propertyRecord) toProperty() (models.Property, error) {
	return models.ParseNewProperty(r.Name, r.Address, r.SellerName, r.SellerPhone, r.SellerEmail, r.Price, r.Tags)
}

func buyerToRecord(b models.Buyer) buyerRecord {
	return buyerRecord{
		Name:   b.Name().String(),
		Phone:  b.Phone().String(),
		Email:  b.Email().String(),
		Budget: b.MaxPrice().String(),
		Tags:   b.Tags().Strings(),
	}
}

func (r buyerRecord) toBuyer() (models.Buyer, error) {
	return models.ParseNewBuyer(r.Name, r.Phone, r.Email, r.Budget, r.Tags)
}

// splitTags parses the comma-joined export form.
func splitTags(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
