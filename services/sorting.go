package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"property-matcher/models"
)

// SortKey selects the field a list is ordered by.
type SortKey int

const (
	SortByName SortKey = iota
	SortByPrice
)

func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(s) {
	case "name":
		return SortByName, nil
	case "price":
		return SortByPrice, nil
	default:
		return 0, fmt.Errorf("unknown sort key %q", s)
	}
}

func (k SortKey) String() string {
	if k == SortByPrice {
		return "price"
	}
	return "name"
}

// PropertyLess orders properties by the key; names compare case-insensitively.
func PropertyLess(key SortKey, descending bool) func(a, b models.Property) bool {
	return func(a, b models.Property) bool {
		var c int
		if key == SortByPrice {
			c = a.Price().Compare(b.Price())
		} else {
			c = compareNames(a.Name(), b.Name())
		}
		if descending {
			return c > 0
		}
		return c < 0
	}
}

// BuyerLess orders buyers by the key; price means the buyer's budget.
func BuyerLess(key SortKey, descending bool) func(a, b models.Buyer) bool {
	return func(a, b models.Buyer) bool {
		var c int
		if key == SortByPrice {
			c = a.MaxPrice().Compare(b.MaxPrice())
		} else {
			c = compareNames(a.Name(), b.Name())
		}
		if descending {
			return c > 0
		}
		return c < 0
	}
}

// compareNames orders names by their Unicode case folding, the same
// equivalence find uses for keywords.
func compareNames(a, b models.Name) int {
	f := cases.Fold()
	fa := f.String(string(a))
	return strings.Compare(fa, f.String(string(b)))
}
