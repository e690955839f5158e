package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// nameRegexp allows words of letters and digits separated by single spaces
	nameRegexp = regexp.MustCompile(`^[\p{L}\p{N}]+( [\p{L}\p{N}]+)*$`)
	// phoneRegexp requires at least three digits and nothing else
	phoneRegexp = regexp.MustCompile(`^\d{3,}$`)
	// emailRegexp matches local@domain.tld
	emailRegexp = regexp.MustCompile(`^[A-Za-z0-9+_.\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)
	// priceRegexp allows whole units with up to two decimal places
	priceRegexp = regexp.MustCompile(`^(\d{1,13})(?:\.(\d{1,2}))?$`)
	// tagRegexp allows a single alphanumeric word
	tagRegexp = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

const (
	NameConstraint    = "names must be alphanumeric words separated by spaces"
	PhoneConstraint   = "phone numbers must contain only digits and be at least 3 digits long"
	EmailConstraint   = "emails must be of the form local-part@domain"
	AddressConstraint = "addresses must not be blank"
	PriceConstraint   = "prices must be a non-negative number with at most 2 decimal places"
	TagConstraint     = "tags must be a single alphanumeric word"
)

// Name is a validated person or property name.
type Name string

// ParseName trims and collapses whitespace, then validates the name.
func ParseName(raw string) (Name, error) {
	s := normaliseText(raw)
	if !nameRegexp.MatchString(s) {
		return "", fieldError("name", raw, NameConstraint)
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Phone is a validated digit string.
type Phone string

func ParsePhone(raw string) (Phone, error) {
	s := strings.TrimSpace(raw)
	if !phoneRegexp.MatchString(s) {
		return "", fieldError("phone", raw, PhoneConstraint)
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Email is a validated email address.
type Email string

func ParseEmail(raw string) (Email, error) {
	s := strings.TrimSpace(raw)
	if !emailRegexp.MatchString(s) {
		return "", fieldError("email", raw, EmailConstraint)
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Address is free text that must not be blank.
type Address string

func ParseAddress(raw string) (Address, error) {
	s := normaliseText(raw)
	if s == "" {
		return "", fieldError("address", raw, AddressConstraint)
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// Price is an exact, non-negative amount held in cents.
type Price struct {
	cents int64
}

// ParsePrice accepts "654321" or "654321.50". Grouping commas are not accepted.
func ParsePrice(raw string) (Price, error) {
	s := strings.TrimSpace(raw)
	m := priceRegexp.FindStringSubmatch(s)
	if m == nil {
		return Price{}, fieldError("price", raw, PriceConstraint)
	}
	whole, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Price{}, fieldError("price", raw, PriceConstraint)
	}
	var frac int64
	if m[2] != "" {
		digits := m[2]
		if len(digits) == 1 {
			digits += "0"
		}
		frac, _ = strconv.ParseInt(digits, 10, 64)
	}
	return Price{cents: whole*100 + frac}, nil
}

// PriceFromCents builds a Price from a cent amount. Negative amounts are rejected.
func PriceFromCents(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, fieldError("price", strconv.FormatInt(cents, 10), PriceConstraint)
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int64 { return p.cents }

// Compare returns -1, 0 or 1.
func (p Price) Compare(other Price) int {
	switch {
	case p.cents < other.cents:
		return -1
	case p.cents > other.cents:
		return 1
	default:
		return 0
	}
}

func (p Price) GreaterThanOrEqual(other Price) bool { return p.cents >= other.cents }

func (p Price) String() string {
	if p.cents%100 == 0 {
		return strconv.FormatInt(p.cents/100, 10)
	}
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// Person holds a seller's contact details.
type Person struct {
	name  Name
	phone Phone
	email Email
}

func NewPerson(name Name, phone Phone, email Email) Person {
	return Person{name: name, phone: phone, email: email}
}

func (p Person) Name() Name   { return p.name }
func (p Person) Phone() Phone { return p.phone }
func (p Person) Email() Email { return p.email }

func (p Person) String() string {
	return fmt.Sprintf("%s (Phone: %s; Email: %s)", p.name, p.phone, p.email)
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}
