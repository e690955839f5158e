package parser

import (
	"property-matcher/commands"
	"property-matcher/models"
)

func parseAdd(actor models.Actor, args string) (commands.Command, error) {
	switch actor {
	case models.ActorProperty:
		return parseAddProperty(args)
	default:
		return parseAddBuyer(args)
	}
}

func parseAddProperty(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixAddress, PrefixSeller, PrefixPhone, PrefixEmail, PrefixPrice, PrefixTag)
	if m.Preamble() != "" ||
		!requirePrefixes(m, PrefixName, PrefixAddress, PrefixSeller, PrefixPhone, PrefixEmail, PrefixPrice) {
		return nil, invalidFormat(commands.AddUsage)
	}

	name, _ := m.Value(PrefixName)
	address, _ := m.Value(PrefixAddress)
	seller, _ := m.Value(PrefixSeller)
	phone, _ := m.Value(PrefixPhone)
	email, _ := m.Value(PrefixEmail)
	price, _ := m.Value(PrefixPrice)

	p, err := models.ParseNewProperty(name, address, seller, phone, email, price, m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	return commands.AddPropertyCommand{Property: p}, nil
}

func parseAddBuyer(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixPrice, PrefixTag)
	if m.Preamble() != "" || !requirePrefixes(m, PrefixName, PrefixPhone, PrefixEmail, PrefixPrice) {
		return nil, invalidFormat(commands.AddUsage)
	}

	name, _ := m.Value(PrefixName)
	phone, _ := m.Value(PrefixPhone)
	email, _ := m.Value(PrefixEmail)
	budget, _ := m.Value(PrefixPrice)

	b, err := models.ParseNewBuyer(name, phone, email, budget, m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	return commands.AddBuyerCommand{Buyer: b}, nil
}
