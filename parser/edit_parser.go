package parser

import (
	"property-matcher/commands"
	"property-matcher/models"
)

func parseEdit(actor models.Actor, args string) (commands.Command, error) {
	if actor == models.ActorProperty {
		return parseEditProperty(args)
	}
	return parseEditBuyer(args)
}

func parseEditProperty(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixAddress, PrefixSeller, PrefixPhone, PrefixEmail, PrefixPrice, PrefixTag)
	if m.Preamble() == "" {
		return nil, invalidFormat(commands.EditUsage)
	}
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, err
	}

	var edit models.PropertyEdit
	if edit.Name, err = optionalField(m, PrefixName, models.ParseName); err != nil {
		return nil, err
	}
	if edit.Address, err = optionalField(m, PrefixAddress, models.ParseAddress); err != nil {
		return nil, err
	}
	if edit.SellerName, err = optionalField(m, PrefixSeller, models.ParseName); err != nil {
		return nil, err
	}
	if edit.SellerPhone, err = optionalField(m, PrefixPhone, models.ParsePhone); err != nil {
		return nil, err
	}
	if edit.SellerEmail, err = optionalField(m, PrefixEmail, models.ParseEmail); err != nil {
		return nil, err
	}
	if edit.Price, err = optionalField(m, PrefixPrice, models.ParsePrice); err != nil {
		return nil, err
	}
	if edit.Tags, err = parseTagsForEdit(m); err != nil {
		return nil, err
	}
	if edit.IsEmpty() {
		return nil, &ParseError{Message: "At least one field to edit must be provided.", Usage: commands.EditUsage}
	}
	return commands.EditPropertyCommand{Index: index, Edit: edit}, nil
}

func parseEditBuyer(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixPrice, PrefixTag)
	if m.Preamble() == "" {
		return nil, invalidFormat(commands.EditUsage)
	}
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, err
	}

	var edit models.BuyerEdit
	if edit.Name, err = optionalField(m, PrefixName, models.ParseName); err != nil {
		return nil, err
	}
	if edit.Phone, err = optionalField(m, PrefixPhone, models.ParsePhone); err != nil {
		return nil, err
	}
	if edit.Email, err = optionalField(m, PrefixEmail, models.ParseEmail); err != nil {
		return nil, err
	}
	if edit.MaxPrice, err = optionalField(m, PrefixPrice, models.ParsePrice); err != nil {
		return nil, err
	}
	if edit.Tags, err = parseTagsForEdit(m); err != nil {
		return nil, err
	}
	if edit.IsEmpty() {
		return nil, &ParseError{Message: "At least one field to edit must be provided.", Usage: commands.EditUsage}
	}
	return commands.EditBuyerCommand{Index: index, Edit: edit}, nil
}
