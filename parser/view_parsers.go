package parser

import (
	"strings"

	"property-matcher/commands"
	"property-matcher/models"
	"property-matcher/services"
)

func parseDelete(actor models.Actor, args string) (commands.Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return nil, invalidFormat(commands.DeleteUsage)
	}
	index, err := ParseIndex(fields[0])
	if err != nil {
		return nil, err
	}
	if actor == models.ActorProperty {
		return commands.DeletePropertyCommand{Index: index}, nil
	}
	return commands.DeleteBuyerCommand{Index: index}, nil
}

// parseFind collects name keywords from the preamble and from every n/
// value. Tags come from t/.
func parseFind(actor models.Actor, args string) (commands.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat(commands.FindUsage)
	}
	m := Tokenize(args, PrefixName, PrefixTag)

	keywords := strings.Fields(m.Preamble())
	for _, v := range m.AllValues(PrefixName) {
		keywords = append(keywords, strings.Fields(v)...)
	}

	var rawTags []string
	for _, v := range m.AllValues(PrefixTag) {
		if v != "" {
			rawTags = append(rawTags, v)
		}
	}
	tags, err := models.ParseTagSet(rawTags)
	if err != nil {
		return nil, err
	}

	if len(keywords) == 0 && tags.IsEmpty() {
		return nil, invalidFormat(commands.FindUsage)
	}
	if actor == models.ActorProperty {
		return commands.FindPropertyCommand{Keywords: keywords, Tags: tags}, nil
	}
	return commands.FindBuyerCommand{Keywords: keywords, Tags: tags}, nil
}

func parseList(actor models.Actor, args string) (commands.Command, error) {
	if err := requireBlank(args, commands.ListUsage); err != nil {
		return nil, err
	}
	if actor == models.ActorProperty {
		return commands.ListPropertyCommand{}, nil
	}
	return commands.ListBuyerCommand{}, nil
}

func parseSort(actor models.Actor, args string) (commands.Command, error) {
	fields := strings.Fields(args)
	if len(fields) < 1 || len(fields) > 2 {
		return nil, invalidFormat(commands.SortUsage)
	}
	key, err := services.ParseSortKey(fields[0])
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Usage: commands.SortUsage}
	}

	descending := false
	if len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "asc":
		case "desc":
			descending = true
		default:
			return nil, &ParseError{Message: "Sort direction must be asc or desc.", Usage: commands.SortUsage}
		}
	}
	if actor == models.ActorProperty {
		return commands.SortPropertyCommand{Key: key, Descending: descending}, nil
	}
	return commands.SortBuyerCommand{Key: key, Descending: descending}, nil
}

// parseMatch accepts either nothing or an actor and an index.
func parseMatch(args string) (commands.Command, error) {
	if strings.TrimSpace(args) == "" {
		return commands.MatchCommand{}, nil
	}
	actor, rest, err := splitActor(args)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return nil, invalidFormat(commands.MatchUsage)
	}
	index, err := ParseIndex(fields[0])
	if err != nil {
		return nil, err
	}
	return commands.MatchCommand{Target: actor, Index: index}, nil
}

func parseExport(actor models.Actor, args string) (commands.Command, error) {
	if err := requireBlank(args, commands.ExportUsage); err != nil {
		return nil, err
	}
	return commands.ExportCommand{Target: actor}, nil
}

func parseImport(actor models.Actor, args string) (commands.Command, error) {
	if err := requireBlank(args, commands.ImportUsage); err != nil {
		return nil, err
	}
	return commands.ImportCommand{Target: actor}, nil
}
