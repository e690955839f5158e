package parser

import (
	"strconv"
	"strings"

	"property-matcher/models"
)

// ParseIndex reads a non-negative integer index. Range checks against the
// displayed list happen when the command executes.
func ParseIndex(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, &ParseError{Message: "Index is not a non-negative integer: " + strconv.Quote(s)}
	}
	return n, nil
}

// splitActor takes the actor token off the front of args.
func splitActor(args string) (models.Actor, string, error) {
	token, rest := splitFirstToken(args)
	if token == "" {
		return models.ActorNone, "", &InvalidActorError{}
	}
	actor, ok := models.ParseActor(token)
	if !ok {
		return models.ActorNone, "", &InvalidActorError{Token: token}
	}
	return actor, rest, nil
}

// requirePrefixes reports whether every prefix appeared at least once.
func requirePrefixes(m ArgumentMultimap, prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

func requireBlank(args, usage string) error {
	if strings.TrimSpace(args) != "" {
		return invalidFormat(usage)
	}
	return nil
}

// optionalField parses the last value of p, if any, with parse.
func optionalField[T any](m ArgumentMultimap, p Prefix, parse func(string) (T, error)) (*T, error) {
	raw, ok := m.Value(p)
	if !ok {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseTagsForEdit replaces the tag set when t/ appears. A single empty t/
// clears every tag.
func parseTagsForEdit(m ArgumentMultimap) (*models.TagSet, error) {
	raw := m.AllValues(PrefixTag)
	if raw == nil {
		return nil, nil
	}
	if len(raw) == 1 && raw[0] == "" {
		empty := models.NewTagSet()
		return &empty, nil
	}
	tags, err := models.ParseTagSet(raw)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}
