package models

import (
	"fmt"
	"strings"
)

// Actor is the kind of entity a command operates on.
type Actor int

const (
	ActorNone Actor = iota
	ActorProperty
	ActorBuyer
)

// ParseActor resolves an actor keyword case-insensitively.
func ParseActor(token string) (Actor, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "property":
		return ActorProperty, true
	case "buyer":
		return ActorBuyer, true
	default:
		return ActorNone, false
	}
}

func (a Actor) String() string {
	switch a {
	case ActorProperty:
		return "property"
	case ActorBuyer:
		return "buyer"
	case ActorNone:
		return "none"
	default:
		return fmt.Sprintf("actor(%d)", int(a))
	}
}

// Plural is used in user-facing messages.
func (a Actor) Plural() string {
	switch a {
	case ActorProperty:
		return "properties"
	case ActorBuyer:
		return "buyers"
	default:
		return a.String()
	}
}
