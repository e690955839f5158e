package commands

import (
	"fmt"

	"property-matcher/book"
	"property-matcher/models"
)

// MatchCommand publishes the ranked match view. With an actor it ranks only
// against the entry at Index of that actor's displayed list.
type MatchCommand struct {
	Target models.Actor
	Index  int
}

func (c MatchCommand) Kind() Kind          { return KindMatch }
func (c MatchCommand) Actor() models.Actor { return c.Target }

func (c MatchCommand) Execute(m *book.Manager) (CommandResult, error) {
	switch c.Target {
	case models.ActorProperty:
		shown := m.FilteredProperties()
		i, err := resolveIndex(models.ActorProperty, c.Index, len(shown))
		if err != nil {
			return CommandResult{}, err
		}
		m.ShowPropertyMatches(shown[i])
	case models.ActorBuyer:
		shown := m.FilteredBuyers()
		i, err := resolveIndex(models.ActorBuyer, c.Index, len(shown))
		if err != nil {
			return CommandResult{}, err
		}
		m.ShowBuyerMatches(shown[i])
	default:
		m.ShowMatches(book.AllMatches)
	}
	n := len(m.Matches())
	if n == 1 {
		return NewResult("Showing 1 match"), nil
	}
	return NewResult(fmt.Sprintf("Showing %d matches", n)), nil
}

// ClearCommand empties both lists.
type ClearCommand struct{ actorless }

func (ClearCommand) Kind() Kind { return KindClear }

func (ClearCommand) Execute(m *book.Manager) (CommandResult, error) {
	m.ResetAddressBook(nil)
	m.ShowMatches(nil)
	return NewResult("Address book has been cleared!"), nil
}

type HelpCommand struct{ actorless }

func (HelpCommand) Kind() Kind { return KindHelp }

func (HelpCommand) Execute(*book.Manager) (CommandResult, error) {
	return CommandResult{Feedback: HelpText(), ShowHelp: true}, nil
}

type ExitCommand struct{ actorless }

func (ExitCommand) Kind() Kind { return KindExit }

func (ExitCommand) Execute(*book.Manager) (CommandResult, error) {
	return CommandResult{Feedback: "Exiting as requested ...", Exit: true}, nil
}
