// Package parser turns one line of user input into a typed command.
package parser

import (
	"strings"

	"property-matcher/commands"
	"property-matcher/models"
)

type actorParser func(actor models.Actor, args string) (commands.Command, error)

var actorParsers = map[string]actorParser{
	commands.KindAdd.Word():    parseAdd,
	commands.KindEdit.Word():   parseEdit,
	commands.KindDelete.Word(): parseDelete,
	commands.KindFind.Word():   parseFind,
	commands.KindList.Word():   parseList,
	commands.KindSort.Word():   parseSort,
	commands.KindExport.Word(): parseExport,
	commands.KindImport.Word(): parseImport,
}

// ParseCommand reads "WORD [ACTOR] [ARGS]". The command word is matched
// case-insensitively; the actor is the next run of non-space characters.
func ParseCommand(input string) (commands.Command, error) {
	word, rest := splitFirstToken(strings.TrimSpace(input))
	if word == "" {
		return nil, &ParseError{Message: "Invalid command format!", Usage: commands.HelpUsage}
	}
	word = strings.ToLower(word)

	switch word {
	case commands.KindClear.Word():
		return commands.ClearCommand{}, nil
	case commands.KindHelp.Word():
		return commands.HelpCommand{}, nil
	case commands.KindExit.Word():
		return commands.ExitCommand{}, nil
	case commands.KindMatch.Word():
		return parseMatch(rest)
	}

	parse, ok := actorParsers[word]
	if !ok {
		return nil, &UnknownCommandError{Word: word}
	}
	actor, args, err := splitActor(rest)
	if err != nil {
		return nil, err
	}
	return parse(actor, args)
}
