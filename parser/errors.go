package parser

import "fmt"

// ParseError reports command text that is malformed or incomplete.
type ParseError struct {
	Message string
	// Usage, when set, is the usage string of the command that failed.
	Usage string
}

func (e *ParseError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: "Invalid command format!", Usage: usage}
}

// UnknownCommandError reports an unrecognised command word.
type UnknownCommandError struct {
	Word string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command %q, type help to see all commands", e.Word)
}

// InvalidActorError reports a missing or unrecognised actor token.
type InvalidActorError struct {
	Token string
}

func (e *InvalidActorError) Error() string {
	if e.Token == "" {
		return "Missing actor: expected property or buyer"
	}
	return fmt.Sprintf("Invalid actor %q: expected property or buyer", e.Token)
}
