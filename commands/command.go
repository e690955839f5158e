// Package commands implements the typed operations a user can run against
// the address book.
package commands

import (
	"property-matcher/book"
	"property-matcher/models"
)

// Kind identifies a command variant.
type Kind int

const (
	KindAdd Kind = iota
	KindDelete
	KindEdit
	KindFind
	KindList
	KindSort
	KindMatch
	KindExport
	KindImport
	KindClear
	KindHelp
	KindExit
)

var kindWords = map[Kind]string{
	KindAdd:    "add",
	KindDelete: "delete",
	KindEdit:   "edit",
	KindFind:   "find",
	KindList:   "list",
	KindSort:   "sort",
	KindMatch:  "match",
	KindExport: "export",
	KindImport: "import",
	KindClear:  "clear",
	KindHelp:   "help",
	KindExit:   "exit",
}

// Word is the command word typed by the user.
func (k Kind) Word() string { return kindWords[k] }

// Mutates reports whether a successful command of this kind can change the
// stored book. Find, list and match only change what is shown.
func (k Kind) Mutates() bool {
	switch k {
	case KindAdd, KindDelete, KindEdit, KindSort, KindImport, KindClear:
		return true
	}
	return false
}

// CommandResult is what the user sees after a command ran, plus flags for
// the host surface.
type CommandResult struct {
	Feedback string
	ShowHelp bool
	Exit     bool
	// RequiresFile is set on results of file commands run without a file.
	RequiresFile bool
	IsFileSave   bool
}

func NewResult(feedback string) CommandResult {
	return CommandResult{Feedback: feedback}
}

// Command is any executable operation.
type Command interface {
	Kind() Kind
	// Actor is ActorNone for actor-agnostic commands.
	Actor() models.Actor
	Execute(m *book.Manager) (CommandResult, error)
}

// FileCommand is a command that needs a file chosen by the user.
type FileCommand interface {
	Command
	FileDialogPrompt() string
	IsFileSave() bool
	ExecuteWithFile(m *book.Manager, path string) (CommandResult, error)
}

// actorless is embedded by commands that operate on neither list.
type actorless struct{}

func (actorless) Actor() models.Actor { return models.ActorNone }

// resolveIndex validates a 1-based index into a view of size n.
func resolveIndex(actor models.Actor, index, n int) (int, error) {
	if index < 1 || index > n {
		return 0, &InvalidIndexError{Actor: actor, Index: index, Size: n}
	}
	return index - 1, nil
}
