package commands

import (
	"errors"
	"fmt"

	"property-matcher/book"
	"property-matcher/collection"
	"property-matcher/models"
	"property-matcher/storage"
)

// ExportCommand writes the full property or buyer list as CSV.
type ExportCommand struct {
	Target models.Actor
}

func (c ExportCommand) Kind() Kind               { return KindExport }
func (c ExportCommand) Actor() models.Actor      { return c.Target }
func (c ExportCommand) IsFileSave() bool         { return true }
func (c ExportCommand) FileDialogPrompt() string { return fmt.Sprintf("Export %s to", c.Target.Plural()) }

// Execute without a file asks the host for one.
func (c ExportCommand) Execute(*book.Manager) (CommandResult, error) {
	return CommandResult{Feedback: c.FileDialogPrompt(), RequiresFile: true, IsFileSave: true}, nil
}

func (c ExportCommand) ExecuteWithFile(m *book.Manager, path string) (CommandResult, error) {
	ab := m.AddressBook()
	var n int
	var err error
	switch c.Target {
	case models.ActorProperty:
		n = len(ab.Properties())
		err = storage.ExportPropertiesFile(path, ab.Properties())
	case models.ActorBuyer:
		n = len(ab.Buyers())
		err = storage.ExportBuyersFile(path, ab.Buyers())
	default:
		return CommandResult{}, fmt.Errorf("export: unsupported actor %s", c.Target)
	}
	if err != nil {
		return CommandResult{}, &CommandError{Op: "export", Err: err}
	}
	return NewResult(fmt.Sprintf("Exported %d %s to %s", n, pluralise(n, c.Target), path)), nil
}

// ImportCommand adds every row of a CSV file; rows already present are skipped.
type ImportCommand struct {
	Target models.Actor
}

func (c ImportCommand) Kind() Kind               { return KindImport }
func (c ImportCommand) Actor() models.Actor      { return c.Target }
func (c ImportCommand) IsFileSave() bool         { return false }
func (c ImportCommand) FileDialogPrompt() string { return fmt.Sprintf("Import %s from", c.Target.Plural()) }

func (c ImportCommand) Execute(*book.Manager) (CommandResult, error) {
	return CommandResult{Feedback: c.FileDialogPrompt(), RequiresFile: true}, nil
}

func (c ImportCommand) ExecuteWithFile(m *book.Manager, path string) (CommandResult, error) {
	var added, skipped int
	switch c.Target {
	case models.ActorProperty:
		props, err := storage.ImportPropertiesFile(path)
		if err != nil {
			return CommandResult{}, &CommandError{Op: "import", Err: err}
		}
		for _, p := range props {
			if err := m.AddProperty(p); err != nil {
				if !errors.Is(err, collection.ErrDuplicate) {
					return CommandResult{}, err
				}
				skipped++
				continue
			}
			added++
		}
	case models.ActorBuyer:
		buyers, err := storage.ImportBuyersFile(path)
		if err != nil {
			return CommandResult{}, &CommandError{Op: "import", Err: err}
		}
		for _, b := range buyers {
			if err := m.AddBuyer(b); err != nil {
				if !errors.Is(err, collection.ErrDuplicate) {
					return CommandResult{}, err
				}
				skipped++
				continue
			}
			added++
		}
	default:
		return CommandResult{}, fmt.Errorf("import: unsupported actor %s", c.Target)
	}
	return NewResult(fmt.Sprintf("Imported %d %s from %s (%d duplicates skipped)",
		added, pluralise(added, c.Target), path, skipped)), nil
}
