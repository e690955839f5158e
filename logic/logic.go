// Package logic runs user commands against the address book and keeps the
// store in step with it.
package logic

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"property-matcher/book"
	"property-matcher/commands"
	"property-matcher/parser"
	"property-matcher/storage"
	"property-matcher/utils"
)

// Logic parses and executes one command at a time.
type Logic struct {
	mu      sync.Mutex
	manager *book.Manager
	store   storage.Storage
	logger  *utils.Logger
}

// New loads the book from store. Corrupt data is logged and replaced by an
// empty book; other load failures are returned.
func New(store storage.Storage, logger *utils.Logger) (*Logic, error) {
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	ab, err := store.Load()
	var corrupt *storage.DataCorruptionError
	switch {
	case errors.As(err, &corrupt):
		logger.Warn("[logic] %v, starting with an empty address book", err)
		ab = book.NewAddressBook()
	case err != nil:
		return nil, fmt.Errorf("logic: load: %w", err)
	}

	logger.Info("[logic] Loaded %d properties and %d buyers", len(ab.Properties()), len(ab.Buyers()))
	return &Logic{
		manager: book.NewManager(ab, logger),
		store:   store,
		logger:  logger,
	}, nil
}

// Execute parses text and runs it. File commands return a result with
// RequiresFile set; the caller then supplies a path through ExecuteWithFile.
func (l *Logic) Execute(text string) (commands.CommandResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer l.manager.Publish()

	runID := uuid.NewString()
	cmd, err := parser.ParseCommand(text)
	if err != nil {
		l.logger.Debug("[logic] %s rejected %q: %v", runID, text, err)
		return commands.CommandResult{}, err
	}
	l.logger.Debug("[logic] %s executing %s %s", runID, cmd.Kind().Word(), cmd.Actor())

	res, err := cmd.Execute(l.manager)
	if err != nil {
		l.logger.Debug("[logic] %s %s failed: %v", runID, cmd.Kind().Word(), err)
		return commands.CommandResult{}, err
	}
	if res.RequiresFile || !cmd.Kind().Mutates() {
		return res, nil
	}
	return res, l.save(runID)
}

// ExecuteWithFile runs a file command with the chosen path.
func (l *Logic) ExecuteWithFile(text, path string) (commands.CommandResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer l.manager.Publish()

	runID := uuid.NewString()
	cmd, err := parser.ParseCommand(text)
	if err != nil {
		return commands.CommandResult{}, err
	}
	fc, ok := cmd.(commands.FileCommand)
	if !ok {
		return commands.CommandResult{}, fmt.Errorf("logic: %s does not take a file", cmd.Kind().Word())
	}

	res, err := fc.ExecuteWithFile(l.manager, path)
	if err != nil {
		l.logger.Warn("[logic] %s %s %s with %s failed: %v", runID, cmd.Kind().Word(), cmd.Actor(), path, err)
		return commands.CommandResult{}, err
	}
	l.logger.Info("[logic] %s %s", runID, res.Feedback)
	if !cmd.Kind().Mutates() {
		return res, nil
	}
	return res, l.save(runID)
}

func (l *Logic) save(runID string) error {
	if err := l.store.Save(l.manager.AddressBook()); err != nil {
		l.logger.Error("[logic] %s save failed: %v", runID, err)
		return &commands.CommandError{Op: "save", Err: err}
	}
	return nil
}

// Subscribe registers fn for view updates published after each command.
// fn runs while the command lock is held and must not call back into Logic.
func (l *Logic) Subscribe(fn func(book.View)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.manager.Subscribe(fn)
}

// View returns the current filtered lists and match view.
func (l *Logic) View() book.View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.manager.View()
}

// AddressBook returns a copy of the full book.
func (l *Logic) AddressBook() *book.AddressBook {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.manager.AddressBook()
}

func (l *Logic) Close() error {
	return l.store.Close()
}
