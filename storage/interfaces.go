package storage

import (
	"fmt"

	"property-matcher/book"
)

// Storage is the interface any persistence backend must satisfy.
type Storage interface {
	// Load returns the stored book. A backend with no data yet returns an empty book.
	Load() (*book.AddressBook, error)
	Save(ab *book.AddressBook) error
	Close() error
}

// IOError reports a failure to read or write the backing store.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DataCorruptionError reports stored data that cannot be turned back into a book.
type DataCorruptionError struct {
	Source string
	Err    error
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("storage: corrupt data in %s: %v", e.Source, e.Err)
}

func (e *DataCorruptionError) Unwrap() error { return e.Err }
