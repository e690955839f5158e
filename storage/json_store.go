package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"property-matcher/book"
	"property-matcher/utils"
)

//go:embed schema/addressbook.schema.json
var addressBookSchemaJSON string

var addressBookSchema = jsonschema.MustCompileString("addressbook.schema.json", addressBookSchemaJSON)

type jsonPerson struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type jsonProperty struct {
	Name    string     `json:"name"`
	Address string     `json:"address"`
	Seller  jsonPerson `json:"seller"`
	Price   string     `json:"price"`
	Tags    []string   `json:"tags"`
}

type jsonBuyer struct {
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	Email  string   `json:"email"`
	Budget string   `json:"budget"`
	Tags   []string `json:"tags"`
}

type jsonAddressBook struct {
	Properties []jsonProperty `json:"properties"`
	Buyers     []jsonBuyer    `json:"buyers"`
}

// JSONStore keeps the whole book in one JSON file.
type JSONStore struct {
	path   string
	logger *utils.Logger
}

func NewJSONStore(path string, logger *utils.Logger) *JSONStore {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &JSONStore{path: path, logger: logger}
}

func (s *JSONStore) Path() string { return s.path }

// Load reads and validates the file. A missing file yields an empty book.
func (s *JSONStore) Load() (*book.AddressBook, error) {
	s.logger.Debug("[storage] Reading data from %s", s.path)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("[storage] %s not found, starting with an empty address book", s.path)
		return book.NewAddressBook(), nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: s.path, Err: err}
	}
	return DecodeAddressBook(s.path, data)
}

// DecodeAddressBook validates data against the schema and rebuilds every entity.
func DecodeAddressBook(source string, data []byte) (*book.AddressBook, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DataCorruptionError{Source: source, Err: err}
	}
	if err := addressBookSchema.Validate(raw); err != nil {
		return nil, &DataCorruptionError{Source: source, Err: err}
	}

	var doc jsonAddressBook
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DataCorruptionError{Source: source, Err: err}
	}

	ab := book.NewAddressBook()
	for i, jp := range doc.Properties {
		rec := propertyRecord{
			Name:        jp.Name,
			Address:     jp.Address,
			SellerName:  jp.Seller.Name,
			SellerPhone: jp.Seller.Phone,
			SellerEmail: jp.Seller.Email,
			Price:       jp.Price,
			Tags:        jp.Tags,
		}
		p, err := rec.toProperty()
		if err != nil {
			return nil, &DataCorruptionError{Source: source, Err: fmt.Errorf("property %d: %w", i+1, err)}
		}
		if err := ab.AddProperty(p); err != nil {
			return nil, &DataCorruptionError{Source: source, Err: fmt.Errorf("property %d: %w", i+1, err)}
		}
	}
	for i, jb := range doc.Buyers {
		rec := buyerRecord{Name: jb.Name, Phone: jb.Phone, Email: jb.Email, Budget: jb.Budget, Tags: jb.Tags}
		b, err := rec.toBuyer()
		if err != nil {
			return nil, &DataCorruptionError{Source: source, Err: fmt.Errorf("buyer %d: %w", i+1, err)}
		}
		if err := ab.AddBuyer(b); err != nil {
			return nil, &DataCorruptionError{Source: source, Err: fmt.Errorf("buyer %d: %w", i+1, err)}
		}
	}
	return ab, nil
}

// EncodeAddressBook renders the book in the on-disk format.
func EncodeAddressBook(ab *book.AddressBook) ([]byte, error) {
	doc := jsonAddressBook{
		Properties: make([]jsonProperty, 0),
		Buyers:     make([]jsonBuyer, 0),
	}
	for _, p := range ab.Properties() {
		r := propertyToRecord(p)
		doc.Properties = append(doc.Properties, jsonProperty{
			Name:    r.Name,
			Address: r.Address,
			Seller:  jsonPerson{Name: r.SellerName, Phone: r.SellerPhone, Email: r.SellerEmail},
			Price:   r.Price,
			Tags:    nonNil(r.Tags),
		})
	}
	for _, b := range ab.Buyers() {
		r := buyerToRecord(b)
		doc.Buyers = append(doc.Buyers, jsonBuyer{
			Name: r.Name, Phone: r.Phone, Email: r.Email, Budget: r.Budget, Tags: nonNil(r.Tags),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes to a temporary file and renames it over the target.
func (s *JSONStore) Save(ab *book.AddressBook) error {
	data, err := EncodeAddressBook(ab)
	if err != nil {
		return &IOError{Op: "encode", Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "create data dir", Path: s.path, Err: err}
	}
	tmp, err := os.CreateTemp(dir, ".addressbook-*.json")
	if err != nil {
		return &IOError{Op: "create temp file", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "close", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "rename", Path: s.path, Err: err}
	}
	s.logger.Debug("[storage] Saved %d properties and %d buyers to %s",
		len(ab.Properties()), len(ab.Buyers()), s.path)
	return nil
}

func (s *JSONStore) Close() error { return nil }

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
