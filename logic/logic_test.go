package logic

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"property-matcher/book"
	"property-matcher/commands"
	"property-matcher/parser"
	"property-matcher/storage"
	"property-matcher/testutil"
)

const addAlice = "add buyer n/Alice p/94351253 e/alice@example.com $/700000 t/condo t/pet"

func newLogic(t *testing.T) (*Logic, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "addressbook.json")
	l, err := New(storage.NewJSONStore(path, nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	return l, path
}

// countingStore counts Save calls on top of a JSON store.
type countingStore struct {
	*storage.JSONStore
	saves int
}

func (s *countingStore) Save(ab *book.AddressBook) error {
	s.saves++
	return s.JSONStore.Save(ab)
}

func TestExecutePersists(t *testing.T) {
	l, path := newLogic(t)

	res, err := l.Execute(addAlice)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Feedback, "New buyer added: Alice") {
		t.Errorf("feedback: got %q", res.Feedback)
	}

	reloaded, err := storage.NewJSONStore(path, nil).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded.Buyers()) != 1 || !reloaded.Buyers()[0].Equal(testutil.Alice.Build()) {
		t.Errorf("store holds %v", reloaded.Buyers())
	}
}

func TestFailedCommandsLeaveStateAlone(t *testing.T) {
	l, _ := newLogic(t)
	if _, err := l.Execute(addAlice); err != nil {
		t.Fatal(err)
	}
	before := l.AddressBook()

	var dup *commands.DuplicateEntityError
	if _, err := l.Execute(addAlice); !errors.As(err, &dup) {
		t.Errorf("expected DuplicateEntityError, got %v", err)
	}
	var iie *commands.InvalidIndexError
	if _, err := l.Execute("delete buyer 2"); !errors.As(err, &iie) {
		t.Errorf("expected InvalidIndexError, got %v", err)
	}
	var unknown *parser.UnknownCommandError
	if _, err := l.Execute("sell buyer 1"); !errors.As(err, &unknown) {
		t.Errorf("expected UnknownCommandError, got %v", err)
	}

	if !l.AddressBook().Equal(before) {
		t.Error("failed commands changed the book")
	}
}

func TestSubscribersSeeViewAfterCommand(t *testing.T) {
	l, _ := newLogic(t)
	var views []book.View
	l.Subscribe(func(v book.View) { views = append(views, v) })

	if _, err := l.Execute(addAlice); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Execute("help"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Execute("match"); err != nil {
		t.Fatal(err)
	}

	if len(views) != 2 {
		t.Fatalf("expected 2 publishes, got %d", len(views))
	}
	if len(views[0].Buyers) != 1 || views[0].Matches != nil {
		t.Errorf("first view: %+v", views[0])
	}
	if views[1].Matches == nil || len(views[1].Matches) != 0 {
		t.Errorf("match view over no properties should be empty but shown, got %v", views[1].Matches)
	}
}

func TestFileCommandFlow(t *testing.T) {
	l, _ := newLogic(t)
	if _, err := l.Execute(addAlice); err != nil {
		t.Fatal(err)
	}
	csvPath := filepath.Join(t.TempDir(), "buyers.csv")

	res, err := l.Execute("export buyer")
	if err != nil {
		t.Fatal(err)
	}
	if !res.RequiresFile || !res.IsFileSave {
		t.Fatalf("export should ask for a save target, got %+v", res)
	}
	if _, err := l.ExecuteWithFile("export buyer", csvPath); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(csvPath); err != nil {
		t.Fatal(err)
	}

	if _, err := l.Execute("clear"); err != nil {
		t.Fatal(err)
	}
	res, err = l.ExecuteWithFile("import buyer", csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.AddressBook().Buyers()) != 1 {
		t.Errorf("import: %q left %d buyers", res.Feedback, len(l.AddressBook().Buyers()))
	}

	if _, err := l.ExecuteWithFile("list buyer", csvPath); err == nil {
		t.Error("list takes no file")
	}
}

func TestCorruptDataStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.json")
	if err := os.WriteFile(path, []byte(`{"properties": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := New(storage.NewJSONStore(path, nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.AddressBook().Properties()) != 0 {
		t.Error("expected an empty book")
	}
}

func TestOnlyMutatingCommandsSave(t *testing.T) {
	store := &countingStore{JSONStore: storage.NewJSONStore(filepath.Join(t.TempDir(), "addressbook.json"), nil)}
	l, err := New(store, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Execute(addAlice); err != nil {
		t.Fatal(err)
	}
	if store.saves != 1 {
		t.Fatalf("add: expected 1 save, got %d", store.saves)
	}

	csvPath := filepath.Join(t.TempDir(), "buyers.csv")
	for _, text := range []string{"list buyer", "find buyer alice", "match", "match buyer 1", "help", "export buyer", "exit"} {
		if _, err := l.Execute(text); err != nil {
			t.Fatalf("%q: %v", text, err)
		}
	}
	if _, err := l.ExecuteWithFile("export buyer", csvPath); err != nil {
		t.Fatal(err)
	}
	if store.saves != 1 {
		t.Errorf("read-only commands saved %d times", store.saves-1)
	}

	for _, text := range []string{"sort buyer price", "delete buyer 1"} {
		if _, err := l.Execute(text); err != nil {
			t.Fatalf("%q: %v", text, err)
		}
	}
	if _, err := l.ExecuteWithFile("import buyer", csvPath); err != nil {
		t.Fatal(err)
	}
	if store.saves != 4 {
		t.Errorf("expected 4 saves after sort, delete and import, got %d", store.saves)
	}
}
