package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"property-matcher/book"
	"property-matcher/models"
	"property-matcher/services"
	"property-matcher/testutil"
)

func typicalManager(t *testing.T) *book.Manager {
	t.Helper()
	ab, err := book.FromEntities(testutil.TypicalProperties(), testutil.TypicalBuyers())
	if err != nil {
		t.Fatal(err)
	}
	return book.NewManager(ab, nil)
}

func namePtr(t *testing.T, raw string) *models.Name {
	t.Helper()
	n, err := models.ParseName(raw)
	if err != nil {
		t.Fatal(err)
	}
	return &n
}

func TestAddCommand(t *testing.T) {
	m := book.NewManager(book.NewAddressBook(), nil)
	p := testutil.JurongWest.Build()

	res, err := AddPropertyCommand{Property: p}.Execute(m)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Feedback, "New property added: Jurong West") {
		t.Errorf("feedback: got %q", res.Feedback)
	}
	if !m.HasProperty(p) {
		t.Error("property not stored")
	}

	_, err = AddPropertyCommand{Property: p}.Execute(m)
	var dup *DuplicateEntityError
	if !errors.As(err, &dup) || dup.Actor != models.ActorProperty {
		t.Errorf("expected DuplicateEntityError, got %v", err)
	}

	if _, err := (AddBuyerCommand{Buyer: testutil.Alice.Build()}).Execute(m); err != nil {
		t.Fatal(err)
	}
	same := testutil.Alice
	same.Budget = "1"
	if _, err := (AddBuyerCommand{Buyer: same.Build()}).Execute(m); !errors.As(err, &dup) {
		t.Errorf("buyer with the same name should be a duplicate, got %v", err)
	}
}

func TestDeleteIndexBounds(t *testing.T) {
	for _, index := range []int{0, 5} {
		m := typicalManager(t)
		_, err := DeletePropertyCommand{Index: index}.Execute(m)
		var iie *InvalidIndexError
		if !errors.As(err, &iie) || iie.Index != index || iie.Size != 4 {
			t.Errorf("index %d: expected InvalidIndexError, got %v", index, err)
		}
		if len(m.AddressBook().Properties()) != 4 {
			t.Errorf("index %d: book was modified", index)
		}
	}

	m := typicalManager(t)
	res, err := DeleteBuyerCommand{Index: 3}.Execute(m)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Feedback, "Deleted buyer: Carl Kurz") {
		t.Errorf("feedback: got %q", res.Feedback)
	}
	if m.HasBuyer(testutil.Carl.Build()) {
		t.Error("buyer still present")
	}
}

func TestDeleteUsesFilteredView(t *testing.T) {
	m := typicalManager(t)
	if _, err := (FindPropertyCommand{Keywords: []string{"mayflower"}}).Execute(m); err != nil {
		t.Fatal(err)
	}
	if _, err := (DeletePropertyCommand{Index: 1}).Execute(m); err != nil {
		t.Fatal(err)
	}
	if m.HasProperty(testutil.Mayflower.Build()) {
		t.Error("index 1 of the filtered view should be Mayflower")
	}
	if !m.HasProperty(testutil.JurongWest.Build()) {
		t.Error("Jurong West should be untouched")
	}
}

func TestEditCommand(t *testing.T) {
	m := typicalManager(t)
	price, _ := models.ParsePrice("999999.50")

	res, err := EditPropertyCommand{Index: 2, Edit: models.PropertyEdit{Price: &price}}.Execute(m)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Feedback, "Price: 999999.50") {
		t.Errorf("feedback: got %q", res.Feedback)
	}
	props := m.AddressBook().Properties()
	if props[1].Name() != "Mayflower" || props[1].Price().Cents() != 99999950 {
		t.Errorf("edit should keep position, got %s", props[1])
	}

	_, err = EditBuyerCommand{Index: 2, Edit: models.BuyerEdit{Name: namePtr(t, "Alice")}}.Execute(m)
	var dup *DuplicateEntityError
	if !errors.As(err, &dup) {
		t.Errorf("renaming onto another buyer should fail, got %v", err)
	}
	if m.AddressBook().Buyers()[1].Name() != "Benson Meier" {
		t.Error("failed edit modified the book")
	}

	var iie *InvalidIndexError
	if _, err := (EditBuyerCommand{Index: 4, Edit: models.BuyerEdit{Name: namePtr(t, "X")}}).Execute(m); !errors.As(err, &iie) {
		t.Errorf("expected InvalidIndexError, got %v", err)
	}
}

func TestFindAndList(t *testing.T) {
	m := typicalManager(t)
	find := FindPropertyCommand{Keywords: []string{"WEST", "kurz"}, Tags: models.NewTagSet("condo")}

	res, err := find.Execute(m)
	if err != nil {
		t.Fatal(err)
	}
	if res.Feedback != "1 property listed!" {
		t.Errorf("feedback: got %q", res.Feedback)
	}
	first := m.FilteredProperties()

	if _, err := find.Execute(m); err != nil {
		t.Fatal(err)
	}
	second := m.FilteredProperties()
	if len(first) != 1 || len(second) != 1 || !first[0].Equal(second[0]) {
		t.Errorf("find should be idempotent: %v then %v", first, second)
	}

	res, _ = FindBuyerCommand{Tags: models.NewTagSet("HDB", "pet")}.Execute(m)
	if res.Feedback != "2 buyers listed!" {
		t.Errorf("feedback: got %q", res.Feedback)
	}

	res, _ = ListPropertyCommand{}.Execute(m)
	if res.Feedback != "Listed all properties" || len(m.FilteredProperties()) != 4 {
		t.Errorf("list: got %q with %d shown", res.Feedback, len(m.FilteredProperties()))
	}
}

func TestSortCommand(t *testing.T) {
	m := typicalManager(t)
	res, err := SortBuyerCommand{Key: services.SortByPrice}.Execute(m)
	if err != nil {
		t.Fatal(err)
	}
	if res.Feedback != "Sorted buyers by price (ascending)" {
		t.Errorf("feedback: got %q", res.Feedback)
	}
	buyers := m.AddressBook().Buyers()
	if buyers[0].Name() != "Carl Kurz" || buyers[2].Name() != "Alice" {
		t.Errorf("unexpected order %v", buyers)
	}
}

func TestMatchCommand(t *testing.T) {
	m := typicalManager(t)

	res, err := MatchCommand{Target: models.ActorBuyer, Index: 1}.Execute(m)
	if err != nil {
		t.Fatal(err)
	}
	if res.Feedback != "Showing 4 matches" {
		t.Errorf("feedback: got %q", res.Feedback)
	}
	matches := m.Matches()
	if matches[0].Property().Name() != "Jurong West" || matches[0].Score() != 3 {
		t.Errorf("top match: got %s", matches[0])
	}

	res, _ = MatchCommand{}.Execute(m)
	if res.Feedback != "Showing 12 matches" {
		t.Errorf("feedback: got %q", res.Feedback)
	}

	var iie *InvalidIndexError
	if _, err := (MatchCommand{Target: models.ActorProperty, Index: 9}).Execute(m); !errors.As(err, &iie) {
		t.Errorf("expected InvalidIndexError, got %v", err)
	}
}

func TestClearHelpExit(t *testing.T) {
	m := typicalManager(t)
	if _, err := (ClearCommand{}).Execute(m); err != nil {
		t.Fatal(err)
	}
	if len(m.AddressBook().Properties()) != 0 || m.Matches() != nil {
		t.Error("clear should empty the book and hide matches")
	}

	res, _ := HelpCommand{}.Execute(m)
	if !res.ShowHelp || res.Exit || !strings.Contains(res.Feedback, MatchUsage) {
		t.Errorf("help: got %+v", res)
	}
	res, _ = ExitCommand{}.Execute(m)
	if !res.Exit || res.ShowHelp {
		t.Errorf("exit: got %+v", res)
	}
}

func TestExportImport(t *testing.T) {
	m := typicalManager(t)
	path := filepath.Join(t.TempDir(), "buyers.csv")

	export := ExportCommand{Target: models.ActorBuyer}
	res, err := export.Execute(m)
	if err != nil || !res.RequiresFile || !res.IsFileSave {
		t.Fatalf("export without file: %+v, %v", res, err)
	}
	if res, err = export.ExecuteWithFile(m, path); err != nil {
		t.Fatal(err)
	}
	if res.Feedback != "Exported 3 buyers to "+path {
		t.Errorf("feedback: got %q", res.Feedback)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	if _, err := (DeleteBuyerCommand{Index: 1}).Execute(m); err != nil {
		t.Fatal(err)
	}
	res, err = ImportCommand{Target: models.ActorBuyer}.ExecuteWithFile(m, path)
	if err != nil {
		t.Fatal(err)
	}
	if res.Feedback != "Imported 1 buyer from "+path+" (2 duplicates skipped)" {
		t.Errorf("feedback: got %q", res.Feedback)
	}
	if !m.HasBuyer(testutil.Alice.Build()) {
		t.Error("Alice should be back")
	}

	_, err = ImportCommand{Target: models.ActorProperty}.ExecuteWithFile(m, filepath.Join(t.TempDir(), "none.csv"))
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Op != "import" {
		t.Errorf("expected CommandError, got %v", err)
	}
}
