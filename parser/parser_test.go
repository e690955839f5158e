package parser

import (
	"errors"
	"reflect"
	"testing"

	"property-matcher/commands"
	"property-matcher/models"
	"property-matcher/services"
	"property-matcher/testutil"
)

func TestTokenize(t *testing.T) {
	m := Tokenize(" 3 n/Jurong  West t/condo t/pet spa/x n/Second ", PrefixName, PrefixTag, PrefixAddress)

	if m.Preamble() != "3" {
		t.Errorf("preamble: got %q", m.Preamble())
	}
	if v, _ := m.Value(PrefixName); v != "Second" {
		t.Errorf("last name value: got %q", v)
	}
	if got := m.AllValues(PrefixName); !reflect.DeepEqual(got, []string{"Jurong  West", "Second"}) {
		t.Errorf("all names: got %q", got)
	}
	if got := m.AllValues(PrefixTag); !reflect.DeepEqual(got, []string{"condo", "pet spa/x"}) {
		t.Errorf("tags: got %q", got)
	}
	if m.Has(PrefixAddress) {
		t.Error("a/ inside a word must not be treated as a prefix")
	}
	if m.AllValues(PrefixAddress) != nil {
		t.Error("absent prefix should have nil values")
	}
}

func TestParseAdd(t *testing.T) {
	cmd, err := ParseCommand("add property n/Jurong West a/123, Jurong West Ave 6, #08-111 s/Alice Pauline " +
		"p/94351253 e/alice@example.com $/654321 t/HDB t/condo")
	if err != nil {
		t.Fatal(err)
	}
	add, ok := cmd.(commands.AddPropertyCommand)
	if !ok {
		t.Fatalf("got %T", cmd)
	}
	if !add.Property.Equal(testutil.JurongWest.Build()) {
		t.Errorf("got %s", add.Property)
	}

	cmd, err = ParseCommand("ADD Buyer n/Alice p/94351253 e/alice@example.com $/700000 t/pet t/condo")
	if err != nil {
		t.Fatal(err)
	}
	if b := cmd.(commands.AddBuyerCommand).Buyer; !b.Equal(testutil.Alice.Build()) {
		t.Errorf("got %s", b)
	}
}

func TestParseAddFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"preamble", "add buyer junk n/Alice p/123 e/a@x.com $/1", ""},
		{"missing price", "add buyer n/Alice p/123 e/a@x.com", ""},
		{"missing seller", "add property n/A a/B p/123 e/a@x.com $/1", ""},
		{"bad phone", "add buyer n/Alice p/12 e/a@x.com $/1", "phone"},
		{"bad price", "add buyer n/Alice p/123 e/a@x.com $/1.234", "price"},
		{"bad tag", "add buyer n/Alice p/123 e/a@x.com $/1 t/", "tag"},
	}

	for _, tt := range tests {
		_, err := ParseCommand(tt.input)
		if tt.field == "" {
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Usage != commands.AddUsage {
				t.Errorf("%s: expected ParseError with add usage, got %v", tt.name, err)
			}
			continue
		}
		var ffe *models.FieldFormatError
		if !errors.As(err, &ffe) || ffe.Field != tt.field {
			t.Errorf("%s: expected %s FieldFormatError, got %v", tt.name, tt.field, err)
		}
	}
}

func TestParseEdit(t *testing.T) {
	cmd, err := ParseCommand("edit buyer 2 $/500000 t/")
	if err != nil {
		t.Fatal(err)
	}
	edit := cmd.(commands.EditBuyerCommand)
	if edit.Index != 2 {
		t.Errorf("index: got %d", edit.Index)
	}
	if edit.Edit.MaxPrice == nil || edit.Edit.MaxPrice.String() != "500000" {
		t.Errorf("budget: got %v", edit.Edit.MaxPrice)
	}
	if edit.Edit.Tags == nil || !edit.Edit.Tags.IsEmpty() {
		t.Errorf("empty t/ should clear tags, got %v", edit.Edit.Tags)
	}
	if edit.Edit.Name != nil || edit.Edit.Phone != nil {
		t.Error("untouched fields should stay nil")
	}

	cmd, err = ParseCommand("edit property 0 n/New Name")
	if err != nil {
		t.Fatal(err)
	}
	if pe := cmd.(commands.EditPropertyCommand); pe.Index != 0 || pe.Edit.Name == nil || *pe.Edit.Name != "New Name" {
		t.Errorf("got %+v", pe)
	}
}

func TestParseEditFailures(t *testing.T) {
	for _, input := range []string{
		"edit property 1",
		"edit property n/Name",
		"edit buyer x $/1",
		"edit buyer -1 $/1",
		"edit buyer -0 $/1",
		"edit buyer 1 2 $/1",
	} {
		var pe *ParseError
		if _, err := ParseCommand(input); !errors.As(err, &pe) {
			t.Errorf("%q: expected ParseError, got %v", input, err)
		}
	}

	var ffe *models.FieldFormatError
	if _, err := ParseCommand("edit property 1 e/not-an-email"); !errors.As(err, &ffe) {
		t.Errorf("expected FieldFormatError, got %v", err)
	}
}

func TestParseFind(t *testing.T) {
	cmd, err := ParseCommand("find property n/west t/condo")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Actor() != models.ActorProperty {
		t.Errorf("actor: got %s", cmd.Actor())
	}
	find := cmd.(commands.FindPropertyCommand)
	if !reflect.DeepEqual(find.Keywords, []string{"west"}) {
		t.Errorf("keywords: got %q", find.Keywords)
	}
	if !find.Tags.Equal(models.NewTagSet("condo")) {
		t.Errorf("tags: got %s", find.Tags)
	}

	cmd, err = ParseCommand("find buyer alice carl n/benson meier")
	if err != nil {
		t.Fatal(err)
	}
	fb := cmd.(commands.FindBuyerCommand)
	if !reflect.DeepEqual(fb.Keywords, []string{"alice", "carl", "benson", "meier"}) {
		t.Errorf("keywords: got %q", fb.Keywords)
	}
	if !fb.Tags.IsEmpty() {
		t.Errorf("tags: got %s", fb.Tags)
	}

	for _, input := range []string{"find buyer", "find buyer   ", "find property n/ t/"} {
		var pe *ParseError
		if _, err := ParseCommand(input); !errors.As(err, &pe) {
			t.Errorf("%q: expected ParseError, got %v", input, err)
		}
	}
}

func TestParseSimpleCommands(t *testing.T) {
	tests := []struct {
		input string
		want  commands.Command
	}{
		{"list property", commands.ListPropertyCommand{}},
		{"list buyer", commands.ListBuyerCommand{}},
		{"delete property 3", commands.DeletePropertyCommand{Index: 3}},
		{"delete buyer 0", commands.DeleteBuyerCommand{Index: 0}},
		{"sort property price desc", commands.SortPropertyCommand{Key: services.SortByPrice, Descending: true}},
		{"sort buyer NAME", commands.SortBuyerCommand{Key: services.SortByName}},
		{"match", commands.MatchCommand{}},
		{"match buyer 1", commands.MatchCommand{Target: models.ActorBuyer, Index: 1}},
		{"export property", commands.ExportCommand{Target: models.ActorProperty}},
		{"import buyer", commands.ImportCommand{Target: models.ActorBuyer}},
		{"clear", commands.ClearCommand{}},
		{"help me", commands.HelpCommand{}},
		{"  EXIT  ", commands.ExitCommand{}},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q: got %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	var unknown *UnknownCommandError
	if _, err := ParseCommand("launch property"); !errors.As(err, &unknown) || unknown.Word != "launch" {
		t.Errorf("expected UnknownCommandError, got %v", err)
	}

	var actorErr *InvalidActorError
	if _, err := ParseCommand("list house"); !errors.As(err, &actorErr) || actorErr.Token != "house" {
		t.Errorf("expected InvalidActorError, got %v", err)
	}
	if _, err := ParseCommand("delete"); !errors.As(err, &actorErr) || actorErr.Token != "" {
		t.Errorf("expected missing-actor error, got %v", err)
	}
	if _, err := ParseCommand("add propertyn/Jurong"); !errors.As(err, &actorErr) {
		t.Errorf("actor must be a whole token, got %v", err)
	}

	for _, input := range []string{
		"",
		"   ",
		"list buyer extra",
		"sort buyer budget",
		"sort buyer name up",
		"sort buyer",
		"match buyer",
		"match buyer one",
		"delete buyer 1 2",
		"delete property -0",
		"delete property +0",
		"match property -0",
		"export buyer now",
	} {
		var pe *ParseError
		if _, err := ParseCommand(input); !errors.As(err, &pe) {
			t.Errorf("%q: expected ParseError, got %v", input, err)
		}
	}
}

func TestParseIndexSigns(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{" 7 ", 7, true},
		{"007", 7, true},
		{"-0", 0, false},
		{"+0", 0, false},
		{"-3", 0, false},
		{"+3", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseIndex(tt.raw)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseIndex(%q) = %d, %v", tt.raw, got, err)
		}
	}
}
