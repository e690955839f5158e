package commands

import "strings"

const (
	AddUsage = "add: Adds a property or a buyer to the address book.\n" +
		"Parameters: property n/NAME a/ADDRESS s/SELLER p/PHONE e/EMAIL $/PRICE [t/TAG]...\n" +
		"            buyer n/NAME p/PHONE e/EMAIL $/BUDGET [t/TAG]...\n" +
		"Example: add property n/Jurong West a/123, Jurong West Ave 6 s/Alice Pauline p/94351253 e/alice@example.com $/654321 t/HDB"

	DeleteUsage = "delete: Deletes the property or buyer at the index shown in the displayed list.\n" +
		"Parameters: property|buyer INDEX (must be a positive integer)\n" +
		"Example: delete property 1"

	EditUsage = "edit: Edits the property or buyer at the index shown in the displayed list. " +
		"Existing values are overwritten; t/ replaces all tags and an empty t/ clears them.\n" +
		"Parameters: property INDEX [n/NAME] [a/ADDRESS] [s/SELLER] [p/PHONE] [e/EMAIL] [$/PRICE] [t/TAG]...\n" +
		"            buyer INDEX [n/NAME] [p/PHONE] [e/EMAIL] [$/BUDGET] [t/TAG]...\n" +
		"Example: edit buyer 2 $/500000 t/condo"

	FindUsage = "find: Shows the properties or buyers whose names contain any of the keywords " +
		"(case-insensitive) and that carry any of the tags.\n" +
		"Parameters: property|buyer [KEYWORD]... [n/KEYWORD]... [t/TAG]...\n" +
		"Example: find property west t/condo"

	ListUsage = "list: Shows every property or buyer.\n" +
		"Parameters: property|buyer\n" +
		"Example: list buyer"

	SortUsage = "sort: Sorts properties or buyers by name or price (budget for buyers).\n" +
		"Parameters: property|buyer name|price [asc|desc]\n" +
		"Example: sort property price desc"

	MatchUsage = "match: Ranks every property against every buyer, or against one entry.\n" +
		"Parameters: [property|buyer INDEX]\n" +
		"Example: match buyer 1"

	ExportUsage = "export: Writes the properties or buyers to a CSV file.\n" +
		"Parameters: property|buyer\n" +
		"Example: export property"

	ImportUsage = "import: Adds properties or buyers from a CSV file. Entries already present are skipped.\n" +
		"Parameters: property|buyer\n" +
		"Example: import buyer"

	ClearUsage = "clear: Deletes every property and buyer."
	HelpUsage  = "help: Shows this usage summary."
	ExitUsage  = "exit: Exits the program."
)

// HelpText lists every command's usage.
func HelpText() string {
	return strings.Join([]string{
		AddUsage, DeleteUsage, EditUsage, FindUsage, ListUsage, SortUsage,
		MatchUsage, ExportUsage, ImportUsage, ClearUsage, HelpUsage, ExitUsage,
	}, "\n\n")
}
