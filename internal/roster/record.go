// Package roster parses exported HTML roster tables into raw player records
// and validates them against the required-field contracts.
package roster

// Record is one player row: raw cell text keyed by column header. All values
// are text exactly as exported, including numeric-looking ones. Records are
// built once per reload and never mutated.
type Record map[string]string

// Get returns the raw cell text for a header, or "" when the column is
// absent.
func (r Record) Get(header string) string {
	return r[header]
}

// ID returns the stable player identifier, preserved unmodified from the
// export. It is the key used to build external profile URLs.
func (r Record) ID() string {
	return r["ID"]
}

// Team returns the player's organization code, or fallback when absent.
func (r Record) Team(fallback string) string {
	if t := r["ORG"]; t != "" {
		return t
	}
	return fallback
}

// Table is the parsed data table: the ordered header sequence plus one
// Record per accepted body row.
type Table struct {
	Headers []string
	Records []Record
}
