package roster

import "sort"

// MissingFields returns the union, across all records, of required headers
// that are absent or empty. The result is sorted; an empty result means
// every record satisfies the contract. Offenders are aggregated over the
// whole collection, not reported per record.
func MissingFields(records []Record, required []string) []string {
	missing := make(map[string]struct{})
	for _, rec := range records {
		for _, field := range required {
			if v, ok := rec[field]; !ok || v == "" {
				missing[field] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(missing))
	for field := range missing {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}
