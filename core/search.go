package core

import "strings"

// Filter keeps the records whose fields contain `query`, case- and
// diacritic-insensitively. An empty query returns the snapshot's records
// unchanged; matching is restricted to `fields` when given, otherwise every
// column is searched. Input order is preserved.
func Filter(coll Collection, query string, fields ...string) []Record {
	if CleanString(query) == "" {
		return coll.Records
	}
	needle := NormalizeString(query)
	if len(fields) == 0 {
		fields = coll.Columns
	}

	var matches []Record
	for _, rec := range coll.Records {
		for _, field := range fields {
			if strings.Contains(NormalizeString(rec.Get(field)), needle) {
				matches = append(matches, rec)
				break
			}
		}
	}
	return matches
}
