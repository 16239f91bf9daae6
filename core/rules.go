package core

import "fmt"

// Rules declares the collection-level constraints of one entity type:
// columns that must have a value and columns whose (normalized) value must
// be unique across the collection. Labels map column names to display names
// used in violation messages.
type Rules struct {
	Required []string
	Unique   []string
	Labels   map[string]string
}

func (r Rules) label(field string) string {
	if l, ok := r.Labels[field]; ok {
		return l
	}
	return field
}

// CheckRequired reports a violation for each required field that is absent
// or empty after trimming.
func CheckRequired(rec Record, rules Rules) []string {
	var errs []string
	for _, field := range rules.Required {
		if CleanString(rec.Get(field)) == "" {
			errs = append(errs, fmt.Sprintf("field '%s' is required", rules.label(field)))
		}
	}
	return errs
}

// CheckUnique reports a violation for each unique field whose normalized
// value already appears in another record of `coll`. Positions listed in
// `exclude` are skipped; the update path must always pass the record's own
// position to avoid flagging it against itself.
func CheckUnique(coll Collection, rec Record, rules Rules, exclude ...int) []string {
	var errs []string
	for _, field := range rules.Unique {
		val, ok := rec[field]
		if !ok || CleanString(val) == "" {
			continue
		}
		normalized := NormalizeString(val)
		for pos, existing := range coll.Records {
			if isExcluded(pos, exclude) {
				continue
			}
			if NormalizeString(existing.Get(field)) == normalized {
				errs = append(errs, fmt.Sprintf("value '%s' is already in use for field '%s'", CleanString(val), rules.label(field)))
				break
			}
		}
	}
	return errs
}

// ValidateRecord runs all of a collection's record-level rules against a
// candidate and returns every violation at once. It never fails: an empty
// list means the candidate is acceptable.
func ValidateRecord(coll Collection, rec Record, rules Rules, exclude ...int) []string {
	errs := CheckRequired(rec, rules)
	errs = append(errs, CheckUnique(coll, rec, rules, exclude...)...)
	return errs
}

func isExcluded(pos int, exclude []int) bool {
	for _, e := range exclude {
		if pos == e {
			return true
		}
	}
	return false
}
