package core

import (
	"fmt"
	"strconv"
	"strings"
)

// NextID produces the next sequential identifier for a collection, e.g.
// "P0012" from existing ["P0003", "P0011"]. Identifiers that do not carry
// `prefix`, or whose numeric part does not parse, are silently skipped; they
// must never fail the whole operation. With no parseable identifier the
// sequence starts at prefix+"0001".
//
// Not atomic: two callers working from the same snapshot can both get the
// same id. Callers needing strict uniqueness under concurrency must add a
// post-create duplicate check.
func NextID(existing []string, prefix string) string {
	max := 0
	found := false
	for _, id := range existing {
		id = CleanString(id)
		if prefix != "" && !strings.HasPrefix(id, prefix) {
			continue
		}
		num, err := strconv.Atoi(stripNonDigits(strings.TrimPrefix(id, prefix)))
		if err != nil {
			continue
		}
		found = true
		if num > max {
			max = num
		}
	}
	if !found {
		return fmt.Sprintf("%s%04d", prefix, 1)
	}
	return fmt.Sprintf("%s%04d", prefix, max+1)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
