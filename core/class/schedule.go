package class

import (
	"fmt"

	"github.com/aposenior/gestao/core"
)

// Overlaps applies the half-open interval test on two [start, end) ranges in
// minutes since midnight. Symmetric; back-to-back ranges that merely touch
// endpoints do not overlap.
func Overlaps(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}

// FindConflicts checks a proposed class against the existing collection and
// returns every reason it cannot be scheduled, in one pass:
//
//   - a zero or negative duration is never schedulable (single message,
//     nothing else is checked);
//   - on the same day, an overlapping class in the same concrete room is a
//     room conflict — skipped when either side uses the "Outro" placeholder;
//   - on the same day, an overlapping class with the same teacher is a
//     teacher conflict;
//   - across all days, another class with the same normalized name in the
//     same subject is a duplicate.
//
// Positions listed in `exclude` are skipped: the update path must pass the
// class's own position or it will conflict with itself. Existing rows whose
// stored times fail to parse are treated as non-conflicting, not fatal.
func FindConflicts(candidate Class, existing []Class, exclude ...int) []string {
	start, okStart := core.ParseClock(candidate.Start)
	end, okEnd := core.ParseClock(candidate.End)
	if !okStart || !okEnd {
		return []string{"start and end must be valid HH:MM times"}
	}
	if end <= start {
		return []string{"end time must be after start time"}
	}

	var conflicts []string
	candName := core.NormalizeString(candidate.Name)
	candSubject := core.CleanString(candidate.SubjectID)

	for pos, ex := range existing {
		if isExcluded(pos, exclude) {
			continue
		}

		if ex.Day == candidate.Day {
			exStart, okS := core.ParseClock(ex.Start)
			exEnd, okE := core.ParseClock(ex.End)
			if okS && okE && Overlaps(start, end, exStart, exEnd) {
				if candidate.Room != RoomOther && ex.Room != RoomOther && candidate.Room == ex.Room {
					conflicts = append(conflicts, fmt.Sprintf(
						"schedule conflict: room '%s' is already occupied on %s between %s and %s",
						ex.Room, ex.Day, ex.Start, ex.End))
				}
				if core.CleanString(ex.TeacherID) == core.CleanString(candidate.TeacherID) {
					conflicts = append(conflicts, fmt.Sprintf(
						"schedule conflict: teacher '%s' already has a class on %s between %s and %s",
						ex.TeacherID, ex.Day, ex.Start, ex.End))
				}
			}
		}

		if candName != "" && core.NormalizeString(ex.Name) == candName &&
			core.CleanString(ex.SubjectID) == candSubject {
			conflicts = append(conflicts, fmt.Sprintf(
				"a class named '%s' already exists for this subject", candidate.Name))
		}
	}
	return conflicts
}

func isExcluded(pos int, exclude []int) bool {
	for _, e := range exclude {
		if pos == e {
			return true
		}
	}
	return false
}
