package reconcile

import (
	"maps"
	"slices"

	"roster-hub/core/roster"

	"golang.org/x/text/cases"
)

// Reconcile merges primary and secondary entities. The primary source is
// authoritative for every collection; secondary users are only used for
// identity matching by email.
//
// The email index is built in one pass over secondary users. When several
// secondary users share an email, the first one in source order wins and the
// rest are counted in Summary.DuplicateEmails.
//
// Neither input is modified.
func Reconcile(primary, secondary roster.Entities) Result {
	fold := cases.Fold()
	index, duplicates := emailIndex(fold, secondary.Users)

	matchedSecondary := make(map[string]struct{}, len(index))
	users := make([]roster.User, len(primary.Users))
	var matched int
	for i, u := range primary.Users {
		users[i] = u
		if u.Email == "" {
			continue
		}
		lms, ok := index[fold.String(u.Email)]
		if !ok {
			continue
		}
		md := make(roster.Metadata, len(u.Metadata)+2)
		maps.Copy(md, u.Metadata)
		md[roster.MetaLMSUsername] = lms.Username
		md[roster.MetaLMSSourcedID] = lms.SourcedID
		users[i].Metadata = md
		matchedSecondary[lms.SourcedID] = struct{}{}
		matched++
	}

	out := roster.Entities{
		Orgs:             slices.Clone(primary.Orgs),
		Users:            users,
		Courses:          slices.Clone(primary.Courses),
		Classes:          slices.Clone(primary.Classes),
		Enrollments:      slices.Clone(primary.Enrollments),
		AcademicSessions: slices.Clone(primary.AcademicSessions),
	}

	summary := countEntities(out)
	summary.PrimaryUsers = len(primary.Users)
	summary.SecondaryUsers = len(secondary.Users)
	summary.MatchedUsers = matched
	summary.UnmatchedPrimary = len(primary.Users) - matched
	summary.UnmatchedSecondary = len(secondary.Users) - len(matchedSecondary)
	summary.DuplicateEmails = duplicates

	return Result{Entities: out, Summary: summary}
}

// emailIndex indexes users by case-folded email. Users without an email are
// skipped. It returns the index and the number of users shadowed by an
// earlier user with the same email.
func emailIndex(fold cases.Caser, users []roster.User) (map[string]roster.User, int) {
	index := make(map[string]roster.User, len(users))
	var duplicates int
	for _, u := range users {
		if u.Email == "" {
			continue
		}
		key := fold.String(u.Email)
		if _, exists := index[key]; exists {
			duplicates++
			continue
		}
		index[key] = u
	}
	return index, duplicates
}

func countEntities(e roster.Entities) Summary {
	return Summary{
		Orgs:             len(e.Orgs),
		Users:            len(e.Users),
		Courses:          len(e.Courses),
		Classes:          len(e.Classes),
		Enrollments:      len(e.Enrollments),
		AcademicSessions: len(e.AcademicSessions),
	}
}
